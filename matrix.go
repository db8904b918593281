package flycam

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, rotation, and projection. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and vectors are treated as row vectors: MultVec() computes vector * matrix, so A.Mult(B) applies A first, then B.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians. It agrees with Vector.Rotate().
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := Vector{X: x, Y: y, Z: z}.Unit()
	s, c := math.Sincos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y + vector.Z*s
	mat[0][2] = m*vector.Z*vector.X - vector.Y*s

	mat[1][0] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z + vector.X*s

	mat[2][0] = m*vector.Z*vector.X + vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// NewMatrix4Frustum generates a perspective frustum Matrix4 from the left, top, near, right, bottom, and far planes.
// The near and far values are distances down the -Z axis, so both should be positive.
func NewMatrix4Frustum(left, top, near, right, bottom, far float64) Matrix4 {

	mat := Matrix4{}

	mat[0][0] = 2 * near / (right - left)
	mat[1][1] = 2 * near / (top - bottom)
	mat[2][0] = (right + left) / (right - left)
	mat[2][1] = (top + bottom) / (top - bottom)
	mat[2][2] = -(far + near) / (far - near)
	mat[2][3] = -1
	mat[3][2] = -2 * far * near / (far - near)

	return mat

}

// NewViewMatrix builds the transform that takes world space into the view space of an observer at position, whose
// right, up, and backward axes are the provided x, y, and z axes. This is an inverse translation by the position,
// followed by an inverse rotation from the orientation (the transpose, as the axes are orthonormal).
func NewViewMatrix(position, xAxis, yAxis, zAxis Vector) Matrix4 {

	mat := Matrix4{}

	mat[0][0] = xAxis.X
	mat[1][0] = xAxis.Y
	mat[2][0] = xAxis.Z
	mat[3][0] = -xAxis.Dot(position)

	mat[0][1] = yAxis.X
	mat[1][1] = yAxis.Y
	mat[2][1] = yAxis.Z
	mat[3][1] = -yAxis.Dot(position)

	mat[0][2] = zAxis.X
	mat[1][2] = zAxis.Y
	mat[2][2] = zAxis.Z
	mat[3][2] = -zAxis.Dot(position)

	mat[3][3] = 1

	return mat

}

// Transposed returns a transposed copy of the Matrix4.
func (matrix Matrix4) Transposed() Matrix4 {
	newMat := Matrix4{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			newMat[x][y] = matrix[y][x]
		}
	}
	return newMat
}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, giving a homogeneous vector
// (for example, the clip-space position of a vertex once multiplied by a view-projection Matrix4).
func (matrix Matrix4) MultVecW(vect Vector) Vector4 {

	return Vector4{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them, with the calling Matrix4 applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] +
				matrix[row][1]*other[1][col] +
				matrix[row][2]*other[2][col] +
				matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := 0.0001 // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
