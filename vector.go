package flycam

import (
	"math"
	"strconv"
)

// WorldRight represents a unit vector in the global direction of X on the right-handed OpenGL coordinate system (right).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of Y on the right-handed OpenGL coordinate system (upwards).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of Z on the right-handed OpenGL coordinate system (backwards, towards you).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector (position, direction, movement delta, and so on).
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors are meant to be passed around by value; there's no identity to them.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector, with the values of 0, 0, and 0.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Lerp returns a Vector linearly interpolated between the calling Vector (percent 0) and the other Vector (percent 1).
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	return vec.Add(other.Sub(vec).Scale(percent))
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Rotate returns a copy of the Vector, rotated counter-clockwise around the axis provided by the angle provided (in radians).
// The axis doesn't need to be normalized; it's normalized internally so that its length doesn't scale the result.
// Rotating around a zero-length axis returns the Vector unchanged.
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	sin, cos := math.Sincos(angle)

	// The world axes come up constantly (mouse look around world up), so they get a shortcut.

	if axis == WorldRight {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis == WorldUp {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis == WorldBackward {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	// Unit() leaves very short vectors alone, so the axis is normalized directly.
	l := axis.Magnitude()
	if l == 0 {
		return vec
	}

	// Rodrigues' rotation formula
	u := axis.Scale(1 / l)

	return vec.Scale(cos).
		Add(u.Cross(vec).Scale(sin)).
		Add(u.Scale(u.Dot(vec) * (1 - cos)))

}

// String returns the Vector as a human-readable string, like "{1, 0.5, -2}".
func (vec Vector) String() string {
	return "{" + strconv.FormatFloat(vec.X, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Y, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Z, 'f', -1, 64) + "}"
}

// Vector4 represents a homogeneous 4D vector, as produced by projecting a Vector through a projection Matrix4 (clip space).
type Vector4 struct {
	X, Y, Z, W float64
}

// Lerp returns a Vector4 linearly interpolated between the calling Vector4 (percent 0) and the other Vector4 (percent 1).
func (vec Vector4) Lerp(other Vector4, percent float64) Vector4 {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	vec.W += (other.W - vec.W) * percent
	return vec
}
