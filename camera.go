package flycam

import (
	"math"
)

const (
	// MinFieldOfView is the narrowest vertical field of view a Camera accepts, in radians (20 degrees).
	MinFieldOfView = 20 * math.Pi / 180
	// MaxFieldOfView is the widest vertical field of view a Camera accepts, in radians (120 degrees).
	MaxFieldOfView = 120 * math.Pi / 180
	// DefaultFieldOfView is the vertical field of view of a new Camera, in radians (60 degrees).
	DefaultFieldOfView = 60 * math.Pi / 180

	// The projection's clipping planes, in world units away from the eye.
	projectionNear = 1
	projectionFar  = 1000
)

// Camera represents a free-flying camera: a position and an orthonormal basis. XAxis points right, YAxis points up,
// and ZAxis points backwards (the Camera looks down its -Z axis, as in OpenGL).
//
// Every rotation turns all three axes together, which keeps them orthonormal. Nothing re-orthonormalizes the basis
// afterwards, so very long sessions accumulate a small amount of floating-point drift.
type Camera struct {
	Position Vector
	XAxis    Vector
	YAxis    Vector
	ZAxis    Vector

	// VerticalFieldOfView is in radians; use SetFieldOfView() or AdjustFieldOfView() to keep it clamped between
	// MinFieldOfView and MaxFieldOfView.
	VerticalFieldOfView float64
}

// NewCamera creates a new Camera with an identity basis, standing 2 units above the ground plane with a 60 degree
// vertical field of view.
func NewCamera() *Camera {
	return &Camera{
		Position:            NewVector(0, 2, 0),
		XAxis:               WorldRight,
		YAxis:               WorldUp,
		ZAxis:               WorldBackward,
		VerticalFieldOfView: DefaultFieldOfView,
	}
}

// RotateAroundAxis rotates the Camera's basis counter-clockwise around the provided axis by the given angle in radians.
// The axis doesn't need to be normalized. The Camera's position is unaffected.
func (camera *Camera) RotateAroundAxis(axis Vector, radians float64) {
	camera.XAxis = camera.XAxis.Rotate(axis, radians)
	camera.YAxis = camera.YAxis.Rotate(axis, radians)
	camera.ZAxis = camera.ZAxis.Rotate(axis, radians)
}

// MoveAlongDirection moves the Camera along its own X axis (right) and Z axis (backwards). The up axis is ignored.
func (camera *Camera) MoveAlongDirection(right, forward float64) {
	camera.Position = camera.Position.
		Add(camera.XAxis.Scale(right)).
		Add(camera.ZAxis.Scale(forward))
}

// GroundForwardVector returns a unit vector with Y = 0, pointing in the same compass direction as the Camera's Z axis.
// If the Camera looks straight up or down, the Z axis has no horizontal component and the zero vector is returned instead.
func (camera *Camera) GroundForwardVector() Vector {
	return groundProjection(camera.ZAxis)
}

// GroundRightVector returns a unit vector with Y = 0, pointing in the same compass direction as the Camera's X axis.
// If the X axis is vertical, the zero vector is returned instead.
func (camera *Camera) GroundRightVector() Vector {
	return groundProjection(camera.XAxis)
}

func groundProjection(axis Vector) Vector {
	length := math.Sqrt(axis.X*axis.X + axis.Z*axis.Z)
	if length > 0 {
		return NewVector(axis.X/length, 0, axis.Z/length)
	}
	return NewVectorZero()
}

// MoveAlongGround moves the Camera like MoveAlongDirection(), but only along the ground plane; the Camera's height is
// left alone, and looking up or down doesn't change the speed or direction of movement.
func (camera *Camera) MoveAlongGround(right, forward float64) {
	f := camera.GroundForwardVector()
	r := camera.GroundRightVector()
	camera.Position.X += f.X*forward + r.X*right
	camera.Position.Z += f.Z*forward + r.Z*right
}

// Pitch returns how far the Camera's forward axis tilts away from the horizontal, in radians.
func (camera *Camera) Pitch() float64 {
	return clampedAsin(camera.GroundForwardVector().Dot(camera.YAxis))
}

// Yaw returns the compass heading of the Camera's Z axis on the ground plane, in radians.
func (camera *Camera) Yaw() float64 {
	return math.Atan2(camera.ZAxis.X, camera.ZAxis.Z)
}

// Roll returns how far the Camera leans (the angle of its right axis away from the horizontal), in radians.
func (camera *Camera) Roll() float64 {
	return clampedAsin(camera.GroundRightVector().Dot(camera.YAxis))
}

// The dot product of two unit vectors can land a hair outside of [-1, 1] through rounding, which would make Asin NaN.
func clampedAsin(v float64) float64 {
	return math.Asin(clamp(v, -1, 1))
}

// SetFieldOfView sets the vertical field of view in radians, clamped between MinFieldOfView and MaxFieldOfView.
func (camera *Camera) SetFieldOfView(radians float64) {
	camera.VerticalFieldOfView = clamp(radians, MinFieldOfView, MaxFieldOfView)
}

// AdjustFieldOfView widens (positive delta) or narrows (negative delta) the vertical field of view, in radians.
func (camera *Camera) AdjustFieldOfView(delta float64) {
	camera.SetFieldOfView(camera.VerticalFieldOfView + delta)
}

// LookDirection returns the direction the Camera is looking in (its -Z axis).
func (camera *Camera) LookDirection() Vector {
	return camera.ZAxis.Invert()
}

// ViewMatrix returns the Camera's view matrix, which transforms world space into the Camera's view space.
func (camera *Camera) ViewMatrix() Matrix4 {
	return NewViewMatrix(camera.Position, camera.XAxis, camera.YAxis, camera.ZAxis)
}

// Projection returns the Camera's perspective projection matrix for a view of the given width and height. The screen
// spans two vertical units at the clipping distance, with square pixels and the Camera's vertical field of view.
// The eye is pulled back one unit so the near clipping plane sits at the Camera's position.
func (camera *Camera) Projection(width, height float64) Matrix4 {

	aspect := width / height
	f := math.Tan(camera.VerticalFieldOfView / 2)

	return NewMatrix4Translate(0, 0, -1).Mult(
		NewMatrix4Frustum(-aspect*f, f, projectionNear, aspect*f, -f, projectionFar),
	)

}

// ViewProjection returns the combined view and projection matrix for a view of the given width and height.
func (camera *Camera) ViewProjection(width, height float64) Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection(width, height))
}

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
