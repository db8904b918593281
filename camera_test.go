package flycam

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewCamera(t *testing.T) {

	camera := NewCamera()

	if camera.Position != NewVector(0, 2, 0) {
		t.Fatal("expected the camera to start at {0, 2, 0}, got", camera.Position)
	}

	if camera.XAxis != WorldRight || camera.YAxis != WorldUp || camera.ZAxis != WorldBackward {
		t.Fatal("expected the camera to start with the world axes")
	}

	if camera.VerticalFieldOfView != DefaultFieldOfView {
		t.Fatal("expected the default field of view, got", camera.VerticalFieldOfView)
	}

	if camera.Pitch() != 0 || camera.Yaw() != 0 || camera.Roll() != 0 {
		t.Fatal("expected a level camera, got pitch", camera.Pitch(), "yaw", camera.Yaw(), "roll", camera.Roll())
	}

}

func TestCameraRotationKeepsBasisOrthonormal(t *testing.T) {

	camera := NewCamera()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {

		axis := NewVector(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		camera.RotateAroundAxis(axis, rng.Float64()*2-1)

		for _, v := range []Vector{camera.XAxis, camera.YAxis, camera.ZAxis} {
			if math.Abs(v.Magnitude()-1) > 1e-9 {
				t.Fatal("rotation #", i, "changed an axis' length to", v.Magnitude())
			}
		}

		if math.Abs(camera.XAxis.Dot(camera.YAxis)) > 1e-9 || math.Abs(camera.YAxis.Dot(camera.ZAxis)) > 1e-9 {
			t.Fatal("rotation #", i, "broke orthogonality")
		}

		if !camera.XAxis.Cross(camera.YAxis).Equals(camera.ZAxis) {
			t.Fatal("rotation #", i, "broke handedness")
		}

	}

}

func TestCameraRotateZeroAngle(t *testing.T) {

	camera := NewCamera()
	camera.RotateAroundAxis(NewVector(1, 2, 3), 0.8)

	before := *camera
	camera.RotateAroundAxis(NewVector(-0.3, 1, 0.2), 0)

	if !camera.XAxis.Equals(before.XAxis) || !camera.YAxis.Equals(before.YAxis) || !camera.ZAxis.Equals(before.ZAxis) {
		t.Fatal("rotating by zero should leave the basis alone")
	}

}

func TestCameraRotateRoundTrip(t *testing.T) {

	camera := NewCamera()
	camera.RotateAroundAxis(WorldUp, 1.2)

	before := *camera
	axis := NewVector(0.5, -1, 2)

	camera.RotateAroundAxis(axis, 0.7)
	camera.RotateAroundAxis(axis, -0.7)

	if !camera.XAxis.Equals(before.XAxis) || !camera.YAxis.Equals(before.YAxis) || !camera.ZAxis.Equals(before.ZAxis) {
		t.Fatal("rotating forwards and back again should restore the basis")
	}

}

func TestCameraGroundVectors(t *testing.T) {

	camera := NewCamera()
	camera.RotateAroundAxis(WorldUp, 0.4)
	camera.RotateAroundAxis(camera.XAxis, -0.9)
	camera.RotateAroundAxis(camera.ZAxis, 0.3)

	for _, v := range []Vector{camera.GroundForwardVector(), camera.GroundRightVector()} {
		if v.Y != 0 {
			t.Fatal("ground vectors should be flat, got", v)
		}
		if math.Abs(v.Magnitude()-1) > 1e-9 {
			t.Fatal("ground vectors should be unit length, got", v)
		}
	}

	// Looking straight down, there's no horizontal forward direction.
	camera = NewCamera()
	camera.ZAxis = WorldUp
	if got := camera.GroundForwardVector(); got != NewVectorZero() {
		t.Fatal("expected the zero vector, got", got)
	}

	// Likewise when the right axis is vertical.
	camera = NewCamera()
	camera.XAxis = WorldUp
	if got := camera.GroundRightVector(); got != NewVectorZero() {
		t.Fatal("expected the zero vector, got", got)
	}

}

func TestCameraYaw(t *testing.T) {

	camera := NewCamera()

	if camera.Yaw() != 0 {
		t.Fatal("expected a yaw of 0, got", camera.Yaw())
	}

	camera.ZAxis = WorldRight
	if math.Abs(camera.Yaw()-math.Pi/2) > 1e-12 {
		t.Fatal("expected a yaw of pi/2, got", camera.Yaw())
	}

	camera = NewCamera()
	camera.RotateAroundAxis(WorldUp, -0.3)
	if math.Abs(camera.Yaw()+0.3) > 1e-9 {
		t.Fatal("expected a yaw of -0.3, got", camera.Yaw())
	}

}

func TestCameraPitchAndRoll(t *testing.T) {

	for _, angle := range []float64{-1.2, -0.3, 0.1, 0.8} {

		camera := NewCamera()
		camera.RotateAroundAxis(camera.XAxis, angle)
		if math.Abs(camera.Pitch()-angle) > 1e-9 {
			t.Fatal("pitching by", angle, "gave a pitch of", camera.Pitch())
		}
		if math.Abs(camera.Roll()) > 1e-9 {
			t.Fatal("pitching by", angle, "gave a roll of", camera.Roll())
		}

		camera = NewCamera()
		camera.RotateAroundAxis(camera.ZAxis, angle)
		if math.Abs(camera.Roll()+angle) > 1e-9 {
			t.Fatal("rolling by", angle, "gave a roll of", camera.Roll())
		}

	}

}

func TestCameraPitchClamped(t *testing.T) {

	camera := NewCamera()

	// Accumulated rounding error can push the dot product slightly past 1.
	camera.YAxis = NewVector(0, 0, 1+1e-12)

	if pitch := camera.Pitch(); math.IsNaN(pitch) || pitch != math.Pi/2 {
		t.Fatal("expected a pitch of pi/2, got", pitch)
	}

}

func TestCameraRollClamped(t *testing.T) {

	camera := NewCamera()

	camera.YAxis = NewVector(1+1e-12, 0, 0)
	if roll := camera.Roll(); math.IsNaN(roll) || roll != math.Pi/2 {
		t.Fatal("expected a roll of pi/2, got", roll)
	}

	camera.YAxis = NewVector(-1-1e-12, 0, 0)
	if roll := camera.Roll(); math.IsNaN(roll) || roll != -math.Pi/2 {
		t.Fatal("expected a roll of -pi/2, got", roll)
	}

}

func TestCameraRotateAroundTinyAxis(t *testing.T) {

	tiny := NewCamera()
	tiny.RotateAroundAxis(NewVector(1e-9, 0, 0), math.Pi/2)

	unit := NewCamera()
	unit.RotateAroundAxis(WorldRight, math.Pi/2)

	if !tiny.XAxis.Equals(unit.XAxis) || !tiny.YAxis.Equals(unit.YAxis) || !tiny.ZAxis.Equals(unit.ZAxis) {
		t.Fatal("a short axis should rotate like a unit one; got", tiny.XAxis, tiny.YAxis, tiny.ZAxis,
			"expected", unit.XAxis, unit.YAxis, unit.ZAxis)
	}

	for _, v := range []Vector{tiny.XAxis, tiny.YAxis, tiny.ZAxis} {
		if math.Abs(v.Magnitude()-1) > 1e-9 {
			t.Fatal("rotating around a short axis changed an axis' length to", v.Magnitude())
		}
	}

}

func TestCameraMoveAlongGround(t *testing.T) {

	camera := NewCamera()
	camera.MoveAlongGround(0, 1)

	if camera.Position != NewVector(0, 2, 1) {
		t.Fatal("expected {0, 2, 1}, got", camera.Position)
	}

	// Looking down doesn't change how far or where the camera moves.
	camera = NewCamera()
	camera.RotateAroundAxis(camera.XAxis, -1)
	camera.MoveAlongGround(1, -1)

	if !camera.Position.Equals(NewVector(1, 2, -1)) {
		t.Fatal("expected {1, 2, -1}, got", camera.Position)
	}

}

func TestCameraMoveAlongDirection(t *testing.T) {

	camera := NewCamera()
	camera.MoveAlongDirection(1, 0)

	if camera.Position != NewVector(1, 2, 0) {
		t.Fatal("expected {1, 2, 0}, got", camera.Position)
	}

	camera = NewCamera()
	camera.RotateAroundAxis(camera.XAxis, -math.Pi/2)
	camera.MoveAlongDirection(0, -1)

	if !camera.Position.Equals(NewVector(0, 1, 0)) {
		t.Fatal("moving forward while looking straight down should descend, got", camera.Position)
	}

}

func TestCameraFieldOfViewClamped(t *testing.T) {

	camera := NewCamera()

	for i := 0; i < 1000; i++ {
		camera.AdjustFieldOfView(-0.01)
		if camera.VerticalFieldOfView < MinFieldOfView {
			t.Fatal("field of view went below the minimum:", camera.VerticalFieldOfView)
		}
	}

	if camera.VerticalFieldOfView != MinFieldOfView {
		t.Fatal("expected the field of view to settle at the minimum, got", camera.VerticalFieldOfView)
	}

	for i := 0; i < 1000; i++ {
		camera.AdjustFieldOfView(0.01)
		if camera.VerticalFieldOfView > MaxFieldOfView {
			t.Fatal("field of view went above the maximum:", camera.VerticalFieldOfView)
		}
	}

	if camera.VerticalFieldOfView != MaxFieldOfView {
		t.Fatal("expected the field of view to settle at the maximum, got", camera.VerticalFieldOfView)
	}

	if math.Abs(ToDegrees(MinFieldOfView)-20) > 1e-9 || math.Abs(ToDegrees(MaxFieldOfView)-120) > 1e-9 {
		t.Fatal("expected the field of view limits to be 20 and 120 degrees")
	}

}
