package flycam

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/glog"
)

// ControlScheme selects how the Camera moves and turns in response to input.
type ControlScheme int

const (
	ControlSchemeFPS       ControlScheme = iota // Walk along the ground at eye level; look around world up. Roll is damped.
	ControlSchemeAirplane                       // Fly along the Camera's own axes; the pointer pitches and rolls. Roll is kept.
	ControlSchemeSpaceship                      // Fly along the Camera's own axes; look around world up. Roll is damped.

	controlSchemeCount = 3
)

// ErrUnknownControlScheme is returned when parsing a control scheme name that doesn't exist.
var ErrUnknownControlScheme = errors.New("unknown control scheme")

var controlSchemeNames = [controlSchemeCount]string{"FPS", "airplane", "spaceship"}

// String returns the human-readable name of the ControlScheme ("FPS", "airplane", or "spaceship").
func (scheme ControlScheme) String() string {
	if scheme < 0 || scheme >= controlSchemeCount {
		return fmt.Sprintf("ControlScheme(%d)", int(scheme))
	}
	return controlSchemeNames[scheme]
}

// Next returns the ControlScheme that follows this one, wrapping around after ControlSchemeSpaceship.
func (scheme ControlScheme) Next() ControlScheme {
	return (scheme + 1) % controlSchemeCount
}

// ParseControlScheme returns the ControlScheme with the given name; the comparison is case-insensitive.
func ParseControlScheme(name string) (ControlScheme, error) {
	for i, n := range controlSchemeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return ControlScheme(i), nil
		}
	}
	return ControlSchemeFPS, fmt.Errorf("%w: %q", ErrUnknownControlScheme, name)
}

// groundMovement returns if the scheme walks along the ground rather than flying along the Camera's axes.
func (scheme ControlScheme) groundMovement() bool {
	return scheme == ControlSchemeFPS
}

// dampsRoll returns if the scheme levels the Camera out over time.
func (scheme ControlScheme) dampsRoll() bool {
	return scheme == ControlSchemeFPS || scheme == ControlSchemeSpaceship
}

// Input is the movement and look intent gathered over a single tick.
type Input struct {
	MoveX float64 // -1 moves left, 1 moves right
	MoveY float64 // -1 moves forward, 1 moves backward (along the Camera's Z axis)

	Look           bool    // If the pointer should turn the Camera this tick (e.g. the left mouse button is held)
	LookDX, LookDY float64 // Pointer motion since the last tick, in pixels

	ZoomIn  bool // Narrow the field of view
	ZoomOut bool // Widen the field of view

	CycleScheme bool // Switch to the next ControlScheme
}

// Controller applies a tick's worth of Input to a Camera according to its ControlScheme.
// All of the rates are per tick, tuned for Ebitengine's default of 60 ticks per second.
type Controller struct {
	Scheme ControlScheme

	MouseLookSpeed  float64 // Radians turned per pixel of pointer motion
	MovementSpeed   float64 // World units moved per tick
	FieldOfViewStep float64 // Radians the field of view changes per tick while zooming

	EyeHeight   float64 // The height the FPS scheme keeps the Camera at
	HeightStep  float64 // How far the FPS scheme lowers the Camera per tick when it's above EyeHeight
	RollDamping float64 // Each tick, 1/RollDamping of the current roll is undone
}

// NewController returns a Controller using the FPS scheme with the default speeds.
func NewController() *Controller {
	return &Controller{
		Scheme:          ControlSchemeFPS,
		MouseLookSpeed:  0.03,
		MovementSpeed:   0.05,
		FieldOfViewStep: 0.01,
		EyeHeight:       2,
		HeightStep:      0.1,
		RollDamping:     60,
	}
}

// Apply updates the Camera with one tick of Input.
func (ctrl *Controller) Apply(camera *Camera, input Input) {

	if input.CycleScheme {
		ctrl.Scheme = ctrl.Scheme.Next()
		glog.V(1).Infof("control scheme: %s", ctrl.Scheme)
	}

	if input.ZoomIn {
		camera.AdjustFieldOfView(-ctrl.FieldOfViewStep)
	}
	if input.ZoomOut {
		camera.AdjustFieldOfView(ctrl.FieldOfViewStep)
	}

	if ctrl.Scheme.groundMovement() {
		if camera.Position.Y > ctrl.EyeHeight {
			camera.Position.Y -= ctrl.HeightStep
		}
		if camera.Position.Y < ctrl.EyeHeight {
			camera.Position.Y = ctrl.EyeHeight
		}
	}

	if ctrl.Scheme.dampsRoll() && ctrl.RollDamping != 0 {
		camera.RotateAroundAxis(camera.ZAxis, camera.Roll()/ctrl.RollDamping)
	}

	x, y := input.MoveX, input.MoveY
	if xy := math.Sqrt(x*x + y*y); xy > 0 {
		x /= xy
		y /= xy
		if ctrl.Scheme.groundMovement() {
			camera.MoveAlongGround(ctrl.MovementSpeed*x, ctrl.MovementSpeed*y)
		} else {
			camera.MoveAlongDirection(ctrl.MovementSpeed*x, ctrl.MovementSpeed*y)
		}
	}

	if input.Look {
		pitch := -ctrl.MouseLookSpeed * input.LookDY
		turn := -ctrl.MouseLookSpeed * input.LookDX
		camera.RotateAroundAxis(camera.XAxis, pitch)
		if ctrl.Scheme == ControlSchemeAirplane {
			camera.RotateAroundAxis(camera.ZAxis, turn)
		} else {
			camera.RotateAroundAxis(WorldUp, turn)
		}
	}

}
