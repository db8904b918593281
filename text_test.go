package flycam

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTelemetryLines(t *testing.T) {

	lines := TelemetryLines(NewCamera(), ControlSchemeFPS)

	assert.Equal(t, len(lines), 5)

	if !strings.HasPrefix(lines[0], "look: ") || !strings.Contains(lines[0], "/-1.0 (change with left mouse button and drag)") {
		t.Fatal("unexpected look line:", lines[0])
	}

	assert.Equal(t, lines[1], "pitch:   +0 yaw:   +0 roll:   +0")
	assert.Equal(t, lines[2], "vertical field of view: 60.0 (change with Z/X)")
	assert.Equal(t, lines[3], "move with WASD or cursor")
	assert.Equal(t, lines[4], "control style: FPS (space to change)")

}

func TestTelemetryLinesTurned(t *testing.T) {

	camera := NewCamera()
	camera.RotateAroundAxis(WorldUp, ToRadians(90))
	camera.SetFieldOfView(ToRadians(90))

	lines := TelemetryLines(camera, ControlSchemeSpaceship)

	assert.Equal(t, lines[0], "look: -1.0/-0.0/-0.0 (change with left mouse button and drag)")
	assert.Equal(t, lines[1], "pitch:   +0 yaw:  +90 roll:   +0")
	assert.Equal(t, lines[2], "vertical field of view: 90.0 (change with Z/X)")
	assert.Equal(t, lines[4], "control style: spaceship (space to change)")

}
