package flycam

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned (wrapped) when Settings hold values that can't be used.
var ErrInvalidSettings = errors.New("invalid settings")

// WindowSettings controls the window the camera example opens.
type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ControlSettings controls how input drives the Camera.
type ControlSettings struct {
	Scheme         ControlScheme `yaml:"scheme"`
	MouseLookSpeed float64       `yaml:"mouse_look_speed"`
	MovementSpeed  float64       `yaml:"movement_speed"`
}

// CameraSettings controls the Camera's starting state.
type CameraSettings struct {
	FieldOfView float64 `yaml:"field_of_view"` // Vertical field of view, in degrees
	EyeHeight   float64 `yaml:"eye_height"`
}

// Settings holds everything that can be configured from a YAML file. Fields missing from the file keep their
// default values.
type Settings struct {
	Window   WindowSettings  `yaml:"window"`
	Controls ControlSettings `yaml:"controls"`
	Camera   CameraSettings  `yaml:"camera"`
}

// DefaultSettings returns the Settings used when no configuration file is given: a 640x360 resizable window, FPS
// controls, and a 60 degree field of view at an eye height of 2.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:     640,
			Height:    360,
			Title:     "flycam - Camera",
			Resizable: true,
		},
		Controls: ControlSettings{
			Scheme:         ControlSchemeFPS,
			MouseLookSpeed: 0.03,
			MovementSpeed:  0.05,
		},
		Camera: CameraSettings{
			FieldOfView: 60,
			EyeHeight:   2,
		},
	}
}

// ParseSettings parses YAML data on top of the default Settings and validates the result.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// LoadSettings reads and parses the YAML settings file at the given path.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("reading settings: %w", err)
	}
	return ParseSettings(data)
}

// Validate returns an error wrapping ErrInvalidSettings if any of the values are unusable.
func (s Settings) Validate() error {

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}

	if s.Controls.Scheme < 0 || s.Controls.Scheme >= controlSchemeCount {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, s.Controls.Scheme)
	}

	if s.Controls.MouseLookSpeed < 0 || s.Controls.MovementSpeed < 0 {
		return fmt.Errorf("%w: speeds can't be negative", ErrInvalidSettings)
	}

	fov := ToRadians(s.Camera.FieldOfView)
	if fov < MinFieldOfView-1e-9 || fov > MaxFieldOfView+1e-9 {
		return fmt.Errorf("%w: field of view %.1f must be between 20 and 120 degrees", ErrInvalidSettings, s.Camera.FieldOfView)
	}

	return nil

}

// NewController returns a Controller configured by the Settings.
func (s Settings) NewController() *Controller {
	ctrl := NewController()
	ctrl.Scheme = s.Controls.Scheme
	ctrl.MouseLookSpeed = s.Controls.MouseLookSpeed
	ctrl.MovementSpeed = s.Controls.MovementSpeed
	ctrl.EyeHeight = s.Camera.EyeHeight
	return ctrl
}

// NewCamera returns a Camera configured by the Settings, standing at eye height.
func (s Settings) NewCamera() *Camera {
	camera := NewCamera()
	camera.Position.Y = s.Camera.EyeHeight
	camera.SetFieldOfView(ToRadians(s.Camera.FieldOfView))
	return camera
}

// UnmarshalYAML allows a ControlScheme to be written by name ("FPS", "airplane", or "spaceship") in YAML.
func (scheme *ControlScheme) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseControlScheme(name)
	if err != nil {
		return err
	}
	*scheme = parsed
	return nil
}

// MarshalYAML writes a ControlScheme by name.
func (scheme ControlScheme) MarshalYAML() (interface{}, error) {
	return scheme.String(), nil
}
