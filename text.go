package flycam

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// LineHeight is the height in pixels of a line of HUD text.
const LineHeight = 13

// TelemetryLines returns the lines of on-screen telemetry describing the Camera: where it's looking, its pitch, yaw,
// and roll in degrees, its field of view, and the active control scheme.
func TelemetryLines(camera *Camera, scheme ControlScheme) []string {

	look := camera.LookDirection()

	return []string{
		fmt.Sprintf("look: %+3.1f/%+3.1f/%+3.1f (change with left mouse button and drag)", look.X, look.Y, look.Z),
		fmt.Sprintf("pitch: %+4.0f yaw: %+4.0f roll: %+4.0f",
			ToDegrees(camera.Pitch()),
			ToDegrees(camera.Yaw()),
			ToDegrees(camera.Roll()),
		),
		fmt.Sprintf("vertical field of view: %3.1f (change with Z/X)", ToDegrees(camera.VerticalFieldOfView)),
		"move with WASD or cursor",
		fmt.Sprintf("control style: %s (space to change)", scheme),
	}

}

// TextDrawer draws outlined HUD text with the basic 7x13 font.
type TextDrawer struct {
	texture *ebiten.Image
}

// DrawText draws the provided lines of text onto the screen at posX, posY, scaled by textScale, in the color given.
// The text gets a black outline so it stays readable over any background.
func (td *TextDrawer) DrawText(screen *ebiten.Image, lines []string, posX, posY, textScale float64, color Color) {

	txtStr := strings.Join(lines, "\n")

	size := text.BoundString(basicfont.Face7x13, txtStr).Size()

	if td.texture == nil || size.X > td.texture.Bounds().Dx() || size.Y+LineHeight > td.texture.Bounds().Dy() {
		if td.texture != nil {
			td.texture.Deallocate()
		}
		td.texture = ebiten.NewImage(size.X+1, size.Y+LineHeight)
	}

	td.texture.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, LineHeight)
	text.DrawWithOptions(td.texture, txtStr, basicfont.Face7x13, opt)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.Scale(0, 0, 0, color.A)

	for y := -1; y < 2; y++ {
		for x := -1; x < 2; x++ {
			dr.GeoM.Reset()
			dr.GeoM.Translate(float64(x), float64(y))
			dr.GeoM.Scale(textScale, textScale)
			dr.GeoM.Translate(posX, posY)
			screen.DrawImage(td.texture, dr)
		}
	}

	dr.ColorScale.Reset()
	dr.ColorScale.ScaleWithColor(color.ToNRGBA64())

	dr.GeoM.Reset()
	dr.GeoM.Scale(textScale, textScale)
	dr.GeoM.Translate(posX, posY)

	screen.DrawImage(td.texture, dr)

}
