package flycam

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromStd converts a standard library color.Color into a Color.
func NewColorFromStd(c color.Color) Color {
	r, g, b, a := color.NRGBA64Model.Convert(c).RGBA()
	return NewColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// ColorFromName returns the SVG 1.1 named color ("yellow", "green", "skyblue", etc). Names are case-insensitive.
func ColorFromName(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", name)
	}
	return NewColorFromStd(c), nil
}

// Lerp returns a Color linearly interpolated between the calling Color (percent 0) and the other Color (percent 1).
func (c Color) Lerp(other Color, percent float32) Color {
	c.R += (other.R - c.R) * percent
	c.G += (other.G - c.G) * percent
	c.B += (other.B - c.B) * percent
	c.A += (other.A - c.A) * percent
	return c
}

// ToNRGBA64 converts the Color to a standard library color.NRGBA64.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(clamp(c.R, 0, 1) * 0xffff),
		G: uint16(clamp(c.G, 0, 1) * 0xffff),
		B: uint16(clamp(c.B, 0, 1) * 0xffff),
		A: uint16(clamp(c.A, 0, 1) * 0xffff),
	}
}

// ToRGBA8 returns the Color as four 8-bit channels, which is how it's stored in exported files.
func (c Color) ToRGBA8() [4]uint8 {
	return [4]uint8{
		uint8(clamp(c.R, 0, 1)*255 + 0.5),
		uint8(clamp(c.G, 0, 1)*255 + 0.5),
		uint8(clamp(c.B, 0, 1)*255 + 0.5),
		uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}
