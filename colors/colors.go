package colors

// package colors contains functions to quickly and easily generate flycam.Color instances by name (i.e. "White()", "Blue()", "Green()", etc).

import (
	"image/color"

	"github.com/flycam/flycam"
	"golang.org/x/image/colornames"
)

func named(c color.RGBA) flycam.Color {
	return flycam.NewColorFromStd(c)
}

// White generates a flycam.Color instance of the provided name.
func White() flycam.Color {
	return named(colornames.White)
}

// Black generates a flycam.Color instance of the provided name.
func Black() flycam.Color {
	return named(colornames.Black)
}

// LightGray generates a flycam.Color instance of the provided name.
func LightGray() flycam.Color {
	return named(colornames.Lightgray)
}

// Yellow generates a flycam.Color instance of the provided name.
func Yellow() flycam.Color {
	return named(colornames.Yellow)
}

// Green generates a flycam.Color instance of the provided name. Note that this is the SVG "green", which is a darker
// green than pure (0, 1, 0).
func Green() flycam.Color {
	return named(colornames.Green)
}

// Blue generates a flycam.Color instance of the provided name.
func Blue() flycam.Color {
	return named(colornames.Blue)
}
