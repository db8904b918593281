package flycam

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"golang.org/x/image/colornames"
)

func TestColorFromName(t *testing.T) {

	yellow, err := ColorFromName("Yellow")
	assert.Equal(t, err, nil)
	assert.Equal(t, yellow, NewColor(1, 1, 0, 1))

	if _, err := ColorFromName("not-a-color"); err == nil {
		t.Fatal("expected an error for an unknown color name")
	}

}

func TestColorConversions(t *testing.T) {

	green := NewColorFromStd(colornames.Green)
	assert.Equal(t, green.ToRGBA8(), [4]uint8{0, 128, 0, 255})

	assert.Equal(t, NewColor(2, -1, 0.5, 1).ToRGBA8(), [4]uint8{255, 0, 128, 255})

	mid := NewColor(0, 0, 0, 1).Lerp(NewColor(1, 1, 1, 1), 0.5)
	assert.Equal(t, mid, NewColor(0.5, 0.5, 0.5, 1))

}
