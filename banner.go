package flycam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BannerFadeTime is how long in seconds a Banner takes to fade out after being shown.
const BannerFadeTime = 1.5

// Banner is a short message shown in the middle of the screen that fades out over time, used to announce a change
// of control scheme.
type Banner struct {
	Text  string
	Color Color
	Scale float64

	fade   *gween.Tween
	alpha  float32
	drawer TextDrawer
}

// NewBanner creates a new, hidden Banner.
func NewBanner(color Color) *Banner {
	return &Banner{
		Color: color,
		Scale: 2,
	}
}

// Show displays the text provided at full opacity and starts fading it out.
func (b *Banner) Show(text string) {
	b.Text = text
	b.alpha = 1
	b.fade = gween.New(1, 0, BannerFadeTime, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (b *Banner) Update(dt float64) {
	if b.fade == nil {
		return
	}
	alpha, finished := b.fade.Update(float32(dt))
	b.alpha = alpha
	if finished {
		b.alpha = 0
		b.fade = nil
	}
}

// Alpha returns the Banner's current opacity, ranging from 1 (just shown) to 0 (faded out).
func (b *Banner) Alpha() float32 {
	return b.alpha
}

// Visible returns if the Banner is still at least partially visible.
func (b *Banner) Visible() bool {
	return b.alpha > 0
}

// Draw draws the Banner centered on the screen, if it's visible.
func (b *Banner) Draw(screen *ebiten.Image) {

	if !b.Visible() {
		return
	}

	c := b.Color
	c.A *= b.alpha

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	textWidth := float64(len(b.Text)*basicFontAdvance) * b.Scale
	x := (float64(w) - textWidth) / 2
	y := float64(h)/2 - LineHeight*b.Scale

	b.drawer.DrawText(screen, []string{b.Text}, x, y, b.Scale, c)

}

// Every glyph in basicfont.Face7x13 is 7 pixels wide.
const basicFontAdvance = 7
