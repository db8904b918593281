package flycam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps the Camera's actions to Ebitengine keys. Any of the keys listed for an action triggers it.
type KeyBindings struct {
	Left, Right, Forward, Backward []ebiten.Key
	ZoomIn, ZoomOut                []ebiten.Key
	CycleScheme                    []ebiten.Key
	LookButton                     ebiten.MouseButton
}

// DefaultKeyBindings returns WASD / cursor movement, Z and X to zoom, Space to switch control schemes, and the left
// mouse button to look around.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:        []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:       []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Forward:     []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Backward:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		ZoomIn:      []ebiten.Key{ebiten.KeyZ},
		ZoomOut:     []ebiten.Key{ebiten.KeyX},
		CycleScheme: []ebiten.Key{ebiten.KeySpace},
		LookButton:  ebiten.MouseButtonLeft,
	}
}

// EbitenInput polls Ebitengine's keyboard and mouse state once per tick and turns it into an Input.
type EbitenInput struct {
	Bindings KeyBindings

	keys    *KeyLatch[ebiten.Key]
	pointer PointerDelta

	keyBuffer  []ebiten.Key
	prevX      int
	prevY      int
	cursorSeen bool
}

// NewEbitenInput creates a new EbitenInput using the provided key bindings.
func NewEbitenInput(bindings KeyBindings) *EbitenInput {
	return &EbitenInput{
		Bindings: bindings,
		keys:     NewKeyLatch[ebiten.Key](),
	}
}

// Poll reads Ebitengine's input state and returns this tick's Input. It should be called once per Update().
func (ei *EbitenInput) Poll() Input {

	ei.keys.EndTick()

	ei.keyBuffer = inpututil.AppendJustPressedKeys(ei.keyBuffer[:0])
	for _, k := range ei.keyBuffer {
		ei.keys.Press(k)
	}

	ei.keyBuffer = inpututil.AppendJustReleasedKeys(ei.keyBuffer[:0])
	for _, k := range ei.keyBuffer {
		ei.keys.Release(k)
	}

	mx, my := ebiten.CursorPosition()
	if ei.cursorSeen {
		ei.pointer.Move(float64(mx-ei.prevX), float64(my-ei.prevY))
	}
	ei.prevX, ei.prevY = mx, my
	ei.cursorSeen = true

	dx, dy := ei.pointer.Take()

	return ei.input(dx, dy, ebiten.IsMouseButtonPressed(ei.Bindings.LookButton))

}

func (ei *EbitenInput) input(dx, dy float64, look bool) Input {

	b := ei.Bindings
	in := Input{
		Look:   look,
		LookDX: dx,
		LookDY: dy,
	}

	if ei.keys.AnyActive(b.Left...) {
		in.MoveX = -1
	}
	if ei.keys.AnyActive(b.Backward...) {
		in.MoveY = 1
	}
	if ei.keys.AnyActive(b.Right...) {
		in.MoveX = 1
	}
	if ei.keys.AnyActive(b.Forward...) {
		in.MoveY = -1
	}

	in.ZoomIn = ei.keys.AnyActive(b.ZoomIn...)
	in.ZoomOut = ei.keys.AnyActive(b.ZoomOut...)

	in.CycleScheme = ei.keys.AnyJustPressed(b.CycleScheme...)

	return in

}
