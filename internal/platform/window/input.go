package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

// inputSource is the slice of ebiten input the window reads each tick.
type inputSource interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
	// Pointer returns the held mouse button or first touch position.
	Pointer() (x, y int, ok bool)
}

type ebitenInput struct{}

func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

func (ebitenInput) Pointer() (int, int, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

var actionKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

func anyPressed(src inputSource, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

// readInput builds one frame of input. Mute is reported separately since
// it never reaches the game.
func readInput(src inputSource) (in core.InputFrame, mute bool) {
	in = core.NewInputFrame()
	for _, ak := range actionKeys {
		if src.JustPressed(ak.key) {
			in.Set(ak.action)
		}
	}

	in.Move = core.Directions{
		Up:    anyPressed(src, ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(src, ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  anyPressed(src, ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(src, ebiten.KeyArrowRight, ebiten.KeyD),
	}

	if x, y, ok := src.Pointer(); ok {
		in.Aiming = true
		in.Aim = core.V(float64(x), float64(y))
	}
	return in, src.JustPressed(ebiten.KeyM)
}
