package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/session"
)

type fakeInput struct {
	just    map[ebiten.Key]bool
	held    map[ebiten.Key]bool
	pointer *[2]int
}

func (f fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }
func (f fakeInput) Pressed(k ebiten.Key) bool     { return f.held[k] }

func (f fakeInput) Pointer() (int, int, bool) {
	if f.pointer == nil {
		return 0, 0, false
	}
	return f.pointer[0], f.pointer[1], true
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  color.NRGBA
	}{
		{"#ff4757", 1, color.NRGBA{0xff, 0x47, 0x57, 0xff}},
		{"#00ff88", 0.5, color.NRGBA{0x00, 0xff, 0x88, 0x80}},
		{"#0abde3", 2, color.NRGBA{0x0a, 0xbd, 0xe3, 0xff}},
		{"#0abde3", -1, color.NRGBA{0x0a, 0xbd, 0xe3, 0x00}},
		{"nope", 1, color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#fff", 1, color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		if got := parseHex(tt.hex, tt.alpha); got != tt.want {
			t.Errorf("parseHex(%q, %v) = %v, want %v", tt.hex, tt.alpha, got, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	src := fakeInput{
		just: map[ebiten.Key]bool{ebiten.KeyEnter: true, ebiten.KeyM: true},
		held: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyArrowUp: true},
	}
	in, mute := readInput(src)

	if !in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
		t.Errorf("actions = %v", in.Actions)
	}
	if !mute {
		t.Error("M should toggle mute")
	}
	if !in.Move.Left || !in.Move.Up || in.Move.Right || in.Move.Down {
		t.Errorf("move = %+v", in.Move)
	}
	if in.Aiming {
		t.Error("no pointer means no aim")
	}
}

func TestReadInputPointer(t *testing.T) {
	in, _ := readInput(fakeInput{pointer: &[2]int{320, 410}})
	if !in.Aiming || in.Aim != core.V(320, 410) {
		t.Errorf("aim = %+v aiming=%v", in.Aim, in.Aiming)
	}
}

func TestReadInputQuit(t *testing.T) {
	in, _ := readInput(fakeInput{just: map[ebiten.Key]bool{ebiten.KeyQ: true}})
	if !in.Has(core.ActionQuit) {
		t.Error("Q should quit")
	}
}

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 5, CanvasW: 800, CanvasH: 600}
	return New(stellar.New(), cfg, session.Services{})
}

func TestNewUsesDesktopCanvas(t *testing.T) {
	w := newTestWindow(t)
	b := w.game.Sim().Bounds()
	if b.Width != 800 || b.Height != 600 || b.Top != 100 {
		t.Errorf("bounds = %+v, want desktop profile on 800x600", b)
	}
	if w.game.Sim().Profile().Device != stellar.DeviceDesktop {
		t.Errorf("device = %q", w.game.Sim().Profile().Device)
	}
}

func TestUpdateDrivesGame(t *testing.T) {
	w := newTestWindow(t)
	w.input = fakeInput{just: map[ebiten.Key]bool{ebiten.KeyEnter: true}}
	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	if w.game.Sim().Phase() != stellar.PhasePlaying {
		t.Errorf("phase = %v, want playing", w.game.Sim().Phase())
	}

	w.input = fakeInput{just: map[ebiten.Key]bool{ebiten.KeyQ: true}}
	if err := w.Update(); err != ebiten.Termination {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestLayoutResizesCanvas(t *testing.T) {
	w := newTestWindow(t)
	if gw, gh := w.Layout(1024, 768); gw != 1024 || gh != 768 {
		t.Errorf("Layout = %dx%d", gw, gh)
	}
	b := w.game.Sim().Bounds()
	if b.Width != 1024 || b.Height != 768 {
		t.Errorf("bounds after layout = %+v", b)
	}
}
