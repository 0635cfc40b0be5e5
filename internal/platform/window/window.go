// Package window is the desktop frontend: an ebiten window drawing the
// simulation in canvas pixels with keyboard, mouse and touch input.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/session"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Window implements ebiten.Game around one Stellar Defender game.
type Window struct {
	game    *stellar.Game
	tracker *session.Tracker
	input   inputSource
	start   time.Time

	width, height int
}

// New resets game onto a pixel canvas of cfg.CanvasW x cfg.CanvasH.
func New(game *stellar.Game, cfg core.RuntimeConfig, svc session.Services) *Window {
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		cfg.CanvasW, cfg.CanvasH = DefaultWidth, DefaultHeight
	}
	if cfg.Device == "" || cfg.Device == stellar.DeviceTerminal {
		cfg.Device = stellar.DeviceDesktop
	}
	if svc.Device == "" {
		svc.Device = cfg.Device
	}

	w := &Window{
		game:    game,
		tracker: session.NewTracker(game.ID(), svc),
		input:   ebitenInput{},
		start:   time.Now(),
		width:   int(cfg.CanvasW),
		height:  int(cfg.CanvasH),
	}
	game.Reset(cfg)
	w.tracker.SeedHighScore(game)
	return w
}

// Update runs one frame.
func (w *Window) Update() error {
	in, mute := readInput(w.input)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if mute {
		muted := w.tracker.ToggleMute()
		w.tracker.Logger().Debug("sound toggled", "muted", muted)
	}

	in.Time = float64(time.Since(w.start)) / float64(time.Millisecond)
	w.tracker.Observe(w.game.Step(in))
	return nil
}

// Draw renders the scene, HUD and overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	sim := w.game.Sim()

	if sim.Phase() == stellar.PhaseMenu {
		for _, item := range sim.Scene() {
			if item.Kind == stellar.ItemStar {
				drawItem(screen, item)
			}
		}
		drawPanel(screen, w.game.MenuLines())
		return
	}

	for _, item := range sim.Scene() {
		drawItem(screen, item)
	}
	drawHUD(screen, w.game)
	drawPanel(screen, w.game.OverlayLines())
}

// Layout follows the window size so the canvas is always 1:1 with pixels.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.ResizeCanvas(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *stellar.Game, cfg core.RuntimeConfig, svc session.Services) error {
	w := New(game, cfg, svc)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(w)
}
