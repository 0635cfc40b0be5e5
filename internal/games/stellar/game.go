// Package stellar implements the Stellar Defender simulation: a wave
// shooter with a player craft, three enemy variants, timed power-ups and
// a menu/playing/paused/gameover lifecycle.
package stellar

import (
	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/registry"
)

// GameMode selects the wave rules.
type GameMode int

const (
	ModeWaves    GameMode = iota // waves advance every 30s
	ModePractice                 // wave counter frozen at the start wave
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Minimum terminal size in cells.
const (
	minScreenW = 40
	minScreenH = 16
)

// Game adapts the simulation to the registry.Game interface.
type Game struct {
	mode GameMode
	sim  *Sim

	runtime   core.RuntimeConfig
	cfg       config.StellarConfig
	cfgErr    error
	highScore int
	clock     float64 // synthetic ms clock for frames without a timestamp

	screenTooSmall bool
}

// New creates a Stellar Defender game with wave progression.
func New() *Game {
	return &Game{mode: ModeWaves}
}

// NewPractice creates a game whose wave counter never advances.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "stellar_practice"
	}
	return "stellar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Stellar Defender (Practice)"
	}
	return "Stellar Defender"
}

// Reset loads config and builds a fresh simulation in the menu phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := config.LoadStellar(configPath)
	g.cfgErr = err

	if difficultyPreset != "" {
		config.ApplyStellarPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModePractice {
		config.ApplyStellarPreset(&cfg, config.DifficultyFixed)
	}
	g.cfg = cfg

	g.screenTooSmall = runtime.CanvasW == 0 && (runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH)

	w, h := runtime.CanvasSize()
	g.sim = NewSim(cfg, ProfileFor(runtime.Device, runtime.Touch), w, h, runtime.Seed)
	g.clock = 0
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when it is set.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Resize adapts the play area to a new terminal size without a reset.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = g.runtime.CanvasW == 0 && (screenW < minScreenW || screenH < minScreenH)
	g.sim.Resize(g.runtime.CanvasSize())
}

// ResizeCanvas adapts the play area to a new pixel canvas size.
func (g *Game) ResizeCanvas(w, h float64) {
	g.runtime.CanvasW = w
	g.runtime.CanvasH = h
	g.sim.Resize(w, h)
}

// Sim returns the underlying simulation.
func (g *Game) Sim() *Sim { return g.sim }

// Config returns the active configuration.
func (g *Game) Config() config.StellarConfig { return g.cfg }

// HighScore returns the best score seen, including restored values.
func (g *Game) HighScore() int { return g.highScore }

// SetHighScore seeds the best score from persisted data.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Step applies lifecycle actions, then runs one frame.
// Frames without a timestamp advance a synthetic clock at the tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.sim.State()}
	}

	g.applyActions(in)

	if in.Time <= 0 {
		g.clock += 1000 / float64(g.runtime.TickRate)
		in.Time = g.clock
	}
	result := g.sim.Frame(in)

	if result.State.GameOver || g.sim.Phase() == PhaseMenu {
		g.SetHighScore(result.State.Score)
	}
	return result
}

// applyActions maps one-shot actions to state transitions. Actions that
// do not apply to the current phase fail with ErrInvalidTransition and are
// ignored.
func (g *Game) applyActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		_ = g.sim.Restart()
	case in.Has(core.ActionBack):
		g.SetHighScore(g.sim.Score())
		_ = g.sim.Stop()
	case in.Has(core.ActionConfirm):
		if g.sim.Phase() == PhasePaused {
			_ = g.sim.Resume()
		} else {
			_ = g.sim.Start()
		}
	case in.Has(core.ActionPause):
		if g.sim.Phase() == PhasePaused {
			_ = g.sim.Resume()
		} else {
			_ = g.sim.Pause()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sim.State()
}

// Register the games with the registry
func init() {
	registry.Register("stellar", func() registry.Game {
		return New()
	})
	registry.Register("stellar_practice", func() registry.Game {
		return NewPractice()
	})
}
