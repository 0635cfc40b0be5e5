package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/registry"
	"github.com/vovakirdan/stellar-defender/internal/session"
)

// Terminals only report key presses, so a direction counts as held until
// this long after its last press or auto-repeat.
const holdWindow = 180 * time.Millisecond

// helpRows is the space reserved under the play area for the help bar.
const helpRows = 1

// resizer is implemented by games that can adapt to a new terminal size
// without a reset.
type resizer interface {
	Resize(screenW, screenH int)
}

// Options configures a model. Every field is optional.
type Options struct {
	session.Services
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one Stellar Defender session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	tracker  *session.Tracker
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model

	input core.InputFrame
	held  *[dirCount]time.Time
	start time.Time
	now   func() time.Time

	state    core.GameState
	ticking  bool
	quitting bool
}

// NewModel creates a model and resets the game into its menu.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Device == "" {
		opts.Device = cfg.Device
	}

	cfg.ScreenH -= helpRows
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewScreenRenderer(opts.Renderer),
		tracker:  session.NewTracker(game.ID(), opts.Services),
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     h,
		input:    core.NewInputFrame(),
		held:     &[dirCount]time.Time{},
		start:    time.Now(),
		now:      time.Now,
	}

	m.logger = m.tracker.Logger()

	game.Reset(cfg)
	m.state = game.State()
	if hs, ok := game.(session.HighScorer); ok {
		m.tracker.SeedHighScore(hs)
	}
	return m
}

// Init sets the window title. Ticks start once the game leaves its menu.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.IsMute(msg) {
		muted := m.tracker.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)
		return m, nil
	}

	if d := m.keys.MapDirection(msg); d != DirNone {
		m.hold(d)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Set(action)
	return m.ensureTicking()
}

// hold marks a direction as held and releases its opposite.
func (m Model) hold(d Direction) {
	m.held[d] = m.now().Add(holdWindow)
	switch d {
	case DirUp:
		m.held[DirDown] = time.Time{}
	case DirDown:
		m.held[DirUp] = time.Time{}
	case DirLeft:
		m.held[DirRight] = time.Time{}
	case DirRight:
		m.held[DirLeft] = time.Time{}
	}
}

// directions reports which directions are still inside their hold window.
func (m Model) directions(at time.Time) core.Directions {
	on := func(d Direction) bool { return at.Before(m.held[d]) }
	return core.Directions{
		Up:    on(DirUp),
		Down:  on(DirDown),
		Left:  on(DirLeft),
		Right: on(DirRight),
	}
}

// handleMouse turns a held left button into continuous aim at the cell center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.input.Aiming = false
	case msg.Button == tea.MouseButtonLeft &&
		(msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion):
		m.input.Aiming = true
		m.input.Aim = cellCenter(msg.X, msg.Y)
	}
}

func cellCenter(x, y int) core.Vec2 {
	return core.V(
		float64(x*core.CellPixelsX)+core.CellPixelsX/2,
		float64(y*core.CellPixelsY)+core.CellPixelsY/2,
	)
}

// handleResize adapts the play area without restarting the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - helpRows
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
	}
	m.state = m.game.State()
	if m.state.Phase == "playing" {
		return m.ensureTicking()
	}
	return m, nil
}

// ensureTicking schedules the next tick unless one is already pending.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleTick runs one frame. Ticks stop while the game does not ask for
// frames and resume on the next action.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	in := m.input.Clone()
	in.Move = m.directions(t)
	in.Time = float64(t.Sub(m.start)) / float64(time.Millisecond)

	result := m.game.Step(in)
	m.input.Clear()
	m.handleResult(result)

	if !result.Continue {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// handleResult keeps the last state and hands the frame to the tracker.
func (m *Model) handleResult(result core.StepResult) {
	m.state = result.State
	m.tracker.Observe(result)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".stellar", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the play area and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.renderer.Faint(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
