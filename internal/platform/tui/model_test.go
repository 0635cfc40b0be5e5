package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/savedata"
	"github.com/vovakirdan/stellar-defender/internal/session"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

// scriptedGame replays queued step results and records what it was given.
type scriptedGame struct {
	results []core.StepResult
	inputs  []core.InputFrame
	resets  int
	resized [2]int
	high    int
	state   core.GameState
}

func (g *scriptedGame) ID() string    { return "stellar" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: "menu"}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "phase "+g.state.Phase)
}

func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Resize(w, h int)       { g.resized = [2]int{w, h} }
func (g *scriptedGame) HighScore() int        { return g.high }

func (g *scriptedGame) SetHighScore(score int) {
	if score > g.high {
		g.high = score
	}
}

func playing(score int) core.StepResult {
	return core.StepResult{
		State:    core.GameState{Phase: "playing", Score: score, Lives: 3, Wave: 1},
		Continue: true,
	}
}

func newTestModel(t *testing.T, g *scriptedGame, opts Options) Model {
	t.Helper()
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(io.Discard)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1, Device: "terminal"}
	return NewModel(g, cfg, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.State().Phase != "menu" {
		t.Errorf("phase = %q, want menu", m.State().Phase)
	}
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, one row should go to the help bar", m.screen.Height())
	}
}

func TestActionStartsTicking(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{playing(0), playing(3)}}
	m := newTestModel(t, g, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.ticking {
		t.Fatal("an action should schedule a tick")
	}

	// A second action while a tick is pending must not schedule another
	m, cmd = update(t, m, runeKey('p'))
	if cmd != nil {
		t.Error("tick already pending")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("playing frames should keep ticking")
	}
	in := g.inputs[0]
	if !in.Has(core.ActionConfirm) || !in.Has(core.ActionPause) {
		t.Errorf("first frame actions = %v", in.Actions)
	}
	if in.Time <= 0 {
		t.Error("frames should carry a timestamp")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if len(g.inputs[1].Actions) != 0 {
		t.Error("actions should be cleared after one frame")
	}
	if m.State().Score != 3 {
		t.Errorf("score = %d, want 3", m.State().Score)
	}
}

func TestTicksStopWhenGameIdles(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Phase: "paused", Paused: true}},
	}}
	m := newTestModel(t, g, Options{})
	m, _ = update(t, m, runeKey('p'))

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd != nil || m.ticking {
		t.Error("ticks should stop once the game stops asking for frames")
	}

	_, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Error("the next action should restart ticks")
	}
}

func TestHeldDirections(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('w'))

	d := m.directions(base.Add(100 * time.Millisecond))
	if !d.Left || !d.Up || d.Right || d.Down {
		t.Errorf("directions inside window = %+v", d)
	}
	if d := m.directions(base.Add(holdWindow)); d.Any() {
		t.Errorf("directions after window = %+v, want none", d)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	d = m.directions(base.Add(10 * time.Millisecond))
	if d.Left || !d.Right {
		t.Errorf("pressing right should release left: %+v", d)
	}
}

func TestMouseAim(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 19, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.input.Aiming || m.input.Aim != core.V(405, 390) {
		t.Errorf("aim = %+v aiming=%v, want cell center (405, 390)", m.input.Aim, m.input.Aiming)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if m.input.Aim != core.V(105, 110) {
		t.Errorf("drag aim = %+v", m.input.Aim)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.input.Aiming {
		t.Error("release should stop aiming")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 29} {
		t.Errorf("resized to %v, want [100 29]", g.resized)
	}
	if g.resets != 1 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	save, _ := savedata.New(nil)

	over := core.StepResult{
		State:  core.GameState{Phase: "gameover", Score: 27, Wave: 3, GameOver: true},
		Events: []core.Event{{Kind: core.EventGameOver}},
	}
	empty := over
	empty.State.Score = 0
	g := &scriptedGame{results: []core.StepResult{playing(27), over, over, playing(0), empty}}
	m := newTestModel(t, g, Options{Services: session.Services{Store: store, Save: save}})

	for range 5 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	scores, err := store.TopScores("stellar", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1 (zero scores are skipped)", len(scores))
	}
	if scores[0].Score != 27 || scores[0].Wave != 3 || scores[0].Device != "terminal" {
		t.Errorf("saved entry = %+v", scores[0])
	}
	if rec := save.Record(); rec.HighScore != 27 || rec.BestWave != 3 {
		t.Errorf("save record = %+v", rec)
	}
}

func TestHighScoreSeeded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stellar", 40, 2, "terminal")

	save, _ := savedata.New(nil)
	save.RecordSession(90, 4)

	g := &scriptedGame{}
	newTestModel(t, g, Options{Services: session.Services{Store: store, Save: save}})
	if g.high != 90 {
		t.Errorf("high score = %d, want the best of database and save data", g.high)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, Options{})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, Options{})
	out := m.View()
	if !strings.HasPrefix(out, "phase menu") {
		t.Errorf("view should start with the game screen, got %q", out[:20])
	}
	if !strings.Contains(out, "restart") {
		t.Error("view should end with the help bar")
	}
	if lines := strings.Count(out, "\n"); lines != 23 {
		t.Errorf("view has %d line breaks, want 23", lines)
	}
}
