// Package session wires a running game to the services around it: score
// storage, the save record, sound and logging. Both frontends use it.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stellar-defender/internal/audio"
	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/savedata"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

// Services carries what a session may use. Every field is optional.
type Services struct {
	Store  *storage.Store
	Save   *savedata.Manager
	Sound  *audio.SoundManager
	Logger *log.Logger
	Device string
}

// HighScorer is implemented by games that display a best score.
type HighScorer interface {
	HighScore() int
	SetHighScore(score int)
}

// Tracker follows frame results for one game mode.
type Tracker struct {
	gameID string
	svc    Services
	saved  bool
}

// NewTracker creates a tracker for gameID.
func NewTracker(gameID string, svc Services) *Tracker {
	if svc.Logger == nil {
		svc.Logger = log.New(io.Discard)
	}
	return &Tracker{gameID: gameID, svc: svc}
}

// Logger returns the session logger.
func (t *Tracker) Logger() *log.Logger {
	return t.svc.Logger
}

// SeedHighScore restores the best known score into g.
func (t *Tracker) SeedHighScore(g HighScorer) {
	if t.svc.Store != nil {
		best, err := t.svc.Store.HighScore(t.gameID)
		if err != nil {
			t.svc.Logger.Warn("could not read high score", "error", err)
		}
		g.SetHighScore(best)
	}
	if t.svc.Save != nil {
		g.SetHighScore(t.svc.Save.Record().HighScore)
	}
}

// Observe plays the frame's sounds and records the session once when it ends.
func (t *Tracker) Observe(result core.StepResult) {
	t.svc.Sound.HandleEvents(result.Events)

	if result.State.Phase == "playing" {
		t.saved = false
	}
	if _, over := core.FindEvent(result.Events, core.EventGameOver); over && !t.saved {
		t.record(result.State)
		t.saved = true
	}
}

// record persists a finished session. Failures are logged and play goes on.
func (t *Tracker) record(st core.GameState) {
	t.svc.Logger.Info("session over", "game", t.gameID, "score", st.Score, "wave", st.Wave)

	if t.svc.Store != nil && st.Score > 0 {
		if _, err := t.svc.Store.SaveScore(t.gameID, st.Score, st.Wave, t.svc.Device); err != nil {
			t.svc.Logger.Error("could not save score", "error", err)
		}
	}
	if t.svc.Save != nil {
		best, err := t.svc.Save.RecordSession(st.Score, st.Wave)
		if err != nil {
			t.svc.Logger.Error("could not update save data", "error", err)
		}
		if best {
			t.svc.Logger.Info("new high score", "score", st.Score)
		}
	}
}

// ToggleMute flips sound and remembers the choice. It reports the new state.
func (t *Tracker) ToggleMute() bool {
	if t.svc.Sound == nil {
		return true
	}
	muted := !t.svc.Sound.Muted()
	t.svc.Sound.SetMuted(muted)
	if t.svc.Save != nil {
		if err := t.svc.Save.SetMuted(muted); err != nil {
			t.svc.Logger.Warn("could not save mute setting", "error", err)
		}
	}
	return muted
}
