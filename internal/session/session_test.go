package session

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/stellar-defender/internal/audio"
	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/savedata"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

type best struct{ score int }

func (b *best) HighScore() int { return b.score }

func (b *best) SetHighScore(score int) {
	if score > b.score {
		b.score = score
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(phase string, score, wave int, over bool) core.StepResult {
	r := core.StepResult{State: core.GameState{Phase: phase, Score: score, Wave: wave, GameOver: over}}
	if over {
		r.Events = append(r.Events, core.Event{Kind: core.EventGameOver})
	}
	return r
}

func TestObserveRecordsOncePerSession(t *testing.T) {
	store := openStore(t)
	save, _ := savedata.New(nil)
	tr := NewTracker("stellar", Services{Store: store, Save: save, Device: "desktop"})

	frames := []core.StepResult{
		result("playing", 12, 2, false),
		result("gameover", 12, 2, true),
		result("gameover", 12, 2, true), // replayed event, no second save
		result("playing", 0, 1, false),
		result("gameover", 0, 1, true), // zero scores stay out of the table
		result("playing", 0, 1, false),
		result("gameover", 30, 5, true),
	}
	for _, f := range frames {
		tr.Observe(f)
	}

	scores, err := store.TopScores("stellar", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2: %+v", len(scores), scores)
	}
	if scores[0].Score != 30 || scores[0].Wave != 5 || scores[0].Device != "desktop" {
		t.Errorf("top entry = %+v", scores[0])
	}
	if rec := save.Record(); rec.HighScore != 30 || rec.BestWave != 5 {
		t.Errorf("save record = %+v", rec)
	}
}

func TestSeedHighScore(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		saved     int
		withStore bool
		want      int
	}{
		{"no services", 0, 0, false, 0},
		{"database wins", 70, 20, true, 70},
		{"save data wins", 15, 90, true, 90},
		{"save data only", 0, 40, false, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := Services{}
			if tt.withStore {
				svc.Store = openStore(t)
				svc.Store.SaveScore("stellar", tt.stored, 1, "terminal")
			}
			if tt.saved > 0 {
				svc.Save, _ = savedata.New(nil)
				svc.Save.RecordSession(tt.saved, 1)
			}

			b := &best{}
			NewTracker("stellar", svc).SeedHighScore(b)
			if b.score != tt.want {
				t.Errorf("high score = %d, want %d", b.score, tt.want)
			}
		})
	}
}

func TestToggleMute(t *testing.T) {
	save, _ := savedata.New(nil)
	tr := NewTracker("stellar", Services{Sound: audio.NewSoundManager(false), Save: save})

	if !tr.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if !save.Record().Muted {
		t.Error("mute choice should reach the save record")
	}
	if tr.ToggleMute() {
		t.Error("second toggle should unmute")
	}

	if !NewTracker("stellar", Services{}).ToggleMute() {
		t.Error("without sound the session reports muted")
	}
}

func TestObserveWithoutServices(t *testing.T) {
	tr := NewTracker("stellar", Services{})
	tr.Observe(core.StepResult{Events: []core.Event{
		{Kind: core.EventSound, Name: core.SoundShoot},
		{Kind: core.EventGameOver},
	}})
	if tr.Logger() == nil {
		t.Error("tracker should always have a logger")
	}
}
