package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

func TestScoreboardCyclesModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stellar", 120, 4, "desktop")
	store.SaveScore("stellar", 80, 2, "terminal")
	store.SaveScore("stellar_practice", 15, 1, "terminal")

	m := NewScoreboardModel(store, 100, 30)
	if got := len(m.Scores()); got != 2 {
		t.Fatalf("first mode shows %d scores, want 2", got)
	}
	if m.Scores()[0].Score != 120 {
		t.Errorf("top score = %d, want 120", m.Scores()[0].Score)
	}
	if !strings.Contains(m.View(), "120") {
		t.Error("table should show the top score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Scores()); got != 1 || m.Scores()[0].Score != 15 {
		t.Errorf("practice scores = %+v", m.Scores())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.Scores()) != 2 {
		t.Error("shift+tab should return to the first mode")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.Scores()) != 0 {
		t.Error("no store means no scores")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardExit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should leave the scoreboard")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestTabLabel(t *testing.T) {
	if tabLabel("stellar") != "waves" || tabLabel("stellar_practice") != "practice" {
		t.Error("unexpected tab labels")
	}
}

func TestScoreboardDeviceFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stellar", 300, 6, "desktop")
	store.SaveScore("stellar", 200, 4, "terminal")
	store.SaveScore("stellar", 100, 2, "desktop")

	m := NewScoreboardModel(store, 100, 30)
	press := func(r rune) {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(ScoreboardModel)
	}

	tests := []struct {
		device string
		want   []int
	}{
		{"terminal", []int{200}},
		{"desktop", []int{300, 100}},
		{"tablet", nil},
		{"mobile", nil},
		{"", []int{300, 200, 100}},
	}
	for _, tt := range tests {
		press('d')
		got := make([]int, 0, len(m.Scores()))
		for _, s := range m.Scores() {
			got = append(got, s.Score)
		}
		if len(got) != len(tt.want) {
			t.Errorf("filter %q: scores = %v, want %v", tt.device, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("filter %q: scores = %v, want %v", tt.device, got, tt.want)
				break
			}
		}
	}

	press('d') // terminal
	press('d') // desktop
	press('d') // tablet
	if !strings.Contains(m.View(), "No runs on tablet yet.") {
		t.Error("an empty filter should name the device")
	}
}

func TestScoreboardStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("stellar", 40, 3, "terminal")
	store.SaveScore("stellar", 20, 9, "terminal")

	wide := NewScoreboardModel(store, 120, 30)
	if !strings.Contains(wide.View(), "Mode stats") || !strings.Contains(wide.View(), "wave 9") {
		t.Error("wide layout should show the stats panel")
	}

	narrow := NewScoreboardModel(store, 60, 30)
	if !strings.Contains(narrow.View(), "2 games") {
		t.Error("narrow layout should show the stats line")
	}
}
