package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

// drain streams s to the end and returns every sample produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 1000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestGeneratorsStayInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"chirp", NewChirpGenerator(rate, 800, 400, 100*time.Millisecond), rate.N(100 * time.Millisecond)},
		{"noise", NewNoiseGenerator(rate, 250*time.Millisecond), rate.N(250 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := drain(t, tt.s)
			if len(out) != tt.want {
				t.Errorf("samples = %d, want %d", len(out), tt.want)
			}
			for i, s := range out {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v", i, s)
				}
			}
		})
	}
}

func TestChirpFadesOut(t *testing.T) {
	rate := beep.SampleRate(48000)
	out := drain(t, NewChirpGenerator(rate, 800, 400, 100*time.Millisecond))

	head, tail := 0.0, 0.0
	for i := range 100 {
		head += abs(out[i][0])
		tail += abs(out[len(out)-1-i][0])
	}
	if tail >= head {
		t.Errorf("tail energy %v should be below head energy %v", tail, head)
	}
}

func TestStreamerFor(t *testing.T) {
	if streamerFor(core.SoundShoot) == nil {
		t.Error("shoot should have a sound")
	}
	if streamerFor(core.SoundExplosion) == nil {
		t.Error("explosion should have a sound")
	}
	if streamerFor("fanfare") != nil {
		t.Error("unknown names should have no sound")
	}
}

func TestPlayWithoutSpeakerIsNoop(t *testing.T) {
	sm := NewSoundManager(false)
	sm.Play(core.SoundShoot)
	sm.HandleEvents([]core.Event{{Kind: core.EventSound, Name: core.SoundShoot}})
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize", sm.mixer.Len())
	}
	sm.Cleanup()

	var none *SoundManager
	none.HandleEvents([]core.Event{{Kind: core.EventSound, Name: core.SoundExplosion}})
}

func TestSetMuted(t *testing.T) {
	sm := NewSoundManager(true)
	if !sm.Muted() {
		t.Error("manager should start muted")
	}
	sm.SetMuted(false)
	if sm.Muted() {
		t.Error("SetMuted(false) should unmute")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
