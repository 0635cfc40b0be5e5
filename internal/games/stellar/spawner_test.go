package stellar

import (
	"testing"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

func TestSpawnerChoose(t *testing.T) {
	tests := []struct {
		name string
		wave int
		draw float64
		want EnemyKind
	}{
		{"low draw", 1, 0.1, Meteor},
		{"threshold is exclusive", 1, 0.5, Meteor},
		{"alien", 1, 0.51, AlienShip},
		{"no boss before wave 4", 3, 0.99, AlienShip},
		{"boss", 4, 0.96, Boss},
		{"boss threshold is exclusive", 4, 0.95, AlienShip},
		{"late meteor", 20, 0.2, Meteor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSpawner(config.DefaultStellarConfig())
			sp.wave = tt.wave
			if got := sp.Choose(tt.draw); got != tt.want {
				t.Errorf("Choose(%v) at wave %d = %v, want %v", tt.draw, tt.wave, got, tt.want)
			}
		})
	}
}

func TestSpawnerInterval(t *testing.T) {
	tests := []struct {
		wave int
		want float64
	}{
		{1, 1150},
		{10, 700},
		{16, 400},
		{40, 400},
	}

	sp := NewSpawner(config.DefaultStellarConfig())
	for _, tt := range tests {
		sp.wave = tt.wave
		if got := sp.Interval(); got != tt.want {
			t.Errorf("Interval() at wave %d = %v, want %v", tt.wave, got, tt.want)
		}
	}
}

func TestSpawnerDue(t *testing.T) {
	sp := NewSpawner(config.DefaultStellarConfig())

	if sp.Due(1150) {
		t.Error("spawn should not be due exactly at the interval")
	}
	if !sp.Due(1) {
		t.Error("spawn should be due once the interval is exceeded")
	}
	if sp.Due(100) {
		t.Error("timer should reset after a spawn")
	}
}

func TestSpawnerSpawnAboveCanvas(t *testing.T) {
	cfg := config.DefaultStellarConfig()
	sp := NewSpawner(cfg)
	sp.wave = 10
	rng := core.NewRNG(99)

	sawBoss := false
	for range 500 {
		e := sp.Spawn(800, &cfg.Enemies, rng)
		if e.Pos().X < 0 || e.Pos().X >= 800 {
			t.Fatalf("spawn x %v outside canvas", e.Pos().X)
		}
		want := -50.0
		if e.Kind == Boss {
			want = -100
			sawBoss = true
		}
		if e.Pos().Y != want {
			t.Fatalf("%v spawned at y=%v, want %v", e.Kind, e.Pos().Y, want)
		}
	}
	if !sawBoss {
		t.Error("expected at least one boss in 500 spawns at wave 10")
	}
}

func TestSpawnerAdvanceWave(t *testing.T) {
	sp := NewSpawner(config.DefaultStellarConfig())

	if sp.AdvanceWave(30000) {
		t.Error("wave should not advance exactly at 30s")
	}
	if !sp.AdvanceWave(1) || sp.Wave() != 2 {
		t.Errorf("wave = %d, want 2 after 30s", sp.Wave())
	}

	sp.Reset()
	if sp.Wave() != 1 {
		t.Errorf("Reset wave = %d, want 1", sp.Wave())
	}
}

func TestSpawnerDisabledDifficultyFreezesWave(t *testing.T) {
	cfg := config.DefaultStellarConfig()
	config.ApplyStellarPreset(&cfg, config.DifficultyFixed)
	sp := NewSpawner(cfg)

	for range 10 {
		if sp.AdvanceWave(60000) {
			t.Fatal("wave should never advance with difficulty disabled")
		}
	}
	if sp.Wave() != 1 {
		t.Errorf("wave = %d, want 1", sp.Wave())
	}
}

func TestSpawnerStartWavePreset(t *testing.T) {
	cfg := config.DefaultStellarConfig()
	config.ApplyStellarPreset(&cfg, config.DifficultyHard)
	sp := NewSpawner(cfg)
	if sp.Wave() != 4 {
		t.Errorf("hard preset start wave = %d, want 4", sp.Wave())
	}
}
