package stellar

import (
	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Spawner paces enemy creation and advances the wave counter.
type Spawner struct {
	cfg        config.SpawnerConfig
	difficulty *config.DifficultyManager

	wave      int
	timer     float64 // ms since the last spawn
	waveTimer float64 // ms into the current wave
}

// NewSpawner creates a spawner at the configured start wave.
func NewSpawner(cfg config.StellarConfig) *Spawner {
	sp := &Spawner{
		cfg:        cfg.Spawner,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	sp.Reset()
	return sp
}

// Reset rewinds the spawner to the start wave.
func (sp *Spawner) Reset() {
	sp.wave = sp.difficulty.StartWave()
	sp.timer = 0
	sp.waveTimer = 0
}

// Wave returns the current wave number.
func (sp *Spawner) Wave() int { return sp.wave }

// Interval returns the current spawn interval in ms.
func (sp *Spawner) Interval() float64 {
	return sp.difficulty.SpawnInterval(sp.wave)
}

// Due accumulates dt and reports whether a spawn is due, resetting the timer.
func (sp *Spawner) Due(dt float64) bool {
	sp.timer += dt
	if sp.timer > sp.Interval() {
		sp.timer = 0
		return true
	}
	return false
}

// Choose maps a uniform draw to a variant.
func (sp *Spawner) Choose(draw float64) EnemyKind {
	switch {
	case sp.wave > sp.cfg.BossAfterWave && draw > sp.cfg.BossThreshold:
		return Boss
	case draw > sp.cfg.AlienThreshold:
		return AlienShip
	default:
		return Meteor
	}
}

// SpawnY returns the entry height above the canvas for a variant.
func (sp *Spawner) SpawnY(kind EnemyKind) float64 {
	if kind == Boss {
		return sp.cfg.BossSpawnY
	}
	return sp.cfg.SpawnY
}

// Spawn creates one enemy at a random x above the canvas.
func (sp *Spawner) Spawn(width float64, cfg *config.EnemiesConfig, rng *core.RNG) *Enemy {
	draw := rng.Float64()
	x := rng.Float64() * width
	kind := sp.Choose(draw)
	return newEnemy(kind, core.V(x, sp.SpawnY(kind)), cfg, rng)
}

// AdvanceWave accumulates play time and reports whether the wave went up.
// Waves are uncapped; a disabled difficulty freezes the counter.
func (sp *Spawner) AdvanceWave(dt float64) bool {
	if !sp.difficulty.IsEnabled() {
		return false
	}
	sp.waveTimer += dt
	if sp.waveTimer > sp.difficulty.WaveDuration() {
		sp.wave++
		sp.waveTimer = 0
		return true
	}
	return false
}
