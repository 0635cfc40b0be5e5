package config

import "math"

// DifficultyManager derives wave pacing from the difficulty config.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables wave progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the wave counter advances.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartWave returns the wave a fresh session begins at (at least 1).
func (d *DifficultyManager) StartWave() int {
	if d.cfg.StartWave < 1 {
		return 1
	}
	return d.cfg.StartWave
}

// WaveDuration returns the play time in ms that advances one wave.
func (d *DifficultyManager) WaveDuration() float64 {
	return d.cfg.WaveDurationMS
}

// SpawnInterval returns the delay between spawns at the given wave:
// max(base - step*wave, floor).
func (d *DifficultyManager) SpawnInterval(wave int) float64 {
	return math.Max(d.cfg.IntervalBaseMS-d.cfg.IntervalStepMS*float64(wave), d.cfg.IntervalFloorMS)
}

// FloorWave returns the first wave at which the spawn interval bottoms out.
func (d *DifficultyManager) FloorWave() int {
	if d.cfg.IntervalStepMS <= 0 {
		return 0
	}
	return int(math.Ceil((d.cfg.IntervalBaseMS - d.cfg.IntervalFloorMS) / d.cfg.IntervalStepMS))
}
