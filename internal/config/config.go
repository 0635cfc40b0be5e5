// Package config provides YAML-based game configuration loading and
// difficulty management for Stellar Defender.
package config

import (
	"errors"
	"fmt"
)

// StellarConfig contains all tunable parameters of the simulation.
type StellarConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius"`
	MaxHealth      float64 `yaml:"max_health"`
	Speed          float64 `yaml:"speed"`            // px/s
	FireIntervalMS float64 `yaml:"fire_interval_ms"` // minimum time between volleys
	Damage         float64 `yaml:"damage"`
	ShotSpeed      float64 `yaml:"shot_speed"`    // px/s, travels upward
	MuzzleOffset   float64 `yaml:"muzzle_offset"` // shots spawn this far above the craft
	InvincibleMS   float64 `yaml:"invincible_ms"`
	SpawnOffset    float64 `yaml:"spawn_offset"`    // distance above the play-area bottom
	ArriveDistance float64 `yaml:"arrive_distance"` // aim-follow stops within this radius
}

// PowerUpConfig defines pickups and the buffs they grant.
type PowerUpConfig struct {
	Radius           float64 `yaml:"radius"`
	FallSpeed        float64 `yaml:"fall_speed"`
	PulseRate        float64 `yaml:"pulse_rate"` // rad/s
	DropChance       float64 `yaml:"drop_chance"`
	DurationMS       float64 `yaml:"duration_ms"`
	ShieldDurationMS float64 `yaml:"shield_duration_ms"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	MultiShotOffset  float64 `yaml:"multishot_offset"`
	SpreadVelocity   float64 `yaml:"spread_velocity"`
}

// EnemyConfig defines the shared base record of an enemy variant.
// Min/Max pairs are sampled uniformly; equal values mean a fixed stat.
type EnemyConfig struct {
	RadiusMin      float64 `yaml:"radius_min"`
	RadiusMax      float64 `yaml:"radius_max"`
	SpeedMin       float64 `yaml:"speed_min"`
	SpeedMax       float64 `yaml:"speed_max"`
	Health         float64 `yaml:"health"`
	Points         int     `yaml:"points"`
	Damage         float64 `yaml:"damage"`
	FireIntervalMS float64 `yaml:"fire_interval_ms"`
}

// AlienConfig adds the zigzag motion law.
type AlienConfig struct {
	EnemyConfig `yaml:",inline"`
	ZigzagRate  float64 `yaml:"zigzag_rate"`      // rad/s
	ZigzagDrift float64 `yaml:"zigzag_amplitude"` // px/s at the sine peak
}

// BossConfig adds the phase cycle and volley shapes.
type BossConfig struct {
	EnemyConfig  `yaml:",inline"`
	PhaseMS      float64 `yaml:"phase_ms"`
	SineDrift    float64 `yaml:"sine_drift"`
	CosineDrift  float64 `yaml:"cosine_drift"`
	EnragedSpeed float64 `yaml:"enraged_speed"`
	FanShots     int     `yaml:"fan_shots"`
	FanStepDeg   float64 `yaml:"fan_step_deg"`
	FanSpeed     float64 `yaml:"fan_speed"`
	SprayShots   int     `yaml:"spray_shots"`
	SprayMaxVX   float64 `yaml:"spray_max_vx"`
}

// EnemiesConfig groups the three variants and their shared projectile rules.
type EnemiesConfig struct {
	Meteor     EnemyConfig `yaml:"meteor"`
	Alien      AlienConfig `yaml:"alien"`
	Boss       BossConfig  `yaml:"boss"`
	ShotSpeed  float64     `yaml:"shot_speed"`  // px/s, travels downward
	FireChance float64     `yaml:"fire_chance"` // per-frame gate once the cooldown allows
}

// SpawnerConfig defines which variant a spawn draw produces.
type SpawnerConfig struct {
	BossThreshold  float64 `yaml:"boss_threshold"`  // draw above this spawns a boss
	AlienThreshold float64 `yaml:"alien_threshold"` // draw above this spawns an alien
	BossAfterWave  int     `yaml:"boss_after_wave"` // bosses only once wave exceeds this
	SpawnY         float64 `yaml:"spawn_y"`
	BossSpawnY     float64 `yaml:"boss_spawn_y"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	KillAward   int     `yaml:"kill_award"`
	ScreenSlack float64 `yaml:"screen_slack"` // off-canvas margin before culling
}

// TimingConfig defines frame delta sanitizing.
type TimingConfig struct {
	NominalDeltaMS float64 `yaml:"nominal_delta_ms"`
	MaxDeltaMS     float64 `yaml:"max_delta_ms"`
}

// DifficultyConfig defines wave progression and spawn pacing.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"` // false freezes the wave counter
	StartWave       int     `yaml:"start_wave"`
	WaveDurationMS  float64 `yaml:"wave_duration_ms"`
	IntervalBaseMS  float64 `yaml:"interval_base_ms"`
	IntervalStepMS  float64 `yaml:"interval_step_ms"`
	IntervalFloorMS float64 `yaml:"interval_floor_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI name to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

var errInvalid = errors.New("invalid value")

// Validate reports the first parameter that would break the simulation.
func (c StellarConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player.radius", c.Player.Radius > 0},
		{"player.max_health", c.Player.MaxHealth > 0},
		{"player.speed", c.Player.Speed >= 0},
		{"player.fire_interval_ms", c.Player.FireIntervalMS > 0},
		{"powerups.drop_chance", c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 1},
		{"enemies.fire_chance", c.Enemies.FireChance >= 0 && c.Enemies.FireChance <= 1},
		{"enemies.meteor.radius_max", c.Enemies.Meteor.RadiusMax >= c.Enemies.Meteor.RadiusMin},
		{"enemies.meteor.speed_max", c.Enemies.Meteor.SpeedMax >= c.Enemies.Meteor.SpeedMin},
		{"enemies.alien.radius_max", c.Enemies.Alien.RadiusMax >= c.Enemies.Alien.RadiusMin},
		{"enemies.boss.radius_max", c.Enemies.Boss.RadiusMax >= c.Enemies.Boss.RadiusMin},
		{"enemies.boss.fan_shots", c.Enemies.Boss.FanShots >= 0},
		{"enemies.boss.spray_shots", c.Enemies.Boss.SprayShots >= 0},
		{"enemies.boss.fan_speed", c.Enemies.Boss.FanSpeed >= 0},
		{"enemies.boss.phase_ms", c.Enemies.Boss.PhaseMS > 0},
		{"gameplay.lives", c.Gameplay.Lives > 0},
		{"gameplay.kill_award", c.Gameplay.KillAward >= 0},
		{"timing.nominal_delta_ms", c.Timing.NominalDeltaMS > 0},
		{"timing.max_delta_ms", c.Timing.MaxDeltaMS >= c.Timing.NominalDeltaMS},
		{"difficulty.start_wave", c.Difficulty.StartWave >= 1},
		{"difficulty.wave_duration_ms", c.Difficulty.WaveDurationMS > 0},
		{"difficulty.interval_floor_ms", c.Difficulty.IntervalFloorMS > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.name, errInvalid)
		}
	}
	return nil
}
