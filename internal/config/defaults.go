package config

import (
	_ "embed"
)

//go:embed defaults/stellar.yaml
var defaultStellarYAML []byte

// DefaultStellarConfig returns the hardcoded Stellar Defender configuration.
// It mirrors defaults/stellar.yaml and backs every partial override.
func DefaultStellarConfig() StellarConfig {
	return StellarConfig{
		Player: PlayerConfig{
			Radius:         25,
			MaxHealth:      100,
			Speed:          350,
			FireIntervalMS: 200,
			Damage:         25,
			ShotSpeed:      500,
			MuzzleOffset:   20,
			InvincibleMS:   3000,
			SpawnOffset:    100,
			ArriveDistance: 5,
		},
		PowerUps: PowerUpConfig{
			Radius:           12,
			FallSpeed:        100,
			PulseRate:        5,
			DropChance:       0.15,
			DurationMS:       10000,
			ShieldDurationMS: 15000,
			SpeedMultiplier:  1.5,
			DamageMultiplier: 1.5,
			MultiShotOffset:  10,
			SpreadVelocity:   100,
		},
		Enemies: EnemiesConfig{
			ShotSpeed:  300,
			FireChance: 0.02,
			Meteor: EnemyConfig{
				RadiusMin:      20,
				RadiusMax:      30,
				SpeedMin:       100,
				SpeedMax:       200,
				Health:         50,
				Points:         50,
				Damage:         25,
				FireIntervalMS: 1000,
			},
			Alien: AlienConfig{
				EnemyConfig: EnemyConfig{
					RadiusMin:      18,
					RadiusMax:      18,
					SpeedMin:       120,
					SpeedMax:       120,
					Health:         75,
					Points:         100,
					Damage:         25,
					FireIntervalMS: 1200,
				},
				ZigzagRate:  2,
				ZigzagDrift: 60,
			},
			Boss: BossConfig{
				EnemyConfig: EnemyConfig{
					RadiusMin:      40,
					RadiusMax:      40,
					SpeedMin:       80,
					SpeedMax:       80,
					Health:         500,
					Points:         1000,
					Damage:         25,
					FireIntervalMS: 400,
				},
				PhaseMS:      5000,
				SineDrift:    100,
				CosineDrift:  80,
				EnragedSpeed: 150,
				FanShots:     5,
				FanStepDeg:   22.5,
				FanSpeed:     200,
				SprayShots:   3,
				SprayMaxVX:   200,
			},
		},
		Spawner: SpawnerConfig{
			BossThreshold:  0.95,
			AlienThreshold: 0.5,
			BossAfterWave:  3,
			SpawnY:         -50,
			BossSpawnY:     -100,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			KillAward:   3,
			ScreenSlack: 50,
		},
		Timing: TimingConfig{
			NominalDeltaMS: 16.67,
			MaxDeltaMS:     50,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StartWave:       1,
			WaveDurationMS:  30000,
			IntervalBaseMS:  1200,
			IntervalStepMS:  50,
			IntervalFloorMS: 400,
		},
	}
}
