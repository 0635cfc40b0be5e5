package stellar

import "math"

// Snapshot is a flat summary of the simulation for determinism checks.
// Floats are stored as their IEEE-754 bits so equal states compare equal.
type Snapshot struct {
	Frames  uint64
	Phase   string
	Score   int
	Lives   int
	Wave    int
	Elapsed uint64

	PlayerX      uint64
	PlayerY      uint64
	PlayerHealth uint64
	Buffs        [powerUpKindCount]uint64

	// Each enemy is 5 values: Kind, X, Y, Health, Phase
	EnemyCount int
	EnemyData  []uint64

	// Each projectile is 3 values: X, Y, Friendly
	ProjectileCount int
	ProjectileData  []uint64

	PowerUpCount  int
	ParticleCount int
	TextCount     int

	RNGState uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Sim) Snapshot() Snapshot {
	enemyData := make([]uint64, 0, len(s.enemies)*5)
	for _, e := range s.enemies {
		enemyData = append(enemyData,
			uint64(e.Kind), //#nosec G115 -- kind is a small enum
			math.Float64bits(e.pos.X),
			math.Float64bits(e.pos.Y),
			math.Float64bits(e.health),
			uint64(e.phase), //#nosec G115 -- phase is 0..2
		)
	}

	shotData := make([]uint64, 0, len(s.projectiles)*3)
	for _, p := range s.projectiles {
		var friendly uint64
		if p.Friendly {
			friendly = 1
		}
		shotData = append(shotData, math.Float64bits(p.pos.X), math.Float64bits(p.pos.Y), friendly)
	}

	var buffs [powerUpKindCount]uint64
	for k, ms := range s.player.buffs {
		buffs[k] = math.Float64bits(ms)
	}

	return Snapshot{
		Frames:  s.frames,
		Phase:   s.phase.String(),
		Score:   s.score,
		Lives:   s.lives,
		Wave:    s.spawner.Wave(),
		Elapsed: math.Float64bits(s.elapsed),

		PlayerX:      math.Float64bits(s.player.pos.X),
		PlayerY:      math.Float64bits(s.player.pos.Y),
		PlayerHealth: math.Float64bits(s.player.health),
		Buffs:        buffs,

		EnemyCount:      len(s.enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(s.projectiles),
		ProjectileData:  shotData,

		PowerUpCount:  len(s.powerUps),
		ParticleCount: len(s.particles),
		TextCount:     len(s.texts),

		RNGState: s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)  //#nosec G115 -- hash computation
	h = h*31 + snap.Elapsed
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + snap.PlayerHealth
	for _, v := range snap.Buffs {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.PowerUpCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TextCount)     //#nosec G115 -- hash computation

	h = h*31 + snap.RNGState

	return h
}
