package stellar

import (
	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Sim is the simulation context. It owns every entity collection; callers
// feed it input snapshots and read back events and summary state.
type Sim struct {
	cfg     config.StellarConfig
	rng     *core.RNG
	profile Profile
	bounds  Bounds

	phase   Phase
	player  *Player
	spawner *Spawner

	enemies     []*Enemy
	projectiles []*Projectile
	particles   []*Particle
	powerUps    []*PowerUp
	texts       []*ScoreText
	stars       []*Star

	score int
	lives int

	frames    uint64
	elapsed   float64 // ms of play in this session
	lastTime  float64
	haveClock bool

	livesChanged bool
	overPending  bool
	sounds       []string
}

// NewSim creates a simulation in the menu phase for a canvas of the given size.
func NewSim(cfg config.StellarConfig, profile Profile, width, height float64, seed int64) *Sim {
	s := &Sim{
		cfg:     cfg,
		rng:     core.NewRNG(seed),
		profile: profile,
		player:  NewPlayer(cfg),
		spawner: NewSpawner(cfg),
		lives:   cfg.Gameplay.Lives,
		phase:   PhaseMenu,
	}
	s.SetBounds(BoundsFor(width, height, profile))
	s.player.Spawn(s.spawnPoint())
	return s
}

// SetBounds replaces the play area, re-clamps the player and regenerates
// the star field.
func (s *Sim) SetBounds(b Bounds) {
	s.bounds = b
	s.player.SetArea(b)
	s.player.pos = s.player.clampPoint(s.player.pos)
	s.stars = s.stars[:0]
	for range s.profile.Stars {
		s.stars = append(s.stars, newStar(b, s.rng))
	}
}

// Resize derives new bounds from a canvas size with the current profile.
func (s *Sim) Resize(width, height float64) {
	s.SetBounds(BoundsFor(width, height, s.profile))
}

// Bounds returns the current play area.
func (s *Sim) Bounds() Bounds { return s.bounds }

// Profile returns the device profile.
func (s *Sim) Profile() Profile { return s.profile }

// Player returns the player craft.
func (s *Sim) Player() *Player { return s.player }

// Enemies returns the live enemies. The slice must not be modified.
func (s *Sim) Enemies() []*Enemy { return s.enemies }

// Projectiles returns the live shots. The slice must not be modified.
func (s *Sim) Projectiles() []*Projectile { return s.projectiles }

// PowerUps returns the falling pickups. The slice must not be modified.
func (s *Sim) PowerUps() []*PowerUp { return s.powerUps }

// ScoreTexts returns the floating labels. The slice must not be modified.
func (s *Sim) ScoreTexts() []*ScoreText { return s.texts }

// Score returns the running score.
func (s *Sim) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Wave returns the current wave.
func (s *Sim) Wave() int { return s.spawner.Wave() }

// Elapsed returns ms of play in this session.
func (s *Sim) Elapsed() float64 { return s.elapsed }

func (s *Sim) spawnPoint() core.Vec2 {
	return core.V(s.bounds.Width/2, s.bounds.Bottom-s.cfg.Player.SpawnOffset)
}

// reset clears the session: score, lives, wave and every collection.
func (s *Sim) reset() {
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.spawner.Reset()
	s.enemies = nil
	s.projectiles = nil
	s.particles = nil
	s.powerUps = nil
	s.texts = nil
	s.frames = 0
	s.elapsed = 0
	s.haveClock = false
	s.overPending = false
	s.sounds = s.sounds[:0]
	s.player.ClearPowerUps()
	s.player.Spawn(s.spawnPoint())
	s.livesChanged = true
}

// Frame runs one frame for a clock timestamp in ms. The delta is taken
// from the previous frame; the first frame after a start or resume uses
// the nominal delta.
func (s *Sim) Frame(in core.InputFrame) core.StepResult {
	if s.phase != PhasePlaying {
		return s.result()
	}
	dt := s.cfg.Timing.NominalDeltaMS
	if s.haveClock {
		dt = in.Time - s.lastTime
	}
	s.lastTime = in.Time
	s.haveClock = true
	return s.Step(dt, in)
}

// Step advances the simulation by dt ms. It is inert outside playing.
func (s *Sim) Step(dt float64, in core.InputFrame) core.StepResult {
	if s.phase != PhasePlaying {
		return s.result()
	}
	dt = s.sanitizeDelta(dt)
	s.frames++
	s.elapsed += dt
	s.update(dt, in)
	return s.result()
}

// sanitizeDelta substitutes the nominal delta for non-finite, negative or
// implausibly large values.
func (s *Sim) sanitizeDelta(dt float64) float64 {
	if !core.IsFinite(dt) || dt < 0 || dt > s.cfg.Timing.MaxDeltaMS {
		return s.cfg.Timing.NominalDeltaMS
	}
	return dt
}

func (s *Sim) update(dt float64, in core.InputFrame) {
	s.updatePlayer(dt, in)

	cull := s.cfg.Gameplay.ScreenSlack
	for _, p := range s.projectiles {
		p.Update(dt)
		if p.pos.Y <= -cull || p.pos.Y >= s.bounds.Height+cull {
			p.consumed = true
		}
	}
	s.projectiles = survivors(s.projectiles)

	for _, e := range s.enemies {
		e.Update(dt)
		if e.CanFire() && s.rng.Float64() < s.cfg.Enemies.FireChance {
			s.projectiles = append(s.projectiles, e.Fire(s.rng)...)
		}
		if e.pos.Y >= s.bounds.Height+cull {
			e.removed = true
		}
	}
	s.enemies = survivors(s.enemies)

	for _, p := range s.particles {
		p.Update(dt)
	}
	s.particles = survivors(s.particles)

	for _, pu := range s.powerUps {
		pu.Update(dt)
		if pu.pos.Y >= s.bounds.Height+cull {
			pu.collected = true
		}
	}
	s.powerUps = survivors(s.powerUps)

	for _, t := range s.texts {
		t.Update(dt)
	}
	s.texts = survivors(s.texts)

	for _, st := range s.stars {
		st.drift(s.bounds, s.rng)
	}

	s.resolveCollisions()

	if s.spawner.Due(dt) {
		s.enemies = append(s.enemies, s.spawner.Spawn(s.bounds.Width, &s.cfg.Enemies, s.rng))
	}
	s.spawner.AdvanceWave(dt)
}

// updatePlayer applies input, then timers and clamping, then auto-fire.
// A continuous aim point wins over held directions.
func (s *Sim) updatePlayer(dt float64, in core.InputFrame) {
	switch {
	case in.Aiming && in.Aim.Finite():
		s.player.MoveTowards(s.player.ConstrainAim(in.Aim), dt)
	case in.Move.Any():
		s.player.Move(in.Move.Vector(), dt)
	}
	s.player.Update(dt)

	if s.player.CanFire() {
		s.projectiles = append(s.projectiles, s.player.Fire()...)
		s.sounds = append(s.sounds, core.SoundShoot)
	}
}

// result drains pending notifications into a StepResult.
func (s *Sim) result() core.StepResult {
	var events []core.Event
	if s.phase == PhasePlaying || s.overPending {
		for _, name := range s.sounds {
			events = append(events, core.Event{Kind: core.EventSound, Name: name})
		}
	}
	s.sounds = s.sounds[:0]

	if s.phase == PhasePlaying || s.overPending {
		events = append(events, core.Event{Kind: core.EventScore, Value: s.score})
	}
	if s.livesChanged {
		events = append(events, core.Event{Kind: core.EventLives, Value: s.lives})
		s.livesChanged = false
	}
	if s.overPending {
		events = append(events, core.Event{Kind: core.EventGameOver})
		s.overPending = false
	}

	return core.StepResult{
		State:    s.State(),
		Events:   events,
		Continue: s.phase == PhasePlaying,
	}
}

// State returns the summary reported to the platform.
func (s *Sim) State() core.GameState {
	return core.GameState{
		Phase:    s.phase.String(),
		Score:    s.score,
		Lives:    s.lives,
		Wave:     s.spawner.Wave(),
		GameOver: s.phase == PhaseGameOver,
		Paused:   s.phase == PhasePaused,
	}
}

// Scene returns every drawable in back-to-front order. The player is
// omitted once its health is gone.
func (s *Sim) Scene() []RenderItem {
	n := len(s.stars) + len(s.particles) + len(s.powerUps) + len(s.enemies) + len(s.projectiles) + len(s.texts) + 1
	items := make([]RenderItem, 0, n)
	for _, st := range s.stars {
		items = append(items, st.RenderData())
	}
	items = appendItems(items, s.particles)
	items = appendItems(items, s.powerUps)
	items = appendItems(items, s.enemies)
	items = appendItems(items, s.projectiles)
	if s.player.Alive() {
		items = append(items, s.player.RenderData())
	}
	items = appendItems(items, s.texts)
	return items
}

func appendItems[T Entity](dst []RenderItem, src []T) []RenderItem {
	for _, e := range src {
		dst = append(dst, e.RenderData())
	}
	return dst
}
