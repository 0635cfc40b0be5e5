package stellar

import (
	"math"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// EnemyKind tags the enemy variant.
type EnemyKind int

const (
	Meteor EnemyKind = iota
	AlienShip
	Boss
	enemyKindCount
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case Meteor:
		return "meteor"
	case AlienShip:
		return "alien"
	case Boss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is the shared base record of every variant.
// Variant-specific motion and fire patterns live in the behavior table.
type Enemy struct {
	Kind EnemyKind

	pos          core.Vec2
	radius       float64
	speed        float64
	health       float64
	maxHealth    float64
	points       int
	damage       float64
	fireInterval float64
	sinceFire    float64
	removed      bool

	// Meteor
	rotation float64
	spin     float64 // rad/s

	// AlienShip
	zigzag float64

	// Boss
	phase      int
	phaseTimer float64
	age        float64 // ms

	cfg *config.EnemiesConfig
}

type enemyBehavior struct {
	update  func(e *Enemy, dt float64)
	canFire func(e *Enemy) bool
	fire    func(e *Enemy, rng *core.RNG) []*Projectile
	item    ItemKind
	color   string
	glyph   rune
}

var behaviors = [enemyKindCount]enemyBehavior{
	Meteor: {
		update:  updateMeteor,
		canFire: func(*Enemy) bool { return false },
		fire:    func(*Enemy, *core.RNG) []*Projectile { return nil },
		item:    ItemMeteor,
		color:   "#8b4513",
		glyph:   '@',
	},
	AlienShip: {
		update:  updateAlien,
		canFire: cooldownReady,
		fire:    fireStraight,
		item:    ItemAlien,
		color:   "#7f8c8d",
		glyph:   'V',
	},
	Boss: {
		update:  updateBoss,
		canFire: cooldownReady,
		fire:    fireBoss,
		item:    ItemBoss,
		color:   "#bdc3c7",
		glyph:   '#',
	},
}

func enemyStats(kind EnemyKind, cfg *config.EnemiesConfig) config.EnemyConfig {
	switch kind {
	case AlienShip:
		return cfg.Alien.EnemyConfig
	case Boss:
		return cfg.Boss.EnemyConfig
	default:
		return cfg.Meteor
	}
}

// newEnemy creates a variant at pos, sampling its randomized stats.
func newEnemy(kind EnemyKind, pos core.Vec2, cfg *config.EnemiesConfig, rng *core.RNG) *Enemy {
	if kind < 0 || kind >= enemyKindCount {
		kind = Meteor
	}
	st := enemyStats(kind, cfg)
	e := &Enemy{
		Kind:         kind,
		pos:          pos,
		radius:       st.RadiusMin,
		speed:        st.SpeedMin,
		health:       st.Health,
		maxHealth:    st.Health,
		points:       st.Points,
		damage:       st.Damage,
		fireInterval: st.FireIntervalMS,
		cfg:          cfg,
	}
	switch kind {
	case Meteor:
		e.radius = rng.Range(st.RadiusMin, st.RadiusMax)
		e.speed = rng.Range(st.SpeedMin, st.SpeedMax)
		e.spin = rng.Range(-1, 1)
	case AlienShip:
		e.zigzag = rng.Float64() * math.Pi * 2
	}
	return e
}

// Pos returns the center.
func (e *Enemy) Pos() core.Vec2 { return e.pos }

// Radius returns the collision radius.
func (e *Enemy) Radius() float64 { return e.radius }

// Health returns the remaining health.
func (e *Enemy) Health() float64 { return e.health }

// MaxHealth returns the starting health.
func (e *Enemy) MaxHealth() float64 { return e.maxHealth }

// Points returns the stored point value. Kills award a flat bonus instead.
func (e *Enemy) Points() int { return e.points }

// Damage returns the contact damage.
func (e *Enemy) Damage() float64 { return e.damage }

// Speed returns the fall speed in px/s.
func (e *Enemy) Speed() float64 { return e.speed }

// Phase returns the boss phase (always 0 for other variants).
func (e *Enemy) Phase() int { return e.phase }

// Alive reports whether the enemy is still in play.
func (e *Enemy) Alive() bool { return !e.removed && e.health > 0 }

// Hit subtracts damage, never going below zero.
func (e *Enemy) Hit(damage float64) {
	e.health = math.Max(0, e.health-damage)
}

// Update advances motion and the fire cooldown.
func (e *Enemy) Update(dt float64) {
	e.sinceFire += dt
	behaviors[e.Kind].update(e, dt)
}

// CanFire reports whether the variant is ready to shoot.
func (e *Enemy) CanFire() bool {
	return behaviors[e.Kind].canFire(e)
}

// Fire returns the variant's volley and restarts the cooldown.
func (e *Enemy) Fire(rng *core.RNG) []*Projectile {
	e.sinceFire = 0
	return behaviors[e.Kind].fire(e, rng)
}

// RenderData returns the variant's drawable form.
func (e *Enemy) RenderData() RenderItem {
	b := behaviors[e.Kind]
	return RenderItem{
		Kind:     b.item,
		Pos:      e.pos,
		Radius:   e.radius,
		Color:    b.color,
		Alpha:    1,
		Rotation: e.rotation,
		Glyph:    b.glyph,
		Health:   e.health / e.maxHealth,
	}
}

func fall(e *Enemy, dt float64) {
	e.pos.Y += e.speed * dt / 1000
}

func updateMeteor(e *Enemy, dt float64) {
	fall(e, dt)
	e.rotation += e.spin * dt / 1000
}

func updateAlien(e *Enemy, dt float64) {
	fall(e, dt)
	e.zigzag += dt / 1000 * e.cfg.Alien.ZigzagRate
	e.pos.X += math.Sin(e.zigzag) * e.cfg.Alien.ZigzagDrift * dt / 1000
}

// updateBoss cycles phases 0 -> 1 -> 2 -> 0. The enraged speed of phase 2
// is kept once reached.
func updateBoss(e *Enemy, dt float64) {
	bc := &e.cfg.Boss
	fall(e, dt)
	e.age += dt
	e.phaseTimer += dt
	if e.phaseTimer > bc.PhaseMS {
		e.phase = (e.phase + 1) % 3
		e.phaseTimer = 0
	}
	t := e.age / 1000
	switch e.phase {
	case 0:
		e.pos.X += math.Sin(t) * bc.SineDrift * dt / 1000
	case 1:
		e.pos.X += math.Cos(t) * bc.CosineDrift * dt / 1000
	default:
		e.speed = bc.EnragedSpeed
	}
}

func cooldownReady(e *Enemy) bool {
	return e.sinceFire >= e.fireInterval
}

func (e *Enemy) muzzle() core.Vec2 {
	return core.V(e.pos.X, e.pos.Y+e.radius)
}

func fireStraight(e *Enemy, _ *core.RNG) []*Projectile {
	return []*Projectile{newProjectile(e.muzzle(), core.V(0, e.cfg.ShotSpeed), e.damage, false)}
}

// fireBoss sprays random shots when enraged, otherwise a fan centered on
// straight down.
func fireBoss(e *Enemy, rng *core.RNG) []*Projectile {
	bc := &e.cfg.Boss
	if e.phase == 2 {
		shots := make([]*Projectile, 0, max(bc.SprayShots, 0))
		for range bc.SprayShots {
			vx := (rng.Float64() - 0.5) * 2 * bc.SprayMaxVX
			shots = append(shots, newProjectile(e.muzzle(), core.V(vx, e.cfg.ShotSpeed), e.damage, false))
		}
		return shots
	}

	shots := make([]*Projectile, 0, max(bc.FanShots, 0))
	mid := float64(bc.FanShots-1) / 2
	for i := range bc.FanShots {
		angle := (float64(i) - mid) * bc.FanStepDeg * math.Pi / 180
		vel := core.V(math.Sin(angle)*bc.FanSpeed, math.Cos(angle)*bc.FanSpeed)
		shots = append(shots, newProjectile(e.muzzle(), vel, e.damage, false))
	}
	return shots
}
