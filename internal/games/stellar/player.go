package stellar

import (
	"math"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Player is the craft controlled by the user.
type Player struct {
	cfg   config.PlayerConfig
	boost config.PowerUpConfig

	pos             core.Vec2
	health          float64
	buffs           Buffs
	invincible      bool
	invincibleTimer float64 // ms left
	sinceFire       float64 // ms since the last volley
	area            Bounds
	age             float64 // ms since spawn, drives the flicker
}

// NewPlayer creates a player from config. Call Spawn before use.
func NewPlayer(cfg config.StellarConfig) *Player {
	return &Player{
		cfg:    cfg.Player,
		boost:  cfg.PowerUps,
		health: cfg.Player.MaxHealth,
	}
}

// Spawn places the player with full health and fresh invincibility.
// Active power-ups carry over.
func (p *Player) Spawn(pos core.Vec2) {
	p.pos = pos
	p.health = p.cfg.MaxHealth
	p.invincible = true
	p.invincibleTimer = p.cfg.InvincibleMS
	p.sinceFire = p.cfg.FireIntervalMS
	p.age = 0
}

// ClearPowerUps drops every active buff.
func (p *Player) ClearPowerUps() {
	p.buffs = Buffs{}
}

// SetArea sets the safe play area the player is clamped into.
func (p *Player) SetArea(b Bounds) {
	p.area = b
}

// Pos returns the center.
func (p *Player) Pos() core.Vec2 { return p.pos }

// Radius returns the collision radius.
func (p *Player) Radius() float64 { return p.cfg.Radius }

// Health returns the current health.
func (p *Player) Health() float64 { return p.health }

// MaxHealth returns the health ceiling.
func (p *Player) MaxHealth() float64 { return p.cfg.MaxHealth }

// Alive reports whether the player has health left.
func (p *Player) Alive() bool { return p.health > 0 }

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool { return p.invincible }

// HasPowerUp reports whether a buff is active.
func (p *Player) HasPowerUp(k PowerUpKind) bool { return p.buffs.Active(k) }

// PowerUps returns a copy of the buff table.
func (p *Player) PowerUps() Buffs { return p.buffs }

func (p *Player) speed() float64 {
	if p.buffs.Active(SpeedBoost) {
		return p.cfg.Speed * p.boost.SpeedMultiplier
	}
	return p.cfg.Speed
}

// Move displaces the player along a direction. Zero direction is a no-op.
func (p *Player) Move(dir core.Vec2, dt float64) {
	if dir.IsZero() || !dir.Finite() {
		return
	}
	step := p.speed() * dt / 1000
	p.pos = p.pos.Add(dir.Normalize().Scale(step))
}

// MoveTowards follows a target point without overshooting it.
// The player stops once within the arrive distance.
func (p *Player) MoveTowards(target core.Vec2, dt float64) {
	if !target.Finite() {
		return
	}
	delta := target.Sub(p.pos)
	dist := delta.Len()
	if dist <= p.cfg.ArriveDistance {
		return
	}
	step := math.Min(p.speed()*dt/1000, dist)
	p.pos = p.pos.Add(delta.Scale(step / dist))
}

// ConstrainAim clamps an aim point into the region the player may occupy.
func (p *Player) ConstrainAim(target core.Vec2) core.Vec2 {
	return p.clampPoint(target)
}

func (p *Player) clampPoint(v core.Vec2) core.Vec2 {
	r := p.cfg.Radius
	maxX := math.Max(r, p.area.Width-r)
	minY := p.area.Top + r
	maxY := math.Max(minY, p.area.Bottom-r)
	return core.V(core.ClampF(v.X, r, maxX), core.ClampF(v.Y, minY, maxY))
}

// Update advances timers and clamps the player into the play area.
func (p *Player) Update(dt float64) {
	p.age += dt
	p.sinceFire += dt
	if p.invincible {
		p.invincibleTimer -= dt
		if p.invincibleTimer <= 0 {
			p.invincible = false
			p.invincibleTimer = 0
		}
	}
	p.buffs = p.buffs.Tick(dt)
	p.pos = p.clampPoint(p.pos)
}

// CanFire reports whether the fire cooldown has elapsed.
func (p *Player) CanFire() bool {
	return p.sinceFire >= p.cfg.FireIntervalMS
}

// Fire returns the volley for the active buffs and restarts the cooldown.
// multiShot wins over spreadShot.
func (p *Player) Fire() []*Projectile {
	p.sinceFire = 0

	damage := p.cfg.Damage
	if p.buffs.Active(DamageBoost) {
		damage *= p.boost.DamageMultiplier
	}
	muzzle := core.V(p.pos.X, p.pos.Y-p.cfg.MuzzleOffset)
	up := core.V(0, -p.cfg.ShotSpeed)

	switch {
	case p.buffs.Active(MultiShot):
		off := p.boost.MultiShotOffset
		return []*Projectile{
			newProjectile(muzzle.Add(core.V(-off, 0)), up, damage, true),
			newProjectile(muzzle, up, damage, true),
			newProjectile(muzzle.Add(core.V(off, 0)), up, damage, true),
		}
	case p.buffs.Active(SpreadShot):
		vx := p.boost.SpreadVelocity
		return []*Projectile{
			newProjectile(muzzle, up.Add(core.V(-vx, 0)), damage, true),
			newProjectile(muzzle, up, damage, true),
			newProjectile(muzzle, up.Add(core.V(vx, 0)), damage, true),
		}
	default:
		return []*Projectile{newProjectile(muzzle, up, damage, true)}
	}
}

// TakeDamage applies a hit and reports whether it was lethal.
// Invincibility ignores the hit; a shield absorbs it and is consumed.
func (p *Player) TakeDamage(amount float64) bool {
	if p.invincible {
		return false
	}
	if p.buffs.Active(Shield) {
		p.buffs.remove(Shield)
		return false
	}
	p.health = math.Max(0, p.health-amount)
	return p.health <= 0
}

// ApplyPowerUp starts or refreshes a buff. Unknown kinds are ignored.
func (p *Player) ApplyPowerUp(k PowerUpKind) {
	if k == Shield {
		p.buffs.set(k, p.boost.ShieldDurationMS)
		return
	}
	p.buffs.set(k, p.boost.DurationMS)
}

// RenderData returns the craft. It flickers every 100ms while invincible.
func (p *Player) RenderData() RenderItem {
	return RenderItem{
		Kind:     ItemPlayer,
		Pos:      p.pos,
		Radius:   p.cfg.Radius,
		Color:    "#c0c0c0",
		Alpha:    1,
		Health:   p.health / p.cfg.MaxHealth,
		Shielded: p.buffs.Active(Shield),
		Blink:    p.invincible && int(p.age/100)%2 == 0,
	}
}
