package stellar

import (
	"math"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// PowerUpKind represents the timed buff a pickup grants.
type PowerUpKind int

const (
	MultiShot PowerUpKind = iota
	SpreadShot
	Shield
	SpeedBoost
	DamageBoost
	powerUpKindCount
)

// String returns the name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case MultiShot:
		return "multiShot"
	case SpreadShot:
		return "spreadShot"
	case Shield:
		return "shield"
	case SpeedBoost:
		return "speedBoost"
	case DamageBoost:
		return "damageBoost"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a known kind.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < powerUpKindCount
}

// Color returns the pickup color.
func (k PowerUpKind) Color() string {
	switch k {
	case MultiShot:
		return "#00ff88"
	case SpreadShot:
		return "#ff9f43"
	case Shield:
		return "#0abde3"
	case SpeedBoost:
		return "#ee5a6f"
	case DamageBoost:
		return "#e056fd"
	default:
		return "#ffffff"
	}
}

// Symbol returns the label drawn on the pickup.
func (k PowerUpKind) Symbol() string {
	switch k {
	case MultiShot:
		return "|||"
	case SpreadShot:
		return "><"
	case Shield:
		return "◊"
	case SpeedBoost:
		return "»"
	case DamageBoost:
		return "⚡"
	default:
		return "?"
	}
}

// Glyph returns the single-cell terminal glyph.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case MultiShot:
		return 'M'
	case SpreadShot:
		return 'W'
	case Shield:
		return 'O'
	case SpeedBoost:
		return '»'
	case DamageBoost:
		return '!'
	default:
		return '?'
	}
}

// Buffs is the fixed-size table of active power-ups: remaining ms per kind.
// Zero means inactive; a stored value is always positive.
type Buffs [powerUpKindCount]float64

// Active reports whether a kind has time remaining.
func (b Buffs) Active(k PowerUpKind) bool {
	return k.Valid() && b[k] > 0
}

// Remaining returns the remaining ms of a kind.
func (b Buffs) Remaining(k PowerUpKind) float64 {
	if !k.Valid() {
		return 0
	}
	return b[k]
}

// set refreshes a kind's duration. Unknown kinds are ignored.
func (b *Buffs) set(k PowerUpKind, ms float64) {
	if !k.Valid() || ms <= 0 {
		return
	}
	b[k] = ms
}

func (b *Buffs) remove(k PowerUpKind) {
	if k.Valid() {
		b[k] = 0
	}
}

// Tick returns the table advanced by dt, with expired entries cleared.
func (b Buffs) Tick(dt float64) Buffs {
	var next Buffs
	for k, ms := range b {
		if ms <= 0 {
			continue
		}
		if left := ms - dt; left > 0 {
			next[k] = left
		}
	}
	return next
}

// Kinds lists the active kinds in table order.
func (b Buffs) Kinds() []PowerUpKind {
	var kinds []PowerUpKind
	for k, ms := range b {
		if ms > 0 {
			kinds = append(kinds, PowerUpKind(k))
		}
	}
	return kinds
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Kind PowerUpKind

	pos       core.Vec2
	radius    float64
	speed     float64
	pulse     float64
	pulseRate float64
	collected bool
}

func newPowerUp(pos core.Vec2, kind PowerUpKind, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		Kind:      kind,
		pos:       pos,
		radius:    cfg.Radius,
		speed:     cfg.FallSpeed,
		pulseRate: cfg.PulseRate,
	}
}

// Pos returns the center.
func (p *PowerUp) Pos() core.Vec2 { return p.pos }

// Radius returns the collision radius.
func (p *PowerUp) Radius() float64 { return p.radius }

// Alive reports whether the pickup is still in play.
func (p *PowerUp) Alive() bool { return !p.collected }

// Update falls and advances the pulse phase.
func (p *PowerUp) Update(dt float64) {
	p.pos.Y += p.speed * dt / 1000
	p.pulse += dt / 1000 * p.pulseRate
}

// RenderData returns the pulsing pickup.
func (p *PowerUp) RenderData() RenderItem {
	return RenderItem{
		Kind:   ItemPowerUp,
		Pos:    p.pos,
		Radius: p.radius + math.Sin(p.pulse)*3,
		Color:  p.Kind.Color(),
		Alpha:  1,
		Label:  p.Kind.Symbol(),
		Glyph:  p.Kind.Glyph(),
	}
}
