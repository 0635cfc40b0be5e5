package stellar

import (
	"math"
	"strconv"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Body is anything with a circular collision bound.
type Body interface {
	Pos() core.Vec2
	Radius() float64
}

// Entity is the capability set shared by every simulated object.
type Entity interface {
	Body
	Update(dt float64)
	RenderData() RenderItem
	Alive() bool
}

// ItemKind tells a frontend how to draw a RenderItem.
type ItemKind int

const (
	ItemStar ItemKind = iota
	ItemParticle
	ItemPowerUp
	ItemMeteor
	ItemAlien
	ItemBoss
	ItemShot
	ItemEnemyShot
	ItemPlayer
	ItemScoreText
)

// RenderItem is the presentation-neutral description of one drawable.
type RenderItem struct {
	Kind     ItemKind
	Pos      core.Vec2
	Radius   float64
	Color    string  // #rrggbb
	Alpha    float64 // 0..1
	Rotation float64 // radians
	Label    string
	Glyph    rune    // terminal glyph, 0 for frontend default
	Health   float64 // fraction of max health, 1 when undamaged
	Shielded bool
	Blink    bool // hidden this frame (invincibility flicker)
}

// Explosion palette.
var explosionColors = [...]string{"#ff6b35", "#f7931e", "#ffd700", "#ff4757"}

// ProjectileRadius is the collision radius of every shot.
const ProjectileRadius = 4

// Projectile is a shot fired by the player or an enemy.
type Projectile struct {
	Damage   float64
	Friendly bool // fired by the player

	pos      core.Vec2
	vel      core.Vec2 // px/s
	consumed bool
}

func newProjectile(pos, vel core.Vec2, damage float64, friendly bool) *Projectile {
	return &Projectile{Damage: damage, Friendly: friendly, pos: pos, vel: vel}
}

// Pos returns the center.
func (p *Projectile) Pos() core.Vec2 { return p.pos }

// Radius returns the collision radius.
func (p *Projectile) Radius() float64 { return ProjectileRadius }

// Velocity returns the velocity in px/s.
func (p *Projectile) Velocity() core.Vec2 { return p.vel }

// Alive reports whether the shot has not hit anything yet.
func (p *Projectile) Alive() bool { return !p.consumed }

// Update moves the shot along its velocity.
func (p *Projectile) Update(dt float64) {
	p.pos = p.pos.Add(p.vel.Scale(dt / 1000))
}

// RenderData returns the glowing shot.
func (p *Projectile) RenderData() RenderItem {
	item := RenderItem{Kind: ItemEnemyShot, Pos: p.pos, Radius: ProjectileRadius, Color: "#ff4757", Alpha: 1}
	if p.Friendly {
		item.Kind = ItemShot
		item.Color = "#00ff88"
	}
	return item
}

// Particle is a cosmetic explosion fragment.
type Particle struct {
	pos   core.Vec2
	vel   core.Vec2
	color string
	size  float64
	life  float64
	decay float64 // life lost per frame
}

func newParticle(pos core.Vec2, rng *core.RNG) *Particle {
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Range(50, 200)
	return &Particle{
		pos:   pos,
		vel:   core.V(math.Cos(angle)*speed, math.Sin(angle)*speed),
		color: explosionColors[rng.Intn(len(explosionColors))],
		size:  rng.Range(2, 6),
		life:  1,
		decay: rng.Range(0.01, 0.03),
	}
}

// Pos returns the center.
func (p *Particle) Pos() core.Vec2 { return p.pos }

// Radius returns the current size.
func (p *Particle) Radius() float64 { return p.size }

// Alive reports whether life remains.
func (p *Particle) Alive() bool { return p.life > 0 }

// Update drifts, fades and shrinks. Fade and shrink are per frame.
func (p *Particle) Update(dt float64) {
	p.pos = p.pos.Add(p.vel.Scale(dt / 1000))
	p.life -= p.decay
	p.size *= 0.98
}

// RenderData returns the fading fragment.
func (p *Particle) RenderData() RenderItem {
	return RenderItem{Kind: ItemParticle, Pos: p.pos, Radius: p.size, Color: p.color, Alpha: core.ClampF(p.life, 0, 1)}
}

// ScoreText is a floating "+N" label.
type ScoreText struct {
	Text string

	pos   core.Vec2
	life  float64
	decay float64
}

func newScoreText(pos core.Vec2, points int) *ScoreText {
	return &ScoreText{Text: "+" + strconv.Itoa(points), pos: pos, life: 1, decay: 0.02}
}

// Pos returns the anchor.
func (s *ScoreText) Pos() core.Vec2 { return s.pos }

// Radius is zero; labels never collide.
func (s *ScoreText) Radius() float64 { return 0 }

// Alive reports whether the label is still visible.
func (s *ScoreText) Alive() bool { return s.life > 0 }

// Update rises 30 px/s and fades per frame.
func (s *ScoreText) Update(dt float64) {
	s.life -= s.decay
	s.pos.Y -= 30 * dt / 1000
}

// RenderData returns the label.
func (s *ScoreText) RenderData() RenderItem {
	return RenderItem{Kind: ItemScoreText, Pos: s.pos, Color: "#ffff00", Alpha: core.ClampF(s.life, 0, 1), Label: s.Text}
}

// Star is an ambient background dot. Speed is px per frame.
type Star struct {
	pos     core.Vec2
	size    float64
	speed   float64
	opacity float64
}

func newStar(b Bounds, rng *core.RNG) *Star {
	return &Star{
		pos:     core.V(rng.Float64()*b.Width, rng.Float64()*b.Height),
		size:    rng.Range(0.5, 2.5),
		speed:   rng.Range(0.2, 1.7),
		opacity: rng.Range(0.2, 1.0),
	}
}

// drift moves the star down one frame, wrapping to the top at a fresh x.
func (s *Star) drift(b Bounds, rng *core.RNG) {
	s.pos.Y += s.speed
	if s.pos.Y > b.Height {
		s.pos.Y = -5
		s.pos.X = rng.Float64() * b.Width
	}
}

// RenderData returns the star.
func (s *Star) RenderData() RenderItem {
	return RenderItem{Kind: ItemStar, Pos: s.pos, Radius: s.size, Color: "#ffffff", Alpha: s.opacity}
}
