package stellar

import (
	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Collides reports whether two circular bodies overlap. It is symmetric.
func Collides(a, b Body) bool {
	return core.CirclesOverlap(a.Pos(), a.Radius(), b.Pos(), b.Radius())
}

// resolveCollisions runs the four collision passes in order. Entities taken
// out by an earlier pass are skipped by later ones, and survivors are
// filtered once at the end.
func (s *Sim) resolveCollisions() {
	s.resolveShotsVsEnemies()
	s.resolveShotsVsPlayer()
	s.resolveContacts()
	s.resolvePickups()

	s.projectiles = survivors(s.projectiles)
	s.enemies = survivors(s.enemies)
	s.powerUps = survivors(s.powerUps)
}

// resolveShotsVsEnemies lets each player shot hit the first enemy it
// overlaps, in storage order.
func (s *Sim) resolveShotsVsEnemies() {
	for _, p := range s.projectiles {
		if !p.Friendly || !p.Alive() {
			continue
		}
		for _, e := range s.enemies {
			if !e.Alive() || !Collides(p, e) {
				continue
			}
			e.Hit(p.Damage)
			s.explode(p.pos, false)
			p.consumed = true
			if !e.Alive() {
				s.killEnemy(e)
			}
			break
		}
	}
}

func (s *Sim) killEnemy(e *Enemy) {
	s.explode(e.pos, true)
	award := s.cfg.Gameplay.KillAward
	s.score += award
	s.texts = append(s.texts, newScoreText(e.pos, award))
	if s.rng.Float64() < s.cfg.PowerUps.DropChance {
		kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
		s.powerUps = append(s.powerUps, newPowerUp(e.pos, kind, s.cfg.PowerUps))
	}
	e.removed = true
}

// resolveShotsVsPlayer stops at the hit that ends the session.
func (s *Sim) resolveShotsVsPlayer() {
	for _, p := range s.projectiles {
		if s.phase != PhasePlaying {
			return
		}
		if p.Friendly || !p.Alive() || !Collides(p, s.player) {
			continue
		}
		s.damagePlayer(p.Damage)
		s.explode(p.pos, false)
		p.consumed = true
	}
}

// resolveContacts destroys any enemy touching the player, whatever its
// health. Nothing is resolved once the session is over.
func (s *Sim) resolveContacts() {
	for _, e := range s.enemies {
		if s.phase != PhasePlaying {
			return
		}
		if !e.Alive() || !Collides(s.player, e) {
			continue
		}
		s.damagePlayer(e.damage)
		s.explode(e.pos, true)
		e.removed = true
	}
}

func (s *Sim) resolvePickups() {
	for _, pu := range s.powerUps {
		if !pu.Alive() || !Collides(s.player, pu) {
			continue
		}
		s.player.ApplyPowerUp(pu.Kind)
		pu.collected = true
	}
}

// damagePlayer applies a hit and runs death handling when it is lethal.
// Once the session is over no further deaths are counted.
func (s *Sim) damagePlayer(amount float64) {
	if s.phase == PhaseGameOver {
		return
	}
	if s.player.TakeDamage(amount) {
		s.playerDied()
	}
}

func (s *Sim) playerDied() {
	s.lives--
	s.livesChanged = true
	s.explode(s.player.pos, true)
	if s.lives > 0 {
		s.player.Spawn(s.spawnPoint())
		return
	}
	s.lives = 0
	s.gameOver()
}

// explode emits a burst sized for the device profile. Large bursts also
// queue the explosion sound.
func (s *Sim) explode(pos core.Vec2, large bool) {
	n := s.profile.SmallBurst
	if large {
		n = s.profile.LargeBurst
		s.sounds = append(s.sounds, core.SoundExplosion)
	}
	for range n {
		s.particles = append(s.particles, newParticle(pos, s.rng))
	}
}

// survivors returns the live entries in order, in a fresh slice.
func survivors[T Entity](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Alive() {
			out = append(out, it)
		}
	}
	return out
}
