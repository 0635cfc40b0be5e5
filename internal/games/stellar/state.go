package stellar

import (
	"errors"
	"fmt"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name reported to the platform.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a transition is not allowed from
// the current phase. The phase is left unchanged.
var ErrInvalidTransition = errors.New("stellar: invalid state transition")

func invalid(op string, from Phase) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, from)
}

// Phase returns the current lifecycle state.
func (s *Sim) Phase() Phase { return s.phase }

// Start begins a fresh session from the menu or the game-over screen.
func (s *Sim) Start() error {
	if s.phase != PhaseMenu && s.phase != PhaseGameOver {
		return invalid("start", s.phase)
	}
	s.reset()
	s.phase = PhasePlaying
	return nil
}

// Pause freezes a running session.
func (s *Sim) Pause() error {
	if s.phase != PhasePlaying {
		return invalid("pause", s.phase)
	}
	s.phase = PhasePaused
	return nil
}

// Resume continues a paused session without resetting it.
// The first frame afterwards uses the nominal delta.
func (s *Sim) Resume() error {
	if s.phase != PhasePaused {
		return invalid("resume", s.phase)
	}
	s.haveClock = false
	s.phase = PhasePlaying
	return nil
}

// Restart begins a fresh session from any phase.
func (s *Sim) Restart() error {
	s.reset()
	s.phase = PhasePlaying
	return nil
}

// Stop returns to the menu from any phase. The finished session's score
// stays readable until the next start.
func (s *Sim) Stop() error {
	s.phase = PhaseMenu
	s.haveClock = false
	return nil
}

// gameOver ends the session. The game-over event is emitted once.
func (s *Sim) gameOver() {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.overPending = true
}
