package core

// EventKind identifies what a simulation event reports.
type EventKind int

const (
	EventScore    EventKind = iota // Value holds the running score
	EventLives                     // Value holds remaining lives
	EventGameOver                  // Session ended, lives exhausted
	EventSound                     // Name holds the sound trigger
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventLives:
		return "lives"
	case EventGameOver:
		return "gameover"
	case EventSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Sound trigger names.
const (
	SoundShoot     = "shoot"
	SoundExplosion = "explosion"
)

// Event is a single notification emitted by a frame step.
type Event struct {
	Kind  EventKind
	Value int
	Name  string
}

// FindEvent returns the last event of the given kind, if any.
func FindEvent(events []Event, kind EventKind) (Event, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i], true
		}
	}
	return Event{}, false
}

// CountEvents returns how many events of the given kind are in the list.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
