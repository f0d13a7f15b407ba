package core

// EventKind identifies what happened during a move.
type EventKind int

const (
	EventMoved    EventKind = iota // entity stepped onto an empty tile
	EventPushed                    // obstacle shifted by a push chain
	EventLocked                    // agent locked an open container
	EventUnlocked                  // wanderer forced a locked container open
	EventCaptured                  // wanderer walked into an open container
	EventBlocked                   // agent command had no effect
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventPushed:
		return "pushed"
	case EventLocked:
		return "locked"
	case EventUnlocked:
		return "unlocked"
	case EventCaptured:
		return "captured"
	case EventBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Event records a single side effect of a move.
// For Locked and Unlocked events From is the actor's tile and To the container's.
type Event struct {
	Kind   EventKind
	Entity EntityID // the actor, or the pushed obstacle
	Who    Kind
	Dir    Dir
	From   Coord
	To     Coord
}

// TurnReport summarizes one tick.
type TurnReport struct {
	Turn   int
	Events []Event
	Ended  bool
	Score  int // only meaningful when Ended
}

// Has reports whether any event of the given kind happened during the tick.
func (r TurnReport) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (b *Board) emit(kind EventKind, id EntityID, d Dir, from, to Coord) {
	b.events = append(b.events, Event{
		Kind:   kind,
		Entity: id,
		Who:    b.entities[id].Kind,
		Dir:    d,
		From:   from,
		To:     to,
	})
}

// Events returns the events recorded since the last tick started.
func (b *Board) Events() []Event {
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}
