package core

// Kind is the closed set of entity variants that can live on a board.
type Kind uint8

const (
	KindAgent     Kind = iota // the player-controlled raider
	KindObstacle              // pushable recycling bin
	KindWanderer              // raccoon that moves at random
	KindSeeker                // raccoon that heads for containers in sight
	KindContainer             // garbage can, locked or open
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindAgent:
		return "Agent"
	case KindObstacle:
		return "Obstacle"
	case KindWanderer:
		return "Wanderer"
	case KindSeeker:
		return "Seeker"
	case KindContainer:
		return "Container"
	default:
		return "Unknown"
	}
}

// IsWanderer reports whether the kind belongs to the wanderer family.
func (k Kind) IsWanderer() bool {
	return k == KindWanderer || k == KindSeeker
}

// Glyphs used by the text layout format and by Render.
const (
	GlyphEmpty    = '-'
	GlyphAgent    = 'P'
	GlyphWanderer = 'R'
	GlyphSeeker   = 'S'
	GlyphLocked   = 'C'
	GlyphOpen     = 'O'
	GlyphObstacle = 'B'
	GlyphCaptured = '@'
)

// EntityID is a stable handle into a board's entity arena.
type EntityID int

// NoEntity marks the absence of an entity.
const NoEntity EntityID = -1

// Entity is a single occupant of the board.
// Values returned by Board accessors are copies; mutate through Board only.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      Coord
	Locked   bool // containers only
	Captured bool // wanderer family only

	pending    Dir
	hasPending bool
}

// Glyph returns the single-character display tag of the entity.
func (e Entity) Glyph() rune {
	switch e.Kind {
	case KindAgent:
		return GlyphAgent
	case KindObstacle:
		return GlyphObstacle
	case KindWanderer:
		if e.Captured {
			return GlyphCaptured
		}
		return GlyphWanderer
	case KindSeeker:
		if e.Captured {
			return GlyphCaptured
		}
		return GlyphSeeker
	case KindContainer:
		if e.Locked {
			return GlyphLocked
		}
		return GlyphOpen
	default:
		return '?'
	}
}

// Pending returns the agent's queued command, if any.
func (e Entity) Pending() (Dir, bool) {
	return e.pending, e.hasPending
}
