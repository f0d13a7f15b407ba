package core

const (
	// DefaultTurnFrequency is how many ticks pass between wanderer turns.
	DefaultTurnFrequency = 20

	// DefaultTrapPoints is awarded for each trapped wanderer at game end.
	DefaultTrapPoints = 10
)

// Rules holds the tunable constants of a board.
type Rules struct {
	Frequency  int // wanderers act when Turns is a multiple of this
	TrapPoints int // points per trapped, uncaptured wanderer
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Frequency:  DefaultTurnFrequency,
		TrapPoints: DefaultTrapPoints,
	}
}

// normalized clamps rules to usable values.
func (r Rules) normalized() Rules {
	if r.Frequency < 1 {
		r.Frequency = 1
	}
	if r.TrapPoints < 0 {
		r.TrapPoints = 0
	}
	return r
}
