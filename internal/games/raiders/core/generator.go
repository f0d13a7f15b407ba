package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooManyEntities is returned when generator counts do not fit the board.
var ErrTooManyEntities = errors.New("core: too many entities for board")

// GenParams configures the random board generator.
type GenParams struct {
	Width  int
	Height int
	Seed   int64 // RNG seed; the same seed always yields the same board
	Rules  Rules

	Wanderers int
	Seekers   int
	Open      int // unlocked containers
	Locked    int // locked containers
	Obstacles int
}

// DefaultGenParams returns sensible defaults for random boards.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:     12,
		Height:    8,
		Seed:      1,
		Rules:     DefaultRules(),
		Wanderers: 3,
		Seekers:   1,
		Open:      2,
		Locked:    1,
		Obstacles: 20,
	}
}

// Validate checks the parameters without generating anything.
func (p GenParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("core: invalid board size %dx%d", p.Width, p.Height)
	}
	counts := []int{p.Wanderers, p.Seekers, p.Open, p.Locked, p.Obstacles}
	total := 1 // the agent
	for _, n := range counts {
		if n < 0 {
			return fmt.Errorf("core: negative entity count %d", n)
		}
		total += n
	}
	if total > p.Width*p.Height {
		return fmt.Errorf("%w: %d entities on %d tiles", ErrTooManyEntities, total, p.Width*p.Height)
	}
	return nil
}

// Generate builds a random board. Every entity gets its own tile, so no
// wanderer starts captured. The returned board's shuffler continues the
// generator's random stream.
func Generate(p GenParams) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))
	b := NewBoard(p.Width, p.Height, p.Rules)
	b.SetShuffler(NewRandShuffler(rng))

	tiles := rng.Perm(p.Width * p.Height)
	next := func() Coord {
		i := tiles[0]
		tiles = tiles[1:]
		return C(i%p.Width, i/p.Width)
	}

	b.AddAgent(next())
	for i := 0; i < p.Obstacles; i++ {
		b.AddObstacle(next())
	}
	for i := 0; i < p.Open; i++ {
		b.AddContainer(next(), false)
	}
	for i := 0; i < p.Locked; i++ {
		b.AddContainer(next(), true)
	}
	for i := 0; i < p.Wanderers; i++ {
		b.AddWanderer(next())
	}
	for i := 0; i < p.Seekers; i++ {
		b.AddSeeker(next())
	}
	return b, nil
}
