// Package core provides the rules engine for Raiders.
// This package is UI-agnostic and deterministic: all randomness comes from
// an injected Shuffler.
package core

import (
	"math/rand"
	"strings"
)

// Dir represents one of the four axis-aligned movement directions.
type Dir uint8

const (
	DirLeft Dir = iota
	DirUp
	DirRight
	DirDown
)

// Directions lists every direction in priority order.
// Seekers use this order to break ties between equally distant targets.
var Directions = [4]Dir{DirLeft, DirUp, DirRight, DirDown}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// ParseDir parses a direction from its name ("left") or initial ("L").
// Matching is case-insensitive.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return DirLeft, true
	case "u", "up":
		return DirUp, true
	case "r", "right":
		return DirRight, true
	case "d", "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Shuffler reorders a slice of directions in place.
type Shuffler func(dirs []Dir)

// NewRandShuffler returns a Shuffler backed by rng.
// Two boards driven by generators with the same seed replay identically.
func NewRandShuffler(rng *rand.Rand) Shuffler {
	return func(dirs []Dir) {
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})
	}
}

// FixedOrder returns a Shuffler that leaves the priority order untouched.
func FixedOrder() Shuffler {
	return func([]Dir) {}
}
