package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// cell is the occupant stack of one tile. It holds at most two entities,
// and only the pair {open container, captured wanderer} ever uses both slots.
type cell struct {
	ids [2]EntityID
	n   int
}

func (c *cell) push(id EntityID) {
	if c.n == len(c.ids) {
		panic(fmt.Sprintf("core: tile already holds %d entities", c.n))
	}
	c.ids[c.n] = id
	c.n++
}

func (c *cell) remove(id EntityID) {
	for i := 0; i < c.n; i++ {
		if c.ids[i] != id {
			continue
		}
		copy(c.ids[i:], c.ids[i+1:c.n])
		c.n--
		c.ids[c.n] = NoEntity
		return
	}
}

// Board is the game board: a W x H grid of tiles plus the arena that owns
// every entity placed on it. Tiles store handles into the arena only.
type Board struct {
	W     int  // Width of the board
	H     int  // Height of the board
	Turns int  // Ticks given so far
	Ended bool // Result of the last end-condition check

	rules    Rules
	cells    []cell // row-major, index = y*W + x
	entities []Entity
	agent    EntityID
	shuffle  Shuffler
	events   []Event
}

// NewBoard creates an empty board with the given dimensions.
// Panics if either dimension is not positive.
func NewBoard(w, h int, rules Rules) *Board {
	b := &Board{
		rules:   rules.normalized(),
		shuffle: NewRandShuffler(rand.New(rand.NewSource(1))),
	}
	b.reset(w, h)
	return b
}

// reset clears the board to the given dimensions, keeping rules and shuffler.
func (b *Board) reset(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", w, h))
	}
	b.W = w
	b.H = h
	b.Turns = 0
	b.Ended = false
	b.cells = make([]cell, w*h)
	for i := range b.cells {
		b.cells[i].ids = [2]EntityID{NoEntity, NoEntity}
	}
	b.entities = nil
	b.agent = NoEntity
	b.events = nil
}

// Rules returns the rules this board plays by.
func (b *Board) Rules() Rules {
	return b.rules
}

// SetShuffler replaces the source of randomness used by wanderers.
func (b *Board) SetShuffler(s Shuffler) {
	if s == nil {
		s = FixedOrder()
	}
	b.shuffle = s
}

// InBounds returns true if the coordinate is within the board boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

func (b *Board) cellAt(c Coord) *cell {
	return &b.cells[c.Y*b.W+c.X]
}

// Occupants returns copies of the entities at c in insertion order.
// Returns nil for out-of-bounds coordinates.
func (b *Board) Occupants(c Coord) []Entity {
	if !b.InBounds(c) {
		return nil
	}
	t := b.cellAt(c)
	out := make([]Entity, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = b.entities[t.ids[i]]
	}
	return out
}

// Entity returns a copy of the entity with the given handle.
func (b *Board) Entity(id EntityID) (Entity, bool) {
	if id < 0 || int(id) >= len(b.entities) {
		return Entity{}, false
	}
	return b.entities[id], true
}

// Entities returns copies of all entities in creation order.
func (b *Board) Entities() []Entity {
	out := make([]Entity, len(b.entities))
	copy(out, b.entities)
	return out
}

// Agent returns the board's agent, if one was placed.
func (b *Board) Agent() (Entity, bool) {
	if b.agent == NoEntity {
		return Entity{}, false
	}
	return b.entities[b.agent], true
}

// AddAgent places the agent at c. A board holds at most one agent.
func (b *Board) AddAgent(c Coord) EntityID {
	if b.agent != NoEntity {
		panic("core: board already has an agent")
	}
	id := b.place(Entity{Kind: KindAgent, Pos: c})
	b.agent = id
	return id
}

// AddObstacle places a pushable obstacle at c.
func (b *Board) AddObstacle(c Coord) EntityID {
	return b.place(Entity{Kind: KindObstacle, Pos: c})
}

// AddWanderer places a wanderer at c. Placing it on an open container
// captures it.
func (b *Board) AddWanderer(c Coord) EntityID {
	return b.place(Entity{Kind: KindWanderer, Pos: c})
}

// AddSeeker places a seeking wanderer at c.
func (b *Board) AddSeeker(c Coord) EntityID {
	return b.place(Entity{Kind: KindSeeker, Pos: c})
}

// AddContainer places a container at c.
func (b *Board) AddContainer(c Coord, locked bool) EntityID {
	return b.place(Entity{Kind: KindContainer, Pos: c, Locked: locked})
}

// CanPlace reports whether an entity of kind k may be placed at c.
func (b *Board) CanPlace(k Kind, c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	t := b.cellAt(c)
	switch t.n {
	case 0:
		return true
	case 1:
		other := b.entities[t.ids[0]]
		return k.IsWanderer() && other.Kind == KindContainer && !other.Locked
	default:
		return false
	}
}

// place registers e in the arena and on its tile.
// Violating the occupancy rules is a programming error.
func (b *Board) place(e Entity) EntityID {
	if !b.CanPlace(e.Kind, e.Pos) {
		panic(fmt.Sprintf("core: cannot place %s at %s", e.Kind, e.Pos))
	}
	e.ID = EntityID(len(b.entities))
	if b.cellAt(e.Pos).n == 1 {
		// Only a wanderer entering an open container gets this far.
		e.Captured = true
	}
	b.entities = append(b.entities, e)
	b.cellAt(e.Pos).push(e.ID)
	return e.ID
}

// relocate moves an entity one step without validation.
func (b *Board) relocate(id EntityID, d Dir) {
	e := &b.entities[id]
	b.cellAt(e.Pos).remove(id)
	e.Pos = e.Pos.Step(d)
	b.cellAt(e.Pos).push(id)
}

// glyphAt returns the display glyph of a tile.
func (b *Board) glyphAt(c Coord) rune {
	t := b.cellAt(c)
	switch t.n {
	case 0:
		return GlyphEmpty
	case 1:
		return b.entities[t.ids[0]].Glyph()
	default:
		return GlyphCaptured
	}
}

// Render returns the board as rows of glyphs.
func (b *Board) Render() [][]rune {
	rows := make([][]rune, b.H)
	for y := 0; y < b.H; y++ {
		row := make([]rune, b.W)
		for x := 0; x < b.W; x++ {
			row[x] = b.glyphAt(C(x, y))
		}
		rows[y] = row
	}
	return rows
}

// String returns the board in the text layout format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.W*b.H + b.H)
	for y, row := range b.Render() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Count returns how many entities of kind k are on the board.
func (b *Board) Count(k Kind) int {
	n := 0
	for _, e := range b.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board. The clone shares the shuffler.
func (b *Board) Clone() *Board {
	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	entities := make([]Entity, len(b.entities))
	copy(entities, b.entities)
	return &Board{
		W:        b.W,
		H:        b.H,
		Turns:    b.Turns,
		Ended:    b.Ended,
		rules:    b.rules,
		cells:    cells,
		entities: entities,
		agent:    b.agent,
		shuffle:  b.shuffle,
	}
}

// Equal returns true if two boards have the same dimensions, counters,
// entities and tile stacks.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H || b.Turns != other.Turns || b.Ended != other.Ended {
		return false
	}
	if b.agent != other.agent || len(b.entities) != len(other.entities) {
		return false
	}
	for i, e := range b.entities {
		if e != other.entities[i] {
			return false
		}
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
