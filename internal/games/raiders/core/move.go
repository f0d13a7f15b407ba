package core

// Move attempts to move entity id one step in direction d.
// A failed move leaves the board unchanged.
func (b *Board) Move(id EntityID, d Dir) bool {
	if id < 0 || int(id) >= len(b.entities) {
		return false
	}
	switch b.entities[id].Kind {
	case KindAgent:
		return b.moveAgent(id, d)
	case KindObstacle:
		return b.pushChain(id, d)
	case KindWanderer, KindSeeker:
		return b.moveWanderer(id, d)
	default:
		// Containers never move.
		return false
	}
}

// soleOccupant returns the only entity on tile c.
// ok is false when c is out of bounds or does not hold exactly one entity.
func (b *Board) soleOccupant(c Coord) (e *Entity, n int, ok bool) {
	if !b.InBounds(c) {
		return nil, 0, false
	}
	t := b.cellAt(c)
	if t.n != 1 {
		return nil, t.n, false
	}
	return &b.entities[t.ids[0]], 1, true
}

// pushChain moves the obstacle id and every obstacle lined up behind it
// one step in direction d. The chain is collected first and committed from
// the far end, so nothing moves unless the whole chain can.
func (b *Board) pushChain(id EntityID, d Dir) bool {
	chain := []EntityID{id}
	next := b.entities[id].Pos.Step(d)
	for {
		if !b.InBounds(next) {
			return false
		}
		t := b.cellAt(next)
		if t.n == 0 {
			break
		}
		if t.n != 1 || b.entities[t.ids[0]].Kind != KindObstacle {
			return false
		}
		chain = append(chain, t.ids[0])
		next = next.Step(d)
	}

	for i := len(chain) - 1; i >= 0; i-- {
		from := b.entities[chain[i]].Pos
		b.relocate(chain[i], d)
		b.emit(EventPushed, chain[i], d, from, from.Step(d))
	}
	return true
}

func (b *Board) moveAgent(id EntityID, d Dir) bool {
	from := b.entities[id].Pos
	to := from.Step(d)
	if !b.InBounds(to) {
		return false
	}

	other, n, single := b.soleOccupant(to)
	switch {
	case n == 0:
		b.relocate(id, d)
		b.emit(EventMoved, id, d, from, to)
		return true
	case !single:
		return false
	}

	switch other.Kind {
	case KindObstacle:
		if !b.pushChain(other.ID, d) {
			return false
		}
		b.relocate(id, d)
		b.emit(EventMoved, id, d, from, to)
		return true
	case KindContainer:
		if other.Locked {
			return false
		}
		other.Locked = true
		b.emit(EventLocked, id, d, from, to)
		return true
	default:
		return false
	}
}

func (b *Board) moveWanderer(id EntityID, d Dir) bool {
	self := &b.entities[id]
	if self.Captured {
		return false
	}
	from := self.Pos
	to := from.Step(d)
	if !b.InBounds(to) {
		return false
	}

	other, n, single := b.soleOccupant(to)
	switch {
	case n == 0:
		b.relocate(id, d)
		b.emit(EventMoved, id, d, from, to)
		return true
	case !single, other.Kind != KindContainer:
		return false
	}

	if other.Locked {
		other.Locked = false
		b.emit(EventUnlocked, id, d, from, to)
		return true
	}
	b.relocate(id, d)
	b.entities[id].Captured = true
	b.emit(EventCaptured, id, d, from, to)
	return true
}

// canEnter reports whether a free wanderer standing next to c could act on it:
// the tile is empty or holds a lone container.
func (b *Board) canEnter(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	other, n, single := b.soleOccupant(c)
	if n == 0 {
		return true
	}
	return single && other.Kind == KindContainer
}
