package core

// Trapped reports whether the entity cannot reach any neighbouring tile:
// every neighbour is off the board or shows one of P, R, S, B or @.
// An empty tile or a lone container leaves a way out.
func (b *Board) Trapped(id EntityID) bool {
	e, ok := b.Entity(id)
	if !ok {
		return false
	}
	for _, n := range e.Pos.Neighbours() {
		if !b.InBounds(n) {
			continue
		}
		switch b.glyphAt(n) {
		case GlyphAgent, GlyphWanderer, GlyphSeeker, GlyphObstacle, GlyphCaptured:
			continue
		default:
			return false
		}
	}
	return true
}

// ClusterScore returns the size of the largest 4-connected group of tiles
// holding a single obstacle.
func (b *Board) ClusterScore() int {
	visited := make([]bool, len(b.cells))
	isObstacle := func(i int) bool {
		t := b.cells[i]
		return t.n == 1 && b.entities[t.ids[0]].Kind == KindObstacle
	}

	best := 0
	stack := make([]Coord, 0, 16)
	for i := range b.cells {
		if visited[i] || !isObstacle(i) {
			continue
		}
		visited[i] = true
		stack = append(stack[:0], C(i%b.W, i/b.W))
		size := 0
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range c.Neighbours() {
				if !b.InBounds(n) {
					continue
				}
				j := n.Y*b.W + n.X
				if visited[j] || !isObstacle(j) {
					continue
				}
				visited[j] = true
				stack = append(stack, n)
			}
		}
		if size > best {
			best = size
		}
	}
	return best
}

// CheckEnd evaluates the end condition and records it in Ended.
// The game ends when every wanderer is captured or trapped; with no
// wanderers at all it has ended trivially. The score is only computed once
// the game has ended and is zero otherwise.
func (b *Board) CheckEnd() (score int, ended bool) {
	trapped := 0
	ended = true
	for _, e := range b.entities {
		if !e.Kind.IsWanderer() || e.Captured {
			continue
		}
		if b.Trapped(e.ID) {
			trapped++
		} else {
			ended = false
		}
	}
	b.Ended = ended
	if !ended {
		return 0, false
	}
	return b.rules.TrapPoints*trapped + b.ClusterScore(), true
}

// Progress counts the wanderer family by state. It does not modify the board.
func (b *Board) Progress() (free, trapped, captured int) {
	for _, e := range b.entities {
		switch {
		case !e.Kind.IsWanderer():
		case e.Captured:
			captured++
		case b.Trapped(e.ID):
			trapped++
		default:
			free++
		}
	}
	return free, trapped, captured
}
