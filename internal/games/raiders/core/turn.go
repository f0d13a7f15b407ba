package core

// QueueCommand stores a direction for the agent's next turn, replacing any
// command that has not been consumed yet. Returns false if there is no agent.
func (b *Board) QueueCommand(d Dir) bool {
	if b.agent == NoEntity {
		return false
	}
	a := &b.entities[b.agent]
	a.pending = d
	a.hasPending = true
	return true
}

// GiveTurns advances the simulation by one tick.
//
// Order of play:
//  1. The agent consumes its pending command, if any.
//  2. The turn counter is incremented.
//  3. On ticks that are a multiple of Rules.Frequency every free wanderer
//     takes a turn. Wanderers are collected in row-major order before any
//     of them acts.
//  4. The end condition is evaluated.
func (b *Board) GiveTurns() TurnReport {
	b.events = nil

	b.agentTurn()
	b.Turns++

	if b.WandererTick(b.Turns) {
		for _, id := range b.freeWanderers() {
			b.wandererTurn(id)
		}
	}

	score, ended := b.CheckEnd()
	return TurnReport{
		Turn:   b.Turns,
		Events: b.events,
		Ended:  ended,
		Score:  score,
	}
}

// WandererTick reports whether the given tick is one on which wanderers act.
func (b *Board) WandererTick(turn int) bool {
	return turn > 0 && turn%b.rules.Frequency == 0
}

// TicksUntilWanderers returns how many ticks remain before wanderers act.
func (b *Board) TicksUntilWanderers() int {
	return b.rules.Frequency - b.Turns%b.rules.Frequency
}

func (b *Board) agentTurn() {
	if b.agent == NoEntity {
		return
	}
	a := &b.entities[b.agent]
	if !a.hasPending {
		return
	}
	d := a.pending
	a.hasPending = false
	if !b.Move(b.agent, d) {
		from := b.entities[b.agent].Pos
		b.emit(EventBlocked, b.agent, d, from, from.Step(d))
	}
}

// freeWanderers returns every uncaptured wanderer in row-major order.
func (b *Board) freeWanderers() []EntityID {
	var ids []EntityID
	for _, t := range b.cells {
		for i := 0; i < t.n; i++ {
			e := b.entities[t.ids[i]]
			if e.Kind.IsWanderer() && !e.Captured {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

func (b *Board) wandererTurn(id EntityID) {
	e := b.entities[id]
	if e.Captured {
		return
	}
	if e.Kind == KindSeeker {
		if d, ok := b.seek(e.Pos); ok {
			b.Move(id, d)
			return
		}
		b.wander(id, true)
		return
	}
	b.wander(id, false)
}

// wander tries directions in shuffled order until one succeeds.
// With legalOnly set, directions that cannot possibly succeed are dropped
// before shuffling.
func (b *Board) wander(id EntityID, legalOnly bool) {
	pos := b.entities[id].Pos
	dirs := make([]Dir, 0, len(Directions))
	for _, d := range Directions {
		if legalOnly && !b.canEnter(pos.Step(d)) {
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return
	}
	b.shuffle(dirs)
	for _, d := range dirs {
		if b.Move(id, d) {
			return
		}
	}
}

// seek returns the direction of the nearest container in line of sight.
// Ties go to the direction listed first in Directions.
func (b *Board) seek(from Coord) (Dir, bool) {
	best, bestDist := Dir(0), 0
	for _, d := range Directions {
		dist := b.sight(from, d)
		if dist == 0 {
			continue
		}
		if bestDist == 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, bestDist > 0
}

// sight scans from c in direction d and returns the distance to the first
// container, or 0 if the view is blocked or reaches the edge first.
// Empty tiles and the agent do not block the view.
func (b *Board) sight(c Coord, d Dir) int {
	for dist := 1; ; dist++ {
		c = c.Step(d)
		if !b.InBounds(c) {
			return 0
		}
		t := b.cellAt(c)
		switch t.n {
		case 0:
			continue
		case 1:
			switch b.entities[t.ids[0]].Kind {
			case KindContainer:
				return dist
			case KindAgent:
				continue
			}
		}
		return 0
	}
}
