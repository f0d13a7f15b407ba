package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders/core"
)

func everyTick() core.Rules {
	return core.Rules{Frequency: 1, TrapPoints: core.DefaultTrapPoints}
}

func TestQueueCommandWithoutAgent(t *testing.T) {
	b := mustParse(t, "R-", core.DefaultRules())
	if b.QueueCommand(core.DirLeft) {
		t.Error("QueueCommand should fail without an agent")
	}
}

func TestQueueCommandOverwrites(t *testing.T) {
	b := mustParse(t, "-P-", core.DefaultRules())
	b.QueueCommand(core.DirLeft)
	b.QueueCommand(core.DirRight)

	a, _ := b.Agent()
	if d, ok := a.Pending(); !ok || d != core.DirRight {
		t.Errorf("pending = %v %v, want Right", d, ok)
	}

	b.GiveTurns()
	if got := b.String(); got != "--P" {
		t.Errorf("render = %q, want %q", got, "--P")
	}
}

func TestCommandConsumedOnce(t *testing.T) {
	b := mustParse(t, "P--", core.DefaultRules())
	b.QueueCommand(core.DirRight)
	b.GiveTurns()
	b.GiveTurns()

	if got := b.String(); got != "-P-" {
		t.Errorf("render = %q, want %q", got, "-P-")
	}
	a, _ := b.Agent()
	if _, ok := a.Pending(); ok {
		t.Error("command should be cleared after the turn")
	}
}

func TestBlockedCommandIsConsumed(t *testing.T) {
	b := mustParse(t, "PB", core.DefaultRules())
	b.QueueCommand(core.DirRight)

	report := b.GiveTurns()
	if !report.Has(core.EventBlocked) {
		t.Errorf("expected blocked event, got %v", report.Events)
	}
	a, _ := b.Agent()
	if _, ok := a.Pending(); ok {
		t.Error("failed command should still be consumed")
	}
	if report.Turn != 1 || b.Turns != 1 {
		t.Errorf("turn = %d/%d, want 1", report.Turn, b.Turns)
	}
}

func TestWandererWaitsForFrequency(t *testing.T) {
	const freq = 5
	b := mustParse(t, "-R-", core.Rules{Frequency: freq, TrapPoints: 10})
	start := entityAt(t, b, core.C(1, 0))

	for tick := 1; tick < freq; tick++ {
		b.GiveTurns()
		e, _ := b.Entity(start.ID)
		if e.Pos != start.Pos {
			t.Fatalf("tick %d: wanderer moved to %v", tick, e.Pos)
		}
	}
	if b.TicksUntilWanderers() != 1 {
		t.Errorf("TicksUntilWanderers = %d, want 1", b.TicksUntilWanderers())
	}

	// Both horizontal neighbours are free, so the wanderer must move now.
	b.GiveTurns()
	e, _ := b.Entity(start.ID)
	if e.Pos == start.Pos {
		t.Errorf("tick %d: wanderer did not move", freq)
	}
}

func TestWandererTick(t *testing.T) {
	b := core.NewBoard(1, 1, core.DefaultRules())
	tests := []struct {
		turn int
		want bool
	}{
		{0, false},
		{1, false},
		{19, false},
		{20, true},
		{40, true},
	}
	for _, tc := range tests {
		if got := b.WandererTick(tc.turn); got != tc.want {
			t.Errorf("WandererTick(%d) = %v, want %v", tc.turn, got, tc.want)
		}
	}
}

func TestWandererActsOncePerTick(t *testing.T) {
	b := mustParse(t, "R--", everyTick())
	b.SetShuffler(core.FixedOrder())

	b.GiveTurns()
	if got := b.String(); got != "-R-" {
		t.Errorf("render = %q, want %q", got, "-R-")
	}
}

func TestWanderersActInRowMajorOrder(t *testing.T) {
	// With a fixed order the top wanderer goes first and takes the only
	// free tile between them.
	b := mustParse(t, "R\n-\nR", everyTick())
	b.SetShuffler(core.FixedOrder())

	report := b.GiveTurns()
	if got := b.String(); got != "-\nR\nR" {
		t.Errorf("render = %q", got)
	}
	if len(report.Events) != 1 || report.Events[0].From != core.C(0, 0) {
		t.Errorf("events = %v", report.Events)
	}
}

func TestWandererStopsAfterFirstSuccess(t *testing.T) {
	b := mustParse(t, "---\n-R-\n---", everyTick())
	b.SetShuffler(core.FixedOrder())

	report := b.GiveTurns()
	if len(report.Events) != 1 {
		t.Fatalf("expected exactly one move, got %v", report.Events)
	}
	if got := b.String(); got != "---\nR--\n---" {
		t.Errorf("render = %q", got)
	}
}

func TestWandererUnlocksOnItsTurn(t *testing.T) {
	b := mustParse(t, "CR", everyTick())
	b.SetShuffler(core.FixedOrder())

	report := b.GiveTurns()
	if !report.Has(core.EventUnlocked) {
		t.Errorf("events = %v", report.Events)
	}
	if got := b.String(); got != "OR" {
		t.Errorf("render = %q, want %q", got, "OR")
	}
}

func TestSeekerTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{
			"left beats up",
			"--O--\n-----\nO-S--",
			"--O--\n-----\nOS---",
		},
		{
			"up beats right",
			"--O--\n-----\n--S-O",
			"--O--\n--S--\n----O",
		},
		{
			"nearest wins",
			"O--S-O",
			"O---SO",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.layout, everyTick())
			b.SetShuffler(core.FixedOrder())
			b.GiveTurns()
			if got := b.String(); got != tc.want {
				t.Errorf("render:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestSeekerSightLine(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"sees past agent", "OP-S---O", "OPS----O"},
		{"blocked by obstacle", "OB-S---O", "OB--S--O"},
		{"blocked by captured wanderer", "O@-S---O", "O@--S--O"},
		{
			"blocked by wanderer",
			"O\n-\n-\n-\nS\n-\nR\nO",
			"O\n-\n-\nS\n-\nR\n-\nO",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.layout, everyTick())
			b.SetShuffler(core.FixedOrder())
			b.GiveTurns()
			if got := b.String(); got != tc.want {
				t.Errorf("render:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestSeekerFallbackOnlyTriesLegalDirections(t *testing.T) {
	var offered [][]core.Dir
	record := func(dirs []core.Dir) {
		offered = append(offered, append([]core.Dir(nil), dirs...))
	}

	b := mustParse(t, "BS-", everyTick())
	b.SetShuffler(record)
	b.GiveTurns()

	if len(offered) != 1 || len(offered[0]) != 1 || offered[0][0] != core.DirRight {
		t.Errorf("seeker offered %v, want [[Right]]", offered)
	}
	if got := b.String(); got != "B-S" {
		t.Errorf("render = %q, want %q", got, "B-S")
	}

	offered = nil
	w := mustParse(t, "BR-", everyTick())
	w.SetShuffler(record)
	w.GiveTurns()
	if len(offered) != 1 || len(offered[0]) != 4 {
		t.Errorf("wanderer offered %v, want all four directions", offered)
	}
}

func TestSeekerWithNoLegalMoveStays(t *testing.T) {
	b := mustParse(t, "BSB", everyTick())
	report := b.GiveTurns()
	if got := b.String(); got != "BSB" {
		t.Errorf("render = %q", got)
	}
	if !report.Ended {
		t.Error("boxed seeker should end the game")
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func(seed int64) *core.Board {
		p := core.DefaultGenParams()
		p.Seed = seed
		p.Rules = core.Rules{Frequency: 2, TrapPoints: 10}
		b, err := core.Generate(p)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		cmds := rand.New(rand.NewSource(seed * 31))
		for i := 0; i < 200; i++ {
			b.QueueCommand(core.Directions[cmds.Intn(4)])
			b.GiveTurns()
		}
		return b
	}

	a, b := run(7), run(7)
	if !a.Equal(b) {
		t.Errorf("replays diverged:\n%s\n\n%s", a, b)
	}
}

func TestRandShufflerIsPermutation(t *testing.T) {
	shuffle := core.NewRandShuffler(rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		dirs := core.Directions
		s := dirs[:]
		shuffle(s)
		seen := map[core.Dir]bool{}
		for _, d := range s {
			seen[d] = true
		}
		if len(seen) != 4 {
			t.Fatalf("shuffle lost directions: %v", s)
		}
	}
}
