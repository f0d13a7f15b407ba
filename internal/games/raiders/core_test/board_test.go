package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-raiders/internal/games/raiders/core"
)

// mustParse builds a board from a layout or fails the test.
func mustParse(t *testing.T, layout string, rules core.Rules) *core.Board {
	t.Helper()
	b, err := core.ParseLayout(layout, rules)
	if err != nil {
		t.Fatalf("ParseLayout(%q): %v", layout, err)
	}
	return b
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestOccupantsOutOfBounds(t *testing.T) {
	b := core.NewBoard(3, 2, core.DefaultRules())
	b.AddAgent(core.C(0, 0))

	for _, c := range []core.Coord{core.C(-1, 0), core.C(3, 0), core.C(0, -1), core.C(0, 2), core.C(5, 5)} {
		if occ := b.Occupants(c); len(occ) != 0 {
			t.Errorf("Occupants(%v) = %v, want empty", c, occ)
		}
	}

	for y := -1; y <= b.H; y++ {
		for x := -1; x <= b.W; x++ {
			want := x >= 0 && x < 3 && y >= 0 && y < 2
			if got := b.InBounds(core.C(x, y)); got != want {
				t.Errorf("InBounds(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestOccupantsAreCopies(t *testing.T) {
	b := mustParse(t, "PO", core.DefaultRules())

	occ := b.Occupants(core.C(1, 0))
	if len(occ) != 1 {
		t.Fatalf("expected 1 occupant, got %d", len(occ))
	}
	occ[0].Locked = true

	if b.String() != "PO" {
		t.Errorf("mutating a copy changed the board: %q", b.String())
	}
}

func TestPlaceWandererInOpenContainer(t *testing.T) {
	b := core.NewBoard(2, 1, core.DefaultRules())
	b.AddContainer(core.C(0, 0), false)
	id := b.AddWanderer(core.C(0, 0))

	e, _ := b.Entity(id)
	if !e.Captured {
		t.Error("wanderer placed in open container should be captured")
	}
	if got := b.String(); got != "@-" {
		t.Errorf("render = %q, want %q", got, "@-")
	}
	occ := b.Occupants(core.C(0, 0))
	if len(occ) != 2 || occ[0].Kind != core.KindContainer || occ[1].Kind != core.KindWanderer {
		t.Errorf("unexpected stack %v", occ)
	}
}

func TestPlaceViolationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *core.Board)
	}{
		{"two obstacles", func(b *core.Board) {
			b.AddObstacle(core.C(0, 0))
			b.AddObstacle(core.C(0, 0))
		}},
		{"wanderer on locked container", func(b *core.Board) {
			b.AddContainer(core.C(0, 0), true)
			b.AddWanderer(core.C(0, 0))
		}},
		{"agent on open container", func(b *core.Board) {
			b.AddContainer(core.C(0, 0), false)
			b.AddAgent(core.C(0, 0))
		}},
		{"third occupant", func(b *core.Board) {
			b.AddContainer(core.C(0, 0), false)
			b.AddWanderer(core.C(0, 0))
			b.AddSeeker(core.C(0, 0))
		}},
		{"second agent", func(b *core.Board) {
			b.AddAgent(core.C(0, 0))
			b.AddAgent(core.C(1, 0))
		}},
		{"out of bounds", func(b *core.Board) {
			b.AddObstacle(core.C(2, 0))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := core.NewBoard(2, 2, core.DefaultRules())
			expectPanic(t, tc.name, func() { tc.fn(b) })
		})
	}
}

func TestNewBoardInvalidSizePanics(t *testing.T) {
	expectPanic(t, "zero width", func() { core.NewBoard(0, 3, core.DefaultRules()) })
	expectPanic(t, "negative height", func() { core.NewBoard(3, -1, core.DefaultRules()) })
}

func TestLayoutRoundTrip(t *testing.T) {
	layouts := []string{
		"P-B\nRSC\nO@-",
		"----\n-BB-\n----",
		"@",
	}
	for _, layout := range layouts {
		b := mustParse(t, layout, core.DefaultRules())
		if got := b.String(); got != layout {
			t.Errorf("round trip:\n got %q\nwant %q", got, layout)
		}
	}
}

func TestLayoutCapturedGlyphBuildsContainerThenWanderer(t *testing.T) {
	b := mustParse(t, "@", core.DefaultRules())

	occ := b.Occupants(core.C(0, 0))
	if len(occ) != 2 {
		t.Fatalf("expected 2 occupants, got %d", len(occ))
	}
	if occ[0].Kind != core.KindContainer || occ[0].Locked {
		t.Errorf("first occupant = %+v, want open container", occ[0])
	}
	if occ[1].Kind != core.KindWanderer || !occ[1].Captured {
		t.Errorf("second occupant = %+v, want captured plain wanderer", occ[1])
	}
}

func TestLayoutLineEndings(t *testing.T) {
	b := mustParse(t, "P-\r\n-R\r\n", core.DefaultRules())
	if b.W != 2 || b.H != 2 {
		t.Fatalf("size = %dx%d, want 2x2", b.W, b.H)
	}
	if got := b.String(); got != "P-\n-R" {
		t.Errorf("render = %q", got)
	}
}

func TestLayoutTrailingWhitespace(t *testing.T) {
	layouts := []string{
		"P-  \n-R",
		"P-\t\n-R",
		"P-\n-R  ",
		"P- \n-R\t",
	}
	for _, layout := range layouts {
		b := mustParse(t, layout, core.DefaultRules())
		if b.W != 2 || b.H != 2 {
			t.Errorf("%q: size = %dx%d, want 2x2", layout, b.W, b.H)
		}
		if got := b.String(); got != "P-\n-R" {
			t.Errorf("%q: render = %q", layout, got)
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", core.ErrEmptyLayout},
		{"blank lines", "\n\n", core.ErrEmptyLayout},
		{"ragged", "P--\n--", core.ErrRaggedLayout},
		{"unknown glyph", "P-X", core.ErrUnknownGlyph},
		{"two agents", "P-P", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseLayout(tc.layout, core.DefaultRules())
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadResetsBoard(t *testing.T) {
	rules := core.Rules{Frequency: 3, TrapPoints: 7}
	b := mustParse(t, "P--\n-R-", rules)
	b.QueueCommand(core.DirRight)
	b.GiveTurns()

	if err := b.Load("R-\nBP"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Turns != 0 || b.Ended {
		t.Errorf("counters not reset: turns=%d ended=%v", b.Turns, b.Ended)
	}
	if b.W != 2 || b.H != 2 {
		t.Errorf("size = %dx%d, want 2x2", b.W, b.H)
	}
	if b.Rules() != rules {
		t.Errorf("rules = %+v, want %+v", b.Rules(), rules)
	}
	a, ok := b.Agent()
	if !ok || a.Pos != core.C(1, 1) {
		t.Errorf("agent = %+v, %v", a, ok)
	}
	if len(b.Entities()) != 3 {
		t.Errorf("entities = %d, want 3", len(b.Entities()))
	}
}

func TestLoadErrorLeavesBoard(t *testing.T) {
	b := mustParse(t, "P-R", core.DefaultRules())
	before := b.Clone()

	if err := b.Load("P-\n-"); err == nil {
		t.Fatal("expected error")
	}
	if !b.Equal(before) {
		t.Error("failed load modified the board")
	}
}

func TestRulesNormalized(t *testing.T) {
	b := core.NewBoard(1, 1, core.Rules{Frequency: 0, TrapPoints: -3})
	if r := b.Rules(); r.Frequency != 1 || r.TrapPoints != 0 {
		t.Errorf("rules = %+v, want {1 0}", r)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := mustParse(t, "P-", core.DefaultRules())
	c := b.Clone()

	b.QueueCommand(core.DirRight)
	b.GiveTurns()

	if c.String() != "P-" || c.Turns != 0 {
		t.Errorf("clone changed: %q turns=%d", c.String(), c.Turns)
	}
	if b.Equal(c) {
		t.Error("boards should differ after a tick")
	}
}
