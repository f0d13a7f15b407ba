package core

import "testing"

func TestInputFrameLastMove(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionUp)

	if f.Last != ActionUp {
		t.Errorf("Last = %v, want Up", f.Last)
	}
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("all actions should be recorded")
	}

	clone := f.Clone()
	f.Clear()
	if f.Last != ActionNone || f.Has(ActionUp) {
		t.Error("Clear should reset the frame")
	}
	if clone.Last != ActionUp || !clone.Has(ActionPause) {
		t.Error("Clone should be independent")
	}
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsMove() {
			t.Errorf("%v should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionNext, ActionPause, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%v should not be a move", a)
		}
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set should allocate the map")
	}
}
