package state

import "testing"

func TestTri_Not(t *testing.T) {
	if TriTrue.Not() != TriFalse {
		t.Error("Expected Not(true) = false")
	}
	if TriFalse.Not() != TriTrue {
		t.Error("Expected Not(false) = true")
	}
	if TriUnknown.Not() != TriUnknown {
		t.Error("Expected Not(unknown) = unknown")
	}
}

func TestTri_AndOr(t *testing.T) {
	// Unknown short-circuits only where the other operand decides.
	if TriFalse.And(TriUnknown) != TriFalse {
		t.Error("Expected false AND unknown = false")
	}
	if TriTrue.And(TriUnknown) != TriUnknown {
		t.Error("Expected true AND unknown = unknown")
	}
	if TriTrue.Or(TriUnknown) != TriTrue {
		t.Error("Expected true OR unknown = true")
	}
	if TriFalse.Or(TriUnknown) != TriUnknown {
		t.Error("Expected false OR unknown = unknown")
	}
	if TriTrue.And(TriTrue) != TriTrue {
		t.Error("Expected true AND true = true")
	}
	if TriFalse.Or(TriFalse) != TriFalse {
		t.Error("Expected false OR false = false")
	}
}

func TestTri_Known(t *testing.T) {
	if TriUnknown.Known() {
		t.Error("Expected unknown to not be known")
	}
	if !TriTrue.Known() || !TriFalse.Known() {
		t.Error("Expected true and false to be known")
	}
	if !TriTrue.True() || TriFalse.True() || TriUnknown.True() {
		t.Error("Expected only TriTrue to be True")
	}
}
