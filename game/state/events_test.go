package state

import "testing"

func TestEnteredThisTurn(t *testing.T) {
	snap := &Snapshot{
		Turn: &TurnTracking{
			Entered: map[string]map[string]int{
				TypeLand: {"alice": 2},
			},
		},
	}

	if got := snap.EnteredThisTurn(TypeLand, "alice", 1); got != TriTrue {
		t.Errorf("Expected TRUE for 2 >= 1, got %s", got)
	}
	if got := snap.EnteredThisTurn(TypeLand, "alice", 3); got != TriFalse {
		t.Errorf("Expected FALSE for 2 >= 3, got %s", got)
	}
	// Non-nil type map with missing player means tracked zero.
	if got := snap.EnteredThisTurn(TypeLand, "bob", 1); got != TriFalse {
		t.Errorf("Expected FALSE for tracked zero, got %s", got)
	}
	// Untracked type means unknown.
	if got := snap.EnteredThisTurn(TypeCreature, "alice", 1); got != TriUnknown {
		t.Errorf("Expected UNKNOWN for untracked type, got %s", got)
	}
}

func TestAnotherEnteredThisTurn_IDTracked(t *testing.T) {
	source := NewPermanent(NewCard("Scute Swarm", "Creature — Insect"), "alice")
	snap := &Snapshot{
		Turn: &TurnTracking{
			EnteredIDs: map[string]map[string][]string{
				TypeCreature: {"alice": {source.ID}},
			},
		},
	}

	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriFalse {
		t.Errorf("Expected FALSE when the only entrant is the source, got %s", got)
	}

	snap.Turn.EnteredIDs[TypeCreature]["alice"] = []string{source.ID, "other-id"}
	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriTrue {
		t.Errorf("Expected TRUE with a second tracked entrant, got %s", got)
	}
}

func TestAnotherEnteredThisTurn_AggregateBoundary(t *testing.T) {
	source := NewPermanent(NewCard("Scute Swarm", "Creature — Insect"), "alice")
	snap := &Snapshot{
		Turn: &TurnTracking{
			Entered: map[string]map[string]int{
				TypeCreature: {"alice": 1},
			},
		},
	}

	// One entrant that may or may not be the source: cannot decide.
	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriUnknown {
		t.Errorf("Expected UNKNOWN at the one-entrant boundary, got %s", got)
	}

	// Source provably entered this turn, so the one entrant is it.
	source.EnteredThisTurn = TriTrue
	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriFalse {
		t.Errorf("Expected FALSE when the source is the entrant, got %s", got)
	}

	// Source provably did not enter, so the entrant is another creature.
	source.EnteredThisTurn = TriFalse
	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriTrue {
		t.Errorf("Expected TRUE when the source cannot be the entrant, got %s", got)
	}

	// Two entrants decide regardless of the source.
	source.EnteredThisTurn = TriUnknown
	snap.Turn.Entered[TypeCreature]["alice"] = 2
	if got := snap.AnotherEnteredThisTurn(TypeCreature, "alice", source); got != TriTrue {
		t.Errorf("Expected TRUE with two entrants, got %s", got)
	}

	// A source of the wrong type cannot be among land entrants.
	snap.Turn.Entered[TypeLand] = map[string]int{"alice": 1}
	if got := snap.AnotherEnteredThisTurn(TypeLand, "alice", source); got != TriTrue {
		t.Errorf("Expected TRUE when source type excludes it, got %s", got)
	}
}

func TestTurnTracking_NilSafety(t *testing.T) {
	var tr *TurnTracking

	if _, ok := tr.SpellsCastBy("alice"); ok {
		t.Error("Expected untracked spells to be not ok")
	}
	if got := tr.PlayerAttackedThisTurn("alice"); got != TriUnknown {
		t.Errorf("Expected UNKNOWN from nil tracking, got %s", got)
	}

	// Non-nil map, missing key: tracked zero.
	tr = &TurnTracking{SpellsCast: map[string]int{}}
	n, ok := tr.SpellsCastBy("alice")
	if !ok || n != 0 {
		t.Errorf("Expected tracked zero, got %d (ok=%v)", n, ok)
	}
}

func TestCreaturesDiedWithSubtype(t *testing.T) {
	tr := &TurnTracking{
		CreaturesDiedBySubtype: map[string]map[string]int{
			"alice": {"zombie": 2},
		},
	}

	n, ok := tr.CreaturesDiedWithSubtype("alice", "Zombie")
	if !ok || n != 2 {
		t.Errorf("Expected 2 zombies died, got %d (ok=%v)", n, ok)
	}
	n, ok = tr.CreaturesDiedWithSubtype("", "zombie")
	if !ok || n != 2 {
		t.Errorf("Expected 2 zombies across players, got %d (ok=%v)", n, ok)
	}
	n, ok = tr.CreaturesDiedWithSubtype("bob", "zombie")
	if !ok || n != 0 {
		t.Errorf("Expected tracked zero for bob, got %d (ok=%v)", n, ok)
	}
}
