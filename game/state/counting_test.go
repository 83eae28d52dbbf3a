package state

import "testing"

func testSnapshot(perms ...*Permanent) *Snapshot {
	return &Snapshot{
		Players: []*Player{
			{ID: "alice", Name: "Alice", Life: 20},
			{ID: "bob", Name: "Bob", Life: 20},
		},
		Battlefield: perms,
	}
}

func TestCountControlledOfType(t *testing.T) {
	snap := testSnapshot(
		NewPermanent(NewCard("Forest", "Basic Land — Forest"), "alice"),
		NewPermanent(NewCard("Forest", "Basic Land — Forest"), "alice"),
		NewPermanent(NewCard("Grizzly Bears", "Creature — Bear"), "alice"),
		NewPermanent(NewCard("Island", "Basic Land — Island"), "bob"),
	)

	if n := snap.CountControlledOfType("alice", TypeLand); n != 2 {
		t.Errorf("Expected 2 lands for alice, got %d", n)
	}
	if n := snap.CountControlledOfType("bob", TypeLand); n != 1 {
		t.Errorf("Expected 1 land for bob, got %d", n)
	}
	if n := snap.CountControlledOfType("alice", TypeCreature); n != 1 {
		t.Errorf("Expected 1 creature for alice, got %d", n)
	}
}

func TestCountBasicLands(t *testing.T) {
	snap := testSnapshot(
		NewPermanent(NewCard("Plains", "Basic Land — Plains"), "alice"),
		NewPermanent(NewCard("Temple Garden", "Land — Forest Plains"), "alice"),
	)

	if n := snap.CountBasicLands("alice"); n != 1 {
		t.Errorf("Expected 1 basic land, got %d", n)
	}
}

func TestCountCreaturesWithWord(t *testing.T) {
	knight := NewPermanent(NewCard("Dark Knight of the Woods", "Creature — Human"), "alice")
	subtypeKnight := NewPermanent(NewCard("Silverblade", "Creature — Human Knight"), "alice")
	knighthood := NewPermanent(NewCard("Knighthood", "Enchantment"), "alice")
	almostKnight := NewPermanent(NewCard("Knightly Valor Bearer", "Creature — Human"), "alice")

	snap := testSnapshot(knight, subtypeKnight, knighthood, almostKnight)

	if n := snap.CountCreaturesWithWord("alice", "Knight"); n != 2 {
		t.Errorf("Expected 2 knights (name word + subtype), got %d", n)
	}
}

func TestCountControlledNamed(t *testing.T) {
	snap := testSnapshot(
		NewPermanent(NewCard("Relentless Rats", "Creature — Rat"), "alice"),
		NewPermanent(NewCard("Relentless Rats", "Creature — Rat"), "alice"),
		NewPermanent(NewCard("Rat Colony", "Creature — Rat"), "alice"),
	)

	if n := snap.CountControlledNamed("alice", "relentless rats"); n != 2 {
		t.Errorf("Expected 2 named matches, got %d", n)
	}
}
