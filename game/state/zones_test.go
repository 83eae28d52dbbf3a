package state

import "testing"

func TestLibrarySize_Visibility(t *testing.T) {
	hidden := &Player{ID: "alice"}
	if _, ok := hidden.LibrarySize(); ok {
		t.Error("Expected nil library to be invisible")
	}

	empty := &Player{ID: "alice", Library: []*Card{}}
	n, ok := empty.LibrarySize()
	if !ok || n != 0 {
		t.Errorf("Expected visible empty library, got %d (ok=%v)", n, ok)
	}
}

func TestTopOfLibrary(t *testing.T) {
	p := &Player{
		Library: []*Card{
			NewCard("Bottom", "Creature — Bear"),
			NewCard("Top", "Instant"),
		},
	}

	top, ok := p.TopOfLibrary()
	if !ok || top.Name != "Top" {
		t.Errorf("Expected Top, got %v (ok=%v)", top, ok)
	}

	hidden := &Player{}
	if _, ok := hidden.TopOfLibrary(); ok {
		t.Error("Expected no top card from invisible library")
	}
}

func TestGraveyardCardTypeCount(t *testing.T) {
	p := &Player{
		Graveyard: []*Card{
			NewCard("Bear", "Creature — Bear"),
			NewCard("Shock", "Instant"),
			NewCard("Bolt", "Instant"),
			NewCard("Signet", "Artifact"),
			NewCard("Memnite", "Artifact Creature — Construct"),
		},
	}

	// Creature, Instant, Artifact: the artifact creature adds no new type.
	if n := p.GraveyardCardTypeCount(); n != 3 {
		t.Errorf("Expected 3 card types, got %d", n)
	}
}

func TestOnlyCreatureCardInGraveyard(t *testing.T) {
	p := &Player{
		Graveyard: []*Card{
			NewCard("Vengevine", "Creature — Elemental"),
			NewCard("Shock", "Instant"),
		},
	}

	if got := p.OnlyCreatureCardInGraveyard("Vengevine"); got != TriTrue {
		t.Errorf("Expected TRUE, got %s", got)
	}

	p.Graveyard = append(p.Graveyard, NewCard("Bear", "Creature — Bear"))
	if got := p.OnlyCreatureCardInGraveyard("Vengevine"); got != TriFalse {
		t.Errorf("Expected FALSE with a second creature, got %s", got)
	}
}

func TestGraveyardCardAbove(t *testing.T) {
	p := &Player{
		Graveyard: []*Card{
			NewCard("Below", "Instant"),
			NewCard("Target", "Creature — Bear"),
			NewCard("Above", "Sorcery"),
		},
	}

	above, ok := p.GraveyardCardAbove("Target")
	if !ok || above.Name != "Above" {
		t.Errorf("Expected Above, got %v (ok=%v)", above, ok)
	}
	if _, ok := p.GraveyardCardAbove("Above"); ok {
		t.Error("Expected no card above the top card")
	}
	if _, ok := p.GraveyardCardAbove("Missing"); ok {
		t.Error("Expected no result for a missing card")
	}
}

func TestPlayerCounterCount(t *testing.T) {
	p := &Player{Counters: map[string]int{"poison": 3, "Energy": 2}}

	if n := p.CounterCount("Poison"); n != 3 {
		t.Errorf("Expected 3 poison, got %d", n)
	}
	if n := p.CounterCount("energy"); n != 2 {
		t.Errorf("Expected 2 energy, got %d", n)
	}
	if n := p.CounterCount("experience"); n != 0 {
		t.Errorf("Expected 0 experience, got %d", n)
	}
}
