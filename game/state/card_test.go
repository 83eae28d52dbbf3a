package state

import "testing"

func TestNewCard_TypeLine(t *testing.T) {
	c := NewCard("Adeline, Resplendent Cathar", "Legendary Creature — Human Knight")

	if !c.HasSuperType(SuperTypeLegendary) {
		t.Error("Expected legendary supertype")
	}
	if !c.IsType(TypeCreature) {
		t.Error("Expected creature type")
	}
	if !c.HasSubType("Human") || !c.HasSubType("knight") {
		t.Error("Expected Human and Knight subtypes (case-insensitive)")
	}
	if c.IsType(TypeArtifact) {
		t.Error("Did not expect artifact type")
	}
}

func TestNewCard_BasicLand(t *testing.T) {
	c := NewCard("Snow-Covered Forest", "Basic Snow Land — Forest")

	if !c.IsBasicLand() {
		t.Error("Expected basic land")
	}
	if !c.HasSuperType(SuperTypeSnow) {
		t.Error("Expected snow supertype")
	}
	if !c.HasSubType("Forest") {
		t.Error("Expected Forest subtype")
	}
}

func TestCard_Colors(t *testing.T) {
	c := NewCard("Test", "Creature — Elf")
	c.Colors = []string{"G", "W"}

	if !c.HasColor("g") || !c.HasColor("W") {
		t.Error("Expected green and white")
	}
	if !c.IsMulticolored() {
		t.Error("Expected multicolored")
	}

	colorless := NewCard("Golem", "Artifact Creature — Golem")
	if !colorless.IsColorless() {
		t.Error("Expected colorless")
	}
	if colorless.IsMulticolored() {
		t.Error("Did not expect multicolored")
	}
}

func TestIsBasicLandTypeName(t *testing.T) {
	for _, name := range []string{"Plains", "island", "WASTES"} {
		if !IsBasicLandTypeName(name) {
			t.Errorf("Expected %q to be a basic land type", name)
		}
	}
	if IsBasicLandTypeName("Knight") {
		t.Error("Did not expect Knight to be a basic land type")
	}
}

func TestPermanent_PowerWithCounters(t *testing.T) {
	c := NewCard("Bear", "Creature — Bear")
	c.Power, c.Toughness = "2", "2"
	p := NewPermanent(c, "alice")
	p.Counters = map[string]int{"+1/+1": 3, "charge": 2}

	power, ok := p.PowerValue()
	if !ok || power != 5 {
		t.Errorf("Expected power 5, got %d (ok=%v)", power, ok)
	}
	toughness, ok := p.ToughnessValue()
	if !ok || toughness != 5 {
		t.Errorf("Expected toughness 5, got %d (ok=%v)", toughness, ok)
	}
}

func TestPermanent_PowerStar(t *testing.T) {
	c := NewCard("Shapeshifter", "Creature — Shapeshifter")
	c.Power, c.Toughness = "*", "*"
	p := NewPermanent(c, "alice")

	if _, ok := p.PowerValue(); ok {
		t.Error("Expected star power to be unknown")
	}
}

func TestPermanent_Counters(t *testing.T) {
	p := NewPermanent(NewCard("Walker", "Planeswalker — Jace"), "alice")
	p.Counters = map[string]int{"loyalty": 4, "Loyalty": 1}

	if p.CounterCount("loyalty") != 4 {
		t.Errorf("Expected exact count 4, got %d", p.CounterCount("loyalty"))
	}
	if p.CounterCountFold("LOYALTY") != 5 {
		t.Errorf("Expected folded count 5, got %d", p.CounterCountFold("LOYALTY"))
	}
	if !p.HasCounter("loyalty") || p.HasCounter("charge") {
		t.Error("HasCounter mismatch")
	}
	if p.TotalCounters() != 5 {
		t.Errorf("Expected total 5, got %d", p.TotalCounters())
	}
}
