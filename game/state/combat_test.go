package state

import "testing"

func TestIsAttacking_PrefersDeclaration(t *testing.T) {
	attacker := NewPermanent(NewCard("Raider", "Creature — Human"), "alice")
	// Removed from combat: live flag cleared, declaration remembered.
	attacker.Attacking = false

	snap := &Snapshot{
		Battlefield: []*Permanent{attacker},
		Combat: &CombatTracking{
			Attackers: map[string]string{attacker.ID: "bob"},
		},
	}

	if !snap.IsAttacking(attacker) {
		t.Error("Expected declared attacker to count as attacking")
	}

	// Without a declaration snapshot, fall back to the live flag.
	snap.Combat = nil
	if snap.IsAttacking(attacker) {
		t.Error("Expected live flag to rule without a declaration")
	}
}

func TestDeclaredAttackerCount(t *testing.T) {
	a1 := NewPermanent(NewCard("Raider", "Creature — Human"), "alice")
	a2 := NewPermanent(NewCard("Bandit", "Creature — Human"), "alice")
	b1 := NewPermanent(NewCard("Wall", "Creature — Wall"), "bob")

	snap := &Snapshot{
		Battlefield: []*Permanent{a1, a2, b1},
		Combat: &CombatTracking{
			Attackers: map[string]string{a1.ID: "bob", a2.ID: "bob"},
		},
	}

	n, ok := snap.DeclaredAttackerCount("alice")
	if !ok || n != 2 {
		t.Errorf("Expected 2 attackers for alice, got %d (ok=%v)", n, ok)
	}
	n, ok = snap.DeclaredAttackerCount("")
	if !ok || n != 2 {
		t.Errorf("Expected 2 attackers total, got %d (ok=%v)", n, ok)
	}

	snap.Combat = nil
	if _, ok := snap.DeclaredAttackerCount("alice"); ok {
		t.Error("Expected no count without a declaration snapshot")
	}
}

func TestCreatureAttackingPlayer_UntargetedAttacker(t *testing.T) {
	a1 := NewPermanent(NewCard("Raider", "Creature — Human"), "alice")
	a1.Attacking = true // target untracked

	snap := &Snapshot{Battlefield: []*Permanent{a1}}

	if got := snap.CreatureAttackingPlayer("bob"); got != TriUnknown {
		t.Errorf("Expected UNKNOWN with an untargeted attacker, got %s", got)
	}

	// A second attacker with a tracked target on bob decides it.
	a2 := NewPermanent(NewCard("Bandit", "Creature — Human"), "alice")
	a2.Attacking = true
	a2.AttackingTarget = "bob"
	snap.Battlefield = append(snap.Battlefield, a2)

	if got := snap.CreatureAttackingPlayer("bob"); got != TriTrue {
		t.Errorf("Expected TRUE with a tracked attack on bob, got %s", got)
	}
}

func TestIsEnchanted_UnresolvedAttachment(t *testing.T) {
	creature := NewPermanent(NewCard("Bear", "Creature — Bear"), "alice")
	aura := NewPermanent(NewCard("Pacifism", "Enchantment — Aura"), "bob")
	creature.AttachmentIDs = []string{aura.ID}

	snap := &Snapshot{Battlefield: []*Permanent{creature, aura}}
	if got := snap.IsEnchanted(creature); got != TriTrue {
		t.Errorf("Expected TRUE with an aura attached, got %s", got)
	}
	if got := snap.IsEquipped(creature); got != TriFalse {
		t.Errorf("Expected FALSE for equipment, got %s", got)
	}

	// Attachment id that no longer resolves: stale link, unknown.
	creature.AttachmentIDs = []string{"gone"}
	if got := snap.IsEnchanted(creature); got != TriUnknown {
		t.Errorf("Expected UNKNOWN for unresolved attachment, got %s", got)
	}

	creature.AttachmentIDs = nil
	if got := snap.IsEnchanted(creature); got != TriFalse {
		t.Errorf("Expected FALSE with no attachments, got %s", got)
	}
}

func TestHasKeyword(t *testing.T) {
	creature := NewPermanent(NewCard("Serra Angel", "Creature — Angel"), "alice")
	creature.Card.OracleText = "Flying, vigilance"

	snap := &Snapshot{Battlefield: []*Permanent{creature}}

	if got := snap.HasKeyword(creature, "flying"); got != TriTrue {
		t.Errorf("Expected TRUE from oracle text, got %s", got)
	}
	// "vigilance" inside a longer word must not match.
	creature.Card.OracleText = "Nonvigilance text"
	if got := snap.HasKeyword(creature, "vigilance"); got != TriUnknown {
		t.Errorf("Expected UNKNOWN without ability data, got %s", got)
	}

	creature.HasAbilityData = true
	if got := snap.HasKeyword(creature, "vigilance"); got != TriFalse {
		t.Errorf("Expected FALSE with ability data present, got %s", got)
	}

	creature.GrantedAbilities = []string{"Vigilance"}
	if got := snap.HasKeyword(creature, "vigilance"); got != TriTrue {
		t.Errorf("Expected TRUE from granted ability, got %s", got)
	}

	fish := NewPermanent(NewCard("Fish", "Creature — Fish"), "alice")
	fish.Counters = map[string]int{"flying": 1}
	if got := snap.HasKeyword(fish, "flying"); got != TriTrue {
		t.Errorf("Expected TRUE from keyword counter, got %s", got)
	}
}

func TestAttachedPermanent(t *testing.T) {
	creature := NewPermanent(NewCard("Bear", "Creature — Bear"), "alice")
	aura := NewPermanent(NewCard("Rancor", "Enchantment — Aura"), "alice")
	aura.AttachedToID = creature.ID

	snap := &Snapshot{Battlefield: []*Permanent{creature, aura}}

	target, ok := snap.AttachedPermanent(aura)
	if !ok || target.ID != creature.ID {
		t.Errorf("Expected attachment to resolve to the bear, got %v (ok=%v)", target, ok)
	}

	aura.AttachedToID = "gone"
	if _, ok := snap.AttachedPermanent(aura); ok {
		t.Error("Expected stale attachment link to not resolve")
	}
}
