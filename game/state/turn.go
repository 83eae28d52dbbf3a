package state

import "strings"

// TurnTracking carries the per-turn event counters the state engine's
// watchers accumulate and reset each turn. Every map is optional: a nil
// map means that watcher was never installed for this game, and accessors
// over it report unknown. A non-nil map with a missing key means the
// tracking ran and counted zero for that key.
type TurnTracking struct {
	// Entered maps a card type (TypeLand, TypeCreature, ...) to
	// per-controller counts of permanents of that type that entered the
	// battlefield this turn.
	Entered map[string]map[string]int

	// EnteredIDs, where populated, lists the ids of this turn's entrants
	// per card type and controller. Used to answer "another X entered"
	// without guessing whether the ability's own source is among them.
	EnteredIDs map[string]map[string][]string

	// CreaturesDied counts creatures that died this turn per controller.
	CreaturesDied map[string]int

	// CreaturesDiedBySubtype counts deaths per controller and subtype
	// (subtype keys are lowercase).
	CreaturesDiedBySubtype map[string]map[string]int

	// SpellsCast counts spells cast this turn per caster.
	SpellsCast map[string]int

	// SpellsCastLastTurn counts spells cast during the previous turn per
	// caster.
	SpellsCastLastTurn map[string]int

	LifeGained  map[string]int
	LifeLost    map[string]int
	CardsDrawn  map[string]int
	LandsPlayed map[string]int

	// AttackedThisTurn records, per player id, whether that player
	// declared an attack this turn. Positive-only in spirit but stored
	// as a tracked map: nil means no attack watcher ran.
	AttackedThisTurn map[string]bool

	// PermanentsAttackedThisTurn lists creature ids that attacked at any
	// point this turn (including removed-from-combat attackers).
	PermanentsAttackedThisTurn map[string]bool
}

// EnteredCount returns how many permanents of the card type entered the
// battlefield under the controller this turn. ok is false when entries of
// that type are untracked.
func (t *TurnTracking) EnteredCount(cardType, controller string) (int, bool) {
	if t == nil || t.Entered == nil {
		return 0, false
	}
	byController, ok := t.Entered[cardType]
	if !ok || byController == nil {
		return 0, false
	}
	return byController[controller], true
}

// EnteredTotal returns how many permanents of the card type entered the
// battlefield this turn under any player.
func (t *TurnTracking) EnteredTotal(cardType string) (int, bool) {
	if t == nil || t.Entered == nil {
		return 0, false
	}
	byController, ok := t.Entered[cardType]
	if !ok || byController == nil {
		return 0, false
	}
	total := 0
	for _, n := range byController {
		total += n
	}
	return total, true
}

// EnteredIDsOf returns the tracked entrant ids for the card type and
// controller, or nil when id tracking is absent for that type.
func (t *TurnTracking) EnteredIDsOf(cardType, controller string) []string {
	if t == nil || t.EnteredIDs == nil {
		return nil
	}
	byController := t.EnteredIDs[cardType]
	if byController == nil {
		return nil
	}
	return byController[controller]
}

// CreaturesDiedCount returns how many creatures died this turn in total.
func (t *TurnTracking) CreaturesDiedCount() (int, bool) {
	if t == nil || t.CreaturesDied == nil {
		return 0, false
	}
	total := 0
	for _, n := range t.CreaturesDied {
		total += n
	}
	return total, true
}

// CreaturesDiedUnder returns how many creatures died this turn under the
// given controller.
func (t *TurnTracking) CreaturesDiedUnder(controller string) (int, bool) {
	if t == nil || t.CreaturesDied == nil {
		return 0, false
	}
	return t.CreaturesDied[controller], true
}

// CreaturesDiedWithSubtype returns how many creatures with the subtype
// died this turn under the controller. An empty controller sums across
// all players.
func (t *TurnTracking) CreaturesDiedWithSubtype(controller, subtype string) (int, bool) {
	if t == nil || t.CreaturesDiedBySubtype == nil {
		return 0, false
	}
	key := strings.ToLower(subtype)
	if controller != "" {
		bySubtype := t.CreaturesDiedBySubtype[controller]
		if bySubtype == nil {
			return 0, true
		}
		return bySubtype[key], true
	}
	total := 0
	for _, bySubtype := range t.CreaturesDiedBySubtype {
		total += bySubtype[key]
	}
	return total, true
}

// SpellsCastCount returns the total number of spells cast this turn.
func (t *TurnTracking) SpellsCastCount() (int, bool) {
	if t == nil || t.SpellsCast == nil {
		return 0, false
	}
	total := 0
	for _, n := range t.SpellsCast {
		total += n
	}
	return total, true
}

// SpellsCastBy returns the number of spells the player cast this turn.
func (t *TurnTracking) SpellsCastBy(player string) (int, bool) {
	if t == nil || t.SpellsCast == nil {
		return 0, false
	}
	return t.SpellsCast[player], true
}

// SpellsCastLastTurnCount returns the total number of spells cast during
// the previous turn.
func (t *TurnTracking) SpellsCastLastTurnCount() (int, bool) {
	if t == nil || t.SpellsCastLastTurn == nil {
		return 0, false
	}
	total := 0
	for _, n := range t.SpellsCastLastTurn {
		total += n
	}
	return total, true
}

// LifeGainedBy returns the life the player gained this turn.
func (t *TurnTracking) LifeGainedBy(player string) (int, bool) {
	if t == nil || t.LifeGained == nil {
		return 0, false
	}
	return t.LifeGained[player], true
}

// LifeLostBy returns the life the player lost this turn.
func (t *TurnTracking) LifeLostBy(player string) (int, bool) {
	if t == nil || t.LifeLost == nil {
		return 0, false
	}
	return t.LifeLost[player], true
}

// CardsDrawnBy returns the number of cards the player drew this turn.
func (t *TurnTracking) CardsDrawnBy(player string) (int, bool) {
	if t == nil || t.CardsDrawn == nil {
		return 0, false
	}
	return t.CardsDrawn[player], true
}

// LandsPlayedBy returns the number of lands the player played this turn.
func (t *TurnTracking) LandsPlayedBy(player string) (int, bool) {
	if t == nil || t.LandsPlayed == nil {
		return 0, false
	}
	return t.LandsPlayed[player], true
}

// PlayerAttackedThisTurn reports whether the player declared attackers
// this turn.
func (t *TurnTracking) PlayerAttackedThisTurn(player string) Tri {
	if t == nil || t.AttackedThisTurn == nil {
		return TriUnknown
	}
	return TriOf(t.AttackedThisTurn[player])
}

// PermanentAttackedThisTurn reports whether the creature with the given id
// attacked at any point this turn.
func (t *TurnTracking) PermanentAttackedThisTurn(id string) Tri {
	if t == nil || t.PermanentsAttackedThisTurn == nil {
		return TriUnknown
	}
	return TriOf(t.PermanentsAttackedThisTurn[id])
}
