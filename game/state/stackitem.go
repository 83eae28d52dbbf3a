package state

import "github.com/google/uuid"

// Zone names used for cast-from-zone metadata on stack items.
const (
	ZoneHand      = "hand"
	ZoneGraveyard = "graveyard"
	ZoneLibrary   = "library"
	ZoneExile     = "exile"
	ZoneCommand   = "command"
)

// StackItem is a spell or ability awaiting resolution, carrying the
// cast-time metadata that intervening-if clauses read ("if {r} was spent
// to cast it", "if it was kicked"). All metadata is optional: a nil
// ManaSpent map or an Unknown flag means that bookkeeping was not done
// and clauses over it cannot be decided.
type StackItem struct {
	ID         string
	Controller string
	Card       *Card

	// ManaSpent maps color symbols (W/U/B/R/G/C) to the amount of that
	// mana spent casting this item. nil means the breakdown is untracked.
	ManaSpent map[string]int

	Kicked       Tri
	Foretold     Tri
	CastFromZone string // one of the Zone constants; empty = untracked

	Targets []string
}

// NewStackItem creates a stack item for a card cast by a controller, with
// all cast-time metadata initially unknown.
func NewStackItem(card *Card, controller string) *StackItem {
	return &StackItem{
		ID:         uuid.NewString(),
		Controller: controller,
		Card:       card,
		Kicked:     TriUnknown,
		Foretold:   TriUnknown,
	}
}

// Name returns the stack item's card name.
func (si *StackItem) Name() string {
	if si == nil || si.Card == nil {
		return ""
	}
	return si.Card.Name
}

// ManaSpentOf returns how much mana of the given color symbol was spent to
// cast this item. ok is false when the breakdown is untracked.
func (si *StackItem) ManaSpentOf(symbol string) (int, bool) {
	if si == nil || si.ManaSpent == nil {
		return 0, false
	}
	return si.ManaSpent[symbol], true
}
