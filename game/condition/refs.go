package condition

// Refs is the optional bag of contextual references the trigger engine
// supplies when a clause mentions entities the evaluator cannot derive
// from the snapshot and source permanent alone ("that player", "the
// defending player", "those creatures", the triggering stack item).
// Refs are supplied fresh per call and never mutated by the evaluator.
type Refs struct {
	ThatPlayerID      string
	DefendingPlayerID string
	ThoseCreatureIDs  []string
	StackItemID       string

	// Extra carries engine-specific references that do not warrant a
	// typed field.
	Extra map[string]string
}

func (r *Refs) thatPlayer() string {
	if r == nil {
		return ""
	}
	return r.ThatPlayerID
}

func (r *Refs) defendingPlayer() string {
	if r == nil {
		return ""
	}
	return r.DefendingPlayerID
}

func (r *Refs) thoseCreatures() []string {
	if r == nil {
		return nil
	}
	return r.ThoseCreatureIDs
}

func (r *Refs) stackItem() string {
	if r == nil {
		return ""
	}
	return r.StackItemID
}
