package state

// EnteredThisTurn reports whether at least min permanents of the card type
// entered the battlefield under the controller this turn. Unknown when
// that entry tracking is absent.
func (s *Snapshot) EnteredThisTurn(cardType, controller string, min int) Tri {
	if s == nil {
		return TriUnknown
	}
	n, ok := s.Turn.EnteredCount(cardType, controller)
	if !ok {
		return TriUnknown
	}
	return TriOf(n >= min)
}

// AnotherEnteredThisTurn reports whether a permanent of the card type
// other than exclude entered the battlefield under the controller this
// turn.
//
// When entrant ids are tracked the answer is exact. When only the
// aggregate count is tracked the source is subtracted only if it provably
// matches the type and provably entered this turn; at the evidence
// boundary (exactly one entrant that may or may not be the source) the
// result is deliberately Unknown.
func (s *Snapshot) AnotherEnteredThisTurn(cardType, controller string, exclude *Permanent) Tri {
	if s == nil {
		return TriUnknown
	}
	if ids := s.Turn.EnteredIDsOf(cardType, controller); ids != nil {
		for _, id := range ids {
			if exclude == nil || id != exclude.ID {
				return TriTrue
			}
		}
		return TriFalse
	}
	n, ok := s.Turn.EnteredCount(cardType, controller)
	if !ok {
		return TriUnknown
	}
	if exclude == nil {
		return TriOf(n >= 1)
	}
	if n >= 2 {
		return TriTrue
	}
	if n == 0 {
		return TriFalse
	}
	// Exactly one tracked entrant. If the source cannot have been it,
	// the entrant is another permanent.
	if !exclude.IsType(cardType) || exclude.Controller != controller {
		return TriTrue
	}
	if exclude.EnteredThisTurn == TriFalse {
		return TriTrue
	}
	if exclude.EnteredThisTurn == TriTrue {
		return TriFalse
	}
	return TriUnknown
}
