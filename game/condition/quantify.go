package condition

import "github.com/magefree/mage-conditions-go/game/state"

// existsTri applies an existential quantifier over a tri-valued predicate:
// any definite yes satisfies; otherwise any unknown member leaves the
// question open; a definite no requires every member to be a definite no.
func existsTri(perms []*state.Permanent, pred func(*state.Permanent) state.Tri) state.Tri {
	result := state.TriFalse
	for _, p := range perms {
		switch pred(p) {
		case state.TriTrue:
			return state.TriTrue
		case state.TriUnknown:
			result = state.TriUnknown
		}
	}
	return result
}

// thresholdTri applies "min or more members satisfy the predicate" where
// individual memberships may be unknown: the count of definite yeses is
// the lower bound and definite nos cap the upper bound. Satisfied when
// the lower bound reaches min, NotSatisfied when even counting every
// unknown as a yes cannot reach min, Unknown in between.
func thresholdTri(perms []*state.Permanent, min int, pred func(*state.Permanent) state.Tri) state.Tri {
	yes, unknown := 0, 0
	for _, p := range perms {
		switch pred(p) {
		case state.TriTrue:
			yes++
		case state.TriUnknown:
			unknown++
		}
	}
	if yes >= min {
		return state.TriTrue
	}
	if yes+unknown < min {
		return state.TriFalse
	}
	return state.TriUnknown
}
