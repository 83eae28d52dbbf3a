package state

import "strings"

// PermanentsControlled returns the battlefield objects controlled by the
// given player.
func (s *Snapshot) PermanentsControlled(controller string) []*Permanent {
	if s == nil {
		return nil
	}
	var out []*Permanent
	for _, p := range s.Battlefield {
		if p.Controller == controller {
			out = append(out, p)
		}
	}
	return out
}

// CountControlled counts permanents under the controller satisfying the
// predicate. The battlefield is fully visible, so the result is always
// known.
func (s *Snapshot) CountControlled(controller string, pred func(*Permanent) bool) int {
	count := 0
	for _, p := range s.PermanentsControlled(controller) {
		if pred == nil || pred(p) {
			count++
		}
	}
	return count
}

// CountControlledOfType counts permanents of the card type under the
// controller.
func (s *Snapshot) CountControlledOfType(controller, cardType string) int {
	return s.CountControlled(controller, func(p *Permanent) bool {
		return p.IsType(cardType)
	})
}

// CountControlledWithSubType counts permanents with the subtype under the
// controller.
func (s *Snapshot) CountControlledWithSubType(controller, subType string) int {
	return s.CountControlled(controller, func(p *Permanent) bool {
		return p.HasSubType(subType)
	})
}

// CountControlledNamed counts permanents with the exact card name, matched
// case-insensitively.
func (s *Snapshot) CountControlledNamed(controller, name string) int {
	return s.CountControlled(controller, func(p *Permanent) bool {
		return strings.EqualFold(p.Name(), name)
	})
}

// CountBasicLands counts basic lands under the controller.
func (s *Snapshot) CountBasicLands(controller string) int {
	return s.CountControlled(controller, func(p *Permanent) bool {
		return p.Card.IsBasicLand()
	})
}

// CountCreaturesWithWord counts creatures under the controller whose
// subtype list or card name contains the given word on a word boundary,
// case-insensitively. This is the matcher for clauses like "if you
// control a knight", where "Dark Knight of the Woods" counts but
// "Knighthood" does not.
func (s *Snapshot) CountCreaturesWithWord(controller, word string) int {
	return s.CountControlled(controller, func(p *Permanent) bool {
		if !p.IsType(TypeCreature) {
			return false
		}
		return p.HasSubType(word) || nameContainsWord(p.Name(), word)
	})
}

// nameContainsWord reports whether name contains word as a whole word,
// case-insensitively.
func nameContainsWord(name, word string) bool {
	if name == "" || word == "" {
		return false
	}
	for _, field := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\''
	}) {
		if strings.EqualFold(field, word) {
			return true
		}
	}
	return false
}
