package state

import "strings"

// HandSize returns the number of cards in the player's hand.
func (p *Player) HandSize() int {
	if p == nil {
		return 0
	}
	return len(p.Hand)
}

// GraveyardSize returns the number of cards in the player's graveyard.
func (p *Player) GraveyardSize() int {
	if p == nil {
		return 0
	}
	return len(p.Graveyard)
}

// LibrarySize returns the number of cards in the player's library, or
// ok=false when library contents are not visible in this snapshot.
func (p *Player) LibrarySize() (int, bool) {
	if p == nil || p.Library == nil {
		return 0, false
	}
	return len(p.Library), true
}

// GraveyardCountByType counts cards of the given type in the graveyard.
func (p *Player) GraveyardCountByType(cardType string) int {
	if p == nil {
		return 0
	}
	count := 0
	for _, c := range p.Graveyard {
		if c.IsType(cardType) {
			count++
		}
	}
	return count
}

// OnlyCreatureCardInGraveyard reports whether the named card is the only
// creature card in the player's graveyard.
func (p *Player) OnlyCreatureCardInGraveyard(name string) Tri {
	if p == nil || name == "" {
		return TriUnknown
	}
	creatures := 0
	named := false
	for _, c := range p.Graveyard {
		if !c.IsType(TypeCreature) {
			continue
		}
		creatures++
		if strings.EqualFold(c.Name, name) {
			named = true
		}
	}
	return TriOf(creatures == 1 && named)
}

// GraveyardCardAbove returns the card directly above the named card in the
// player's graveyard. Graveyards are append-ordered, so "above" is the
// next index toward the top. ok is false when the named card is not in
// the graveyard or is on top.
func (p *Player) GraveyardCardAbove(name string) (*Card, bool) {
	if p == nil {
		return nil, false
	}
	for i, c := range p.Graveyard {
		if strings.EqualFold(c.Name, name) {
			if i+1 < len(p.Graveyard) {
				return p.Graveyard[i+1], true
			}
			return nil, false
		}
	}
	return nil, false
}

// GraveyardCardTypeCount returns the number of distinct card types among
// cards in the player's graveyard (the delirium count).
func (p *Player) GraveyardCardTypeCount() int {
	if p == nil {
		return 0
	}
	seen := make(map[string]struct{})
	for _, c := range p.Graveyard {
		for _, t := range c.Types {
			seen[strings.ToLower(t)] = struct{}{}
		}
	}
	return len(seen)
}

// TopOfLibrary returns the top card of the player's library, or ok=false
// when the library is empty or not visible. Libraries are append-ordered
// with the top at the last index.
func (p *Player) TopOfLibrary() (*Card, bool) {
	if p == nil || p.Library == nil || len(p.Library) == 0 {
		return nil, false
	}
	return p.Library[len(p.Library)-1], true
}
