package state

// Opponents resolves the opponents of the given player. When no team data
// exists every other player is an opponent and the result is certain.
// When team data exists but the queried player's team (or an opposing
// candidate's team) cannot be determined, ok is false and callers must
// degrade to unknown rather than guess.
func (s *Snapshot) Opponents(playerID string) ([]*Player, bool) {
	if s == nil || s.Player(playerID) == nil {
		return nil, false
	}
	if s.Teams == nil {
		var out []*Player
		for _, p := range s.Players {
			if p.ID != playerID {
				out = append(out, p)
			}
		}
		return out, true
	}
	myTeam, ok := s.Teams[playerID]
	if !ok || myTeam == "" {
		return nil, false
	}
	var out []*Player
	for _, p := range s.Players {
		if p.ID == playerID {
			continue
		}
		team, ok := s.Teams[p.ID]
		if !ok || team == "" {
			return nil, false
		}
		if team != myTeam {
			out = append(out, p)
		}
	}
	return out, true
}

// IsOpponent reports whether other is an opponent of playerID.
func (s *Snapshot) IsOpponent(playerID, other string) Tri {
	if playerID == other {
		return TriFalse
	}
	opponents, ok := s.Opponents(playerID)
	if !ok {
		return TriUnknown
	}
	for _, p := range opponents {
		if p.ID == other {
			return TriTrue
		}
	}
	return TriFalse
}
