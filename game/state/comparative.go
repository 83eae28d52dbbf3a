package state

// Metric evaluates a per-player number used by superlative and comparative
// clauses (life total, hand size, permanents of a type controlled).
type Metric func(*Player) int

// HasMost reports whether the player's metric value is the maximum across
// all players. Ties count: a player sharing the extremum still "has the
// most".
func (s *Snapshot) HasMost(playerID string, metric Metric) Tri {
	return s.atExtremum(playerID, metric, func(mine, other int) bool {
		return other > mine
	})
}

// HasLeast reports whether the player's metric value is the minimum across
// all players, with the same tie rule as HasMost.
func (s *Snapshot) HasLeast(playerID string, metric Metric) Tri {
	return s.atExtremum(playerID, metric, func(mine, other int) bool {
		return other < mine
	})
}

func (s *Snapshot) atExtremum(playerID string, metric Metric, beats func(mine, other int) bool) Tri {
	me := s.Player(playerID)
	if me == nil || metric == nil {
		return TriUnknown
	}
	mine := metric(me)
	for _, p := range s.Players {
		if p.ID == playerID {
			continue
		}
		if beats(mine, metric(p)) {
			return TriFalse
		}
	}
	return TriTrue
}

// MoreThanEachOpponent reports whether the player's metric value strictly
// exceeds every opponent's (universal quantification).
func (s *Snapshot) MoreThanEachOpponent(playerID string, metric Metric) Tri {
	return s.versusOpponents(playerID, metric, true, func(mine, other int) bool {
		return mine > other
	})
}

// MoreThanAnOpponent reports whether the player's metric value strictly
// exceeds at least one opponent's (existential quantification).
func (s *Snapshot) MoreThanAnOpponent(playerID string, metric Metric) Tri {
	return s.versusOpponents(playerID, metric, false, func(mine, other int) bool {
		return mine > other
	})
}

// FewerThanEachOpponent reports whether the player's metric value is
// strictly below every opponent's.
func (s *Snapshot) FewerThanEachOpponent(playerID string, metric Metric) Tri {
	return s.versusOpponents(playerID, metric, true, func(mine, other int) bool {
		return mine < other
	})
}

// FewerThanAnOpponent reports whether the player's metric value is
// strictly below at least one opponent's.
func (s *Snapshot) FewerThanAnOpponent(playerID string, metric Metric) Tri {
	return s.versusOpponents(playerID, metric, false, func(mine, other int) bool {
		return mine < other
	})
}

// AsManyAsEachOpponent reports whether the player's metric value is at
// least every opponent's.
func (s *Snapshot) AsManyAsEachOpponent(playerID string, metric Metric) Tri {
	return s.versusOpponents(playerID, metric, true, func(mine, other int) bool {
		return mine >= other
	})
}

// MoreThanEachOtherPlayer reports whether the player's metric value
// strictly exceeds every other player's, opponent or not.
func (s *Snapshot) MoreThanEachOtherPlayer(playerID string, metric Metric) Tri {
	me := s.Player(playerID)
	if me == nil || metric == nil {
		return TriUnknown
	}
	mine := metric(me)
	for _, p := range s.Players {
		if p.ID == playerID {
			continue
		}
		if mine <= metric(p) {
			return TriFalse
		}
	}
	return TriTrue
}

func (s *Snapshot) versusOpponents(playerID string, metric Metric, universal bool, satisfied func(mine, other int) bool) Tri {
	me := s.Player(playerID)
	if me == nil || metric == nil {
		return TriUnknown
	}
	opponents, ok := s.Opponents(playerID)
	if !ok {
		return TriUnknown
	}
	mine := metric(me)
	if universal {
		for _, p := range opponents {
			if !satisfied(mine, metric(p)) {
				return TriFalse
			}
		}
		return TriTrue
	}
	for _, p := range opponents {
		if satisfied(mine, metric(p)) {
			return TriTrue
		}
	}
	return TriFalse
}

// LifeMetric is the Metric over life totals.
func LifeMetric(p *Player) int { return p.Life }

// HandSizeMetric is the Metric over hand sizes.
func HandSizeMetric(p *Player) int { return len(p.Hand) }

// ControlledMetric builds a Metric counting permanents a player controls
// that satisfy the predicate.
func (s *Snapshot) ControlledMetric(pred func(*Permanent) bool) Metric {
	return func(p *Player) int {
		return s.CountControlled(p.ID, pred)
	}
}
