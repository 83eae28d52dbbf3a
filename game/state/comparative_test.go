package state

import "testing"

func TestHasMost_TiesCount(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice", Life: 20},
			{ID: "bob", Life: 20},
			{ID: "carol", Life: 15},
		},
	}

	if got := snap.HasMost("alice", LifeMetric); got != TriTrue {
		t.Errorf("Expected tied-for-most to be TRUE, got %s", got)
	}
	if got := snap.HasMost("carol", LifeMetric); got != TriFalse {
		t.Errorf("Expected carol not to have the most, got %s", got)
	}
	if got := snap.HasLeast("carol", LifeMetric); got != TriTrue {
		t.Errorf("Expected carol to have the least, got %s", got)
	}
}

func TestMoreThanEachOpponent(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice", Life: 25},
			{ID: "bob", Life: 20},
			{ID: "carol", Life: 24},
		},
	}

	if got := snap.MoreThanEachOpponent("alice", LifeMetric); got != TriTrue {
		t.Errorf("Expected alice above each opponent, got %s", got)
	}
	if got := snap.MoreThanEachOpponent("carol", LifeMetric); got != TriFalse {
		t.Errorf("Expected carol not above each opponent, got %s", got)
	}
	if got := snap.MoreThanAnOpponent("carol", LifeMetric); got != TriTrue {
		t.Errorf("Expected carol above some opponent, got %s", got)
	}
}

func TestMoreThanEachOpponent_UnknownTeams(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice", Life: 25},
			{ID: "bob", Life: 20},
		},
		// Team data exists but bob's allegiance is missing.
		Teams: map[string]string{"alice": "team-1"},
	}

	if got := snap.MoreThanEachOpponent("alice", LifeMetric); got != TriUnknown {
		t.Errorf("Expected unknown when opponents cannot be resolved, got %s", got)
	}
}

func TestMoreThanEachOtherPlayer_TeammatesIncluded(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice", Life: 25},
			{ID: "bob", Life: 25},
		},
		Teams: map[string]string{"alice": "team-1", "bob": "team-1"},
	}

	// bob is a teammate, not an opponent, but still another player.
	if got := snap.MoreThanEachOtherPlayer("alice", LifeMetric); got != TriFalse {
		t.Errorf("Expected tie with teammate to fail strict comparison, got %s", got)
	}
}

func TestOpponents_TwoPlayer(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice"},
			{ID: "bob"},
		},
	}

	opponents, ok := snap.Opponents("alice")
	if !ok {
		t.Fatal("Expected opponents to resolve without team data")
	}
	if len(opponents) != 1 || opponents[0].ID != "bob" {
		t.Errorf("Expected bob as sole opponent, got %v", opponents)
	}
}

func TestOpponents_Teams(t *testing.T) {
	snap := &Snapshot{
		Players: []*Player{
			{ID: "alice"},
			{ID: "bob"},
			{ID: "carol"},
			{ID: "dave"},
		},
		Teams: map[string]string{
			"alice": "team-1",
			"bob":   "team-1",
			"carol": "team-2",
			"dave":  "team-2",
		},
	}

	opponents, ok := snap.Opponents("alice")
	if !ok {
		t.Fatal("Expected opponents to resolve with full team data")
	}
	if len(opponents) != 2 {
		t.Fatalf("Expected 2 opponents, got %d", len(opponents))
	}
	for _, opp := range opponents {
		if opp.ID == "bob" {
			t.Error("Teammate bob should not be an opponent")
		}
	}

	if got := snap.IsOpponent("alice", "bob"); got != TriFalse {
		t.Errorf("Expected teammate to not be an opponent, got %s", got)
	}
	if got := snap.IsOpponent("alice", "carol"); got != TriTrue {
		t.Errorf("Expected carol to be an opponent, got %s", got)
	}
}
