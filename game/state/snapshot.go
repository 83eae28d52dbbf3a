// Package state holds the read-only game-state snapshot consumed by the
// intervening-if evaluator, plus the accessor queries the condition
// handlers are written against. Nothing in this package mutates a
// snapshot; the owning engine builds one per evaluation and may share it
// across goroutines freely.
package state

import "strings"

// Player is one player's visible state: life total, zone contents and
// player-level counters (poison, energy, experience).
//
// Graveyard and Library are append-ordered: index 0 is the bottom of the
// zone and the last element is the top. Hand and Exile order carries no
// rules meaning. A nil Library means library contents are not visible to
// this snapshot (as opposed to an empty library).
type Player struct {
	ID        string
	Name      string
	Life      int
	Hand      []*Card
	Graveyard []*Card
	Library   []*Card
	Exile     []*Card
	Counters  map[string]int // counter kind -> count (poison, energy, ...)
}

// CounterCount returns the player's count of the given counter kind,
// matched case-insensitively.
func (p *Player) CounterCount(kind string) int {
	if p == nil {
		return 0
	}
	total := 0
	for name, count := range p.Counters {
		if strings.EqualFold(name, kind) {
			total += count
		}
	}
	return total
}

// Snapshot is an immutable view of one instant of the game. The evaluator
// never holds a snapshot past a single call.
//
// Turn and Combat are optional tracking structures: a nil pointer (or a
// nil map inside one) means that category of tracking is absent, which
// accessors surface as unknown instead of zero.
type Snapshot struct {
	Players     []*Player
	Battlefield []*Permanent
	Stack       []*StackItem

	Turn   *TurnTracking
	Combat *CombatTracking

	// Teams maps player id to team id. A nil map means there is no team
	// play and every other player is an opponent. A non-nil map with a
	// player missing means that player's allegiance is unknown.
	Teams map[string]string

	// ActivePlayerID identifies whose turn it is; empty means untracked.
	ActivePlayerID string
}

// Player returns the player with the given id, or nil.
func (s *Snapshot) Player(id string) *Player {
	if s == nil || id == "" {
		return nil
	}
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Permanent returns the battlefield object with the given id, or nil.
func (s *Snapshot) Permanent(id string) *Permanent {
	if s == nil || id == "" {
		return nil
	}
	for _, p := range s.Battlefield {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// StackItemByID returns the stack item with the given id, or nil.
func (s *Snapshot) StackItemByID(id string) *StackItem {
	if s == nil || id == "" {
		return nil
	}
	for _, item := range s.Stack {
		if item.ID == id {
			return item
		}
	}
	return nil
}
