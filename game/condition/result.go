// Package condition evaluates the intervening-if clauses of triggered
// abilities against a read-only game-state snapshot. It recognizes a
// large, ordered cascade of textual templates and answers with a
// three-valued outcome; anything it cannot decide from the snapshot's
// tracking data is reported as Unknown rather than guessed.
package condition

import "github.com/magefree/mage-conditions-go/game/state"

// Outcome is the tri-state result of evaluating a condition clause.
type Outcome int

const (
	// Unknown means the clause cannot be decided from the snapshot.
	Unknown Outcome = iota
	// Satisfied means the condition definitely holds.
	Satisfied
	// NotSatisfied means the condition definitely does not hold.
	NotSatisfied
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "SATISFIED"
	case NotSatisfied:
		return "NOT_SATISFIED"
	default:
		return "UNKNOWN"
	}
}

// Result is the detailed evaluation outcome. Matched reports whether any
// template recognized the clause text at all. Fallback reports that a
// template recognized the clause's shape but deliberately declined to
// decide it; the flag exists for coverage telemetry and both cases
// collapse to Unknown for gameplay.
type Result struct {
	Matched  bool
	Outcome  Outcome
	Fallback bool
}

// outcomeOf converts a fully-known boolean into an Outcome.
func outcomeOf(b bool) Outcome {
	if b {
		return Satisfied
	}
	return NotSatisfied
}

// outcomeOfTri converts an accessor tri-state into an Outcome.
func outcomeOfTri(t state.Tri) Outcome {
	switch t {
	case state.TriTrue:
		return Satisfied
	case state.TriFalse:
		return NotSatisfied
	default:
		return Unknown
	}
}

// outcomeOfCount applies a "min or more" threshold to a tracked count.
// ok=false (tracking absent) yields Unknown.
func outcomeOfCount(n int, ok bool, min int) Outcome {
	if !ok {
		return Unknown
	}
	return outcomeOf(n >= min)
}
