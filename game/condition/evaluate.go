package condition

import (
	"go.uber.org/zap"

	"github.com/magefree/mage-conditions-go/game/state"
)

// defaultEvaluator backs the package-level entry points. Integrators that
// want coverage telemetry construct their own Evaluator with a logger.
var defaultEvaluator = NewEvaluator(nil)

// EvaluateInterveningIfClause evaluates an already-extracted condition
// clause against the snapshot and collapses fallback and no-match into
// Unknown. This is the primary gameplay-facing entry point.
func EvaluateInterveningIfClause(snap *state.Snapshot, controllerID, clauseText string, source *state.Permanent, refs *Refs) Outcome {
	return defaultEvaluator.Evaluate(snap, controllerID, clauseText, source, refs)
}

// EvaluateInterveningIfClauseDetailed evaluates a clause and exposes
// whether it was recognized at all, for coverage instrumentation.
func EvaluateInterveningIfClauseDetailed(snap *state.Snapshot, controllerID, clauseText string, source *state.Permanent, refs *Refs) Result {
	return defaultEvaluator.EvaluateDetailed(snap, controllerID, clauseText, source, refs)
}

// IsInterveningIfSatisfied extracts the intervening-if clause from a full
// ability description and evaluates it. Descriptions without a condition
// clause yield Unknown.
func IsInterveningIfSatisfied(snap *state.Snapshot, controllerID, descriptionText string, source *state.Permanent, refs *Refs) Outcome {
	return defaultEvaluator.IsSatisfied(snap, controllerID, descriptionText, source, refs)
}

// IsSatisfied is the description-level convenience on an Evaluator.
func (e *Evaluator) IsSatisfied(snap *state.Snapshot, controllerID, descriptionText string, source *state.Permanent, refs *Refs) Outcome {
	clause, ok := ExtractInterveningIfClause(descriptionText)
	if !ok {
		e.logger.Debug("ability description has no intervening-if clause",
			zap.String("description", NormalizeText(descriptionText)),
		)
		return Unknown
	}
	return e.Evaluate(snap, controllerID, clause, source, refs)
}
