package condition

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/magefree/mage-conditions-go/game/state"
)

// resolver computes the outcome of a recognized clause. m holds the
// pattern's submatches over the normalized clause text.
type resolver func(ctx *evalContext, m []string) Outcome

// handler pairs a textual template with its resolver. A handler with a
// nil resolver is a recognizer only: it claims the clause's shape but
// declines to decide it (the fallback bucket).
type handler struct {
	name    string
	pattern *regexp.Regexp
	resolve resolver
}

// re compiles a clause pattern anchored to the whole normalized clause.
func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^" + pattern + "$")
}

// countToken matches a digit string or spelled-out number, including
// compound tens ("twenty-two").
const countToken = `(\d+|[a-z]+(?:[- ][a-z]+)?)`

// Evaluator holds the ordered handler cascade. The zero value is not
// usable; construct with NewEvaluator. Evaluators are safe for concurrent
// use: dispatch only reads the handler slice and the snapshot.
type Evaluator struct {
	logger   *zap.Logger
	handlers []handler
}

// NewEvaluator creates an evaluator with the full template cascade. A nil
// logger disables the coverage telemetry logs.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		logger:   logger,
		handlers: buildHandlers(),
	}
}

// buildHandlers assembles the cascade in priority order: named and
// pre-empting templates first, generic numeric-threshold and superlative
// templates after their specific siblings, umbrella recognizers last.
func buildHandlers() []handler {
	var hs []handler
	hs = append(hs, sourceStateHandlers()...)
	hs = append(hs, counterHandlers()...)
	hs = append(hs, specificControlHandlers()...)
	hs = append(hs, eventHandlers()...)
	hs = append(hs, stackHandlers()...)
	hs = append(hs, combatHandlers()...)
	hs = append(hs, lifeHandlers()...)
	hs = append(hs, zoneHandlers()...)
	hs = append(hs, refsHandlers()...)
	hs = append(hs, turnHandlers()...)
	hs = append(hs, genericControlHandlers()...)
	hs = append(hs, superlativeHandlers()...)
	hs = append(hs, umbrellaHandlers()...)
	return hs
}

// EvaluateDetailed runs the cascade over the clause and reports the full
// result, including whether any template matched and whether the match
// was a declined-to-decide fallback.
func (e *Evaluator) EvaluateDetailed(snap *state.Snapshot, controllerID, clauseText string, source *state.Permanent, refs *Refs) Result {
	clause := strings.ToLower(NormalizeText(clauseText))
	ctx := &evalContext{
		snap:       snap,
		controller: controllerID,
		source:     source,
		refs:       refs,
	}
	for i := range e.handlers {
		h := &e.handlers[i]
		m := h.pattern.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		if h.resolve == nil {
			e.logger.Debug("intervening-if clause recognized but not implemented",
				zap.String("handler", h.name),
				zap.String("clause", clause),
			)
			return Result{Matched: true, Outcome: Unknown, Fallback: true}
		}
		return Result{Matched: true, Outcome: e.safeResolve(h, ctx, m)}
	}
	if strings.HasPrefix(clause, "if ") {
		e.logger.Debug("intervening-if clause has no template",
			zap.String("clause", clause),
		)
		return Result{Matched: true, Outcome: Unknown, Fallback: true}
	}
	e.logger.Debug("clause text not recognized as an intervening-if",
		zap.String("clause", clause),
	)
	return Result{Matched: false, Outcome: Unknown}
}

// Evaluate collapses the detailed result to the gameplay-facing tri-state
// outcome.
func (e *Evaluator) Evaluate(snap *state.Snapshot, controllerID, clauseText string, source *state.Permanent, refs *Refs) Outcome {
	return e.EvaluateDetailed(snap, controllerID, clauseText, source, refs).Outcome
}

// safeResolve invokes a resolver behind a recover guard: a resolver that
// panics on unexpected data degrades its clause to Unknown instead of
// failing the evaluation.
func (e *Evaluator) safeResolve(h *handler, ctx *evalContext, m []string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("condition resolver panicked",
				zap.String("handler", h.name),
				zap.Any("panic", r),
			)
			out = Unknown
		}
	}()
	return h.resolve(ctx, m)
}
