package condition

import (
	"github.com/magefree/mage-conditions-go/game/state"
)

// superlativeHandlers covers most/fewest clauses over counts other than
// life. Ties satisfy both directions.
func superlativeHandlers() []handler {
	return []handler{
		{
			name:    "control-most-of",
			pattern: re(`if you control the most (.+?)(?: or are tied for the most)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.HasMost(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-fewest-of",
			pattern: re(`if you control the fewest (.+?)(?: or are tied for the fewest)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.HasLeast(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "most-cards-in-hand",
			pattern: re(`if you have the most cards in hand(?: or are tied for the most)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.HasMost(ctx.controller, state.HandSizeMetric))
			},
		},
		{
			name:    "fewest-cards-in-hand",
			pattern: re(`if you have the fewest cards in hand(?: or are tied for the fewest)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.HasLeast(ctx.controller, state.HandSizeMetric))
			},
		},
	}
}
