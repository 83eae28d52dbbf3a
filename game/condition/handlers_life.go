package condition

import (
	"github.com/magefree/mage-conditions-go/game/state"
)

// lifeHandlers covers life-total clauses: superlatives (ties count),
// opponent comparisons and plain thresholds.
func lifeHandlers() []handler {
	return []handler{
		{
			name:    "most-life",
			pattern: re(`if you have the most life(?: or (?:are )?tied for the most life)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.HasMost(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "least-life",
			pattern: re(`if you have the least life(?: or (?:are )?tied for the least life)?`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.HasLeast(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "more-life-than-each-opponent",
			pattern: re(`if you have more life than each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.MoreThanEachOpponent(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "more-life-than-an-opponent",
			pattern: re(`if you have more life than an opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.MoreThanAnOpponent(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "more-life-than-each-other-player",
			pattern: re(`if you have more life than each other player`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.MoreThanEachOtherPlayer(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "less-life-than-each-opponent",
			pattern: re(`if you have (?:less|fewer) life than each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.FewerThanEachOpponent(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "less-life-than-an-opponent",
			pattern: re(`if you have (?:less|fewer) life than an opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.FewerThanAnOpponent(ctx.controller, state.LifeMetric))
			},
		},
		{
			name:    "opponent-more-life-than-you",
			pattern: re(`if an opponent has more life than you`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return opp.Life > me.Life
				})
			},
		},
		{
			name:    "life-threshold-min",
			pattern: re(`if (?:you have|your life total is) ` + countToken + ` or more life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.Life >= n)
			},
		},
		{
			name:    "life-threshold-max",
			pattern: re(`if (?:you have|your life total is) ` + countToken + ` or (?:less|fewer) life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.Life <= n)
			},
		},
		{
			name:    "life-exactly",
			pattern: re(`if you have exactly ` + countToken + ` life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.Life == n)
			},
		},
		{
			name:    "opponent-life-threshold-max",
			pattern: re(`if an opponent has ` + countToken + ` or (?:less|fewer) life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return opp.Life <= n
				})
			},
		},
		{
			name:    "each-opponent-life-threshold-max",
			pattern: re(`if each opponent has ` + countToken + ` or (?:less|fewer) life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				opponents, known := ctx.opponents()
				if !known {
					return Unknown
				}
				for _, opp := range opponents {
					if opp.Life > n {
						return NotSatisfied
					}
				}
				return Satisfied
			},
		},
	}
}
