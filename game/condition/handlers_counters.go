package condition

import (
	"strings"

	"github.com/magefree/mage-conditions-go/game/state"
)

// counterKind matches a counter kind token, including boost kinds like
// "+1/+1".
const counterKind = `([a-z0-9+/-]+)`

// counterHandlers covers counter-count clauses over the source permanent,
// named permanents, and players.
func counterHandlers() []handler {
	return []handler{
		{
			name:    "source-has-counter",
			pattern: re(`if ` + sourceRef + ` has (?:a|an) ` + counterKind + ` counter on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.HasCounter(m[1]))
			},
		},
		{
			name:    "source-counter-threshold",
			pattern: re(`if ` + sourceRef + ` has ` + countToken + ` or more ` + counterKind + ` counters on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.source.CounterCountFold(m[2]) >= n)
			},
		},
		{
			name:    "source-no-counters-of-kind",
			pattern: re(`if ` + sourceRef + ` has no ` + counterKind + ` counters on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.CounterCountFold(m[1]) == 0)
			},
		},
		{
			name:    "source-total-counter-threshold",
			pattern: re(`if ` + sourceRef + ` has ` + countToken + ` or more counters on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.source.TotalCounters() >= n)
			},
		},
		{
			name:    "there-is-counter-on-source",
			pattern: re(`if there is (?:a|an) ` + counterKind + ` counter on ` + sourceRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.HasCounter(m[1]))
			},
		},
		{
			name:    "there-are-counters-threshold-on-source",
			pattern: re(`if there are ` + countToken + ` or more ` + counterKind + ` counters on ` + sourceRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.source.CounterCountFold(m[2]) >= n)
			},
		},
		{
			name:    "there-are-no-counters-on-source",
			pattern: re(`if there are no ` + counterKind + ` counters on ` + sourceRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.CounterCountFold(m[1]) == 0)
			},
		},
		{
			name:    "player-counter-threshold",
			pattern: re(`if you have ` + countToken + ` or more (poison|energy|experience) counters`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				player := ctx.player()
				if player == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(player.CounterCount(m[2]) >= n)
			},
		},
		{
			name:    "player-has-counter",
			pattern: re(`if you have (?:a|an) (poison|energy|experience) counter`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				player := ctx.player()
				if player == nil {
					return Unknown
				}
				return outcomeOf(player.CounterCount(m[1]) >= 1)
			},
		},
		{
			name:    "opponent-has-counter",
			pattern: re(`if an opponent has (?:a|an) (poison|energy|experience) counter`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				opponents, ok := ctx.opponents()
				if !ok {
					return Unknown
				}
				for _, opp := range opponents {
					if opp.CounterCount(m[1]) >= 1 {
						return Satisfied
					}
				}
				return NotSatisfied
			},
		},
		// Card-named counter templates ("if helix pinnacle has one
		// hundred or more tower counters on it"). Placed after the
		// sourceRef forms so "it" never reaches the name group.
		{
			name:    "named-counter-threshold",
			pattern: re(`if ([a-z',. -]+) has ` + countToken + ` or more ` + counterKind + ` counters on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				target := ctx.permanentNamed(m[1])
				if target == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(target.CounterCountFold(m[3]) >= n)
			},
		},
		{
			name:    "named-has-counter",
			pattern: re(`if ([a-z',. -]+) has (?:a|an) ` + counterKind + ` counter on it`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				target := ctx.permanentNamed(m[1])
				if target == nil {
					return Unknown
				}
				return outcomeOf(target.HasCounter(m[2]))
			},
		},
	}
}

// permanentNamed resolves a card name to a battlefield object, preferring
// the ability's own source, then a unique battlefield match. Ambiguous or
// missing names resolve to nil.
func (c *evalContext) permanentNamed(name string) *state.Permanent {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	// "enchanted creature" / "equipped creature" name the permanent the
	// source Aura or Equipment is attached to.
	if name == "enchanted creature" || name == "equipped creature" {
		if target, ok := c.snap.AttachedPermanent(c.source); ok {
			return target
		}
		return nil
	}
	if c.source != nil && strings.EqualFold(c.source.Name(), name) {
		return c.source
	}
	if c.snap == nil {
		return nil
	}
	var found *state.Permanent
	for _, p := range c.snap.Battlefield {
		if strings.EqualFold(p.Name(), name) {
			if found != nil {
				return nil
			}
			found = p
		}
	}
	return found
}
