package condition

import (
	"strings"

	"github.com/magefree/mage-conditions-go/game/state"
)

// specificControlHandlers covers control templates that must pre-empt the
// generic "if you control a/an X" family: enchanted/equipped creatures,
// keyword and power qualifiers, named permanents.
func specificControlHandlers() []handler {
	return []handler{
		{
			name:    "control-enchanted-creature",
			pattern: re(`if you control an enchanted creature`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(existsTri(ctx.creaturesControlled(), func(p *state.Permanent) state.Tri {
					return ctx.snap.IsEnchanted(p)
				}))
			},
		},
		{
			name:    "control-equipped-creature",
			pattern: re(`if you control an equipped creature`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(existsTri(ctx.creaturesControlled(), func(p *state.Permanent) state.Tri {
					return ctx.snap.IsEquipped(p)
				}))
			},
		},
		{
			name:    "control-keyword-threshold",
			pattern: re(`if you control ` + countToken + ` or more creatures with ` + keywordAlt),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(thresholdTri(ctx.creaturesControlled(), n, func(p *state.Permanent) state.Tri {
					return ctx.snap.HasKeyword(p, m[2])
				}))
			},
		},
		{
			name:    "control-creature-with-keyword",
			pattern: re(`if you control a creature with ` + keywordAlt),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(existsTri(ctx.creaturesControlled(), func(p *state.Permanent) state.Tri {
					return ctx.snap.HasKeyword(p, m[1])
				}))
			},
		},
		{
			name:    "control-creature-power-threshold",
			pattern: re(`if you control a creature with power ` + countToken + ` or greater`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(existsTri(ctx.creaturesControlled(), func(p *state.Permanent) state.Tri {
					power, known := p.PowerValue()
					if !known {
						return state.TriUnknown
					}
					return state.TriOf(power >= n)
				}))
			},
		},
		{
			name:    "control-named-permanent",
			pattern: re(`if you control (?:a|an) (?:creature|permanent|artifact|enchantment|land) named ([a-z',. -]+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOf(ctx.snap.CountControlledNamed(ctx.controller, strings.TrimSpace(m[1])) >= 1)
			},
		},
		{
			name:    "control-another-named-permanent",
			pattern: re(`if you control another (?:creature|permanent) named ([a-z',. -]+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				count := ctx.snap.CountControlledNamed(ctx.controller, strings.TrimSpace(m[1]))
				if ctx.source != nil && ctx.source.Controller == ctx.controller &&
					strings.EqualFold(ctx.source.Name(), strings.TrimSpace(m[1])) {
					count--
				}
				return outcomeOf(count >= 1)
			},
		},
	}
}

// genericControlHandlers covers the broad numeric-threshold and
// quantified control templates. These run after every specific control
// sibling.
func genericControlHandlers() []handler {
	return []handler{
		{
			name:    "control-threshold",
			pattern: re(`if you control ` + countToken + ` or more (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				pred, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) >= n)
			},
		},
		{
			name:    "control-threshold-fewer",
			pattern: re(`if you control ` + countToken + ` or fewer (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				pred, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) <= n)
			},
		},
		{
			name:    "control-exactly",
			pattern: re(`if you control exactly ` + countToken + ` (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				pred, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) == n)
			},
		},
		{
			name:    "control-no-other",
			pattern: re(`if you control no other (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.countControlledExcludingSource(pred) == 0)
			},
		},
		{
			name:    "control-none",
			pattern: re(`if you control no (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) == 0)
			},
		},
		{
			name:    "control-negated",
			pattern: re(`if you don't control (?:a|an|any) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) == 0)
			},
		},
		{
			name:    "control-another",
			pattern: re(`if you control another (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.countControlledExcludingSource(pred) >= 1)
			},
		},
		{
			name:    "control-conjunction",
			pattern: re(`if you control (?:a|an) (.+?) and (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				first, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				second, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, first) >= 1 &&
					ctx.snap.CountControlled(ctx.controller, second) >= 1)
			},
		},
		{
			name:    "control-disjunction",
			pattern: re(`if you control (?:a|an) (.+?) or (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				first, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				second, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, first) >= 1 ||
					ctx.snap.CountControlled(ctx.controller, second) >= 1)
			},
		},
		{
			name:    "control-single",
			pattern: re(`if you control (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(ctx.snap.CountControlled(ctx.controller, pred) >= 1)
			},
		},
		{
			name:    "opponent-controls-threshold",
			pattern: re(`if an opponent controls ` + countToken + ` or more (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				pred, ok := ctx.permanentPhrase(m[2])
				if !ok {
					return Unknown
				}
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return ctx.snap.CountControlled(opp.ID, pred) >= n
				})
			},
		},
		{
			name:    "opponent-controls",
			pattern: re(`if an opponent controls (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return ctx.snap.CountControlled(opp.ID, pred) >= 1
				})
			},
		},
		{
			name:    "no-opponent-controls",
			pattern: re(`if no opponent controls (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				result := ctx.existsOpponent(func(opp *state.Player) bool {
					return ctx.snap.CountControlled(opp.ID, pred) >= 1
				})
				switch result {
				case Satisfied:
					return NotSatisfied
				case NotSatisfied:
					return Satisfied
				default:
					return Unknown
				}
			},
		},
		{
			name:    "each-opponent-controls",
			pattern: re(`if each opponent controls (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				opponents, known := ctx.opponents()
				if !known {
					return Unknown
				}
				for _, opp := range opponents {
					if ctx.snap.CountControlled(opp.ID, pred) == 0 {
						return NotSatisfied
					}
				}
				return Satisfied
			},
		},
		{
			name:    "opponent-controls-more-than-you",
			pattern: re(`if an opponent controls more (.+?) than you`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				mine := ctx.snap.CountControlled(ctx.controller, pred)
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return ctx.snap.CountControlled(opp.ID, pred) > mine
				})
			},
		},
		{
			name:    "control-more-than-each-opponent",
			pattern: re(`if you control more (.+?) than each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.MoreThanEachOpponent(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-more-than-an-opponent",
			pattern: re(`if you control more (.+?) than an opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.MoreThanAnOpponent(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-more-than-each-other-player",
			pattern: re(`if you control more (.+?) than each other player`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.MoreThanEachOtherPlayer(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-fewer-than-each-opponent",
			pattern: re(`if you control fewer (.+?) than each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.FewerThanEachOpponent(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-fewer-than-an-opponent",
			pattern: re(`if you control fewer (.+?) than an opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.FewerThanAnOpponent(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
		{
			name:    "control-as-many-as-each-opponent",
			pattern: re(`if you control at least as many (.+?) as each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				pred, ok := ctx.permanentPhrase(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.AsManyAsEachOpponent(ctx.controller, ctx.snap.ControlledMetric(pred)))
			},
		},
	}
}

// creaturesControlled returns the controller's creatures.
func (c *evalContext) creaturesControlled() []*state.Permanent {
	var out []*state.Permanent
	for _, p := range c.snap.PermanentsControlled(c.controller) {
		if p.IsType(state.TypeCreature) {
			out = append(out, p)
		}
	}
	return out
}

// countControlledExcludingSource counts matching permanents under the
// controller, not counting the ability's own source.
func (c *evalContext) countControlledExcludingSource(pred func(*state.Permanent) bool) int {
	count := 0
	for _, p := range c.snap.PermanentsControlled(c.controller) {
		if c.source != nil && p.ID == c.source.ID {
			continue
		}
		if pred(p) {
			count++
		}
	}
	return count
}

// existsOpponent applies an existential check over resolved opponents,
// degrading to Unknown when opponents cannot be resolved.
func (c *evalContext) existsOpponent(pred func(*state.Player) bool) Outcome {
	opponents, ok := c.opponents()
	if !ok {
		return Unknown
	}
	for _, opp := range opponents {
		if pred(opp) {
			return Satisfied
		}
	}
	return NotSatisfied
}

// permanentPhrase parses a permanent noun phrase, rejecting connective
// constructions ("with", "that", "of") the simple word-predicate parser
// cannot represent; those degrade to Unknown at the calling handler.
func (c *evalContext) permanentPhrase(phrase string) (func(*state.Permanent) bool, bool) {
	phrase = strings.TrimSpace(phrase)
	for _, connective := range []string{" with ", " that ", " of ", " who ", " named "} {
		if strings.Contains(phrase, connective) {
			return nil, false
		}
	}
	return permanentPredicate(phrase)
}
