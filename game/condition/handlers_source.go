package condition

import (
	"github.com/magefree/mage-conditions-go/game/state"
)

// sourceRef matches the ways a clause refers to the ability's own
// permanent.
const sourceRef = `(?:it|this creature|this permanent|this artifact|this enchantment|this land)`

// keywordAlt matches the keyword abilities clauses test for.
const keywordAlt = `(flying|first strike|double strike|deathtouch|lifelink|trample|vigilance|haste|hexproof|indestructible|reach|menace|defender|shadow|fear|intimidate)`

// sourceStateHandlers covers clauses about the triggering permanent's own
// state: tapped/untapped, combat participation, keywords, attachments,
// power, entered-this-turn.
func sourceStateHandlers() []handler {
	return []handler{
		{
			name:    "source-tapped",
			pattern: re(`if ` + sourceRef + `(?:'s| is) tapped`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.Tapped)
			},
		},
		{
			name:    "source-untapped",
			pattern: re(`if ` + sourceRef + `(?:'s| is) untapped`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(!ctx.source.Tapped)
			},
		},
		{
			name:    "source-attacking-or-blocking",
			pattern: re(`if ` + sourceRef + `(?:'s| is) attacking or blocking`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.snap.IsAttacking(ctx.source) || ctx.snap.IsBlocking(ctx.source))
			},
		},
		{
			name:    "source-attacking-alone",
			pattern: re(`if ` + sourceRef + `(?:'s| is) attacking alone`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				if !ctx.snap.IsAttacking(ctx.source) {
					return NotSatisfied
				}
				if n, ok := ctx.snap.DeclaredAttackerCount(""); ok {
					return outcomeOf(n == 1)
				}
				count := 0
				for _, p := range ctx.snap.Battlefield {
					if p.Attacking {
						count++
					}
				}
				return outcomeOf(count == 1)
			},
		},
		{
			name:    "source-attacking",
			pattern: re(`if ` + sourceRef + `(?:'s| is) attacking`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.snap.IsAttacking(ctx.source))
			},
		},
		{
			name:    "source-blocking",
			pattern: re(`if ` + sourceRef + `(?:'s| is) blocking`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.snap.IsBlocking(ctx.source))
			},
		},
		{
			name:    "source-blocked",
			pattern: re(`if ` + sourceRef + `(?:'s| is) blocked`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(ctx.snap.IsBlocked(ctx.source))
			},
		},
		{
			name:    "source-unblocked",
			pattern: re(`if ` + sourceRef + `(?:'s| is)(?:n't| not) blocked`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOf(!ctx.snap.IsBlocked(ctx.source))
			},
		},
		{
			name:    "source-entered-this-turn",
			pattern: re(`if ` + sourceRef + ` entered the battlefield this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.source.EnteredThisTurn)
			},
		},
		{
			name:    "source-attacked-this-turn",
			pattern: re(`if ` + sourceRef + ` attacked this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil || ctx.snap == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.Turn.PermanentAttackedThisTurn(ctx.source.ID))
			},
		},
		{
			name:    "source-has-keyword",
			pattern: re(`if ` + sourceRef + ` has ` + keywordAlt),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.HasKeyword(ctx.source, m[1]))
			},
		},
		{
			name:    "source-enchanted-or-equipped",
			pattern: re(`if ` + sourceRef + `(?:'s| is) enchanted or equipped`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.IsEnchanted(ctx.source).Or(ctx.snap.IsEquipped(ctx.source)))
			},
		},
		{
			name:    "source-enchanted",
			pattern: re(`if ` + sourceRef + `(?:'s| is) enchanted`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.IsEnchanted(ctx.source))
			},
		},
		{
			name:    "source-equipped",
			pattern: re(`if ` + sourceRef + `(?:'s| is) equipped`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.IsEquipped(ctx.source))
			},
		},
		{
			name:    "source-is-color",
			pattern: re(`if ` + sourceRef + `(?:'s| is) (white|blue|black|red|green)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil || ctx.source.Card == nil {
					return Unknown
				}
				return outcomeOf(ctx.source.Card.HasColor(colorWords[m[1]]))
			},
		},
		{
			name:    "source-power-threshold",
			pattern: re(`if (?:` + sourceRef + ` has power|its power is) ` + countToken + ` or (greater|more|less)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				power, known := ctx.source.PowerValue()
				if !known {
					return Unknown
				}
				if m[2] == "less" {
					return outcomeOf(power <= n)
				}
				return outcomeOf(power >= n)
			},
		},
		{
			name:    "source-is-creature",
			pattern: re(`if ` + sourceRef + `(?:'s| is) a creature`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if ctx.source == nil {
					return Unknown
				}
				// Base types prove yes; animation effects are not
				// reflected in the card's type line, so a base
				// non-creature stays undecided.
				if ctx.source.IsType(state.TypeCreature) {
					return Satisfied
				}
				return Unknown
			},
		},
	}
}
