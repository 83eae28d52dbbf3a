package condition

import (
	"github.com/magefree/mage-conditions-go/game/state"
)

// attachedRef matches "enchanted creature" / "equipped creature"
// references resolved through the source permanent's attachment link.
const attachedRef = `(enchanted|equipped) creature`

// combatHandlers covers combat-status clauses beyond the source's own
// flags: player attack history, attacker counts, and the state of the
// creature the source is attached to.
func combatHandlers() []handler {
	return []handler{
		{
			name:    "you-attacked-this-turn",
			pattern: re(`if you attacked this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				attacked := ctx.snap.Turn.PlayerAttackedThisTurn(ctx.controller)
				if attacked.Known() {
					return outcomeOfTri(attacked)
				}
				// A live declaration can still prove the positive.
				if n, ok := ctx.snap.DeclaredAttackerCount(ctx.controller); ok && n > 0 {
					return Satisfied
				}
				return Unknown
			},
		},
		{
			name:    "attacked-with-threshold",
			pattern: re(`if you attacked with ` + countToken + ` or more creatures this combat`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				n, tracked := ctx.snap.DeclaredAttackerCount(ctx.controller)
				return outcomeOfCount(n, tracked, min)
			},
		},
		{
			name:    "exactly-one-attacker",
			pattern: re(`if exactly one creature is attacking`),
			resolve: func(ctx *evalContext, m []string) Outcome {
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
			name:    "no-creatures-attacking",
			pattern: re(`if no creatures are attacking`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				if n, ok := ctx.snap.DeclaredAttackerCount(""); ok {
					return outcomeOf(n == 0)
				}
				for _, p := range ctx.snap.Battlefield {
					if p.Attacking {
						return NotSatisfied
					}
				}
				return Satisfied
			},
		},
		{
			name:    "creature-attacking-you",
			pattern: re(`if a creature is attacking you`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.CreatureAttackingPlayer(ctx.controller))
			},
		},
		{
			name:    "creature-attacking-your-planeswalker",
			pattern: re(`if a creature is attacking a planeswalker you control`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.attackOnControlledPlaneswalker())
			},
		},
		{
			name:    "attached-creature-state",
			pattern: re(`if ` + attachedRef + ` is (tapped|untapped|attacking|blocking|blocked|attacking or blocking)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				target, ok := ctx.snap.AttachedPermanent(ctx.source)
				if !ok {
					return Unknown
				}
				switch m[2] {
				case "tapped":
					return outcomeOf(target.Tapped)
				case "untapped":
					return outcomeOf(!target.Tapped)
				case "attacking":
					return outcomeOf(ctx.snap.IsAttacking(target))
				case "blocking":
					return outcomeOf(ctx.snap.IsBlocking(target))
				case "blocked":
					return outcomeOf(ctx.snap.IsBlocked(target))
				case "attacking or blocking":
					return outcomeOf(ctx.snap.IsAttacking(target) || ctx.snap.IsBlocking(target))
				}
				return Unknown
			},
		},
		{
			name:    "attached-creature-has-keyword",
			pattern: re(`if ` + attachedRef + ` has ` + keywordAlt),
			resolve: func(ctx *evalContext, m []string) Outcome {
				target, ok := ctx.snap.AttachedPermanent(ctx.source)
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.HasKeyword(target, m[2]))
			},
		},
	}
}

// attackOnControlledPlaneswalker reports whether any attacker is attacking
// a planeswalker the controller controls. Attackers whose target is
// untracked leave the question open.
func (c *evalContext) attackOnControlledPlaneswalker() state.Tri {
	if c.snap == nil {
		return state.TriUnknown
	}
	var targets []string
	untracked := false
	if c.snap.Combat != nil && c.snap.Combat.Attackers != nil {
		for _, target := range c.snap.Combat.Attackers {
			if target == "" {
				untracked = true
				continue
			}
			targets = append(targets, target)
		}
	} else {
		for _, p := range c.snap.Battlefield {
			if !p.Attacking {
				continue
			}
			if p.AttackingTarget == "" {
				untracked = true
				continue
			}
			targets = append(targets, p.AttackingTarget)
		}
	}
	for _, target := range targets {
		p := c.snap.Permanent(target)
		if p == nil {
			continue // a player, or already gone
		}
		if p.Controller == c.controller && p.IsType(state.TypePlaneswalker) {
			return state.TriTrue
		}
	}
	if untracked {
		return state.TriUnknown
	}
	return state.TriFalse
}
