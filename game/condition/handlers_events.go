package condition

// enteringType matches the permanent types the entered-the-battlefield
// watchers track.
const enteringType = `(land|creature|artifact|enchantment|planeswalker|battle)`

func enteringCardType(word string) string {
	return typeWords[word]
}

// eventHandlers covers per-turn event clauses: permanents entering,
// creatures dying, spells cast, life changes, cards drawn, lands played.
// Every resolver degrades to Unknown when the corresponding tracking map
// is absent from the snapshot.
func eventHandlers() []handler {
	return []handler{
		{
			name:    "entered-under-your-control",
			pattern: re(`if (?:a|an) ` + enteringType + ` entered the battlefield under your control this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.EnteredThisTurn(enteringCardType(m[1]), ctx.controller, 1))
			},
		},
		{
			name:    "another-entered-under-your-control",
			pattern: re(`if another ` + enteringType + ` entered the battlefield under your control this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.AnotherEnteredThisTurn(enteringCardType(m[1]), ctx.controller, ctx.source))
			},
		},
		{
			name:    "entered-threshold-under-your-control",
			pattern: re(`if ` + countToken + ` or more ` + enteringType + `s entered the battlefield under your control this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.EnteredThisTurn(enteringCardType(m[2]), ctx.controller, n))
			},
		},
		{
			name:    "entered-any-control",
			pattern: re(`if (?:a|an) ` + enteringType + ` entered the battlefield this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.EnteredTotal(enteringCardType(m[1]))
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "creature-died-this-turn",
			pattern: re(`if a creature died this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.CreaturesDiedCount()
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "creature-died-under-your-control",
			pattern: re(`if a creature (?:you controlled died|died under your control) this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.CreaturesDiedUnder(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "creatures-died-threshold",
			pattern: re(`if ` + countToken + ` or more creatures died this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				n, tracked := ctx.snap.Turn.CreaturesDiedCount()
				return outcomeOfCount(n, tracked, min)
			},
		},
		{
			name:    "subtype-died-under-your-control",
			pattern: re(`if (?:a|an) ([a-z]+) (?:you controlled died|died under your control) this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.CreaturesDiedWithSubtype(ctx.controller, singularize(m[1]))
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "subtype-died-this-turn",
			pattern: re(`if (?:a|an) ([a-z]+) died this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.CreaturesDiedWithSubtype("", singularize(m[1]))
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "cast-another-spell-this-turn",
			pattern: re(`if you've cast another spell this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastBy(ctx.controller)
				if !ok {
					return Unknown
				}
				switch {
				case n >= 2:
					return Satisfied
				case n == 0:
					return NotSatisfied
				default:
					// Exactly one tracked cast: it may be the very
					// spell this ability rode in on.
					return Unknown
				}
			},
		},
		{
			name:    "cast-spell-this-turn",
			pattern: re(`if you've cast a spell this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastBy(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "no-spell-cast-by-you-this-turn",
			pattern: re(`if you haven't cast a spell this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastBy(ctx.controller)
				if !ok {
					return Unknown
				}
				return outcomeOf(n == 0)
			},
		},
		{
			name:    "first-spell-this-turn",
			pattern: re(`if (?:it's|this is) the first spell you've cast this turn`),
			// Needs cast ordering the per-turn counters do not carry.
			resolve: nil,
		},
		{
			name:    "spells-cast-threshold",
			pattern: re(`if ` + countToken + ` or more spells were cast this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				n, tracked := ctx.snap.Turn.SpellsCastCount()
				return outcomeOfCount(n, tracked, min)
			},
		},
		{
			name:    "a-spell-was-cast-this-turn",
			pattern: re(`if (?:a spell was cast|a player cast a spell) this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastCount()
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "no-spells-cast-this-turn",
			pattern: re(`if no spells were cast this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastCount()
				if !ok {
					return Unknown
				}
				return outcomeOf(n == 0)
			},
		},
		{
			name:    "no-spells-cast-last-turn",
			pattern: re(`if no spells were cast last turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.SpellsCastLastTurnCount()
				if !ok {
					return Unknown
				}
				return outcomeOf(n == 0)
			},
		},
		{
			name:    "gained-life-threshold",
			pattern: re(`if you(?:'ve)? gained ` + countToken + ` or more life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				n, tracked := ctx.snap.Turn.LifeGainedBy(ctx.controller)
				return outcomeOfCount(n, tracked, min)
			},
		},
		{
			name:    "gained-life-this-turn",
			pattern: re(`if you(?:'ve)? gained life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.LifeGainedBy(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "not-gained-life-this-turn",
			pattern: re(`if you haven't gained life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.LifeGainedBy(ctx.controller)
				if !ok {
					return Unknown
				}
				return outcomeOf(n == 0)
			},
		},
		{
			name:    "lost-life-this-turn",
			pattern: re(`if you(?:'ve)? lost life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.LifeLostBy(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "opponent-lost-life-this-turn",
			pattern: re(`if an opponent lost life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				opponents, ok := ctx.opponents()
				if !ok {
					return Unknown
				}
				result := NotSatisfied
				for _, opp := range opponents {
					n, tracked := ctx.snap.Turn.LifeLostBy(opp.ID)
					if !tracked {
						result = Unknown
						continue
					}
					if n >= 1 {
						return Satisfied
					}
				}
				return result
			},
		},
		{
			name:    "each-opponent-lost-life-this-turn",
			pattern: re(`if each opponent lost life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				opponents, ok := ctx.opponents()
				if !ok {
					return Unknown
				}
				result := Satisfied
				for _, opp := range opponents {
					n, tracked := ctx.snap.Turn.LifeLostBy(opp.ID)
					if !tracked {
						result = Unknown
						continue
					}
					if n == 0 {
						return NotSatisfied
					}
				}
				return result
			},
		},
		{
			name:    "drawn-cards-threshold",
			pattern: re(`if you(?:'ve)? drawn ` + countToken + ` or more cards this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				n, tracked := ctx.snap.Turn.CardsDrawnBy(ctx.controller)
				return outcomeOfCount(n, tracked, min)
			},
		},
		{
			name:    "drawn-card-this-turn",
			pattern: re(`if you(?:'ve)? drawn a card this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.CardsDrawnBy(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "not-played-land-this-turn",
			pattern: re(`if you haven't played a land this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.LandsPlayedBy(ctx.controller)
				if !ok {
					return Unknown
				}
				return outcomeOf(n == 0)
			},
		},
		{
			name:    "played-land-this-turn",
			pattern: re(`if you(?:'ve)? played a land this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ctx.snap.Turn.LandsPlayedBy(ctx.controller)
				return outcomeOfCount(n, ok, 1)
			},
		},
	}
}
