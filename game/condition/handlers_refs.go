package condition

// refsHandlers covers clauses naming entities only the trigger engine can
// identify: "that player", "the defending player", "those creatures".
// Each resolver looks the entity up through the refs bag and degrades to
// Unknown when the reference was not supplied.
func refsHandlers() []handler {
	return []handler{
		{
			name:    "that-player-more-life-than-you",
			pattern: re(`if that player has more life than you`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				me := ctx.player()
				if that == nil || me == nil {
					return Unknown
				}
				return outcomeOf(that.Life > me.Life)
			},
		},
		{
			name:    "that-player-life-threshold-max",
			pattern: re(`if that player has ` + countToken + ` or (?:less|fewer) life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				if that == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(that.Life <= n)
			},
		},
		{
			name:    "that-player-life-threshold-min",
			pattern: re(`if that player has ` + countToken + ` or more life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				if that == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(that.Life >= n)
			},
		},
		{
			name:    "that-player-is-opponent",
			pattern: re(`if that player is an opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.refs.thatPlayer()
				if that == "" {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.IsOpponent(ctx.controller, that))
			},
		},
		{
			name:    "that-player-controls",
			pattern: re(`if that player controls (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				if that == nil {
					return Unknown
				}
				return ctx.playerControls(that.ID, m[1])
			},
		},
		{
			name:    "that-player-empty-hand",
			pattern: re(`if that player has no cards in hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				if that == nil {
					return Unknown
				}
				return outcomeOf(that.HandSize() == 0)
			},
		},
		{
			name:    "that-player-hand-threshold-min",
			pattern: re(`if that player has ` + countToken + ` or more cards in hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.snap.Player(ctx.refs.thatPlayer())
				if that == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(that.HandSize() >= n)
			},
		},
		{
			name:    "that-player-lost-life-this-turn",
			pattern: re(`if that player lost life this turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				that := ctx.refs.thatPlayer()
				if that == "" {
					return Unknown
				}
				n, ok := ctx.snap.Turn.LifeLostBy(that)
				return outcomeOfCount(n, ok, 1)
			},
		},
		{
			name:    "defending-player-controls",
			pattern: re(`if the defending player controls (?:a|an) (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				defending := ctx.refs.defendingPlayer()
				if defending == "" || ctx.snap.Player(defending) == nil {
					return Unknown
				}
				return ctx.playerControls(defending, m[1])
			},
		},
		{
			name:    "defending-player-controls-none",
			pattern: re(`if the defending player controls no (.+)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				defending := ctx.refs.defendingPlayer()
				if defending == "" || ctx.snap.Player(defending) == nil {
					return Unknown
				}
				result := ctx.playerControls(defending, m[1])
				switch result {
				case Satisfied:
					return NotSatisfied
				case NotSatisfied:
					return Satisfied
				}
				return Unknown
			},
		},
		{
			name:    "defending-player-life-threshold-max",
			pattern: re(`if the defending player has ` + countToken + ` or (?:less|fewer) life`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				defending := ctx.snap.Player(ctx.refs.defendingPlayer())
				if defending == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(defending.Life <= n)
			},
		},
		{
			name:    "those-creatures-on-battlefield",
			pattern: re(`if (?:all|both) of those creatures are still on the battlefield`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				ids := ctx.refs.thoseCreatures()
				if len(ids) == 0 {
					return Unknown
				}
				for _, id := range ids {
					if ctx.snap.Permanent(id) == nil {
						return NotSatisfied
					}
				}
				return Satisfied
			},
		},
		{
			name:    "n-of-those-creatures-on-battlefield",
			pattern: re(`if ` + countToken + ` or more of (?:them|those creatures) are still on the battlefield`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				ids := ctx.refs.thoseCreatures()
				if len(ids) == 0 {
					return Unknown
				}
				count := 0
				for _, id := range ids {
					if ctx.snap.Permanent(id) != nil {
						count++
					}
				}
				return outcomeOf(count >= n)
			},
		},
		{
			name:    "one-of-those-creatures-on-battlefield",
			pattern: re(`if (?:one|any) of those creatures is still on the battlefield`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				ids := ctx.refs.thoseCreatures()
				if len(ids) == 0 {
					return Unknown
				}
				for _, id := range ids {
					if ctx.snap.Permanent(id) != nil {
						return Satisfied
					}
				}
				return NotSatisfied
			},
		},
	}
}

// playerControls tests an arbitrary player's battlefield against a parsed
// permanent phrase, degrading to Unknown for phrases the parser rejects.
func (c *evalContext) playerControls(playerID, phrase string) Outcome {
	pred, ok := c.permanentPhrase(phrase)
	if !ok {
		return Unknown
	}
	for _, p := range c.snap.Battlefield {
		if p.Controller == playerID && pred(p) {
			return Satisfied
		}
	}
	return NotSatisfied
}
