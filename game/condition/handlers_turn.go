package condition

// turnHandlers covers whose-turn-it-is clauses. ActivePlayerID is empty
// when the snapshot does not record turn order, which leaves all of these
// Unknown.
func turnHandlers() []handler {
	return []handler{
		{
			name:    "your-turn",
			pattern: re(`if it's your turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				active := ctx.snap.ActivePlayerID
				if active == "" {
					return Unknown
				}
				return outcomeOf(active == ctx.controller)
			},
		},
		{
			name:    "not-your-turn",
			pattern: re(`if it's not your turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				active := ctx.snap.ActivePlayerID
				if active == "" {
					return Unknown
				}
				return outcomeOf(active != ctx.controller)
			},
		},
		{
			name:    "opponents-turn",
			pattern: re(`if it's an opponent's turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				active := ctx.snap.ActivePlayerID
				if active == "" {
					return Unknown
				}
				return outcomeOfTri(ctx.snap.IsOpponent(ctx.controller, active))
			},
		},
		{
			name:    "that-players-turn",
			pattern: re(`if it's that player's turn`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				active := ctx.snap.ActivePlayerID
				that := ctx.refs.thatPlayer()
				if active == "" || that == "" {
					return Unknown
				}
				return outcomeOf(active == that)
			},
		},
	}
}
