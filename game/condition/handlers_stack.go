package condition

// spellRef matches how a clause names the triggering spell on the stack.
const spellRef = `(?:it|this spell)`

// stackHandlers covers cast-time metadata clauses over the triggering
// stack item: mana spent, kicker, foretell, cast-from zone. The stack
// item comes from the refs bag; without one every clause here is Unknown.
func stackHandlers() []handler {
	return []handler{
		{
			name:    "mana-color-spent",
			pattern: re(`if \{([wubrgc])\} was spent to cast ` + spellRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil {
					return Unknown
				}
				n, ok := item.ManaSpentOf(upperSymbol(m[1]))
				if !ok {
					return Unknown
				}
				return outcomeOf(n >= 1)
			},
		},
		{
			name:    "mana-amount-spent",
			pattern: re(`if ` + countToken + ` or more mana was spent to cast ` + spellRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				min, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				item := ctx.triggeringStackItem()
				if item == nil || item.ManaSpent == nil {
					return Unknown
				}
				total := 0
				for _, n := range item.ManaSpent {
					total += n
				}
				return outcomeOf(total >= min)
			},
		},
		{
			name:    "kicked",
			pattern: re(`if ` + spellRef + ` was kicked`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil {
					return Unknown
				}
				return outcomeOfTri(item.Kicked)
			},
		},
		{
			name:    "not-kicked",
			pattern: re(`if ` + spellRef + ` wasn't kicked`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil {
					return Unknown
				}
				return outcomeOfTri(item.Kicked.Not())
			},
		},
		{
			name:    "foretold",
			pattern: re(`if ` + spellRef + ` was foretold`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil {
					return Unknown
				}
				return outcomeOfTri(item.Foretold)
			},
		},
		{
			name:    "cast-from-zone",
			pattern: re(`if ` + spellRef + ` was cast from (?:your )?(hand|graveyard|library|exile)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil || item.CastFromZone == "" {
					return Unknown
				}
				return outcomeOf(item.CastFromZone == m[1])
			},
		},
		{
			name:    "no-mana-spent",
			pattern: re(`if no mana was spent to cast ` + spellRef),
			resolve: func(ctx *evalContext, m []string) Outcome {
				item := ctx.triggeringStackItem()
				if item == nil || item.ManaSpent == nil {
					return Unknown
				}
				total := 0
				for _, n := range item.ManaSpent {
					total += n
				}
				return outcomeOf(total == 0)
			},
		},
	}
}

// upperSymbol maps a lowercase color symbol from a clause to the mana
// breakdown's key.
func upperSymbol(s string) string {
	switch s {
	case "w":
		return "W"
	case "u":
		return "U"
	case "b":
		return "B"
	case "r":
		return "R"
	case "g":
		return "G"
	case "c":
		return "C"
	}
	return s
}
