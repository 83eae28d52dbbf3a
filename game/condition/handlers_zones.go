package condition

import (
	"strings"

	"github.com/magefree/mage-conditions-go/game/state"
)

// cardTypeWord matches a card type or subtype word qualifying "card(s)".
const cardTypeWord = `([a-z]+)`

// cardPredicate builds a predicate over zone cards from a single type or
// subtype word.
func cardPredicate(raw string) func(*state.Card) bool {
	raw = strings.ToLower(raw)
	word := singularize(raw)
	if cardType, ok := typeWords[word]; ok {
		return func(c *state.Card) bool { return c.IsType(cardType) }
	}
	if word == "instant" {
		return func(c *state.Card) bool { return c.IsType(state.TypeInstant) }
	}
	if word == "sorcery" {
		return func(c *state.Card) bool { return c.IsType(state.TypeSorcery) }
	}
	if symbol, ok := colorWords[word]; ok {
		return func(c *state.Card) bool { return c.HasColor(symbol) }
	}
	forms := wordForms(raw)
	return func(c *state.Card) bool {
		for _, f := range forms {
			if c.HasSubType(f) {
				return true
			}
		}
		return false
	}
}

// zoneHandlers covers hand/graveyard/library size and content clauses.
func zoneHandlers() []handler {
	return []handler{
		{
			name:    "empty-hand",
			pattern: re(`if you have no cards in (?:your )?hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				return outcomeOf(me.HandSize() == 0)
			},
		},
		{
			name:    "hand-threshold-min",
			pattern: re(`if you have ` + countToken + ` or more cards in (?:your )?hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.HandSize() >= n)
			},
		},
		{
			name:    "hand-threshold-max",
			pattern: re(`if you have ` + countToken + ` or fewer cards in (?:your )?hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.HandSize() <= n)
			},
		},
		{
			name:    "hand-exactly",
			pattern: re(`if you have exactly ` + countToken + ` cards? in (?:your )?hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.HandSize() == n)
			},
		},
		{
			name:    "opponent-more-cards-than-you",
			pattern: re(`if an opponent has more cards in hand than you`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return opp.HandSize() > me.HandSize()
				})
			},
		},
		{
			name:    "opponent-empty-hand",
			pattern: re(`if an opponent has no cards in hand`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return ctx.existsOpponent(func(opp *state.Player) bool {
					return opp.HandSize() == 0
				})
			},
		},
		{
			name:    "more-cards-than-each-opponent",
			pattern: re(`if you have more cards in hand than each opponent`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				return outcomeOfTri(ctx.snap.MoreThanEachOpponent(ctx.controller, state.HandSizeMetric))
			},
		},
		{
			name:    "graveyard-threshold",
			pattern: re(`if (?:there are ` + countToken + ` or more cards in your graveyard|your graveyard has ` + countToken + ` or more cards in it)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				token := m[1]
				if token == "" {
					token = m[2]
				}
				n, ok := ParseCountToken(token)
				if !ok {
					return Unknown
				}
				return outcomeOf(me.GraveyardSize() >= n)
			},
		},
		{
			name:    "graveyard-typed-threshold",
			pattern: re(`if there are ` + countToken + ` or more ` + cardTypeWord + ` cards in your graveyard`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				pred := cardPredicate(m[2])
				count := 0
				for _, c := range me.Graveyard {
					if pred(c) {
						count++
					}
				}
				return outcomeOf(count >= n)
			},
		},
		{
			name:    "graveyard-typed-card-present",
			pattern: re(`if (?:there is (?:a|an) ` + cardTypeWord + ` card in your graveyard|(?:a|an) ` + cardTypeWord + ` card is in your graveyard)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				word := m[1]
				if word == "" {
					word = m[2]
				}
				pred := cardPredicate(word)
				for _, c := range me.Graveyard {
					if pred(c) {
						return Satisfied
					}
				}
				return NotSatisfied
			},
		},
		{
			name:    "graveyard-typed-card-absent",
			pattern: re(`if there are no ` + cardTypeWord + ` cards in your graveyard`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				pred := cardPredicate(m[1])
				for _, c := range me.Graveyard {
					if pred(c) {
						return NotSatisfied
					}
				}
				return Satisfied
			},
		},
		{
			name:    "delirium",
			pattern: re(`if there are ` + countToken + ` or more card types among cards in your graveyard`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				n, ok := ParseCountToken(m[1])
				if !ok {
					return Unknown
				}
				return outcomeOf(me.GraveyardCardTypeCount() >= n)
			},
		},
		{
			name:    "only-creature-card-in-graveyard",
			pattern: re(`if (?:it's|it is|this card is) the only creature card in your graveyard`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil || ctx.source == nil {
					return Unknown
				}
				return outcomeOfTri(me.OnlyCreatureCardInGraveyard(ctx.source.Name()))
			},
		},
		{
			name:    "library-threshold-max",
			pattern: re(`if (?:your library has ` + countToken + ` or fewer cards in it|there are ` + countToken + ` or fewer cards in your library)`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				token := m[1]
				if token == "" {
					token = m[2]
				}
				n, ok := ParseCountToken(token)
				if !ok {
					return Unknown
				}
				size, visible := me.LibrarySize()
				if !visible {
					return Unknown
				}
				return outcomeOf(size <= n)
			},
		},
		{
			name:    "empty-library",
			pattern: re(`if you have no cards in (?:your )?library`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				size, visible := me.LibrarySize()
				if !visible {
					return Unknown
				}
				return outcomeOf(size == 0)
			},
		},
		{
			name:    "top-of-library-type",
			pattern: re(`if the top card of your library is (?:a|an) ` + cardTypeWord + ` card`),
			resolve: func(ctx *evalContext, m []string) Outcome {
				me := ctx.player()
				if me == nil {
					return Unknown
				}
				top, ok := me.TopOfLibrary()
				if !ok {
					return Unknown
				}
				return outcomeOf(cardPredicate(m[1])(top))
			},
		},
	}
}
