package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magefree/mage-conditions-go/game/state"
)

func TestSingularize(t *testing.T) {
	cases := map[string]string{
		"creatures": "creature",
		"lands":     "land",
		"knights":   "knight",
		"armies":    "army",
		"elves":     "elf",
		"wolves":    "wolf",
		"witches":   "witch",
		"foxes":     "fox",
		"creature":  "creature",
		"wastes":    "waste",
	}
	for plural, singular := range cases {
		assert.Equal(t, singular, singularize(plural), "plural %q", plural)
	}
}

func TestWordForms_IEStems(t *testing.T) {
	assert.Contains(t, wordForms("zombies"), "zombie")
	assert.Contains(t, wordForms("armies"), "army")
	assert.Contains(t, wordForms("plains"), "plains")
}

func TestPermanentPredicate(t *testing.T) {
	bear := state.NewPermanent(state.NewCard("Grizzly Bears", "Creature — Bear"), "alice")
	relic := state.NewPermanent(state.NewCard("Darksteel Relic", "Artifact"), "alice")
	relic.Card.Colors = nil
	goblin := state.NewPermanent(state.NewCard("Goblin Token", "Creature — Goblin"), "alice")
	goblin.IsToken = true
	goblin.Card.Colors = []string{"R"}
	plains := state.NewPermanent(state.NewCard("Plains", "Basic Land — Plains"), "alice")

	cases := []struct {
		phrase string
		perm   *state.Permanent
		want   bool
	}{
		{"creature", bear, true},
		{"creature", relic, false},
		{"creatures", bear, true},
		{"artifact", relic, true},
		{"creature token", goblin, true},
		{"creature token", bear, false},
		{"nontoken creature", bear, true},
		{"nontoken creature", goblin, false},
		{"red creature", goblin, true},
		{"red creature", bear, false},
		{"colorless artifact", relic, true},
		{"basic land", plains, true},
		{"plains", plains, true},
		{"goblin", goblin, true},
		{"zombies", goblin, false},
		{"permanent", relic, true},
	}
	for _, tc := range cases {
		pred, ok := permanentPredicate(tc.phrase)
		assert.True(t, ok, "phrase %q", tc.phrase)
		assert.Equal(t, tc.want, pred(tc.perm), "phrase %q against %s", tc.phrase, tc.perm.Name())
	}

	_, ok := permanentPredicate("")
	assert.False(t, ok)
}
