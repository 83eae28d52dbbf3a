package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLeadingClause(t *testing.T) {
	clause, ok := ExtractLeadingClause("If you control seven or more lands, draw a card.")
	assert.True(t, ok)
	assert.Equal(t, "if you control seven or more lands", clause)

	// No trailing comma: the clause runs to the end.
	clause, ok = ExtractLeadingClause("If you control a Knight")
	assert.True(t, ok)
	assert.Equal(t, "if you control a knight", clause)

	_, ok = ExtractLeadingClause("Draw a card.")
	assert.False(t, ok)

	// "if" must be a standalone word prefix.
	_, ok = ExtractLeadingClause("Ifrit deals 3 damage")
	assert.False(t, ok)

	_, ok = ExtractLeadingClause("")
	assert.False(t, ok)

	_, ok = ExtractLeadingClause("If , then nothing")
	assert.False(t, ok)
}

func TestExtractInterveningIfClause_TriggeredForm(t *testing.T) {
	clause, ok := ExtractInterveningIfClause(
		"At the beginning of your upkeep, if you have 40 or more life, you win the game.")
	assert.True(t, ok)
	assert.Equal(t, "if you have 40 or more life", clause)

	clause, ok = ExtractInterveningIfClause(
		"Whenever this creature attacks, if you control three or more Knights, it gets +2/+0.")
	assert.True(t, ok)
	assert.Equal(t, "if you control three or more knights", clause)
}

func TestExtractInterveningIfClause_RejectsReflexiveIf(t *testing.T) {
	// "If you do" style follow-ups are effect text, not conditions.
	_, ok := ExtractInterveningIfClause("Draw a card. If you do, discard a card.")
	assert.False(t, ok)

	// A ", if" past the first sentence is not an intervening-if.
	_, ok = ExtractInterveningIfClause(
		"When this enters, draw a card. Then, if you have no cards in hand, sacrifice it.")
	assert.False(t, ok)
}

func TestExtractInterveningIfClause_Normalization(t *testing.T) {
	clause, ok := ExtractInterveningIfClause("If   it’s  your turn,  untap it.")
	assert.True(t, ok)
	assert.Equal(t, "if it's your turn", clause)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, `"quoted" - it's`, NormalizeText("“quoted” — it’s"))

	once := NormalizeText("a    b")
	assert.Equal(t, "a b", once)
	assert.Equal(t, once, NormalizeText(once))
}
