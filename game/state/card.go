package state

import "strings"

// Card type constants used in type lines.
const (
	TypeArtifact     = "Artifact"
	TypeBattle       = "Battle"
	TypeCreature     = "Creature"
	TypeEnchantment  = "Enchantment"
	TypeInstant      = "Instant"
	TypeLand         = "Land"
	TypePlaneswalker = "Planeswalker"
	TypeSorcery      = "Sorcery"
)

// Supertype constants.
const (
	SuperTypeBasic     = "Basic"
	SuperTypeLegendary = "Legendary"
	SuperTypeSnow      = "Snow"
	SuperTypeWorld     = "World"
)

// basicLandTypes are the subtypes printed on basic lands.
var basicLandTypes = []string{"Plains", "Island", "Swamp", "Mountain", "Forest", "Wastes"}

// IsBasicLandTypeName reports whether the word names a basic land type.
func IsBasicLandTypeName(word string) bool {
	for _, t := range basicLandTypes {
		if strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}

// Card is the immutable printed face of a card: type line, base
// power/toughness, colors and mana value. Permanents reference a Card;
// zone contents are Cards directly.
type Card struct {
	Name       string
	SuperTypes []string
	Types      []string
	SubTypes   []string
	Colors     []string // color symbols: W, U, B, R, G
	ManaValue  int
	Power      string // base power; may be "*" or empty for non-creatures
	Toughness  string
	OracleText string
}

// NewCard creates a card from a name and a type line such as
// "Legendary Creature — Human Knight". The em-dash separates subtypes.
func NewCard(name, typeLine string) *Card {
	c := &Card{Name: name}
	line := strings.ReplaceAll(typeLine, "—", "-")
	parts := strings.SplitN(line, "-", 2)
	for _, word := range strings.Fields(parts[0]) {
		switch word {
		case SuperTypeBasic, SuperTypeLegendary, SuperTypeSnow, SuperTypeWorld:
			c.SuperTypes = append(c.SuperTypes, word)
		default:
			c.Types = append(c.Types, word)
		}
	}
	if len(parts) == 2 {
		c.SubTypes = append(c.SubTypes, strings.Fields(parts[1])...)
	}
	return c
}

// IsType reports whether the card's type line contains the given card type.
func (c *Card) IsType(cardType string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.Types {
		if strings.EqualFold(t, cardType) {
			return true
		}
	}
	return false
}

// HasSuperType reports whether the card carries the given supertype.
func (c *Card) HasSuperType(superType string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.SuperTypes {
		if strings.EqualFold(t, superType) {
			return true
		}
	}
	return false
}

// HasSubType reports whether the card's subtypes contain the given word,
// case-insensitively.
func (c *Card) HasSubType(subType string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.SubTypes {
		if strings.EqualFold(t, subType) {
			return true
		}
	}
	return false
}

// HasColor reports whether the card has the given color symbol (W/U/B/R/G).
func (c *Card) HasColor(symbol string) bool {
	if c == nil {
		return false
	}
	for _, col := range c.Colors {
		if strings.EqualFold(col, symbol) {
			return true
		}
	}
	return false
}

// IsMulticolored reports whether the card has two or more colors.
func (c *Card) IsMulticolored() bool {
	return c != nil && len(c.Colors) >= 2
}

// IsColorless reports whether the card has no colors.
func (c *Card) IsColorless() bool {
	return c != nil && len(c.Colors) == 0
}

// IsBasicLand reports whether the card is a basic land.
func (c *Card) IsBasicLand() bool {
	return c.IsType(TypeLand) && c.HasSuperType(SuperTypeBasic)
}
