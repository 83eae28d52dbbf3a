package condition

import (
	"strings"

	"github.com/magefree/mage-conditions-go/game/state"
)

// typeWords maps clause words to card types. Plural forms are resolved by
// singularize before lookup.
var typeWords = map[string]string{
	"artifact":     state.TypeArtifact,
	"battle":       state.TypeBattle,
	"creature":     state.TypeCreature,
	"enchantment":  state.TypeEnchantment,
	"land":         state.TypeLand,
	"planeswalker": state.TypePlaneswalker,
}

var colorWords = map[string]string{
	"white": "W",
	"blue":  "U",
	"black": "B",
	"red":   "R",
	"green": "G",
}

// permanentPredicate parses a noun phrase from a control clause ("creature",
// "untapped artifact", "white creature", "basic land", "knight",
// "artifact creature", "creature token") into a predicate over
// battlefield objects. ok is false when the phrase is empty or contains
// nothing recognizable as a permanent description.
func permanentPredicate(phrase string) (func(*state.Permanent) bool, bool) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(phrase)))
	if len(words) == 0 {
		return nil, false
	}
	var preds []func(*state.Permanent) bool
	for _, raw := range words {
		word := singularize(raw)
		switch {
		case word == "permanent" || word == "other" || word == "another":
			// "other"/"another" exclusion is handled by the caller.
		case word == "token":
			preds = append(preds, func(p *state.Permanent) bool { return p.IsToken })
		case word == "nontoken":
			preds = append(preds, func(p *state.Permanent) bool { return !p.IsToken })
		case word == "tapped":
			preds = append(preds, func(p *state.Permanent) bool { return p.Tapped })
		case word == "untapped":
			preds = append(preds, func(p *state.Permanent) bool { return !p.Tapped })
		case word == "attacking":
			preds = append(preds, func(p *state.Permanent) bool { return p.Attacking })
		case word == "multicolored":
			preds = append(preds, func(p *state.Permanent) bool { return p.Card.IsMulticolored() })
		case word == "colorless":
			preds = append(preds, func(p *state.Permanent) bool { return p.Card.IsColorless() })
		case word == "basic":
			preds = append(preds, func(p *state.Permanent) bool { return p.Card.HasSuperType(state.SuperTypeBasic) })
		case word == "legendary":
			preds = append(preds, func(p *state.Permanent) bool { return p.Card.HasSuperType(state.SuperTypeLegendary) })
		case word == "snow":
			preds = append(preds, func(p *state.Permanent) bool { return p.Card.HasSuperType(state.SuperTypeSnow) })
		default:
			if symbol, ok := colorWords[word]; ok {
				preds = append(preds, func(p *state.Permanent) bool { return p.Card.HasColor(symbol) })
				continue
			}
			if cardType, ok := typeWords[word]; ok {
				preds = append(preds, func(p *state.Permanent) bool { return p.IsType(cardType) })
				continue
			}
			// Anything else is a subtype or name word ("knight",
			// "plains", "zombies"). Every plausible singular form is
			// tried: "plains" is already singular, and "zombies" must
			// strip to "zombie", not "zomby".
			forms := wordForms(raw)
			preds = append(preds, func(p *state.Permanent) bool {
				for _, f := range forms {
					if p.HasSubType(f) || strings.EqualFold(p.Name(), f) {
						return true
					}
				}
				return false
			})
		}
	}
	if len(preds) == 0 {
		// Pure "permanent(s)" phrase: everything matches.
		return func(*state.Permanent) bool { return true }, true
	}
	return func(p *state.Permanent) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}, true
}

// wordForms returns the candidate singular forms of a clause word: the
// word itself, the suffix-rule singular, and the bare s-strip (which is
// the right answer for -ie stems like "zombies").
func wordForms(raw string) []string {
	forms := []string{raw}
	if s := singularize(raw); s != raw {
		forms = append(forms, s)
	}
	if strings.HasSuffix(raw, "s") && !strings.HasSuffix(raw, "ss") && len(raw) > 2 {
		if trimmed := raw[:len(raw)-1]; trimmed != raw && !contains(forms, trimmed) {
			forms = append(forms, trimmed)
		}
	}
	return forms
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// singularize strips a plural suffix from a clause word. Only the regular
// forms that appear in rules text are handled; words that are not plural
// come back unchanged.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ves") && len(word) > 4:
		// elves -> elf, wolves -> wolf
		return word[:len(word)-3] + "f"
	case strings.HasSuffix(word, "es") && (strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "xes")):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 2:
		return word[:len(word)-1]
	}
	return word
}
