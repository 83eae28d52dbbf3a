package state

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Permanent is a card or token on the battlefield. Counter counts, combat
// flags and attachment links are maintained by the state engine; the
// evaluator only reads them. Positive-only knowledge (entered-this-turn,
// granted abilities) is modeled so that absence stays distinguishable from
// a definite "no".
type Permanent struct {
	ID         string
	Controller string
	Owner      string
	Card       *Card

	// Counters maps counter kind (e.g. "+1/+1", "charge") to a
	// non-negative count.
	Counters map[string]int

	// Attachment links. IDs refer to other battlefield objects; an id
	// that no longer resolves means the attachment state is stale and
	// queries over it degrade to unknown.
	AttachedToID  string
	AttachmentIDs []string

	// GrantedAbilities lists keyword abilities granted by effects
	// (e.g. "Flying"). HasAbilityData reports whether ability metadata
	// was populated at all; when false, keyword absence proves nothing.
	GrantedAbilities []string
	HasAbilityData   bool

	// Combat and turn flags.
	Tapped          bool
	Attacking       bool
	Blocking        bool
	Blocked         bool
	AttackingTarget string // id of the player/permanent being attacked, if tracked
	IsToken         bool
	EnteredThisTurn Tri
}

// NewPermanent creates a permanent for the given card under the given
// controller, who is also its owner.
func NewPermanent(card *Card, controller string) *Permanent {
	return &Permanent{
		ID:              uuid.NewString(),
		Controller:      controller,
		Owner:           controller,
		Card:            card,
		EnteredThisTurn: TriUnknown,
	}
}

// Name returns the permanent's card name.
func (p *Permanent) Name() string {
	if p == nil || p.Card == nil {
		return ""
	}
	return p.Card.Name
}

// IsType reports whether the permanent's type line contains the card type.
func (p *Permanent) IsType(cardType string) bool {
	return p != nil && p.Card.IsType(cardType)
}

// HasSubType reports whether the permanent has the given subtype.
func (p *Permanent) HasSubType(subType string) bool {
	return p != nil && p.Card.HasSubType(subType)
}

// CounterCount returns the number of counters of the exact kind.
func (p *Permanent) CounterCount(kind string) int {
	if p == nil || p.Counters == nil {
		return 0
	}
	return p.Counters[kind]
}

// CounterCountFold returns the number of counters of the kind matched
// case-insensitively, summing all case variants.
func (p *Permanent) CounterCountFold(kind string) int {
	if p == nil || p.Counters == nil {
		return 0
	}
	total := 0
	for name, count := range p.Counters {
		if strings.EqualFold(name, kind) {
			total += count
		}
	}
	return total
}

// TotalCounters returns the number of counters of all kinds.
func (p *Permanent) TotalCounters() int {
	if p == nil {
		return 0
	}
	total := 0
	for _, count := range p.Counters {
		total += count
	}
	return total
}

// HasCounter reports whether the permanent has at least one counter of the
// kind, matched case-insensitively.
func (p *Permanent) HasCounter(kind string) bool {
	return p.CounterCountFold(kind) > 0
}

// PowerValue returns the permanent's power including +N/+N style counter
// bonuses. The second return is false when the base power is not a plain
// number (e.g. "*"); counter kinds that fail to parse as boost counters
// simply contribute nothing, so a bad counter name degrades to the base
// value rather than failing the evaluation.
func (p *Permanent) PowerValue() (int, bool) {
	power, ok := p.baseStat(func(c *Card) string { return c.Power })
	if !ok {
		return 0, false
	}
	for kind, count := range p.Counters {
		if dp, _, ok := parseBoostCounterKind(kind); ok {
			power += dp * count
		}
	}
	return power, true
}

// ToughnessValue returns the permanent's toughness including counter
// bonuses, with the same contract as PowerValue.
func (p *Permanent) ToughnessValue() (int, bool) {
	toughness, ok := p.baseStat(func(c *Card) string { return c.Toughness })
	if !ok {
		return 0, false
	}
	for kind, count := range p.Counters {
		if _, dt, ok := parseBoostCounterKind(kind); ok {
			toughness += dt * count
		}
	}
	return toughness, true
}

func (p *Permanent) baseStat(pick func(*Card) string) (int, bool) {
	if p == nil || p.Card == nil {
		return 0, false
	}
	raw := strings.TrimSpace(pick(p.Card))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseBoostCounterKind parses counter kinds like "+1/+1" or "-1/-1" into
// power/toughness deltas. Non-boost kinds return ok=false.
func parseBoostCounterKind(kind string) (int, int, bool) {
	parts := strings.SplitN(kind, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	power, err := strconv.Atoi(strings.TrimPrefix(parts[0], "+"))
	if err != nil {
		return 0, 0, false
	}
	toughness, err := strconv.Atoi(strings.TrimPrefix(parts[1], "+"))
	if err != nil {
		return 0, 0, false
	}
	return power, toughness, true
}

// HasGrantedAbility reports whether the ability name appears in the
// granted-ability list, case-insensitively.
func (p *Permanent) HasGrantedAbility(name string) bool {
	if p == nil {
		return false
	}
	for _, a := range p.GrantedAbilities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
