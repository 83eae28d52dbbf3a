package state

import "strings"

// CombatTracking is the per-combat declaration snapshot. When present it
// is preferred over the live Attacking/Blocking flags on permanents,
// which effects may have already cleared (removed from combat) without
// the declaration having been forgotten.
type CombatTracking struct {
	// Attackers maps attacking creature id to the id of the player or
	// permanent it attacks.
	Attackers map[string]string

	// Blockers maps blocking creature id to the attacker ids it blocks.
	Blockers map[string][]string
}

// IsAttacking reports whether the permanent is attacking, preferring the
// declared-combat snapshot over live flags.
func (s *Snapshot) IsAttacking(p *Permanent) bool {
	if p == nil {
		return false
	}
	if s != nil && s.Combat != nil && s.Combat.Attackers != nil {
		_, ok := s.Combat.Attackers[p.ID]
		return ok
	}
	return p.Attacking
}

// IsBlocking reports whether the permanent is blocking.
func (s *Snapshot) IsBlocking(p *Permanent) bool {
	if p == nil {
		return false
	}
	if s != nil && s.Combat != nil && s.Combat.Blockers != nil {
		return len(s.Combat.Blockers[p.ID]) > 0
	}
	return p.Blocking
}

// IsBlocked reports whether the attacking permanent is blocked.
func (s *Snapshot) IsBlocked(p *Permanent) bool {
	if p == nil {
		return false
	}
	if s != nil && s.Combat != nil && s.Combat.Blockers != nil {
		for _, attackers := range s.Combat.Blockers {
			for _, id := range attackers {
				if id == p.ID {
					return true
				}
			}
		}
		return false
	}
	return p.Blocked
}

// AttackTargetOf returns what the permanent is attacking (a player or
// permanent id). ok is false when the target is untracked.
func (s *Snapshot) AttackTargetOf(p *Permanent) (string, bool) {
	if p == nil {
		return "", false
	}
	if s != nil && s.Combat != nil && s.Combat.Attackers != nil {
		if target, ok := s.Combat.Attackers[p.ID]; ok && target != "" {
			return target, true
		}
	}
	if p.AttackingTarget != "" {
		return p.AttackingTarget, true
	}
	return "", false
}

// DeclaredAttackerCount returns the number of declared attackers,
// optionally restricted to one controller (empty string = all). ok is
// false when no declaration snapshot exists and live flags must not be
// trusted for counting (a removed attacker would undercount).
func (s *Snapshot) DeclaredAttackerCount(controller string) (int, bool) {
	if s == nil || s.Combat == nil || s.Combat.Attackers == nil {
		return 0, false
	}
	count := 0
	for id := range s.Combat.Attackers {
		if controller == "" {
			count++
			continue
		}
		if p := s.Permanent(id); p != nil && p.Controller == controller {
			count++
		}
	}
	return count, true
}

// CreatureAttackingPlayer reports whether any creature is attacking the
// given player.
func (s *Snapshot) CreatureAttackingPlayer(playerID string) Tri {
	if s == nil || playerID == "" {
		return TriUnknown
	}
	if s.Combat != nil && s.Combat.Attackers != nil {
		for _, target := range s.Combat.Attackers {
			if target == playerID {
				return TriTrue
			}
		}
		return TriFalse
	}
	// No declaration snapshot: live flags can prove an attack on the
	// player, but an attacker with an untracked target leaves the
	// question open.
	untargeted := false
	for _, p := range s.Battlefield {
		if !p.Attacking {
			continue
		}
		if p.AttackingTarget == playerID {
			return TriTrue
		}
		if p.AttackingTarget == "" {
			untargeted = true
		}
	}
	if untargeted {
		return TriUnknown
	}
	return TriFalse
}

// AttachedPermanent returns the battlefield object the permanent is
// attached to. ok is false when there is no link or the link does not
// resolve.
func (s *Snapshot) AttachedPermanent(p *Permanent) (*Permanent, bool) {
	if s == nil || p == nil || p.AttachedToID == "" {
		return nil, false
	}
	target := s.Permanent(p.AttachedToID)
	if target == nil {
		return nil, false
	}
	return target, true
}

// IsEquipped reports whether the permanent has an Equipment attached.
// Attachment ids that cannot be resolved to battlefield objects force
// Unknown rather than false.
func (s *Snapshot) IsEquipped(p *Permanent) Tri {
	return s.hasAttachmentOfSubType(p, "Equipment")
}

// IsEnchanted reports whether the permanent has an Aura attached, with the
// same conservative contract as IsEquipped.
func (s *Snapshot) IsEnchanted(p *Permanent) Tri {
	return s.hasAttachmentOfSubType(p, "Aura")
}

func (s *Snapshot) hasAttachmentOfSubType(p *Permanent, subType string) Tri {
	if p == nil {
		return TriUnknown
	}
	if len(p.AttachmentIDs) == 0 {
		return TriFalse
	}
	unresolved := false
	for _, id := range p.AttachmentIDs {
		attachment := s.Permanent(id)
		if attachment == nil {
			unresolved = true
			continue
		}
		if attachment.HasSubType(subType) {
			return TriTrue
		}
	}
	if unresolved {
		return TriUnknown
	}
	return TriFalse
}

// HasKeyword reports whether the permanent has the keyword ability,
// best-effort: a granted-ability entry, a keyword counter, or the keyword
// appearing as a word in the card's oracle text proves yes; a definite no
// requires ability metadata to exist at all.
func (s *Snapshot) HasKeyword(p *Permanent, keyword string) Tri {
	if p == nil || keyword == "" {
		return TriUnknown
	}
	if p.HasGrantedAbility(keyword) {
		return TriTrue
	}
	if p.HasCounter(keyword) {
		return TriTrue
	}
	if p.Card != nil && oracleTextHasKeyword(p.Card.OracleText, keyword) {
		return TriTrue
	}
	if p.HasAbilityData {
		return TriFalse
	}
	return TriUnknown
}

// oracleTextHasKeyword looks for the keyword as a standalone word sequence
// in oracle text, ignoring case and reminder-text punctuation.
func oracleTextHasKeyword(text, keyword string) bool {
	if text == "" {
		return false
	}
	clean := strings.ToLower(text)
	needle := strings.ToLower(keyword)
	idx := 0
	for {
		i := strings.Index(clean[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		beforeOK := start == 0 || !isWordByte(clean[start-1])
		afterOK := end == len(clean) || !isWordByte(clean[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
