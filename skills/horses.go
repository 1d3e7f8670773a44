package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// OffensiveHorse reduces the seat distance its owner perceives toward
// every other seat by 1, making them easier to attack (spec.md §4.3
// seat-distance modifier; the equipment-slot analogue of a RangeModifier).
type OffensiveHorse struct {
	base
}

// NewOffensiveHorse constructs an unattached offensive-horse equipment
// skill.
func NewOffensiveHorse() engine.Skill {
	return &OffensiveHorse{base: base{id: "offensive_horse", name: "Offensive Horse", skillType: engine.SkillLocked, capabilities: engine.CapModifiesRules}}
}

var _ engine.Skill = (*OffensiveHorse)(nil)

// Attach implements engine.Skill.
func (h *OffensiveHorse) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	h.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (h *OffensiveHorse) Detach(bus events.Bus) error { return nil }

// ModifySeatDistance implements rules.RangeModifier: from the owner's
// perspective as an attacker, every other seat is 1 closer.
func (h *OffensiveHorse) ModifySeatDistance(g *engine.Game, from, to, raw int) int {
	if from != h.ownerSeat {
		return raw
	}
	if raw > 1 {
		return raw - 1
	}
	return raw
}

// ModifyAttackRange implements rules.RangeModifier: unaffected, this is a
// seat-distance modifier, not an attack-range one.
func (h *OffensiveHorse) ModifyAttackRange(g *engine.Game, owner, raw int) int {
	return raw
}

// DefensiveHorse increases the seat distance every other seat perceives
// toward its owner by 1, making them harder to attack.
type DefensiveHorse struct {
	base
}

// NewDefensiveHorse constructs an unattached defensive-horse equipment
// skill.
func NewDefensiveHorse() engine.Skill {
	return &DefensiveHorse{base: base{id: "defensive_horse", name: "Defensive Horse", skillType: engine.SkillLocked, capabilities: engine.CapModifiesRules}}
}

var _ engine.Skill = (*DefensiveHorse)(nil)

// Attach implements engine.Skill.
func (h *DefensiveHorse) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	h.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (h *DefensiveHorse) Detach(bus events.Bus) error { return nil }

// ModifySeatDistance implements rules.RangeModifier: when the owner is the
// target, the distance any attacker perceives increases by 1.
func (h *DefensiveHorse) ModifySeatDistance(g *engine.Game, from, to, raw int) int {
	if to != h.ownerSeat {
		return raw
	}
	return raw + 1
}

// ModifyAttackRange implements rules.RangeModifier: unaffected.
func (h *DefensiveHorse) ModifyAttackRange(g *engine.Game, owner, raw int) int {
	return raw
}
