package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// Modesty removes its owner from the candidate target list of any
// single-other-target trick card someone else is about to play (spec.md
// §4.3 "Modesty removes itself from single-target trick targets"; §9
// named example of the TargetFiltering capability).
type Modesty struct {
	base
}

// NewModesty constructs an unattached Modesty skill.
func NewModesty() engine.Skill {
	return &Modesty{base: base{id: "modesty", name: "Modesty", skillType: engine.SkillLocked, capabilities: engine.CapModifiesRules}}
}

var _ engine.Skill = (*Modesty)(nil)

// Attach implements engine.Skill.
func (m *Modesty) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	m.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (m *Modesty) Detach(bus events.Bus) error { return nil }

// FilterTargets implements skill.TargetFiltering: excludes the owner from
// single-target delayed or immediate trick candidate lists.
func (m *Modesty) FilterTargets(g *engine.Game, ownerSeat int, c card.Card, candidates []int) []int {
	if !isSingleTargetTrick(c.SubType) {
		return candidates
	}
	out := make([]int, 0, len(candidates))
	for _, seat := range candidates {
		if seat == m.ownerSeat {
			continue
		}
		out = append(out, seat)
	}
	return out
}

func isSingleTargetTrick(st card.SubType) bool {
	switch st {
	case card.SubTypeShunshouQianyang, card.SubTypeGuoheChaiqiao, card.SubTypeLebusishu, card.SubTypeShandian:
		return true
	default:
		return false
	}
}
