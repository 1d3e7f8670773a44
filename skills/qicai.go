package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// Qicai lets its owner ignore distance entirely when selecting targets
// for trick cards (spec.md §4.3 "A Qicai skill on the source removes
// distance for trick cards"; §9 named example of rules.DistanceIgnoringProvider).
type Qicai struct {
	base
}

// NewQicai constructs an unattached Qicai skill.
func NewQicai() engine.Skill {
	return &Qicai{base: base{id: "qicai", name: "Qicai", skillType: engine.SkillLocked, capabilities: engine.CapModifiesRules}}
}

var _ engine.Skill = (*Qicai)(nil)

// Attach implements engine.Skill.
func (q *Qicai) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	q.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (q *Qicai) Detach(bus events.Bus) error { return nil }

// IgnoresDistanceForTricks implements rules.DistanceIgnoringProvider.
func (q *Qicai) IgnoresDistanceForTricks(g *engine.Game, ownerSeat int) bool {
	return ownerSeat == q.ownerSeat
}
