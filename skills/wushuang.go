package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// Wushuang makes a Slash played by its owner require two Dodges (instead
// of one) from the target to avoid damage (spec.md §4.7
// "ResponseRequirementModifying").
type Wushuang struct {
	base
}

// NewWushuang constructs an unattached Wushuang skill.
func NewWushuang() engine.Skill {
	return &Wushuang{base: base{id: "wushuang", name: "Wushuang", skillType: engine.SkillLocked, capabilities: engine.CapModifiesRules}}
}

var _ engine.Skill = (*Wushuang)(nil)

// Attach implements engine.Skill.
func (w *Wushuang) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	w.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (w *Wushuang) Detach(bus events.Bus) error { return nil }

// RequiredCount implements skill.ResponseRequirementModifying. The
// interface carries no source-seat argument, so this applies to any Dodge
// window targetSeat opens while Wushuang's owner is alive; a full
// reimplementation would thread the Slash's source seat through so the
// requirement only bites when the owner is the one attacking.
func (w *Wushuang) RequiredCount(g *engine.Game, targetSeat int, rt engine.ResponseType) int {
	if rt != engine.ResponseJinkAgainstSlash {
		return 1
	}
	return 2
}
