package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// Jijiu lets its owner present any red (Heart or Diamond) hand card as a
// Peach, usable during the dying-rescue response window regardless of
// whose turn it is (spec.md §8 scenario 4: "a Jijiu-convertible red card,
// outside their turn").
type Jijiu struct {
	base
}

// NewJijiu constructs an unattached Jijiu skill.
func NewJijiu() engine.Skill {
	return &Jijiu{base: base{id: "jijiu", name: "Jijiu", skillType: engine.SkillLocked, capabilities: engine.CapNone}}
}

var _ engine.Skill = (*Jijiu)(nil)

// Attach implements engine.Skill.
func (j *Jijiu) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	j.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (j *Jijiu) Detach(bus events.Bus) error { return nil }

// Convert implements skill.CardConversion.
func (j *Jijiu) Convert(g *engine.Game, ownerSeat int, c card.Card) (card.Card, bool) {
	if c.SubType == card.SubTypePeach {
		return card.Card{}, false
	}
	if c.Suit != card.Heart && c.Suit != card.Diamond {
		return card.Card{}, false
	}
	return c.Virtual(c.DefinitionID, card.TypeBasic, card.SubTypePeach), true
}
