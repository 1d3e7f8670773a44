package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// LongDan lets its owner use a Slash as a Dodge and a Dodge as a Slash,
// the two-way card-conversion example named in spec.md §9.
type LongDan struct {
	base
}

// NewLongDan constructs an unattached LongDan skill.
func NewLongDan() engine.Skill {
	return &LongDan{base: base{id: "longdan", name: "Long Dan", skillType: engine.SkillLocked, capabilities: engine.CapNone}}
}

var _ engine.Skill = (*LongDan)(nil)

// Attach implements engine.Skill. LongDan is a locked skill with no event
// subscription of its own; Convert is invoked directly by whatever
// resolver assembles the action query.
func (l *LongDan) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	l.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (l *LongDan) Detach(bus events.Bus) error { return nil }

// Convert implements skill.CardConversion.
func (l *LongDan) Convert(g *engine.Game, ownerSeat int, c card.Card) (card.Card, bool) {
	switch c.SubType {
	case card.SubTypeSlash:
		return c.Virtual(c.DefinitionID, card.TypeBasic, card.SubTypeDodge), true
	case card.SubTypeDodge:
		return c.Virtual(c.DefinitionID, card.TypeBasic, card.SubTypeSlash), true
	default:
		return card.Card{}, false
	}
}
