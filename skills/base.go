// Package skills is the concrete roster grounded on spec.md §9's named
// examples: capability-specific skill.* interfaces implemented against
// real hero abilities, each wired to the event bus the way the teacher
// toolkit's mechanics/conditions package wires a condition's behavior at
// Attach time rather than through a central dispatch switch.
package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
)

// base holds the identity fields every concrete skill shares, mirroring
// the small embeddable-state idiom the teacher uses for its own
// condition/effect base types.
type base struct {
	id           string
	name         string
	skillType    engine.SkillType
	capabilities engine.Capability
	ownerSeat    int
}

func (b *base) ID() string                     { return b.id }
func (b *base) Name() string                   { return b.name }
func (b *base) Type() engine.SkillType          { return b.skillType }
func (b *base) Capabilities() engine.Capability { return b.capabilities }

// IsActive is the default: true as long as the owner is alive. Skills
// with extra conditions (equipment still worn, role-locked) override it.
func (b *base) IsActive(g *engine.Game) bool {
	return g.Player(b.ownerSeat).IsAlive
}

// bindOwner records ownerSeat; called by each skill's own Attach before it
// subscribes to the bus.
func (b *base) bindOwner(ownerSeat int) {
	b.ownerSeat = ownerSeat
}

