package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// EmptyCity grants immunity to Slash and Duel responses while its owner's
// hand is empty (spec.md §9 named example; the "ResponseAssistance"
// capability it motivates — a skill that resolves a response window
// without a matching card). Satisfies reports that immunity, but no
// resolver or rule in this module calls skill.ResponseAssistance, and
// EmptyCity does not filter targets, so a handless owner can still be
// targeted by and must still respond to a Slash or Duel.
type EmptyCity struct {
	base
}

// NewEmptyCity constructs an unattached EmptyCity skill.
func NewEmptyCity() engine.Skill {
	return &EmptyCity{base: base{id: "empty_city", name: "Empty City", skillType: engine.SkillLocked, capabilities: engine.CapIntervenesResolution}}
}

var _ engine.Skill = (*EmptyCity)(nil)

// Attach implements engine.Skill.
func (e *EmptyCity) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	e.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (e *EmptyCity) Detach(bus events.Bus) error { return nil }

// IsActive overrides base: only while the owner's hand is empty, in
// addition to being alive.
func (e *EmptyCity) IsActive(g *engine.Game) bool {
	return g.Player(e.ownerSeat).IsAlive && g.Player(e.ownerSeat).Hand.Len() == 0
}

// Satisfies implements skill.ResponseAssistance.
func (e *EmptyCity) Satisfies(g *engine.Game, ownerSeat int, rt engine.ResponseType) bool {
	if ownerSeat != e.ownerSeat {
		return false
	}
	switch rt {
	case engine.ResponseSlashAgainstDuel, engine.ResponseJinkAgainstSlash:
		return true
	default:
		return false
	}
}
