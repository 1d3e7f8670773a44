package skills

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
)

// Guanxing is a once-per-own-Judge-phase active skill: view the top
// PeekCount cards of the draw pile and choose their new order (spec.md §9
// named example). This skill performs no reordering itself, and no
// resolver in this module does; it only advertises the action, and
// withholds it once its per-turn, per-seat usage flag is set (nothing in
// this module sets that flag).
type Guanxing struct {
	base
	PeekCount int
}

// NewGuanxing constructs an unattached Guanxing skill peeking n cards.
func NewGuanxing(n int) engine.Skill {
	return &Guanxing{
		base:      base{id: "guanxing", name: "Guanxing", skillType: engine.SkillActive, capabilities: engine.CapInitiatesChoices},
		PeekCount: n,
	}
}

var _ engine.Skill = (*Guanxing)(nil)

// Attach implements engine.Skill. Guanxing needs no bus subscription: it
// is offered as an action only during the owner's own Judge phase, which
// ProvideActions checks directly against the current game state.
func (gx *Guanxing) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	gx.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (gx *Guanxing) Detach(bus events.Bus) error { return nil }

// AllowedPhase implements skill.PhaseLimitedActionProviding.
func (gx *Guanxing) AllowedPhase() phase.Phase { return phase.Judge }

// ProvideActions implements skill.ActionProviding/PhaseLimitedActionProviding.
func (gx *Guanxing) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != gx.ownerSeat || g.CurrentPlayerSeat != ownerSeat || g.CurrentPhase != phase.Judge {
		return nil
	}
	if g.Player(ownerSeat).FlagBool(gx.usedFlag(g)) {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: gx.id, MaxTargets: gx.PeekCount}}
}

func (gx *Guanxing) usedFlag(g *engine.Game) string {
	return fmt.Sprintf("guanxing_used_turn_%d_seat_%d", g.TurnNumber, gx.ownerSeat)
}
