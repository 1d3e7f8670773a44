package skills

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
)

// FanJian is a once-per-turn active skill: choose a target, the owner's
// random source (spec.md §5 "FanJian" named random-selection consumer)
// picks one unseen card from that target's hand, and the target either
// discards it (if it shares the owner's suit) or takes 1 damage. Like
// Lijian, the sub-choice and random pick are carried out by a
// not-yet-built orchestrating resolver; ProvideActions only advertises
// eligibility (spec.md §4.4 nested-choice orchestrator example).
type FanJian struct {
	base
}

// NewFanJian constructs an unattached FanJian skill.
func NewFanJian() engine.Skill {
	return &FanJian{base: base{id: "fanjian", name: "Fan Jian", skillType: engine.SkillActive, capabilities: engine.CapInitiatesChoices}}
}

var _ engine.Skill = (*FanJian)(nil)

// Attach implements engine.Skill.
func (f *FanJian) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	f.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (f *FanJian) Detach(bus events.Bus) error { return nil }

// AllowedPhase implements skill.PhaseLimitedActionProviding.
func (f *FanJian) AllowedPhase() phase.Phase { return phase.Play }

// ProvideActions implements skill.ActionProviding/PhaseLimitedActionProviding.
func (f *FanJian) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != f.ownerSeat || g.CurrentPhase != phase.Play || g.Player(ownerSeat).FlagBool(f.usedFlag(g)) {
		return nil
	}
	if !hasOtherSeatWithCards(g, f.ownerSeat) {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: f.id, MaxTargets: 1}}
}

func (f *FanJian) usedFlag(g *engine.Game) string {
	return fmt.Sprintf("fanjian_used_turn_%d_seat_%d", g.TurnNumber, f.ownerSeat)
}

func hasOtherSeatWithCards(g *engine.Game, ownerSeat int) bool {
	for _, p := range g.Players {
		if p != nil && p.IsAlive && p.Seat != ownerSeat && p.Hand.Len() > 0 {
			return true
		}
	}
	return false
}
