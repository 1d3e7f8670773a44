package skills

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
)

// Lijian is a once-per-turn active skill targeting two other male
// characters: one of the two must either discard an equipped horse or
// duel the other (spec.md §4.4's "skill-specific orchestrator" example).
// The sub-choice that follows target selection is the nested-choice shape
// spec.md calls out; its orchestrating resolver is the same structural
// kind as Guanxing's, not yet built at this layer, so ProvideActions only
// advertises eligibility.
type Lijian struct {
	base
}

// NewLijian constructs an unattached Lijian skill.
func NewLijian() engine.Skill {
	return &Lijian{base: base{id: "lijian", name: "Lijian", skillType: engine.SkillActive, capabilities: engine.CapInitiatesChoices}}
}

var _ engine.Skill = (*Lijian)(nil)

// Attach implements engine.Skill.
func (lj *Lijian) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	lj.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (lj *Lijian) Detach(bus events.Bus) error { return nil }

// AllowedPhase implements skill.PhaseLimitedActionProviding.
func (lj *Lijian) AllowedPhase() phase.Phase { return phase.Play }

// ProvideActions implements skill.ActionProviding/PhaseLimitedActionProviding.
func (lj *Lijian) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != lj.ownerSeat || g.CurrentPhase != phase.Play || g.Player(ownerSeat).FlagBool(lj.usedFlag(g)) {
		return nil
	}
	others := 0
	for _, seat := range maleTargets(g) {
		if seat != lj.ownerSeat {
			others++
		}
	}
	if others < 2 {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: lj.id, MaxTargets: 2}}
}

func (lj *Lijian) usedFlag(g *engine.Game) string {
	return fmt.Sprintf("lijian_used_turn_%d_seat_%d", g.TurnNumber, lj.ownerSeat)
}

// maleTargets returns every alive seat whose hero is male, for skills
// restricted to male targets (Lijian, JieYin).
func maleTargets(g *engine.Game) []int {
	var out []int
	for _, p := range g.Players {
		if p != nil && p.IsAlive && p.Gender == player.GenderMale {
			out = append(out, p.Seat)
		}
	}
	return out
}
