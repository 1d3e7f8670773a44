package skills

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
)

// JieYin lets its owner discard two hand cards to choose a male
// character; that character and the owner each recover 1 HP (spec.md
// §4.4 "skill-specific orchestrator" example). The nested choice — pick
// which two cards, then which male target — is carried out by a
// not-yet-built orchestrating resolver mirroring Guanxing's shape;
// ProvideActions only advertises eligibility.
type JieYin struct {
	base
}

// NewJieYin constructs an unattached JieYin skill.
func NewJieYin() engine.Skill {
	return &JieYin{base: base{id: "jieyin", name: "Jie Yin", skillType: engine.SkillActive, capabilities: engine.CapInitiatesChoices}}
}

var _ engine.Skill = (*JieYin)(nil)

// Attach implements engine.Skill.
func (jy *JieYin) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	jy.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (jy *JieYin) Detach(bus events.Bus) error { return nil }

// AllowedPhase implements skill.PhaseLimitedActionProviding. Unlike
// Guanxing/Lijian/FanJian, JieYin is not phase-limited in the original
// game; it is restricted here to the owner's Play phase for consistency
// with the other nested-choice examples, since card discarding as a cost
// is otherwise only modeled during card-usage.
func (jy *JieYin) AllowedPhase() phase.Phase { return phase.Play }

// ProvideActions implements skill.ActionProviding/PhaseLimitedActionProviding.
func (jy *JieYin) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != jy.ownerSeat || g.CurrentPhase != phase.Play {
		return nil
	}
	if g.Player(ownerSeat).Hand.Len() < 2 {
		return nil
	}
	if len(maleTargets(g)) == 0 {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: jy.id, MaxTargets: 1}}
}
