package resolution

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/damage"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skill"
)

const slashDodgedKey = "slash_dodged"

// SlashEffectResolver carries out a played Slash's full effect: open a
// Dodge response window against TargetSeat (unless a SlashResponseModifier
// forbids one), apply damage through the real pipeline if undodged, and run
// the dying-rescue protocol if the hit drops the target to or below zero
// health (spec.md §4.4 "target application + effect resolution", §8
// scenarios 1/2/4). Push it onto the resolution stack before (beneath) the
// UseCardResolver that pays the Slash's cost, so it runs once that cost
// is paid.
type SlashEffectResolver struct {
	SourceSeat int
	TargetSeat int
	Card       card.Card
}

var _ engine.Resolver = (*SlashEffectResolver)(nil)

// Resolve implements engine.Resolver.
func (s *SlashEffectResolver) Resolve(ctx context.Context, rc *engine.ResolutionContext) sgserr.ResolutionResult {
	g := rc.Game
	if rc.GetPlayerChoice == nil {
		return sgserr.ResolutionFailure(sgserr.CodeMissingService, "no player choice callback configured")
	}

	dodged := false
	if !slashDodgeProhibited(g, s.SourceSeat, s.TargetSeat) {
		resp := &ResponseRequestResolver{
			RespondingSeat: s.TargetSeat,
			RequiredType:   engine.ResponseJinkAgainstSlash,
			ResultKey:      slashDodgedKey,
		}
		if res := resp.Resolve(ctx, rc); !res.Success {
			return res
		}
		dodged, _ = rc.IntermediateResults[slashDodgedKey].(bool)
	}
	if dodged {
		return sgserr.ResolutionSuccess()
	}

	causingCard := s.Card
	rc.PendingDamage = &engine.DamageDescriptor{
		SourceSeat:  s.SourceSeat,
		HasSource:   true,
		TargetSeat:  s.TargetSeat,
		Amount:      1,
		Type:        events.DamageNormal,
		CausingCard: &causingCard,
	}
	if res := damage.New().Resolve(ctx, rc); !res.Success {
		return res
	}
	if !rc.PendingDamage.TriggersDying {
		return sgserr.ResolutionSuccess()
	}

	dying := &DyingResolver{Seat: s.TargetSeat}
	return dying.Resolve(ctx, rc)
}

// slashDodgeProhibited reports whether any of the Slash's source seat's
// active skills forbid a Dodge response (spec.md §4.7 "Slash response
// modifier").
func slashDodgeProhibited(g *engine.Game, sourceSeat, targetSeat int) bool {
	if g.Skills == nil {
		return false
	}
	for _, sk := range g.Skills.ActiveSkills(g, sourceSeat) {
		if srm, ok := sk.(skill.SlashResponseModifier); ok && srm.ProhibitsDodge(g, sourceSeat, targetSeat) {
			return true
		}
	}
	return false
}
