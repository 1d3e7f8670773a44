package skills

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// ZhiHeng is a once-per-turn active skill: discard any number of hand
// cards, then draw that many (spec.md §9 named example).
type ZhiHeng struct {
	base
	CardMove engine.CardMoveService
}

// NewZhiHeng constructs an unattached ZhiHeng skill.
func NewZhiHeng(cardMove engine.CardMoveService) engine.Skill {
	return &ZhiHeng{
		base:     base{id: "zhiheng", name: "Zhi Heng", skillType: engine.SkillActive, capabilities: engine.CapProvidesActions},
		CardMove: cardMove,
	}
}

var _ engine.Skill = (*ZhiHeng)(nil)

// Attach implements engine.Skill.
func (z *ZhiHeng) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	z.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (z *ZhiHeng) Detach(bus events.Bus) error { return nil }

// ProvideActions implements skill.ActionProviding.
func (z *ZhiHeng) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != z.ownerSeat {
		return nil
	}
	if turn, ok := g.Player(ownerSeat).GetFlag("zhiheng_turn"); ok && turn == g.TurnNumber {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: z.id, MaxTargets: g.Player(ownerSeat).Hand.Len()}}
}

// Execute discards discarded (chosen by the host) and draws len(discarded)
// replacements.
func (z *ZhiHeng) Execute(ctx context.Context, g *engine.Game, discarded []card.ID) error {
	p := g.Player(z.ownerSeat)
	p.SetFlag("zhiheng_turn", g.TurnNumber)
	if len(discarded) == 0 {
		return nil
	}
	if err := g.CardMove.DiscardFromHand(ctx, g, z.ownerSeat, discarded); err != nil {
		return err
	}
	_, err := z.CardMove.DrawCards(ctx, g, z.ownerSeat, len(discarded))
	return err
}
