package skills

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// Kurou is an active skill usable once per turn: lose 1 HP, draw 2 cards
// (spec.md §9 named example, and the "ActiveHpLoss" capability it
// motivates). Execute is called by the resolver the action query drives
// to, not by Attach; Attach only binds the owner, and Execute itself
// publishes AfterHpLost so the HP loss still flows through the same
// observation point damage does.
type Kurou struct {
	base
	CardMove engine.CardMoveService
}

// NewKurou constructs an unattached Kurou skill.
func NewKurou(cardMove engine.CardMoveService) engine.Skill {
	return &Kurou{
		base:     base{id: "kurou", name: "Kurou", skillType: engine.SkillActive, capabilities: engine.CapProvidesActions},
		CardMove: cardMove,
	}
}

var _ engine.Skill = (*Kurou)(nil)

// Attach implements engine.Skill.
func (k *Kurou) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	k.bindOwner(ownerSeat)
	return nil
}

// Detach implements engine.Skill.
func (k *Kurou) Detach(bus events.Bus) error { return nil }

// ProvideActions implements skill.ActionProviding. Kurou is only worth
// offering once per turn; the per-turn guard is a Player flag holding the
// turn number of the last use, so it resets automatically when the turn
// advances.
func (k *Kurou) ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor {
	if ownerSeat != k.ownerSeat {
		return nil
	}
	if turn, ok := g.Player(ownerSeat).GetFlag("kurou_turn"); ok && turn == g.TurnNumber {
		return nil
	}
	return []engine.ActionDescriptor{{Kind: engine.ActionSkill, SkillID: k.id}}
}

// Execute pays the HP cost and draws 2 cards. Resolvers call this
// directly after the host confirms the player chose Kurou's action.
func (k *Kurou) Execute(ctx context.Context, g *engine.Game) error {
	p := g.Player(k.ownerSeat)
	p.CurrentHealth--
	p.SetFlag("kurou_turn", g.TurnNumber)
	if err := g.Bus.PublishWithContext(ctx, events.NewAfterHpLostEvent(k.ownerSeat, 1)); err != nil {
		return err
	}
	_, err := k.CardMove.DrawCards(ctx, g, k.ownerSeat, 2)
	return err
}
