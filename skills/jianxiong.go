package skills

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Jianxiong lets its owner obtain the causing card from the discard pile
// whenever they take damage. Per the spec's canonical resolution of its
// own open question, the card is obtained from the discard pile only
// (not a still-resolving trick in a temp zone).
type Jianxiong struct {
	base
	CardMove   engine.CardMoveService
	subID      string
}

// NewJianxiong constructs an unattached Jianxiong skill bound to cardMove
// for the obtain-on-damage move.
func NewJianxiong(cardMove engine.CardMoveService) engine.Skill {
	return &Jianxiong{
		base:     base{id: "jianxiong", name: "Jianxiong", skillType: engine.SkillTrigger, capabilities: engine.CapReactsToEvents},
		CardMove: cardMove,
	}
}

var _ engine.Skill = (*Jianxiong)(nil)

// Attach subscribes to AfterDamage, implementing engine.Skill.
func (j *Jianxiong) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	j.bindOwner(ownerSeat)
	id, err := bus.Subscribe(events.KeyAfterDamage, 0, func(ctx context.Context, e *events.AfterDamageEvent) error {
		if e.TargetSeat != j.ownerSeat || e.FinalAmount <= 0 || e.CausingCard == nil {
			return nil
		}
		if !g.DiscardPile.Contains(e.CausingCard.ID) {
			return nil
		}
		return j.CardMove.Move(ctx, g, engine.MoveRequest{
			Source: g.DiscardPile.ID(),
			Target: zone.Hand(j.ownerSeat),
			Cards:  []card.ID{e.CausingCard.ID},
			Reason: events.ReasonTransfer,
		})
	})
	if err != nil {
		return err
	}
	j.subID = id
	return nil
}

// Detach unsubscribes, implementing engine.Skill.
func (j *Jianxiong) Detach(bus events.Bus) error {
	return bus.Unsubscribe(j.subID)
}
