package skills

import (
	"context"
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Rende reacts whenever its owner gives cards directly to another player
// (spec.md §9 named example): once two or more cards have been given away
// in a single owner turn, the owner may choose to lose 1 HP. Rende tracks
// the running per-turn count on a Player flag keyed by turn number and
// seat; it does not itself offer the choice or change HP. GivenThisTurn
// exposes the count to whatever resolver offers that choice.
type Rende struct {
	base
	subID string
}

// NewRende constructs an unattached Rende skill.
func NewRende() engine.Skill {
	return &Rende{base: base{id: "rende", name: "Rende", skillType: engine.SkillTrigger, capabilities: engine.CapReactsToEvents}}
}

var _ engine.Skill = (*Rende)(nil)

// Attach subscribes to CardMovedAfter, implementing engine.Skill.
func (r *Rende) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error {
	r.bindOwner(ownerSeat)
	id, err := bus.SubscribeWithFilter(events.KeyCardMovedAfter, 0,
		func(ctx context.Context, e *events.CardMovedEvent) error {
			if e.Reason != events.ReasonTransfer || e.Source != zone.Hand(r.ownerSeat) {
				return nil
			}
			p := g.Player(r.ownerSeat)
			given := p.FlagInt(r.givenFlag(g)) + len(e.Cards)
			p.SetFlag(r.givenFlag(g), given)
			return nil
		},
		func(ev events.Event) bool {
			cm, ok := ev.(*events.CardMovedEvent)
			return ok && cm.Reason == events.ReasonTransfer
		},
	)
	if err != nil {
		return err
	}
	r.subID = id
	return nil
}

// Detach unsubscribes, implementing engine.Skill.
func (r *Rende) Detach(bus events.Bus) error {
	return bus.Unsubscribe(r.subID)
}

func (r *Rende) givenFlag(g *engine.Game) string {
	return fmt.Sprintf("rende_given_turn_%d_seat_%d", g.TurnNumber, r.ownerSeat)
}

// GivenThisTurn reports how many cards the owner has given away this
// turn, for the resolver that offers the optional heal-on-give reward.
func (r *Rende) GivenThisTurn(g *engine.Game) int {
	return g.Player(r.ownerSeat).FlagInt(r.givenFlag(g))
}
