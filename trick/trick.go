// Package trick implements the delayed-trick manager (spec.md §4.8): at
// the start of a player's Judge phase, every card in their judgement zone
// is judged in insertion order, then discarded or passed on to the next
// holder. It is grounded on the same publish/react shape the judgement
// and damage packages use — a judgement.Service evaluates the card, a
// CardLookup resolves its SubType, and the manager reacts to the result
// the way the teacher toolkit's turn_manager drives per-phase hooks.
package trick

import (
	"context"
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/damage"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/judgement"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/resolution"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// CardLookup resolves a card.ID to its full definition.
type CardLookup func(id card.ID) card.Card

// Manager runs the Judge-phase delayed-trick sweep for one seat.
type Manager struct {
	Cards           CardLookup
	Judgement       engine.JudgementService
	CardMove        engine.CardMoveService
	GetPlayerChoice engine.PlayerChoiceFunc
}

// New constructs a Manager. choiceFn is threaded into the ResolutionContext
// built for Shandian's thunder-damage dying-rescue window (spec.md §4.5
// step 5, §8 "Dying rescue" — it applies to every damage source, delayed
// tricks included).
func New(cards CardLookup, judge engine.JudgementService, cardMove engine.CardMoveService, choiceFn engine.PlayerChoiceFunc) *Manager {
	return &Manager{Cards: cards, Judgement: judge, CardMove: cardMove, GetPlayerChoice: choiceFn}
}

// ResolveJudgePhase judges every card in ownerSeat's judgement zone, in
// insertion order, performing each one's characteristic effect before
// discarding it (or, for Shandian, passing it to the next holder) (spec.md
// §4.8).
func (m *Manager) ResolveJudgePhase(ctx context.Context, g *engine.Game, ownerSeat int) error {
	for {
		ids := g.Player(ownerSeat).Judgement.Cards()
		if len(ids) == 0 {
			return nil
		}
		id := ids[0]
		c := m.Cards(id)
		if !c.SubType.IsDelayedTrick() {
			return nil
		}
		if err := m.resolveOne(ctx, g, ownerSeat, c); err != nil {
			return err
		}
	}
}

func (m *Manager) resolveOne(ctx context.Context, g *engine.Game, ownerSeat int, c card.Card) error {
	switch c.SubType {
	case card.SubTypeLebusishu:
		return m.resolveLebusishu(ctx, g, ownerSeat, c)
	case card.SubTypeShandian:
		return m.resolveShandian(ctx, g, ownerSeat, c)
	default:
		return nil
	}
}

// LebusishuSkipFlag is the player flag set true when Lebusishu's judgement
// fails (not a Heart), telling the phase driver to skip the owner's Play
// phase this turn (spec.md §8 "Delayed trick" scenario).
func LebusishuSkipFlag(turnNumber int) string {
	return fmt.Sprintf("lebusishu_skip_play_turn_%d", turnNumber)
}

// resolveLebusishu judges: success (a Heart drawn) discards harmlessly;
// failure (not a Heart) sets the skip-play flag, per spec.md §4.8 and §8.
func (m *Manager) resolveLebusishu(ctx context.Context, g *engine.Game, ownerSeat int, c card.Card) error {
	out, err := m.Judgement.ExecuteJudgement(ctx, g, ownerSeat, engine.JudgementRequest{
		Rule: judgement.SuitJudgementRule(card.Heart),
	})
	if err != nil {
		return err
	}
	if !out.IsSuccess {
		g.Player(ownerSeat).SetFlag(LebusishuSkipFlag(g.TurnNumber), true)
	}
	return m.completeAndDiscard(ctx, g, ownerSeat, c)
}

// resolveShandian judges: Spade 2-9 deals 3 thunder damage to the owner,
// routed through the real damage pipeline (so modifiers and the
// dying-rescue protocol apply exactly as they would for a Slash), then
// discards; any other result passes the card, unresolved, to the next
// alive seat's judgement zone, where it will be judged again at the start
// of their next Judge phase (spec.md §4.8, §4.5).
func (m *Manager) resolveShandian(ctx context.Context, g *engine.Game, ownerSeat int, c card.Card) error {
	out, err := m.Judgement.ExecuteJudgement(ctx, g, ownerSeat, engine.JudgementRequest{
		Rule: shandianStrikes,
	})
	if err != nil {
		return err
	}
	if out.IsSuccess {
		rc := engine.NewResolutionContext(g, ownerSeat, m.GetPlayerChoice)
		rc.PendingDamage = &engine.DamageDescriptor{
			SourceSeat: ownerSeat,
			HasSource:  false,
			TargetSeat: ownerSeat,
			Amount:     3,
			Type:       events.DamageThunder,
		}
		if res := damage.New().Resolve(ctx, rc); !res.Success {
			return fmt.Errorf("shandian damage: %s", res.MessageKey)
		}
		if rc.PendingDamage.TriggersDying {
			dying := &resolution.DyingResolver{Seat: ownerSeat}
			if res := dying.Resolve(ctx, rc); !res.Success {
				return fmt.Errorf("shandian dying rescue: %s", res.MessageKey)
			}
		}
		return m.completeAndDiscard(ctx, g, ownerSeat, c)
	}

	if err := m.Judgement.CompleteJudgement(ctx, g, ownerSeat); err != nil {
		return err
	}

	nextSeat := g.NextClockwise(ownerSeat)
	for !g.Players[nextSeat].IsAlive && nextSeat != ownerSeat {
		nextSeat = g.NextClockwise(nextSeat)
	}
	if nextSeat == ownerSeat {
		return m.discardTrickCard(ctx, g, ownerSeat, c)
	}
	return m.CardMove.Move(ctx, g, engine.MoveRequest{
		Source: zone.Judge(ownerSeat),
		Target: zone.Judge(nextSeat),
		Cards:  []card.ID{c.ID},
		Reason: events.ReasonTransfer,
	})
}

func shandianStrikes(c card.Card) bool {
	return c.Suit == card.Spade && c.Rank >= 2 && c.Rank <= 9
}

// completeAndDiscard discards the temporary evaluation card (the fresh
// judgement draw) and then discards the delayed-trick card itself, c,
// from ownerSeat's judgement zone, leaving no residue for a subsequent
// loop iteration to re-discover (spec.md §4.8).
func (m *Manager) completeAndDiscard(ctx context.Context, g *engine.Game, ownerSeat int, c card.Card) error {
	if err := m.Judgement.CompleteJudgement(ctx, g, ownerSeat); err != nil {
		return err
	}
	return m.discardTrickCard(ctx, g, ownerSeat, c)
}

// discardTrickCard moves the delayed-trick card itself, c, from
// ownerSeat's judgement zone to the discard pile.
func (m *Manager) discardTrickCard(ctx context.Context, g *engine.Game, ownerSeat int, c card.Card) error {
	return m.CardMove.Move(ctx, g, engine.MoveRequest{
		Source: zone.Judge(ownerSeat),
		Target: g.DiscardPile.ID(),
		Cards:  []card.ID{c.ID},
		Reason: events.ReasonDiscard,
	})
}
