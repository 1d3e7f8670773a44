// Package judgement implements engine.JudgementService: draw, reveal,
// modification window, rule evaluation, complete (spec.md §4.6). The
// modification window is the same "publish an event carrying a mutable
// replacement slot, let subscribers fill it" shape as the damage
// pipeline's BeforeDamage step.
package judgement

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// CardLookup resolves a drawn card.ID to its full card.Card definition.
// The judgement service never sees a card catalog directly; the host
// wires in a lookup backed by whatever deck/catalog construction it used
// (out of scope per spec.md §1).
type CardLookup func(id card.ID) card.Card

// Service is the default engine.JudgementService implementation.
type Service struct {
	Cards    CardLookup
	CardMove engine.CardMoveService
}

// New constructs a judgement Service.
func New(cards CardLookup, cardMove engine.CardMoveService) *Service {
	return &Service{Cards: cards, CardMove: cardMove}
}

var _ engine.JudgementService = (*Service)(nil)

// ExecuteJudgement draws the top card into a temp judgement-display zone,
// publishes JudgementCardRevealed so skills may substitute a replacement,
// then evaluates req.Rule against whichever card is final (spec.md §4.6
// steps 2-4). It does not yet move the card to the discard pile; that
// happens in CompleteJudgement so a delayed trick's own resolver can react
// to JudgementCompleted first.
func (s *Service) ExecuteJudgement(ctx context.Context, g *engine.Game, ownerSeat int, req engine.JudgementRequest) (engine.JudgementOutput, error) {
	id, ok := g.DrawPile.Top()
	if !ok {
		return engine.JudgementOutput{}, sgserr.New(sgserr.CodeInvalidState, "draw pile empty for judgement")
	}
	displayZone := zone.Temp("judgement_display", ownerSeat)
	if err := s.CardMove.Move(ctx, g, engine.MoveRequest{
		Source: g.DrawPile.ID(),
		Target: displayZone,
		Cards:  []card.ID{id},
		Reason: events.ReasonJudgement,
	}); err != nil {
		return engine.JudgementOutput{}, err
	}

	current := s.Cards(id)
	revealed := events.NewJudgementCardRevealedEvent(ownerSeat, current)
	if err := g.Bus.PublishWithContext(ctx, revealed); err != nil {
		return engine.JudgementOutput{}, err
	}

	// A JudgementModifier skill fills Replacement during the event handler
	// above and is responsible for moving its own substitute card into
	// play (typically out of its owner's hand); this service only needs
	// the resulting Card value to evaluate the rule against (spec.md §4.6
	// step 3).
	final := current
	if revealed.Replacement != nil {
		final = *revealed.Replacement
	}

	success := req.Rule == nil || req.Rule(final)
	out := engine.JudgementOutput{FinalCard: final, IsSuccess: success}

	if err := g.Bus.PublishWithContext(ctx, events.NewJudgementCompletedEvent(ownerSeat, final, success)); err != nil {
		return out, err
	}
	return out, nil
}

// CompleteJudgement moves whatever remains in the owner's judgement
// display zone to the discard pile (spec.md §4.6 step 5).
func (s *Service) CompleteJudgement(ctx context.Context, g *engine.Game, ownerSeat int) error {
	displayZone := zone.Temp("judgement_display", ownerSeat)
	remaining := g.ResolveZone(displayZone).Cards()
	if len(remaining) == 0 {
		return nil
	}
	return s.CardMove.Move(ctx, g, engine.MoveRequest{
		Source: displayZone,
		Target: g.DiscardPile.ID(),
		Cards:  remaining,
		Reason: events.ReasonJudgement,
	})
}

// SuitJudgementRule builds a JudgementRule matching any card of suit.
func SuitJudgementRule(suit card.Suit) engine.JudgementRule {
	return func(c card.Card) bool { return c.Suit == suit }
}

// RedJudgementRule matches any red-suited card (spec.md §4.6 examples).
func RedJudgementRule() engine.JudgementRule {
	return func(c card.Card) bool { return c.Suit.IsRed() }
}

// NegatedJudgementRule inverts another rule, e.g.
// NegatedJudgementRule(SuitJudgementRule(card.Club)) for "not a club".
func NegatedJudgementRule(rule engine.JudgementRule) engine.JudgementRule {
	return func(c card.Card) bool { return !rule(c) }
}
