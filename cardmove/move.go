// Package cardmove implements engine.CardMoveService, the sole primitive
// through which card possession changes (spec.md §4.1). Every transfer is
// atomic (remove from every source, or none move) and wrapped in a
// Before/After event pair, mirroring the teacher toolkit's pattern of
// publishing a cancellable pre-event and a confirming post-event around a
// single state mutation.
package cardmove

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Service is the default engine.CardMoveService implementation.
type Service struct{}

// New constructs a cardmove Service.
func New() *Service {
	return &Service{}
}

var _ engine.CardMoveService = (*Service)(nil)

// Move transfers req.Cards from req.Source to req.Target, publishing
// CardMovedBefore then CardMovedAfter around the mutation (spec.md §4.1,
// §5 ordering guarantee 1). The move is atomic: if any card is missing
// from the source zone, nothing moves and a coded error is returned.
func (s *Service) Move(ctx context.Context, g *engine.Game, req engine.MoveRequest) error {
	if len(req.Cards) == 0 {
		return nil
	}

	source := g.ResolveZone(req.Source)
	target := g.ResolveZone(req.Target)

	if err := g.Bus.PublishWithContext(ctx, events.NewCardMovedBeforeEvent(req.Source, req.Target, req.Cards, req.Reason, req.Ordering)); err != nil {
		return err
	}

	removed, missing := source.Remove(req.Cards)
	if len(missing) > 0 {
		return sgserr.New(sgserr.CodeCardNotInSource, "card not in source zone",
			sgserr.WithMeta("source", string(req.Source)), sgserr.WithMeta("missing", missing))
	}
	target.Insert(removed, req.Ordering)

	return g.Bus.PublishWithContext(ctx, events.NewCardMovedAfterEvent(req.Source, req.Target, req.Cards, req.Reason, req.Ordering))
}

// DrawCards moves n singles from the draw pile into seat's hand, attempting
// exactly one reshuffle (discard pile shuffled back into the draw pile,
// spec.md §6) if the pile empties mid-draw. It returns however many cards
// were actually drawn, which may be fewer than n if both piles run dry.
func (s *Service) DrawCards(ctx context.Context, g *engine.Game, seat int, n int) ([]card.ID, error) {
	drawn := make([]card.ID, 0, n)
	reshuffled := false

	for len(drawn) < n {
		top, ok := g.DrawPile.Top()
		if !ok {
			if reshuffled || g.DiscardPile.Len() == 0 {
				return drawn, nil
			}
			if err := s.reshuffle(ctx, g); err != nil {
				return drawn, err
			}
			reshuffled = true
			continue
		}

		req := engine.MoveRequest{
			Source:   g.DrawPile.ID(),
			Target:   zone.Hand(seat),
			Cards:    []card.ID{top},
			Reason:   events.ReasonDraw,
			Ordering: zone.ToBottom,
		}
		if err := s.Move(ctx, g, req); err != nil {
			return drawn, err
		}
		drawn = append(drawn, top)
	}
	return drawn, nil
}

// reshuffle moves every discard-pile card back into the draw pile in
// random order (spec.md §6 "Reshuffle policy").
func (s *Service) reshuffle(ctx context.Context, g *engine.Game) error {
	cards := g.DiscardPile.Clear()
	if len(cards) == 0 {
		return nil
	}
	g.Random.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	g.DrawPile.Insert(cards, zone.ToBottom)
	return nil
}

// DiscardFromHand is shorthand for Move(Reason=Discard, Target=Discard).
func (s *Service) DiscardFromHand(ctx context.Context, g *engine.Game, seat int, ids []card.ID) error {
	return s.Move(ctx, g, engine.MoveRequest{
		Source:   zone.Hand(seat),
		Target:   g.DiscardPile.ID(),
		Cards:    ids,
		Reason:   events.ReasonDiscard,
		Ordering: zone.ToTop,
	})
}
