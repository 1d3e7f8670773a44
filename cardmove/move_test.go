package cardmove_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/cardmove"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

func newTestGame(t *testing.T, n int) *engine.Game {
	t.Helper()
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	return g
}

func TestMove_TransfersCardsAndPublishesBeforeAfter(t *testing.T) {
	g := newTestGame(t, 2)
	var seen []*events.Key
	_, err := g.Bus.Subscribe(events.KeyCardMovedBefore, 0, func(e *events.CardMovedEvent) error {
		seen = append(seen, e.EventRef())
		return nil
	})
	require.NoError(t, err)
	_, err = g.Bus.Subscribe(events.KeyCardMovedAfter, 0, func(e *events.CardMovedEvent) error {
		seen = append(seen, e.EventRef())
		return nil
	})
	require.NoError(t, err)

	g.DrawPile.Insert([]card.ID{1, 2, 3}, zone.ToTop)

	svc := cardmove.New()
	err = svc.Move(context.Background(), g, engine.MoveRequest{
		Source: g.DrawPile.ID(),
		Target: zone.Hand(0),
		Cards:  []card.ID{1},
		Reason: events.ReasonDraw,
	})
	require.NoError(t, err)

	assert.Equal(t, []card.ID{2, 3}, g.DrawPile.Cards())
	assert.True(t, g.Player(0).Hand.Contains(1))
	require.Len(t, seen, 2)
	assert.Equal(t, events.KeyCardMovedBefore, seen[0])
	assert.Equal(t, events.KeyCardMovedAfter, seen[1])
}

func TestMove_MissingCardIsAtomicNoOp(t *testing.T) {
	g := newTestGame(t, 2)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)

	svc := cardmove.New()
	err := svc.Move(context.Background(), g, engine.MoveRequest{
		Source: g.DrawPile.ID(),
		Target: zone.Hand(0),
		Cards:  []card.ID{1, 99},
	})
	require.Error(t, err)
	assert.Equal(t, []card.ID{1}, g.DrawPile.Cards())
	assert.Equal(t, 0, g.Player(0).Hand.Len())
}

func TestDrawCards_ReshufflesWhenPileEmpties(t *testing.T) {
	g := newTestGame(t, 2)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)
	g.DiscardPile.Insert([]card.ID{2, 3}, zone.ToTop)

	svc := cardmove.New()
	drawn, err := svc.DrawCards(context.Background(), g, 0, 3)
	require.NoError(t, err)
	assert.Len(t, drawn, 3)
	assert.Equal(t, 0, g.DiscardPile.Len())
	assert.Equal(t, 3, g.Player(0).Hand.Len())
}

func TestDrawCards_StopsWhenBothPilesExhausted(t *testing.T) {
	g := newTestGame(t, 2)
	svc := cardmove.New()
	drawn, err := svc.DrawCards(context.Background(), g, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, drawn)
}

func TestDiscardFromHand_MovesToDiscardPile(t *testing.T) {
	g := newTestGame(t, 1)
	g.Player(0).Hand.Insert([]card.ID{7}, zone.ToTop)

	svc := cardmove.New()
	err := svc.DiscardFromHand(context.Background(), g, 0, []card.ID{7})
	require.NoError(t, err)
	assert.True(t, g.DiscardPile.Contains(7))
	assert.False(t, g.Player(0).Hand.Contains(7))
}
