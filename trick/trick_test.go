package trick_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/cardmove"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/judgement"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/trick"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

func newGame(t *testing.T, n int) *engine.Game {
	t.Helper()
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	return g
}

func lookupFor(cards map[card.ID]card.Card) trick.CardLookup {
	return func(id card.ID) card.Card { return cards[id] }
}

func TestLebusishu_ClubJudgementSetsSkipFlag(t *testing.T) {
	g := newGame(t, 1)
	cards := map[card.ID]card.Card{
		100: {ID: 100, SubType: card.SubTypeLebusishu},
		1:   {ID: 1, Suit: card.Club},
	}
	g.Player(0).Judgement.Insert([]card.ID{100}, zone.ToTop)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)

	cm := cardmove.New()
	mgr := trick.New(lookupFor(cards), judgement.New(lookupFor(cards), cm), cm, nil)

	require.NoError(t, mgr.ResolveJudgePhase(context.Background(), g, 0))
	assert.True(t, g.Player(0).FlagBool(trick.LebusishuSkipFlag(g.TurnNumber)))
	assert.True(t, g.DiscardPile.Contains(100))
	assert.Equal(t, 0, g.Player(0).Judgement.Len())
}

func TestLebusishu_HeartJudgementDoesNotSkip(t *testing.T) {
	g := newGame(t, 1)
	cards := map[card.ID]card.Card{
		100: {ID: 100, SubType: card.SubTypeLebusishu},
		1:   {ID: 1, Suit: card.Heart},
	}
	g.Player(0).Judgement.Insert([]card.ID{100}, zone.ToTop)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)

	cm := cardmove.New()
	mgr := trick.New(lookupFor(cards), judgement.New(lookupFor(cards), cm), cm, nil)

	require.NoError(t, mgr.ResolveJudgePhase(context.Background(), g, 0))
	assert.False(t, g.Player(0).FlagBool(trick.LebusishuSkipFlag(g.TurnNumber)))
}

func TestShandian_SpadeInRangeDealsDamageAndDiscards(t *testing.T) {
	g := newGame(t, 1)
	cards := map[card.ID]card.Card{
		200: {ID: 200, SubType: card.SubTypeShandian},
		2:   {ID: 2, Suit: card.Spade, Rank: 5},
	}
	g.Player(0).Judgement.Insert([]card.ID{200}, zone.ToTop)
	g.DrawPile.Insert([]card.ID{2}, zone.ToTop)

	cm := cardmove.New()
	mgr := trick.New(lookupFor(cards), judgement.New(lookupFor(cards), cm), cm, nil)

	require.NoError(t, mgr.ResolveJudgePhase(context.Background(), g, 0))
	assert.Equal(t, 1, g.Player(0).CurrentHealth)
	assert.True(t, g.DiscardPile.Contains(200))
}

func TestShandian_NonSpadePassesToNextSeat(t *testing.T) {
	g := newGame(t, 2)
	cards := map[card.ID]card.Card{
		200: {ID: 200, SubType: card.SubTypeShandian},
		3:   {ID: 3, Suit: card.Heart, Rank: 5},
	}
	g.Player(0).Judgement.Insert([]card.ID{200}, zone.ToTop)
	g.DrawPile.Insert([]card.ID{3}, zone.ToTop)

	cm := cardmove.New()
	mgr := trick.New(lookupFor(cards), judgement.New(lookupFor(cards), cm), cm, nil)

	require.NoError(t, mgr.ResolveJudgePhase(context.Background(), g, 0))
	assert.Equal(t, 4, g.Player(0).CurrentHealth)
	assert.True(t, g.Player(1).Judgement.Contains(200))
}
