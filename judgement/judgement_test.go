package judgement_test

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

func lookupFor(cards map[card.ID]card.Card) judgement.CardLookup {
	return func(id card.ID) card.Card { return cards[id] }
}

func TestExecuteJudgement_EvaluatesRuleAgainstDrawnCard(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)
	cards := map[card.ID]card.Card{1: {ID: 1, Suit: card.Heart}}

	svc := judgement.New(lookupFor(cards), cardmove.New())
	out, err := svc.ExecuteJudgement(context.Background(), g, 0, engine.JudgementRequest{Rule: judgement.RedJudgementRule()})
	require.NoError(t, err)
	assert.True(t, out.IsSuccess)
	assert.Equal(t, card.ID(1), out.FinalCard.ID)
}

func TestExecuteJudgement_NegatedRuleFailsOnMatch(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{2}, zone.ToTop)
	cards := map[card.ID]card.Card{2: {ID: 2, Suit: card.Club}}

	svc := judgement.New(lookupFor(cards), cardmove.New())
	rule := judgement.NegatedJudgementRule(judgement.SuitJudgementRule(card.Club))
	out, err := svc.ExecuteJudgement(context.Background(), g, 0, engine.JudgementRequest{Rule: rule})
	require.NoError(t, err)
	assert.False(t, out.IsSuccess)
}

func TestExecuteJudgement_ReplacementOverridesFinalCard(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{3}, zone.ToTop)
	cards := map[card.ID]card.Card{
		3: {ID: 3, Suit: card.Club},
		9: {ID: 9, Suit: card.Heart},
	}

	_, err := g.Bus.Subscribe(events.KeyJudgementCardRevealed, 0, func(e *events.JudgementCardRevealedEvent) error {
		replacement := cards[9]
		e.Replacement = &replacement
		return nil
	})
	require.NoError(t, err)

	svc := judgement.New(lookupFor(cards), cardmove.New())
	out, err := svc.ExecuteJudgement(context.Background(), g, 0, engine.JudgementRequest{Rule: judgement.RedJudgementRule()})
	require.NoError(t, err)
	assert.True(t, out.IsSuccess)
	assert.Equal(t, card.ID(9), out.FinalCard.ID)
}

func TestCompleteJudgement_MovesDisplayZoneToDiscard(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{4}, zone.ToTop)
	cards := map[card.ID]card.Card{4: {ID: 4, Suit: card.Spade}}

	svc := judgement.New(lookupFor(cards), cardmove.New())
	_, err := svc.ExecuteJudgement(context.Background(), g, 0, engine.JudgementRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.CompleteJudgement(context.Background(), g, 0))
	assert.True(t, g.DiscardPile.Contains(4))
}
