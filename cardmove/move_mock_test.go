package cardmove_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/cardmove"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	mock_randsrc "github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc/mock"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// TestDrawCards_ReshufflesExactlyOnceThroughGameRandom verifies DrawCards
// routes its reshuffle through g.Random.Shuffle exactly once, with the
// discard pile's size, when the draw pile empties mid-draw (spec.md §6
// "Reshuffle policy").
func TestDrawCards_ReshufflesExactlyOnceThroughGameRandom(t *testing.T) {
	ctrl := gomock.NewController(t)
	random := mock_randsrc.NewMockSource(ctrl)
	random.EXPECT().Shuffle(3, gomock.Any()).Times(1)

	g := engine.NewGame(1, events.NewBus(), random, engine.NopLogSink{}, nil)
	g.Players[0] = player.New(0, "hero", "camp", "faction", player.GenderMale, 4)
	g.DiscardPile.Insert([]card.ID{10, 11, 12}, zone.ToTop)

	s := cardmove.New()
	drawn, err := s.DrawCards(context.Background(), g, 0, 2)
	require.NoError(t, err)
	assert.Len(t, drawn, 2)
	assert.Equal(t, 1, g.DrawPile.Len())
	assert.Equal(t, 0, g.DiscardPile.Len())
}
