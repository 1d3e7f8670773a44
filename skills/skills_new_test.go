package skills_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skills"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

func TestModesty_RemovesOwnerFromSingleTargetTricks(t *testing.T) {
	g := newGame(t, 3)
	sk := skills.NewModesty()
	require.NoError(t, sk.Attach(g, 1, g.Bus))

	mo := sk.(interface {
		FilterTargets(g *engine.Game, ownerSeat int, c card.Card, candidates []int) []int
	})
	candidates := []int{0, 1, 2}
	out := mo.FilterTargets(g, 0, card.Card{SubType: card.SubTypeGuoheChaiqiao}, candidates)
	assert.Equal(t, []int{0, 2}, out)

	out = mo.FilterTargets(g, 0, card.Card{SubType: card.SubTypeSlash}, candidates)
	assert.Equal(t, candidates, out)
}

func TestQicai_IgnoresDistanceOnlyForOwner(t *testing.T) {
	g := newGame(t, 2)
	sk := skills.NewQicai()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	qc := sk.(interface {
		IgnoresDistanceForTricks(g *engine.Game, ownerSeat int) bool
	})
	assert.True(t, qc.IgnoresDistanceForTricks(g, 0))
	assert.False(t, qc.IgnoresDistanceForTricks(g, 1))
}

func TestJijiu_ConvertsRedCardsOnly(t *testing.T) {
	g := newGame(t, 1)
	sk := skills.NewJijiu()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	jj := sk.(interface {
		Convert(g *engine.Game, ownerSeat int, c card.Card) (card.Card, bool)
	})

	heart := card.Card{ID: 1, DefinitionID: "slash_1", SubType: card.SubTypeSlash, Suit: card.Heart}
	converted, ok := jj.Convert(g, 0, heart)
	assert.True(t, ok)
	assert.Equal(t, card.SubTypePeach, converted.SubType)

	spade := card.Card{ID: 2, DefinitionID: "slash_2", SubType: card.SubTypeSlash, Suit: card.Spade}
	_, ok = jj.Convert(g, 0, spade)
	assert.False(t, ok)

	alreadyPeach := card.Card{ID: 3, DefinitionID: "peach_3", SubType: card.SubTypePeach, Suit: card.Heart}
	_, ok = jj.Convert(g, 0, alreadyPeach)
	assert.False(t, ok)
}

func TestLijian_ProvidesActionOnlyWithTwoMaleTargetsAndUnusedThisTurn(t *testing.T) {
	g := newGame(t, 3)
	g.CurrentPhase = phase.Play
	g.Players[1].Gender = player.GenderFemale
	sk := skills.NewLijian()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	pa := sk.(interface {
		ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor
	})

	assert.Empty(t, pa.ProvideActions(g, 0), "only one other male seat (2) besides owner")

	g.Players[1].Gender = player.GenderMale
	actions := pa.ProvideActions(g, 0)
	require.Len(t, actions, 1)
	assert.Equal(t, 2, actions[0].MaxTargets)

	g.Player(0).SetFlag("lijian_used_turn_0_seat_0", true)
	assert.Empty(t, pa.ProvideActions(g, 0))
}

func TestFanJian_RequiresAnotherSeatWithCards(t *testing.T) {
	g := newGame(t, 2)
	g.CurrentPhase = phase.Play
	sk := skills.NewFanJian()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	pa := sk.(interface {
		ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor
	})
	assert.Empty(t, pa.ProvideActions(g, 0), "target has no hand cards yet")

	g.Player(1).Hand.Insert([]card.ID{1}, zone.ToTop)
	assert.Len(t, pa.ProvideActions(g, 0), 1)
}

func TestJieYin_RequiresTwoHandCardsAndMaleTarget(t *testing.T) {
	g := newGame(t, 2)
	g.CurrentPhase = phase.Play
	sk := skills.NewJieYin()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	pa := sk.(interface {
		ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor
	})
	assert.Empty(t, pa.ProvideActions(g, 0), "not enough hand cards yet")

	g.Player(0).Hand.Insert([]card.ID{1, 2}, zone.ToTop)
	assert.Len(t, pa.ProvideActions(g, 0), 1)
}

func TestWushuang_RequiresTwoDodgesAgainstSlash(t *testing.T) {
	g := newGame(t, 1)
	sk := skills.NewWushuang()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	rc := sk.(interface {
		RequiredCount(g *engine.Game, targetSeat int, rt engine.ResponseType) int
	})
	assert.Equal(t, 2, rc.RequiredCount(g, 1, engine.ResponseJinkAgainstSlash))
	assert.Equal(t, 1, rc.RequiredCount(g, 1, engine.ResponsePeachForDying))
}
