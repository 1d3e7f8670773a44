package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/rules"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

func newGame(n int) *engine.Game {
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	g.CurrentPhase = phase.Play
	return g
}

func TestSeatDistance_SymmetricAndShortestPath(t *testing.T) {
	g := newGame(5)
	svc := rules.New()
	for a := 0; a < 5; a++ {
		for b := 0; b < 5; b++ {
			if a == b {
				continue
			}
			assert.Equal(t, svc.SeatDistance(g, a, b), svc.SeatDistance(g, b, a), "seat distance must be symmetric for %d,%d", a, b)
		}
	}
	assert.Equal(t, 1, svc.SeatDistance(g, 0, 1))
	assert.Equal(t, 2, svc.SeatDistance(g, 0, 2))
}

func TestIsCardUsagePhase_OnlyActiveSeatDuringPlay(t *testing.T) {
	g := newGame(2)
	svc := rules.New()
	g.CurrentPlayerSeat = 0
	assert.True(t, svc.IsCardUsagePhase(g, 0))
	assert.False(t, svc.IsCardUsagePhase(g, 1))

	g.CurrentPhase = phase.Draw
	assert.False(t, svc.IsCardUsagePhase(g, 0))
}

func TestCanUseCard_RequiresHandOwnership(t *testing.T) {
	g := newGame(2)
	svc := rules.New()
	c := card.Card{ID: 1, SubType: card.SubTypeSlash}

	res := svc.CanUseCard(g, 0, c)
	assert.False(t, res.IsAllowed)
	assert.Equal(t, sgserr.CodeCardNotOwned, res.Code)

	g.Player(0).Hand.Insert([]card.ID{1}, zone.ToTop)
	res = svc.CanUseCard(g, 0, c)
	assert.True(t, res.IsAllowed)
}

func TestCanUseCard_RejectsOutsideUsagePhase(t *testing.T) {
	g := newGame(2)
	svc := rules.New()
	c := card.Card{ID: 1, SubType: card.SubTypeSlash}
	g.Player(0).Hand.Insert([]card.ID{1}, zone.ToTop)

	g.CurrentPlayerSeat = 1
	res := svc.CanUseCard(g, 0, c)
	assert.False(t, res.IsAllowed)
	assert.Equal(t, sgserr.CodePhaseNotAllowed, res.Code)
}

func TestLegalTargets_SlashRequiresAttackRange(t *testing.T) {
	g := newGame(4)
	svc := rules.New()
	c := card.Card{ID: 1, SubType: card.SubTypeSlash}

	targets, res := svc.LegalTargets(g, 0, c)
	assert.True(t, res.IsAllowed)
	assert.ElementsMatch(t, []int{1, 3}, targets)
}

func TestLegalTargets_PeachIncludesOnlyInjuredOrSelf(t *testing.T) {
	g := newGame(3)
	svc := rules.New()
	g.Player(1).CurrentHealth = 1

	targets, res := svc.LegalTargets(g, 0, card.Card{SubType: card.SubTypePeach})
	assert.True(t, res.IsAllowed)
	assert.ElementsMatch(t, []int{0, 1}, targets)
}

func TestMaxSlashPerTurn_DefaultsToOne(t *testing.T) {
	g := newGame(2)
	assert.Equal(t, 1, rules.New().MaxSlashPerTurn(g, 0))
}
