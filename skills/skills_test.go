package skills_test

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
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/rules"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skills"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

func newGame(t *testing.T, n int) *engine.Game {
	t.Helper()
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	g.CardMove = cardmove.New()
	return g
}

func TestLongDan_ConvertsSlashAndDodge(t *testing.T) {
	g := newGame(t, 1)
	sk := skills.NewLongDan()
	require.NoError(t, sk.Attach(g, 0, g.Bus))

	ld := sk.(interface {
		Convert(g *engine.Game, ownerSeat int, c card.Card) (card.Card, bool)
	})
	slash := card.Card{ID: 1, SubType: card.SubTypeSlash}
	converted, ok := ld.Convert(g, 0, slash)
	assert.True(t, ok)
	assert.Equal(t, card.SubTypeDodge, converted.SubType)
	assert.Equal(t, slash.ID, converted.ID)
}

func TestJianxiong_ObtainsCausingCardFromDiscard(t *testing.T) {
	g := newGame(t, 2)
	sk := skills.NewJianxiong(g.CardMove)
	require.NoError(t, sk.Attach(g, 1, g.Bus))

	g.DiscardPile.Insert([]card.ID{7}, zone.ToTop)
	causing := card.Card{ID: 7}
	require.NoError(t, g.Bus.Publish(events.NewAfterDamageEvent(0, true, 1, 1, events.DamageNormal, false, &causing)))

	assert.True(t, g.Player(1).Hand.Contains(7))
	assert.False(t, g.DiscardPile.Contains(7))
}

func TestOffensiveHorse_ReducesOutgoingDistance(t *testing.T) {
	g := newGame(t, 4)
	mgr := &fakeManager{}
	g.Skills = mgr
	svc := rules.New()

	base := svc.SeatDistance(g, 0, 2)

	horse := skills.NewOffensiveHorse()
	require.NoError(t, horse.Attach(g, 0, g.Bus))
	mgr.bySeat = map[int][]engine.Skill{0: {horse}}

	assert.Equal(t, base-1, svc.SeatDistance(g, 0, 2))
}

type fakeManager struct {
	bySeat map[int][]engine.Skill
}

func (f *fakeManager) LoadSkillsForPlayer(g *engine.Game, seat int) error { return nil }
func (f *fakeManager) LoadSkillsForAllPlayers(g *engine.Game) error       { return nil }
func (f *fakeManager) ActiveSkills(g *engine.Game, seat int) []engine.Skill {
	return f.bySeat[seat]
}
func (f *fakeManager) AllSkills(g *engine.Game, seat int) []engine.Skill { return f.bySeat[seat] }
func (f *fakeManager) AddEquipmentSkill(g *engine.Game, seat int, sk engine.Skill) error {
	f.bySeat[seat] = append(f.bySeat[seat], sk)
	return nil
}
func (f *fakeManager) RemoveEquipmentSkill(g *engine.Game, seat int, skillID string) error {
	return nil
}

func TestKurou_ExecutePaysHealthAndDraws(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{1, 2}, zone.ToTop)
	k := skills.NewKurou(g.CardMove).(*skills.Kurou)
	require.NoError(t, k.Attach(g, 0, g.Bus))

	require.NoError(t, k.Execute(context.Background(), g))
	assert.Equal(t, 3, g.Player(0).CurrentHealth)
	assert.Equal(t, 2, g.Player(0).Hand.Len())
}

func TestEmptyCity_ActiveOnlyWithEmptyHand(t *testing.T) {
	g := newGame(t, 1)
	sk := skills.NewEmptyCity()
	require.NoError(t, sk.Attach(g, 0, g.Bus))
	assert.True(t, sk.IsActive(g))

	g.Player(0).Hand.Insert([]card.ID{1}, zone.ToTop)
	assert.False(t, sk.IsActive(g))
}
