package gameloop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/cardmove"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/gameloop"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/judgement"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/trick"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

type fakeSkillManager struct {
	bySeat map[int][]engine.Skill
}

func (f *fakeSkillManager) LoadSkillsForPlayer(g *engine.Game, seat int) error { return nil }
func (f *fakeSkillManager) LoadSkillsForAllPlayers(g *engine.Game) error       { return nil }
func (f *fakeSkillManager) ActiveSkills(g *engine.Game, seat int) []engine.Skill {
	return f.bySeat[seat]
}
func (f *fakeSkillManager) AllSkills(g *engine.Game, seat int) []engine.Skill { return f.bySeat[seat] }
func (f *fakeSkillManager) AddEquipmentSkill(g *engine.Game, seat int, sk engine.Skill) error {
	f.bySeat[seat] = append(f.bySeat[seat], sk)
	return nil
}
func (f *fakeSkillManager) RemoveEquipmentSkill(g *engine.Game, seat int, skillID string) error {
	return nil
}

type drawCountSkill struct{ extra int }

func (drawCountSkill) ID() string                                                { return "extra_draw" }
func (drawCountSkill) Name() string                                              { return "Extra Draw" }
func (drawCountSkill) Type() engine.SkillType                                    { return engine.SkillLocked }
func (drawCountSkill) Capabilities() engine.Capability                           { return engine.CapModifiesRules }
func (drawCountSkill) IsActive(g *engine.Game) bool                              { return true }
func (drawCountSkill) Attach(g *engine.Game, ownerSeat int, bus events.Bus) error { return nil }
func (drawCountSkill) Detach(bus events.Bus) error                               { return nil }
func (d drawCountSkill) ModifyDrawCount(g *engine.Game, ownerSeat, raw int) int {
	return raw + d.extra
}

func newGame(t *testing.T, n int) *engine.Game {
	t.Helper()
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	g.CardMove = cardmove.New()
	return g
}

func lookupFor(cards map[card.ID]card.Card) func(id card.ID) card.Card {
	return func(id card.ID) card.Card { return cards[id] }
}

func TestAdvance_DrawPhaseDealsTwoCards(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{1, 2, 3}, zone.ToTop)
	g.CurrentPhase = phase.Start

	d := gameloop.New(g, nil, nil)
	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, phase.Judge, g.CurrentPhase)
	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, phase.Draw, g.CurrentPhase)
	assert.Equal(t, 2, g.Player(0).Hand.Len())
	assert.Equal(t, 1, g.DrawPile.Len())
}

func TestAdvance_JudgePhaseRunsDelayedTrick(t *testing.T) {
	g := newGame(t, 1)
	cards := map[card.ID]card.Card{
		100: {ID: 100, SubType: card.SubTypeLebusishu},
		1:   {ID: 1, Suit: card.Club},
	}
	g.Player(0).Judgement.Insert([]card.ID{100}, zone.ToTop)
	g.DrawPile.Insert([]card.ID{1}, zone.ToTop)
	g.CurrentPhase = phase.Start

	tm := trick.New(lookupFor(cards), judgement.New(lookupFor(cards), g.CardMove), g.CardMove, nil)
	d := gameloop.New(g, tm, nil)

	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, phase.Judge, g.CurrentPhase)
	assert.True(t, g.Player(0).FlagBool(trick.LebusishuSkipFlag(g.TurnNumber)))
	assert.True(t, d.ShouldSkipPlayPhase(0))
	assert.True(t, g.DiscardPile.Contains(100))
}

func TestAdvance_DiscardPhaseAsksDownToHandLimit(t *testing.T) {
	g := newGame(t, 1)
	g.Player(0).CurrentHealth = 2
	g.Player(0).Hand.Insert([]card.ID{1, 2, 3, 4}, zone.ToTop)
	g.CurrentPhase = phase.Play

	choiceFn := func(_ context.Context, req engine.ChoiceRequest) (engine.ChoiceResult, error) {
		return engine.ChoiceResult{
			RequestID:       req.RequestID,
			PlayerSeat:      req.PlayerSeat,
			SelectedCardIDs: []card.ID{1, 2},
		}, nil
	}
	d := gameloop.New(g, nil, choiceFn)

	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, phase.Discard, g.CurrentPhase)
	assert.Equal(t, 2, g.Player(0).Hand.Len())
	assert.True(t, g.DiscardPile.Contains(1))
	assert.True(t, g.DiscardPile.Contains(2))
}

func TestAdvance_DrawPhaseModifyingAddsExtraCards(t *testing.T) {
	g := newGame(t, 1)
	g.DrawPile.Insert([]card.ID{1, 2, 3, 4}, zone.ToTop)
	g.CurrentPhase = phase.Start
	g.Skills = &fakeSkillManager{bySeat: map[int][]engine.Skill{0: {drawCountSkill{extra: 1}}}}

	d := gameloop.New(g, nil, nil)
	require.NoError(t, d.Advance(context.Background()))
	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, phase.Draw, g.CurrentPhase)
	assert.Equal(t, 3, g.Player(0).Hand.Len())
}

func TestAdvance_DiscardPhaseNoOpWithinLimit(t *testing.T) {
	g := newGame(t, 1)
	g.Player(0).CurrentHealth = 4
	g.Player(0).Hand.Insert([]card.ID{1, 2}, zone.ToTop)
	g.CurrentPhase = phase.Play

	d := gameloop.New(g, nil, nil)
	require.NoError(t, d.Advance(context.Background()))
	assert.Equal(t, 2, g.Player(0).Hand.Len())
}
