package damage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/damage"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
)

func newGame(n int) *engine.Game {
	g := engine.NewGame(n, events.NewBus(), randsrc.NewScripted(), engine.NopLogSink{}, nil)
	for i := 0; i < n; i++ {
		g.Players[i] = player.New(i, "hero", "camp", "faction", player.GenderMale, 4)
	}
	return g
}

func TestResolve_AppliesAmountAndPublishesPipeline(t *testing.T) {
	g := newGame(2)
	var order []string
	_, err := g.Bus.Subscribe(events.KeyBeforeDamage, 0, func(e *events.BeforeDamageEvent) error { order = append(order, "before"); return nil })
	require.NoError(t, err)
	_, err = g.Bus.Subscribe(events.KeyDamageResolved, 0, func(e *events.DamageResolvedEvent) error { order = append(order, "resolved"); return nil })
	require.NoError(t, err)
	_, err = g.Bus.Subscribe(events.KeyAfterDamage, 0, func(e *events.AfterDamageEvent) error { order = append(order, "after"); return nil })
	require.NoError(t, err)

	d := &engine.DamageDescriptor{SourceSeat: 0, HasSource: true, TargetSeat: 1, Amount: 1}
	rc := engine.NewResolutionContext(g, 0, nil)
	rc.PendingDamage = d

	res := damage.New().Resolve(context.Background(), rc)
	require.True(t, res.Success)
	assert.Equal(t, 3, g.Player(1).CurrentHealth)
	assert.Equal(t, []string{"before", "resolved", "after"}, order)
}

func TestResolve_BeforeDamageModificationAdjustsFinalAmount(t *testing.T) {
	g := newGame(2)
	_, err := g.Bus.Subscribe(events.KeyBeforeDamage, 0, func(e *events.BeforeDamageEvent) error {
		e.DamageModification += 1
		return nil
	})
	require.NoError(t, err)

	d := &engine.DamageDescriptor{TargetSeat: 1, Amount: 1}
	rc := engine.NewResolutionContext(g, 0, nil)
	rc.PendingDamage = d

	res := damage.New().Resolve(context.Background(), rc)
	require.True(t, res.Success)
	assert.Equal(t, 2, g.Player(1).CurrentHealth)
}

func TestResolve_MarksTriggersDyingAtZeroHealth(t *testing.T) {
	g := newGame(2)
	d := &engine.DamageDescriptor{TargetSeat: 1, Amount: 4}
	rc := engine.NewResolutionContext(g, 0, nil)
	rc.PendingDamage = d

	res := damage.New().Resolve(context.Background(), rc)
	require.True(t, res.Success)
	assert.True(t, d.TriggersDying)
	assert.LessOrEqual(t, g.Player(1).CurrentHealth, 0)
}

func TestResolve_NoPendingDamageIsNoOp(t *testing.T) {
	g := newGame(2)
	rc := engine.NewResolutionContext(g, 0, nil)
	res := damage.New().Resolve(context.Background(), rc)
	assert.True(t, res.Success)
}
