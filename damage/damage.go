// Package damage implements the damage pipeline described in spec.md
// §4.5: BeforeDamage (modifiable) -> apply to HP -> DamageResolved ->
// AfterDamage -> dying check. It mirrors the teacher toolkit's
// RESOLVE/APPLY/NOTIFY damage shape: collect modifier contributions
// through an event, mutate state once, then fire observation-only events.
package damage

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
)

// Resolver applies an engine.DamageDescriptor to the game, implementing
// engine.Resolver. Push it onto the resolution stack with a
// ResolutionContext carrying PendingDamage set.
type Resolver struct{}

// New constructs a damage Resolver.
func New() *Resolver {
	return &Resolver{}
}

var _ engine.Resolver = (*Resolver)(nil)

// Resolve runs the four-step damage pipeline against rc.PendingDamage.
func (r *Resolver) Resolve(ctx context.Context, rc *engine.ResolutionContext) sgserr.ResolutionResult {
	if err := r.resolve(ctx, rc); err != nil {
		return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
	}
	return sgserr.ResolutionSuccess()
}

func (r *Resolver) resolve(ctx context.Context, rc *engine.ResolutionContext) error {
	g := rc.Game
	d := rc.PendingDamage
	if d == nil {
		return nil
	}

	before := events.NewBeforeDamageEvent(d.SourceSeat, d.HasSource, d.TargetSeat, d.Amount, d.Type)
	if err := g.Bus.PublishWithContext(ctx, before); err != nil {
		return err
	}
	final := d.Amount + before.DamageModification
	if final < 0 {
		final = 0
	}
	if final == 0 {
		return g.Bus.PublishWithContext(ctx, events.NewDamageResolvedEvent(d.TargetSeat, 0, d.Type))
	}

	target := g.Player(d.TargetSeat)
	target.CurrentHealth -= final
	if err := g.Bus.PublishWithContext(ctx, events.NewAfterHpLostEvent(d.TargetSeat, final)); err != nil {
		return err
	}

	if err := g.Bus.PublishWithContext(ctx, events.NewDamageResolvedEvent(d.TargetSeat, final, d.Type)); err != nil {
		return err
	}

	triggersDying := target.IsDying()
	d.TriggersDying = triggersDying
	return g.Bus.PublishWithContext(ctx, events.NewAfterDamageEvent(d.SourceSeat, d.HasSource, d.TargetSeat, final, d.Type, triggersDying, d.CausingCard))
}
