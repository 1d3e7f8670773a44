// Package gameloop is the phase driver named in spec.md §2/§6: the
// top-level consumer that advances Game.CurrentPhase and performs each
// phase's default behavior (delayed-trick judgements, the Draw-phase
// deal, the Discard-phase hand-limit sweep), invoking every other
// component strictly through its engine interfaces. It is grounded on
// the teacher toolkit's combat.TurnManager (rulebooks/dnd5e/combat/
// turn_manager.go): a small struct holding the collaborators needed to
// drive one step, with Start/End-shaped methods rather than a bespoke
// state machine.
package gameloop

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/choicevalidator"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skill"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/trick"
)

// baseDrawCount is the number of cards a player draws during an
// unmodified Draw phase (spec.md §8 scenario table; the base rule is not
// named explicitly in §4.3 beyond "draw count", so this mirrors the
// game's well-known two-card deal).
const baseDrawCount = 2

// Driver steps Game.CurrentPhase forward and runs each phase's default
// behavior. It holds no state of its own beyond its collaborators; all
// mutable state lives on *engine.Game, per spec.md §5's single-threaded
// cooperative model.
type Driver struct {
	Game            *engine.Game
	Trick           *trick.Manager
	GetPlayerChoice engine.PlayerChoiceFunc
}

// New constructs a Driver.
func New(g *engine.Game, tm *trick.Manager, choiceFn engine.PlayerChoiceFunc) *Driver {
	return &Driver{Game: g, Trick: tm, GetPlayerChoice: choiceFn}
}

// Advance moves the game to the next phase via Game.AdvancePhase and then
// runs that phase's default behavior. Callers drive the Play phase
// themselves (via the rules/resolution packages) between calls to
// Advance; Advance only performs the phases with engine-owned default
// behavior (spec.md §4.8 delayed tricks, Draw, Discard).
func (d *Driver) Advance(ctx context.Context) error {
	if err := d.Game.AdvancePhase(ctx); err != nil {
		return err
	}

	g := d.Game
	seat := g.CurrentPlayerSeat

	switch g.CurrentPhase {
	case phase.Judge:
		if d.Trick != nil {
			return d.Trick.ResolveJudgePhase(ctx, g, seat)
		}
		return nil
	case phase.Draw:
		return d.runDrawPhase(ctx, seat)
	case phase.Discard:
		return d.runDiscardPhase(ctx, seat)
	default:
		return nil
	}
}

// ShouldSkipPlayPhase reports whether seat's Play phase this turn should
// be skipped, per the Lebusishu delayed trick's failure effect (spec.md
// §4.8, §8 "Delayed trick" scenario). The caller is expected to check
// this immediately after Advance lands on phase.Play and, if true, call
// Advance again without offering any actions.
func (d *Driver) ShouldSkipPlayPhase(seat int) bool {
	return d.Game.Player(seat).FlagBool(trick.LebusishuSkipFlag(d.Game.TurnNumber))
}

// runDrawPhase performs the default Draw-phase deal: if any of seat's
// active skills implements skill.DrawPhaseReplacement, the first such
// skill replaces the draw entirely (spec.md §4.7 "Draw-phase
// replacement"); otherwise the base count is adjusted by every active
// skill.DrawPhaseModifying in turn and that many singles are drawn.
func (d *Driver) runDrawPhase(ctx context.Context, seat int) error {
	g := d.Game
	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			if replacer, ok := sk.(skill.DrawPhaseReplacement); ok {
				if err := replacer.ReplaceDraw(g, seat); err != nil {
					return err
				}
				return g.Bus.PublishWithContext(ctx, events.NewDrawPhaseReplacedEvent(seat))
			}
		}
	}

	n := baseDrawCount
	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			if modifier, ok := sk.(skill.DrawPhaseModifying); ok {
				n = modifier.ModifyDrawCount(g, seat, n)
			}
		}
	}
	if n <= 0 {
		return nil
	}
	_, err := g.CardMove.DrawCards(ctx, g, seat, n)
	return err
}

// handLimit is the base Discard-phase hand-size limit: a player may hold
// at most CurrentHealth cards (floored at zero for a dying player whose
// death has not yet been finalized).
func handLimit(g *engine.Game, seat int) int {
	hp := g.Player(seat).CurrentHealth
	if hp < 0 {
		hp = 0
	}
	return hp
}

// runDiscardPhase asks seat to discard down to its hand limit, if over,
// via the single suspension point (spec.md §4.4, §5, §6).
func (d *Driver) runDiscardPhase(ctx context.Context, seat int) error {
	g := d.Game
	hand := g.Player(seat).Hand
	limit := handLimit(g, seat)
	over := hand.Len() - limit
	if over <= 0 {
		return nil
	}
	if d.GetPlayerChoice == nil {
		return nil
	}

	req := choicevalidator.Stamp(engine.ChoiceRequest{
		PlayerSeat:   seat,
		ChoiceType:   engine.ChoiceSelectCards,
		AllowedCards: hand.Cards(),
		CanPass:      false,
	})
	result, err := d.GetPlayerChoice(ctx, req)
	if err != nil {
		return err
	}
	if vr := choicevalidator.Validate(req, result); !vr.Success {
		result = choicevalidator.Default(req)
	}

	selected := result.SelectedCardIDs
	if len(selected) > over {
		selected = selected[:over]
	}
	return g.CardMove.DiscardFromHand(ctx, g, seat, selected)
}
