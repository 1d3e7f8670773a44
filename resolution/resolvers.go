package resolution

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/choicevalidator"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skill"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// UseCardResolver pays a card's cost (moving it out of hand into the
// discard pile, unless it is a delayed trick bound for a judgement zone),
// publishes CardUsed/CardPlayed, and leaves effect resolution to whatever
// resolver the caller pushes beneath it (spec.md §4.3 "Card usage rule",
// §4.1 move reasons).
type UseCardResolver struct {
	Card        card.Card
	Targets     []int
	TargetSeat  int // for delayed tricks: whose judgement zone receives the card
	HasTarget   bool
}

var _ engine.Resolver = (*UseCardResolver)(nil)

// Resolve implements engine.Resolver.
func (u *UseCardResolver) Resolve(ctx context.Context, rc *engine.ResolutionContext) sgserr.ResolutionResult {
	g := rc.Game
	actor := rc.ActorSeat

	if u.Card.SubType.IsDelayedTrick() && u.HasTarget {
		if err := g.CardMove.Move(ctx, g, engine.MoveRequest{
			Source: zone.Hand(actor),
			Target: zone.Judge(u.TargetSeat),
			Cards:  []card.ID{u.Card.ID},
			Reason: events.ReasonJudgement,
		}); err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
	} else {
		if err := g.CardMove.DiscardFromHand(ctx, g, actor, []card.ID{u.Card.ID}); err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
	}

	if err := g.Bus.PublishWithContext(ctx, events.NewCardUsedEvent(actor, u.Card, u.Targets)); err != nil {
		return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
	}
	if err := g.Bus.PublishWithContext(ctx, events.NewCardPlayedEvent(actor, u.Card)); err != nil {
		return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
	}
	return sgserr.ResolutionSuccess()
}

// ResponseRequestResolver suspends on rc.GetPlayerChoice, asking
// RespondingSeat for a card of RequiredType, and records whether a legal
// response was supplied in rc.IntermediateResults[ResultKey] (spec.md
// §4.3 "Response rule", §4.4 suspension).
type ResponseRequestResolver struct {
	RespondingSeat int
	RequiredType   engine.ResponseType
	ResultKey      string
}

var _ engine.Resolver = (*ResponseRequestResolver)(nil)

// Resolve implements engine.Resolver.
func (r *ResponseRequestResolver) Resolve(ctx context.Context, rc *engine.ResolutionContext) sgserr.ResolutionResult {
	g := rc.Game
	if rc.GetPlayerChoice == nil {
		return sgserr.ResolutionFailure(sgserr.CodeMissingService, "no player choice callback configured")
	}

	req := choicevalidator.Stamp(engine.ChoiceRequest{
		PlayerSeat:       r.RespondingSeat,
		ChoiceType:       engine.ChoiceSelectCards,
		ResponseWindowID: r.RequiredType.RequiredSubType().String(),
		AllowedCards:     cardIDs(g.Rules.LegalResponseCards(g, r.RespondingSeat, r.RequiredType)),
		CanPass:          true,
	})
	result, err := rc.GetPlayerChoice(ctx, req)
	if err != nil {
		return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
	}
	if vr := choicevalidator.Validate(req, result); !vr.Success {
		return vr
	}

	required := requiredResponseCount(g, r.RespondingSeat, r.RequiredType)
	responded := !result.Passed && len(result.SelectedCardIDs) >= required
	if responded {
		if err := g.CardMove.DiscardFromHand(ctx, g, r.RespondingSeat, result.SelectedCardIDs); err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
	}
	rc.IntermediateResults[r.ResultKey] = responded
	return sgserr.ResolutionSuccess()
}

// requiredResponseCount folds in every active skill.ResponseRequirementModifying
// across every seat (e.g. Wushuang demanding two Dodges), defaulting to 1
// (spec.md §4.7 "ResponseRequirementModifying").
func requiredResponseCount(g *engine.Game, respondingSeat int, rt engine.ResponseType) int {
	if g.Skills == nil {
		return 1
	}
	n := 1
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		for _, sk := range g.Skills.ActiveSkills(g, p.Seat) {
			if rrm, ok := sk.(skill.ResponseRequirementModifying); ok {
				if v := rrm.RequiredCount(g, respondingSeat, rt); v > n {
					n = v
				}
			}
		}
	}
	return n
}

// recoverAmount folds in every active skill.RecoverAmountModifying
// targeting seat (spec.md §4.7 "RecoverAmountModifying").
func recoverAmount(g *engine.Game, seat int, raw int) int {
	if g.Skills == nil {
		return raw
	}
	n := raw
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		for _, sk := range g.Skills.ActiveSkills(g, p.Seat) {
			if ram, ok := sk.(skill.RecoverAmountModifying); ok {
				n = ram.ModifyRecoverAmount(g, seat, n)
			}
		}
	}
	return n
}

func cardIDs(cards []card.Card) []card.ID {
	out := make([]card.ID, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// DyingResolver runs the rescue protocol for a player at or below zero
// health: ask each alive seat starting with the dying player, in seating
// order, for a Peach, until health is positive or no one responds; then
// finalizes death if health is still non-positive (spec.md §4.5 step 5
// and the scenario in §8 "Dying rescue").
type DyingResolver struct {
	Seat int
}

var _ engine.Resolver = (*DyingResolver)(nil)

// Resolve implements engine.Resolver.
func (d *DyingResolver) Resolve(ctx context.Context, rc *engine.ResolutionContext) sgserr.ResolutionResult {
	g := rc.Game
	if rc.GetPlayerChoice == nil {
		return sgserr.ResolutionFailure(sgserr.CodeMissingService, "no player choice callback configured")
	}

	for _, seat := range g.AliveSeats(d.Seat) {
		if !g.Player(d.Seat).IsDying() {
			break
		}
		req := choicevalidator.Stamp(engine.ChoiceRequest{
			PlayerSeat:       seat,
			ChoiceType:       engine.ChoiceSelectCards,
			ResponseWindowID: card.SubTypePeach.String(),
			AllowedCards:     cardIDs(g.Rules.LegalResponseCards(g, seat, engine.ResponsePeachForDying)),
			CanPass:          true,
		})
		result, err := rc.GetPlayerChoice(ctx, req)
		if err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
		if vr := choicevalidator.Validate(req, result); !vr.Success {
			return vr
		}
		if result.Passed || len(result.SelectedCardIDs) == 0 {
			continue
		}
		if err := g.CardMove.DiscardFromHand(ctx, g, seat, result.SelectedCardIDs); err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
		amount := recoverAmount(g, d.Seat, 1)
		before := events.NewBeforeRecoverEvent(seat, d.Seat, amount)
		if err := g.Bus.PublishWithContext(ctx, before); err != nil {
			return sgserr.ResolutionFailure(sgserr.CodeUnknownOr(err), err.Error())
		}
		g.Player(d.Seat).CurrentHealth += amount + before.RecoverModification
	}

	if g.Player(d.Seat).IsDying() {
		g.Player(d.Seat).IsAlive = false
		g.Player(d.Seat).Hand.Clear()
		g.Player(d.Seat).Equipment.Clear()
		g.Player(d.Seat).Judgement.Clear()
	}
	return sgserr.ResolutionSuccess()
}
