// Package choicevalidator implements the "action/choice factory &
// validator" component (spec.md §2 component table, §6 "The validator
// enforces..."): it stamps a fresh RequestID onto outgoing
// engine.ChoiceRequests the way the teacher toolkit's tools/spatial
// package mints IDs with google/uuid, and it checks an incoming
// engine.ChoiceResult against the request it answers before any resolver
// is allowed to act on it.
package choicevalidator

import (
	"github.com/google/uuid"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
)

// NewRequestID mints a fresh request id (spec.md §4.4 "a fresh
// RequestId").
func NewRequestID() string {
	return uuid.New().String()
}

// Stamp assigns req a fresh RequestID and returns it, for callers that
// build a ChoiceRequest without one.
func Stamp(req engine.ChoiceRequest) engine.ChoiceRequest {
	if req.RequestID == "" {
		req.RequestID = NewRequestID()
	}
	return req
}

// Validate checks result against the request it claims to answer,
// enforcing every rule spec.md §6 names: request/response id match,
// acting seat match, selection count within [Min,Max]Targets, selected
// card ids subset of AllowedCards, a non-empty option for
// ChoiceSelectOption, and a non-nil Confirmed for ChoiceConfirm.
func Validate(req engine.ChoiceRequest, result engine.ChoiceResult) sgserr.ResolutionResult {
	if result.RequestID != req.RequestID {
		return sgserr.ResolutionFailure(sgserr.CodeInvalidState, "choice result request id does not match request")
	}
	if result.PlayerSeat != req.PlayerSeat {
		return sgserr.ResolutionFailure(sgserr.CodeInvalidState, "choice result seat does not match requested seat")
	}
	if result.Passed {
		if !req.CanPass {
			return sgserr.ResolutionFailure(sgserr.CodeInvalidState, "choice cannot be passed")
		}
		return sgserr.ResolutionSuccess()
	}

	switch req.ChoiceType {
	case engine.ChoiceSelectTargets:
		if req.TargetConstraints != nil {
			n := len(result.SelectedTargetSeats)
			if n < req.TargetConstraints.MinTargets || n > req.TargetConstraints.MaxTargets {
				return sgserr.ResolutionFailure(sgserr.CodeInvalidTarget, "selected target count out of bounds")
			}
			if !seatsSubsetOf(result.SelectedTargetSeats, req.TargetConstraints.LegalSeats) {
				return sgserr.ResolutionFailure(sgserr.CodeInvalidTarget, "selected seat not in legal seats")
			}
		}
	case engine.ChoiceSelectCards:
		if !cardsSubsetOf(result.SelectedCardIDs, req.AllowedCards) {
			return sgserr.ResolutionFailure(sgserr.CodeInvalidTarget, "selected card not in allowed cards")
		}
	case engine.ChoiceSelectOption:
		if result.SelectedOptionID == "" {
			return sgserr.ResolutionFailure(sgserr.CodeInvalidState, "option selection must be non-empty")
		}
	case engine.ChoiceConfirm:
		if result.Confirmed == nil {
			return sgserr.ResolutionFailure(sgserr.CodeInvalidState, "confirm choice requires a non-nil Confirmed")
		}
	}
	return sgserr.ResolutionSuccess()
}

// Default builds the timeout fallback described in spec.md §5
// "Cancellation & timeouts": a pass when CanPass, otherwise the first
// legal option.
func Default(req engine.ChoiceRequest) engine.ChoiceResult {
	result := engine.ChoiceResult{RequestID: req.RequestID, PlayerSeat: req.PlayerSeat}
	if req.CanPass {
		result.Passed = true
		return result
	}
	switch req.ChoiceType {
	case engine.ChoiceSelectTargets:
		if req.TargetConstraints != nil && len(req.TargetConstraints.LegalSeats) > 0 {
			n := req.TargetConstraints.MinTargets
			if n < 1 {
				n = 1
			}
			if n > len(req.TargetConstraints.LegalSeats) {
				n = len(req.TargetConstraints.LegalSeats)
			}
			result.SelectedTargetSeats = append([]int(nil), req.TargetConstraints.LegalSeats[:n]...)
		}
	case engine.ChoiceSelectCards:
		if len(req.AllowedCards) > 0 {
			result.SelectedCardIDs = req.AllowedCards[:1]
		}
	case engine.ChoiceSelectOption:
		if len(req.Options) > 0 {
			result.SelectedOptionID = req.Options[0]
		}
	case engine.ChoiceConfirm:
		f := false
		result.Confirmed = &f
	}
	return result
}

func seatsSubsetOf(selected, legal []int) bool {
	allowed := make(map[int]bool, len(legal))
	for _, s := range legal {
		allowed[s] = true
	}
	for _, s := range selected {
		if !allowed[s] {
			return false
		}
	}
	return true
}

func cardsSubsetOf(selected, allowed []card.ID) bool {
	allowedSet := make(map[card.ID]bool, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = true
	}
	for _, id := range selected {
		if !allowedSet[id] {
			return false
		}
	}
	return true
}
