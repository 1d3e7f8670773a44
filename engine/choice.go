package engine

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
)

// ChoiceType names the shape of input a ChoiceRequest expects back
// (spec.md §6).
type ChoiceType int

// Choice types.
const (
	ChoiceSelectTargets ChoiceType = iota
	ChoiceSelectCards
	ChoiceConfirm
	ChoiceSelectOption
)

// TargetConstraints bounds a SelectTargets choice.
type TargetConstraints struct {
	MinTargets    int
	MaxTargets    int
	LegalSeats    []int
}

// ChoiceRequest is the single suspension-point payload (spec.md §4.4, §5,
// §6): the resolution stack blocks on GetPlayerChoice until the host
// supplies a matching ChoiceResult.
type ChoiceRequest struct {
	RequestID         string
	PlayerSeat        int
	ChoiceType        ChoiceType
	TargetConstraints *TargetConstraints
	AllowedCards      []card.ID
	ResponseWindowID  string
	CanPass           bool
	Options           []string
}

// ChoiceResult is the host's answer to a ChoiceRequest.
type ChoiceResult struct {
	RequestID          string
	PlayerSeat         int
	SelectedTargetSeats []int
	SelectedCardIDs     []card.ID
	SelectedOptionID    string
	Confirmed           *bool
	Passed              bool
}

// PlayerChoiceFunc is the injected callback that suspends resolution until
// the host supplies a ChoiceResult (spec.md §4.4 "context.GetPlayerChoice").
type PlayerChoiceFunc func(ctx context.Context, req ChoiceRequest) (ChoiceResult, error)
