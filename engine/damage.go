package engine

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
)

// DamageDescriptor is the payload threaded through the damage pipeline
// (spec.md §3). It is immutable except for the damage-modification field
// exposed separately on the BeforeDamage event; the descriptor itself is
// the resolver's working copy.
type DamageDescriptor struct {
	SourceSeat        int
	HasSource         bool
	TargetSeat        int
	Amount            int
	Type              events.DamageType
	Reason            string
	CausingCard       *card.Card
	CausingCards      []card.Card
	IsPreventable     bool
	TransferredToSeat int
	HasTransfer       bool
	TriggersDying     bool
}
