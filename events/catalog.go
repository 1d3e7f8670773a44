package events

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Event class keys. Not exhaustive per spec.md §4.2; this is the catalog
// the core actually publishes.
var (
	KeyPhaseStart            = NewKey("phase_start")
	KeyPhaseEnd              = NewKey("phase_end")
	KeyTurnStart             = NewKey("turn_start")
	KeyTurnEnd               = NewKey("turn_end")
	KeyCardMovedBefore       = NewKey("card_moved_before")
	KeyCardMovedAfter        = NewKey("card_moved_after")
	KeyCardUsed              = NewKey("card_used")
	KeyCardPlayed            = NewKey("card_played")
	KeyBeforeDamage          = NewKey("before_damage")
	KeyDamageResolved        = NewKey("damage_resolved")
	KeyAfterDamage           = NewKey("after_damage")
	KeyBeforeRecover         = NewKey("before_recover")
	KeyJudgementCardRevealed = NewKey("judgement_card_revealed")
	KeyJudgementCompleted    = NewKey("judgement_completed")
	KeyDrawPhaseReplaced     = NewKey("draw_phase_replaced")
	KeyAfterHpLost           = NewKey("after_hp_lost")
)

// PhaseStartEvent fires when a phase begins for the current player.
type PhaseStartEvent struct {
	Base
	Seat  int
	Phase phase.Phase
}

// NewPhaseStartEvent constructs a PhaseStartEvent.
func NewPhaseStartEvent(seat int, p phase.Phase) *PhaseStartEvent {
	return &PhaseStartEvent{Base: NewBase(KeyPhaseStart), Seat: seat, Phase: p}
}

// PhaseEndEvent fires when a phase ends for the current player.
type PhaseEndEvent struct {
	Base
	Seat  int
	Phase phase.Phase
}

// NewPhaseEndEvent constructs a PhaseEndEvent.
func NewPhaseEndEvent(seat int, p phase.Phase) *PhaseEndEvent {
	return &PhaseEndEvent{Base: NewBase(KeyPhaseEnd), Seat: seat, Phase: p}
}

// TurnStartEvent fires once per full turn, at Start phase entry.
type TurnStartEvent struct {
	Base
	Seat        int
	TurnNumber  int
}

// NewTurnStartEvent constructs a TurnStartEvent.
func NewTurnStartEvent(seat, turnNumber int) *TurnStartEvent {
	return &TurnStartEvent{Base: NewBase(KeyTurnStart), Seat: seat, TurnNumber: turnNumber}
}

// TurnEndEvent fires once per full turn, at End phase exit.
type TurnEndEvent struct {
	Base
	Seat       int
	TurnNumber int
}

// NewTurnEndEvent constructs a TurnEndEvent.
func NewTurnEndEvent(seat, turnNumber int) *TurnEndEvent {
	return &TurnEndEvent{Base: NewBase(KeyTurnEnd), Seat: seat, TurnNumber: turnNumber}
}

// MoveReason identifies why a card movement service call moved cards.
type MoveReason int

// Move reasons (spec.md §4.1).
const (
	ReasonDraw MoveReason = iota
	ReasonDiscard
	ReasonEquip
	ReasonUnequip
	ReasonJudgement
	ReasonResponse
	ReasonUseCost
	ReasonReturnToDeckTop
	ReasonReturnToDeckBottom
	ReasonTransfer
)

// CardMovedEvent fires twice per movement: once Before (pre-mutation) and
// once After (post-mutation), per spec.md §4.1 and §5 ordering guarantee 1.
type CardMovedEvent struct {
	Base
	Source    zone.ID
	Target    zone.ID
	Cards     []card.ID
	Reason    MoveReason
	Ordering  zone.Ordering
}

// NewCardMovedBeforeEvent constructs the pre-mutation CardMovedEvent.
func NewCardMovedBeforeEvent(source, target zone.ID, cards []card.ID, reason MoveReason, ordering zone.Ordering) *CardMovedEvent {
	return &CardMovedEvent{Base: NewBase(KeyCardMovedBefore), Source: source, Target: target, Cards: cards, Reason: reason, Ordering: ordering}
}

// NewCardMovedAfterEvent constructs the post-mutation CardMovedEvent.
func NewCardMovedAfterEvent(source, target zone.ID, cards []card.ID, reason MoveReason, ordering zone.Ordering) *CardMovedEvent {
	return &CardMovedEvent{Base: NewBase(KeyCardMovedAfter), Source: source, Target: target, Cards: cards, Reason: reason, Ordering: ordering}
}

// CardUsedEvent fires when a card (or its virtual conversion) is used,
// after cost payment and target application, before effect resolution.
type CardUsedEvent struct {
	Base
	SourceSeat int
	Card       card.Card
	Targets    []int
}

// NewCardUsedEvent constructs a CardUsedEvent.
func NewCardUsedEvent(sourceSeat int, c card.Card, targets []int) *CardUsedEvent {
	return &CardUsedEvent{Base: NewBase(KeyCardUsed), SourceSeat: sourceSeat, Card: c, Targets: targets}
}

// CardPlayedEvent fires alongside CardUsed when UseCardResolver puts a
// card into play. Dodge and Peach responses discarded by the response and
// dying resolvers do not publish it.
type CardPlayedEvent struct {
	Base
	SourceSeat int
	Card       card.Card
}

// NewCardPlayedEvent constructs a CardPlayedEvent.
func NewCardPlayedEvent(sourceSeat int, c card.Card) *CardPlayedEvent {
	return &CardPlayedEvent{Base: NewBase(KeyCardPlayed), SourceSeat: sourceSeat, Card: c}
}

// DamageType classifies a damage instance for equipment interaction
// (spec.md §4.5).
type DamageType int

// Damage types.
const (
	DamageNormal DamageType = iota
	DamageFire
	DamageThunder
)

// BeforeDamageEvent carries a mutable DamageModification total, summed
// from every subscriber before the amount is applied (spec.md §4.5 step 1).
type BeforeDamageEvent struct {
	Base
	SourceSeat         int
	HasSource          bool
	TargetSeat         int
	Amount             int
	Type               DamageType
	DamageModification int
}

// NewBeforeDamageEvent constructs a BeforeDamageEvent.
func NewBeforeDamageEvent(sourceSeat int, hasSource bool, targetSeat, amount int, dt DamageType) *BeforeDamageEvent {
	return &BeforeDamageEvent{Base: NewBase(KeyBeforeDamage), SourceSeat: sourceSeat, HasSource: hasSource, TargetSeat: targetSeat, Amount: amount, Type: dt}
}

// DamageResolvedEvent fires once HP has been reduced by the final amount
// (spec.md §4.5 step 4). FinalAmount is 0 if the damage was fully
// prevented.
type DamageResolvedEvent struct {
	Base
	TargetSeat  int
	FinalAmount int
	Type        DamageType
}

// NewDamageResolvedEvent constructs a DamageResolvedEvent.
func NewDamageResolvedEvent(targetSeat, finalAmount int, dt DamageType) *DamageResolvedEvent {
	return &DamageResolvedEvent{Base: NewBase(KeyDamageResolved), TargetSeat: targetSeat, FinalAmount: finalAmount, Type: dt}
}

// AfterDamageEvent fires after DamageResolved, for skills that react once
// damage has landed (obtaining the causing card, drawing, etc.).
type AfterDamageEvent struct {
	Base
	SourceSeat    int
	HasSource     bool
	TargetSeat    int
	FinalAmount   int
	Type          DamageType
	TriggersDying bool
	CausingCard   *card.Card
}

// NewAfterDamageEvent constructs an AfterDamageEvent.
func NewAfterDamageEvent(sourceSeat int, hasSource bool, targetSeat, finalAmount int, dt DamageType, triggersDying bool, causingCard *card.Card) *AfterDamageEvent {
	return &AfterDamageEvent{Base: NewBase(KeyAfterDamage), SourceSeat: sourceSeat, HasSource: hasSource, TargetSeat: targetSeat, FinalAmount: finalAmount, Type: dt, TriggersDying: triggersDying, CausingCard: causingCard}
}

// BeforeRecoverEvent carries a mutable RecoverModification, summed before a
// Peach (or convertible card) heals its target.
type BeforeRecoverEvent struct {
	Base
	SourceSeat         int
	TargetSeat         int
	Amount             int
	RecoverModification int
}

// NewBeforeRecoverEvent constructs a BeforeRecoverEvent.
func NewBeforeRecoverEvent(sourceSeat, targetSeat, amount int) *BeforeRecoverEvent {
	return &BeforeRecoverEvent{Base: NewBase(KeyBeforeRecover), SourceSeat: sourceSeat, TargetSeat: targetSeat, Amount: amount}
}

// JudgementCardRevealedEvent carries the current judgement card and a
// Replacement slot a JudgementModifier skill may fill (spec.md §4.6 step 3).
type JudgementCardRevealedEvent struct {
	Base
	OwnerSeat    int
	Current      card.Card
	Replacement  *card.Card
	ReplacedByID string
}

// NewJudgementCardRevealedEvent constructs a JudgementCardRevealedEvent.
func NewJudgementCardRevealedEvent(ownerSeat int, current card.Card) *JudgementCardRevealedEvent {
	return &JudgementCardRevealedEvent{Base: NewBase(KeyJudgementCardRevealed), OwnerSeat: ownerSeat, Current: current}
}

// JudgementCompletedEvent fires once the modification window has closed and
// the judgement rule has been evaluated.
type JudgementCompletedEvent struct {
	Base
	OwnerSeat int
	Final     card.Card
	Success   bool
}

// NewJudgementCompletedEvent constructs a JudgementCompletedEvent.
func NewJudgementCompletedEvent(ownerSeat int, final card.Card, success bool) *JudgementCompletedEvent {
	return &JudgementCompletedEvent{Base: NewBase(KeyJudgementCompleted), OwnerSeat: ownerSeat, Final: final, Success: success}
}

// DrawPhaseReplacedEvent fires when a DrawPhaseReplacement skill has taken
// over the Draw phase entirely (e.g. drawing from the discard pile
// instead). Handled is set true by the replacing skill so the default draw
// is skipped.
type DrawPhaseReplacedEvent struct {
	Base
	Seat    int
	Handled bool
}

// NewDrawPhaseReplacedEvent constructs a DrawPhaseReplacedEvent.
func NewDrawPhaseReplacedEvent(seat int) *DrawPhaseReplacedEvent {
	return &DrawPhaseReplacedEvent{Base: NewBase(KeyDrawPhaseReplaced), Seat: seat}
}

// AfterHpLostEvent fires any time a player's CurrentHealth decreases,
// whether from damage or an HP-loss cost, letting skills react uniformly.
type AfterHpLostEvent struct {
	Base
	Seat   int
	Amount int
}

// NewAfterHpLostEvent constructs an AfterHpLostEvent.
func NewAfterHpLostEvent(seat, amount int) *AfterHpLostEvent {
	return &AfterHpLostEvent{Base: NewBase(KeyAfterHpLost), Seat: seat, Amount: amount}
}
