package engine

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// MoveRequest describes one card-movement service call (spec.md §4.1).
type MoveRequest struct {
	Source   zone.ID
	Target   zone.ID
	Cards    []card.ID
	Reason   events.MoveReason
	Ordering zone.Ordering
}

// CardMoveService is the sole primitive through which card possession
// changes (spec.md §4.1).
type CardMoveService interface {
	Move(ctx context.Context, g *Game, req MoveRequest) error

	// DrawCards draws n singles for seat, attempting a reshuffle if the
	// draw pile empties mid-draw, and returns however many were actually
	// drawn (spec.md §4.1, §6 reshuffle policy).
	DrawCards(ctx context.Context, g *Game, seat int, n int) ([]card.ID, error)

	// DiscardFromHand is shorthand for Move(Reason=Discard, Target=Discard).
	DiscardFromHand(ctx context.Context, g *Game, seat int, ids []card.ID) error
}

// RuleService is the read-only facade over legality, targeting, and limit
// queries (spec.md §4.3).
type RuleService interface {
	IsCardUsagePhase(g *Game, seat int) bool
	SeatDistance(g *Game, a, b int) int
	AttackDistance(g *Game, seat int) int
	IsWithinAttackRange(g *Game, fromSeat, toSeat int) bool
	MaxSlashPerTurn(g *Game, seat int) int

	CanUseCard(g *Game, seat int, c card.Card) sgserr.RuleResult
	LegalTargets(g *Game, seat int, c card.Card) ([]int, sgserr.RuleResult)
	LegalResponseCards(g *Game, seat int, rt ResponseType) []card.Card
	AvailableActions(g *Game, seat int) []ActionDescriptor
}

// RuleModifierProvider is implemented by anything (typically a skill) that
// can contribute RuleModifiers for a given actor (spec.md §4.3 "Modifier
// composition"). It is defined here, not in the rules package, so both
// engine.RuleService implementations and the skill package can reference
// it without a cycle.
type RuleModifierProvider interface {
	Skill
}

// SkillManager owns the seat -> []Skill map (spec.md §4.7).
type SkillManager interface {
	LoadSkillsForPlayer(g *Game, seat int) error
	LoadSkillsForAllPlayers(g *Game) error
	ActiveSkills(g *Game, seat int) []Skill
	AllSkills(g *Game, seat int) []Skill
	AddEquipmentSkill(g *Game, seat int, sk Skill) error
	RemoveEquipmentSkill(g *Game, seat int, skillID string) error
}

// JudgementRule evaluates a final judgement card, e.g. SuitJudgementRule,
// NegatedJudgementRule, RedJudgementRule (spec.md §4.6 step 4).
type JudgementRule func(c card.Card) bool

// JudgementRequest parameterizes one ExecuteJudgement call.
type JudgementRequest struct {
	Rule JudgementRule
}

// JudgementOutput is the result of a completed judgement.
type JudgementOutput struct {
	FinalCard card.Card
	IsSuccess bool
}

// JudgementService draws, modifies, and evaluates judgement cards
// (spec.md §4.6).
type JudgementService interface {
	ExecuteJudgement(ctx context.Context, g *Game, ownerSeat int, req JudgementRequest) (JudgementOutput, error)
	CompleteJudgement(ctx context.Context, g *Game, ownerSeat int) error
}

// Resolver is one LIFO stack frame (spec.md §4.4).
type Resolver interface {
	Resolve(ctx context.Context, rc *ResolutionContext) sgserr.ResolutionResult
}

// ResolutionContext is the per-frame working state threaded through a
// resolver invocation (spec.md §4.4).
type ResolutionContext struct {
	Game              *Game
	ActorSeat         int
	Action            *ActionDescriptor
	Choice            *ChoiceResult
	PendingDamage     *DamageDescriptor
	GetPlayerChoice   PlayerChoiceFunc
	IntermediateResults map[string]any
}

// NewResolutionContext creates a context bound to g and actorSeat.
func NewResolutionContext(g *Game, actorSeat int, choiceFn PlayerChoiceFunc) *ResolutionContext {
	return &ResolutionContext{
		Game:                g,
		ActorSeat:           actorSeat,
		GetPlayerChoice:     choiceFn,
		IntermediateResults: make(map[string]any),
	}
}

// Child returns a new context for a pushed resolver, inheriting Game,
// GetPlayerChoice, and IntermediateResults (sibling resolvers share the
// IntermediateResults map per spec.md §4.4) but starting fresh Action/
// Choice/PendingDamage fields and a possibly different actor.
func (rc *ResolutionContext) Child(actorSeat int) *ResolutionContext {
	return &ResolutionContext{
		Game:                rc.Game,
		ActorSeat:           actorSeat,
		GetPlayerChoice:     rc.GetPlayerChoice,
		IntermediateResults: rc.IntermediateResults,
	}
}

// ResolutionStack is the LIFO driver described in spec.md §4.4.
type ResolutionStack interface {
	Push(r Resolver, rc *ResolutionContext)
	Run(ctx context.Context) []sgserr.ResolutionResult
	Len() int
}

// RoleAssignmentService is an optional mode collaborator (spec.md §6).
type RoleAssignmentService interface {
	AssignRoles(g *Game) error
}

// WinConditionService is an optional mode collaborator (spec.md §6).
type WinConditionService interface {
	// CheckWin returns true and a description once the game has ended.
	CheckWin(g *Game) (bool, string)
}

// GameMode is the injected game-mode contract (spec.md §6).
type GameMode interface {
	ID() string
	DisplayName() string
	SelectFirstPlayerSeat(g *Game) int
	RoleAssignment() RoleAssignmentService // may return nil
	WinCondition() WinConditionService     // may return nil
}
