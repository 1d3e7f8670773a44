// Package skill defines the capability-specific interfaces a concrete
// skill (package skills) implements on top of engine.Skill, and the
// Manager that owns the seat -> []Skill map (spec.md §4.7). Per spec.md
// §9's redesign note, the original's multiple-inheritance skill
// hierarchy is replaced here by small single-method traits: a skill
// advertises its engine.Capability bitmask at construction, and callers
// type-assert to whichever trait they need, exactly the way the resolution
// and rules packages already do for RangeModifier/UsageLimitModifier.
package skill

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
)

// CardConversion lets a skill present a hand card as a different usable
// subtype (e.g. Longdan: Slash<->Dodge), producing a virtual card via
// card.Card.Virtual (spec.md §4.7 "Card conversion").
type CardConversion interface {
	engine.Skill
	// Convert returns the virtual card c would become if converted, and
	// whether c is eligible at all.
	Convert(g *engine.Game, ownerSeat int, c card.Card) (card.Card, bool)
}

// MultiCardConversion lets a skill synthesize a usable card out of several
// hand cards at once (e.g. discarding two cards for a virtual Slash).
type MultiCardConversion interface {
	engine.Skill
	// ConvertMany returns the virtual card produced by consuming sources,
	// and whether the combination is eligible.
	ConvertMany(g *engine.Game, ownerSeat int, sources []card.Card) (card.Card, bool)
}

// TargetFiltering lets a skill narrow or widen LegalTargets beyond the
// base rule service's computation (spec.md §4.3 "Modifier composition").
type TargetFiltering interface {
	engine.Skill
	FilterTargets(g *engine.Game, ownerSeat int, c card.Card, candidates []int) []int
}

// ActionProviding contributes extra ActionDescriptors to a seat's action
// query, for active skills usable outside normal card play (spec.md §4.7
// "Active skill").
type ActionProviding interface {
	engine.Skill
	ProvideActions(g *engine.Game, ownerSeat int) []engine.ActionDescriptor
}

// PhaseLimitedActionProviding is ActionProviding restricted to a single
// phase window (e.g. Guanxing only during its owner's Judge phase).
type PhaseLimitedActionProviding interface {
	ActionProviding
	AllowedPhase() phase.Phase
}

// JudgementModifier fills the Replacement slot on a JudgementCardRevealed
// event (spec.md §4.6 step 3, §4.7 "Judgement modifier").
type JudgementModifier interface {
	engine.Skill
	// AppliesTo reports whether this skill may intervene in ownerSeat's
	// current judgement.
	AppliesTo(g *engine.Game, ownerSeat int) bool
}

// BeforeDamageReactor subscribes to BeforeDamage to adjust
// DamageModification (armor, Bagua-style dodge conversion, Wugu-adjacent
// prevention, ...). Concrete skills implement this by subscribing
// directly in Attach; the interface exists so rules/resolution code can
// discover such skills without a cycle.
type BeforeDamageReactor interface {
	engine.Skill
}

// AfterDamageReactor is likewise a marker interface: the behavior lives in the Attach-time subscription, not in
// an extra method, since the event payload already carries everything a
// reactor needs.
type AfterDamageReactor interface {
	engine.Skill
}

// DrawPhaseReplacement lets a skill replace the default draw entirely
// (spec.md §4.7 "Draw-phase replacement").
type DrawPhaseReplacement interface {
	engine.Skill
	ReplaceDraw(g *engine.Game, ownerSeat int) error
}

// ResponseAssistance lets a skill satisfy or relax a response requirement
// without a matching card (e.g. Renwang Shield-adjacent immunity, a
// no-Dodge-needed lock skill).
type ResponseAssistance interface {
	engine.Skill
	// Satisfies reports whether the skill alone resolves rt for ownerSeat,
	// bypassing the normal card-based response.
	Satisfies(g *engine.Game, ownerSeat int, rt engine.ResponseType) bool
}

// ActiveHpLoss marks a skill whose activation cost is the owner's own HP
// (e.g. Kurou). Nothing in the resolution layer consults it; such a skill
// publishes the same AfterHpLost event the damage pipeline uses itself,
// as Kurou's Execute does.
type ActiveHpLoss interface {
	engine.Skill
}

// LordSkill names a skill that only applies while its owner is the game's
// designated lord (spec.md §6 role concepts). It adds no method to
// engine.Skill, so every skill satisfies it, and Manager.LoadSkillsForPlayer
// does not consult it or Player.IsLord: such skills load for any owner.
type LordSkill interface {
	engine.Skill
}

// SlashTargetModifying lets a skill redirect an incoming Slash to a
// different seat before the response window opens (spec.md §4.7
// "Slash target modifying").
type SlashTargetModifying interface {
	engine.Skill
	// RedirectSlashTarget returns the seat the slash should actually hit,
	// and whether this skill redirects it at all.
	RedirectSlashTarget(g *engine.Game, sourceSeat, originalTarget int) (int, bool)
}

// SlashResponseModifier lets a skill forbid a Dodge response to a Slash it
// is attached to the condition of (spec.md §4.7 "Slash response
// modifier").
type SlashResponseModifier interface {
	engine.Skill
	// ProhibitsDodge reports whether targetSeat may not respond to this
	// Slash with a Dodge.
	ProhibitsDodge(g *engine.Game, sourceSeat, targetSeat int) bool
}

// ResponseRequirementModifying lets a skill demand more than one matching
// card to satisfy a response window (spec.md §4.7 "Response requirement
// modifying").
type ResponseRequirementModifying interface {
	engine.Skill
	// RequiredCount returns how many cards of rt's subtype targetSeat must
	// supply to satisfy the window (>=1; 1 is the unmodified default).
	RequiredCount(g *engine.Game, targetSeat int, rt engine.ResponseType) int
}

// RecoverAmountModifying lets a skill scale the HP a Peach (or
// Peach-convertible card) restores (spec.md §4.7 "Recover amount
// modifying").
type RecoverAmountModifying interface {
	engine.Skill
	ModifyRecoverAmount(g *engine.Game, targetSeat, raw int) int
}

// DrawPhaseModifying lets a skill change the number of cards drawn during
// the owner's Draw phase without replacing the draw entirely (spec.md
// §4.7 "Draw-phase modifying"; contrast with DrawPhaseReplacement, which
// substitutes a different action altogether).
type DrawPhaseModifying interface {
	engine.Skill
	ModifyDrawCount(g *engine.Game, ownerSeat, raw int) int
}
