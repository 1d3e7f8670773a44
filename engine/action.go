package engine

import "github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"

// TargetSelectionType names how a card subtype's legal targets are
// computed (spec.md §4.3 "Legal targets").
type TargetSelectionType int

// Target selection types.
const (
	TargetNone TargetSelectionType = iota
	TargetSingleOtherWithRange
	TargetSingleOtherWithDistance1
	TargetSingleOtherNoDistance
	TargetAllOther
	TargetSelf
	TargetPeachTargets
)

// ResponseType names a response window's expected card subtype mapping
// (spec.md §4.3 "Response rule").
type ResponseType int

// Response types.
const (
	ResponseJinkAgainstSlash ResponseType = iota
	ResponsePeachForDying
	ResponseSlashAgainstNanman
	ResponseSlashAgainstDuel
	ResponseNullification
)

// RequiredSubType returns the card subtype a response of this type expects.
func (r ResponseType) RequiredSubType() card.SubType {
	switch r {
	case ResponseJinkAgainstSlash:
		return card.SubTypeDodge
	case ResponsePeachForDying:
		return card.SubTypePeach
	case ResponseSlashAgainstNanman, ResponseSlashAgainstDuel:
		return card.SubTypeSlash
	case ResponseNullification:
		return card.SubTypeWuxiekeji
	default:
		return card.SubTypeSlash
	}
}

// ActionKind distinguishes card-driven actions from skill-provided ones
// and the universal end-of-phase action.
type ActionKind int

// Action kinds.
const (
	ActionUseCard ActionKind = iota
	ActionSkill
	ActionEndPlayPhase
)

// ActionDescriptor is one option a player may choose during their card
// usage phase (spec.md §4.3 "Action query").
type ActionDescriptor struct {
	Kind        ActionKind
	CardSubType card.SubType
	Candidates  []card.Card // directly usable and convertible cards, merged
	SkillID     string
	MaxTargets  int
}
