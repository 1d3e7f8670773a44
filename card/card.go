// Package card defines the value-like card identity and taxonomy shared by
// every other engine package. Cards never carry behavior themselves —
// skills and rule services interpret them.
package card

import "fmt"

// ID is the dense, stable identity of a physical card. Virtual cards
// produced by conversion skills reuse the ID of their source card; only the
// card the ID belongs to ever moves between zones.
type ID int

// DefinitionID names a catalog entry (external to this module — see
// spec.md §1 Out of scope). The core never interprets it beyond carrying it
// alongside a card's type/subtype/suit/rank.
type DefinitionID string

// Type is the broad category of a card.
type Type int

// Card types.
const (
	TypeBasic Type = iota
	TypeTrick
	TypeEquip
)

func (t Type) String() string {
	switch t {
	case TypeBasic:
		return "basic"
	case TypeTrick:
		return "trick"
	case TypeEquip:
		return "equip"
	default:
		return "unknown"
	}
}

// SubType enumerates every concrete card kind the engine reasons about.
type SubType int

// Card subtypes.
const (
	SubTypeSlash SubType = iota
	SubTypeDodge
	SubTypePeach
	SubTypeWuxiekeji

	// ImmediateTrick specializations.
	SubTypeWuzhongShengyou
	SubTypeTaoyuanJieyi
	SubTypeShunshouQianyang
	SubTypeGuoheChaiqiao
	SubTypeWanjianQifa
	SubTypeNanmanRushin
	SubTypeDuel
	SubTypeJieDaoShaRen

	// DelayedTrick specializations.
	SubTypeLebusishu
	SubTypeShandian

	// Equipment slots.
	SubTypeWeapon
	SubTypeArmor
	SubTypeOffensiveHorse
	SubTypeDefensiveHorse
)

var subTypeNames = map[SubType]string{
	SubTypeSlash:            "slash",
	SubTypeDodge:            "dodge",
	SubTypePeach:            "peach",
	SubTypeWuxiekeji:        "wuxiekeji",
	SubTypeWuzhongShengyou:  "wuzhong_shengyou",
	SubTypeTaoyuanJieyi:     "taoyuan_jieyi",
	SubTypeShunshouQianyang: "shunshou_qianyang",
	SubTypeGuoheChaiqiao:    "guohe_chaiqiao",
	SubTypeWanjianQifa:      "wanjian_qifa",
	SubTypeNanmanRushin:     "nanman_rushin",
	SubTypeDuel:             "duel",
	SubTypeJieDaoShaRen:     "jie_dao_sha_ren",
	SubTypeLebusishu:        "lebusishu",
	SubTypeShandian:         "shandian",
	SubTypeWeapon:           "weapon",
	SubTypeArmor:            "armor",
	SubTypeOffensiveHorse:   "offensive_horse",
	SubTypeDefensiveHorse:   "defensive_horse",
}

func (s SubType) String() string {
	if name, ok := subTypeNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsImmediateTrick reports whether the subtype resolves immediately when
// played rather than being placed in a judgement zone.
func (s SubType) IsImmediateTrick() bool {
	switch s {
	case SubTypeWuxiekeji, SubTypeWuzhongShengyou, SubTypeTaoyuanJieyi, SubTypeShunshouQianyang,
		SubTypeGuoheChaiqiao, SubTypeWanjianQifa, SubTypeNanmanRushin, SubTypeDuel, SubTypeJieDaoShaRen:
		return true
	default:
		return false
	}
}

// IsDelayedTrick reports whether the subtype is placed in a judgement zone
// and resolves at the start of its owner's Judge phase.
func (s SubType) IsDelayedTrick() bool {
	return s == SubTypeLebusishu || s == SubTypeShandian
}

// IsEquipmentSlot reports whether the subtype occupies an equipment slot.
func (s SubType) IsEquipmentSlot() bool {
	switch s {
	case SubTypeWeapon, SubTypeArmor, SubTypeOffensiveHorse, SubTypeDefensiveHorse:
		return true
	default:
		return false
	}
}

// Suit is one of the four French-deck suits.
type Suit int

// Suits.
const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

func (s Suit) String() string {
	switch s {
	case Spade:
		return "spade"
	case Heart:
		return "heart"
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// IsRed reports whether the suit is Heart or Diamond.
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

// IsBlack reports whether the suit is Spade or Club.
func (s Suit) IsBlack() bool {
	return s == Spade || s == Club
}

// Rank is the face value of a card, 1 (Ace) through 13 (King).
type Rank int

// Card is the value-like identity of a physical card.
type Card struct {
	ID           ID
	DefinitionID DefinitionID
	Type         Type
	SubType      SubType
	Suit         Suit
	Rank         Rank
}

// Virtual returns a derived card that carries a different SubType/Type
// while reusing the source card's ID, Suit, and Rank. Per spec.md §3, the
// virtual card is transient: only the source card (same ID) ever moves
// between zones. Conversion skills call this to present a hand card as a
// different usable subtype without duplicating its identity.
func (c Card) Virtual(definitionID DefinitionID, t Type, sub SubType) Card {
	return Card{
		ID:           c.ID,
		DefinitionID: definitionID,
		Type:         t,
		SubType:      sub,
		Suit:         c.Suit,
		Rank:         c.Rank,
	}
}

// String renders the card for logs and error messages.
func (c Card) String() string {
	return fmt.Sprintf("%s-%d(%s/%s#%d)", c.SubType, c.Rank, c.Suit, c.Type, c.ID)
}
