// Package rules implements engine.RuleService: the read-only facade over
// phase legality, seating distance, usage limits, targeting, and the
// per-seat action query (spec.md §4.3). Modifier composition — letting a
// skill adjust attack range, usage limits, or legal targets — is expressed
// as a small ordered chain of engine.RuleModifierProvider lookups, the
// same "collect contributions, fold into a base value" shape the teacher
// toolkit uses for its damage and condition chains.
package rules

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/skill"
)

// DistanceIgnoringProvider marks a skill (e.g. Qicai) that lets its owner
// ignore seat distance entirely when playing trick cards (spec.md §4.3
// "Legal targets": "A Qicai skill on the source removes distance for
// trick cards").
type DistanceIgnoringProvider interface {
	engine.Skill
	IgnoresDistanceForTricks(g *engine.Game, ownerSeat int) bool
}

// RangeModifier lets a skill (an offensive/defensive horse, a weapon, ...)
// adjust the effective seat distance or attack range between two seats.
// Implementations type-assert a Skill to this interface when computing
// distance (spec.md §4.3 "Modifier composition").
type RangeModifier interface {
	engine.Skill
	// ModifySeatDistance adjusts the raw seating distance from 'from' as
	// viewed by 'from' (e.g. a defensive horse owned by 'to' adds 1).
	ModifySeatDistance(g *engine.Game, from, to, raw int) int
	// ModifyAttackRange adjusts owner's own attack range (e.g. a weapon
	// overrides it outright; the horses return it unchanged).
	ModifyAttackRange(g *engine.Game, owner, raw int) int
}

// UsageLimitModifier lets a skill adjust a per-turn usage ceiling, e.g. a
// skill raising MaxSlashPerTurn (spec.md §8 "MaxSlashPerTurn=MAX" case).
type UsageLimitModifier interface {
	engine.Skill
	ModifyMaxSlashPerTurn(g *engine.Game, seat, raw int) int
}

// CardLookup resolves a card.ID to its full definition, for services that
// otherwise only see IDs in hand zones (mirrors judgement.CardLookup).
type CardLookup func(id card.ID) card.Card

// Service is the default engine.RuleService implementation. Cards is
// optional; when nil, LegalResponseCards falls back to reporting no
// convertible cards (direct-subtype matches still require a lookup too,
// so callers that need full response-card legality must set it).
type Service struct {
	Cards CardLookup
}

// New constructs a rules Service with no card lookup configured.
func New() *Service {
	return &Service{}
}

// NewWithCards constructs a rules Service able to resolve hand card.IDs
// to full card.Card values, enabling LegalResponseCards' direct-subtype
// and conversion-skill matching (spec.md §4.3 "Response rule").
func NewWithCards(cards CardLookup) *Service {
	return &Service{Cards: cards}
}

var _ engine.RuleService = (*Service)(nil)

// IsCardUsagePhase reports whether seat may currently use cards from hand:
// true only for the active player during the Play phase (spec.md §4.3).
func (s *Service) IsCardUsagePhase(g *engine.Game, seat int) bool {
	return g.CurrentPlayerSeat == seat && g.CurrentPhase == phase.Play
}

// SeatDistance is the raw seating distance between a and b: the shorter of
// the clockwise and counter-clockwise hop counts around every seat,
// alive or dead (seats are never removed, only IsAlive changes), then
// folded through every attached RangeModifier belonging to 'a' or 'b'
// (spec.md §4.3 "Seat distance").
func (s *Service) SeatDistance(g *engine.Game, a, b int) int {
	if a == b {
		return 0
	}
	n := len(g.Players)
	cw, ccw := 0, 0
	for seat := a; seat != b; seat = g.NextClockwise(seat) {
		cw++
	}
	for seat := b; seat != a; seat = g.NextClockwise(seat) {
		ccw++
	}
	raw := cw
	if ccw < raw {
		raw = ccw
	}
	if raw > n {
		raw = n
	}

	distance := raw
	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, a) {
			if rm, ok := sk.(RangeModifier); ok {
				distance = rm.ModifySeatDistance(g, a, b, distance)
			}
		}
		for _, sk := range g.Skills.ActiveSkills(g, b) {
			if rm, ok := sk.(RangeModifier); ok {
				distance = rm.ModifySeatDistance(g, a, b, distance)
			}
		}
	}
	if distance < 1 {
		distance = 1
	}
	return distance
}

// AttackDistance is seat's own attack range, default 1, folded through
// every attached RangeModifier belonging to seat (e.g. a weapon range
// override).
func (s *Service) AttackDistance(g *engine.Game, seat int) int {
	distance := 1
	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			if rm, ok := sk.(RangeModifier); ok {
				distance = rm.ModifyAttackRange(g, seat, distance)
			}
		}
	}
	return distance
}

// IsWithinAttackRange reports whether fromSeat can target toSeat with a
// range-limited card: SeatDistance <= AttackDistance (spec.md §4.3).
func (s *Service) IsWithinAttackRange(g *engine.Game, fromSeat, toSeat int) bool {
	return s.SeatDistance(g, fromSeat, toSeat) <= s.AttackDistance(g, fromSeat)
}

// MaxSlashPerTurn is the default per-turn Slash usage ceiling (1), folded
// through any attached UsageLimitModifier (spec.md §8 "MaxSlashPerTurn=MAX").
func (s *Service) MaxSlashPerTurn(g *engine.Game, seat int) int {
	max := 1
	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			if um, ok := sk.(UsageLimitModifier); ok {
				max = um.ModifyMaxSlashPerTurn(g, seat, max)
			}
		}
	}
	return max
}

// CanUseCard reports whether seat may legally use c right now: phase
// legality, hand ownership, and the Slash per-turn limit. Equip cards and
// trick-card-specific prerequisites are validated by their resolvers, not
// here — this is the coarse, universal gate (spec.md §4.3 "Card usage
// rule"). The Slash count is read from a per-turn, per-seat player flag;
// no code in this module increments that flag.
func (s *Service) CanUseCard(g *engine.Game, seat int, c card.Card) sgserr.RuleResult {
	if !s.IsCardUsagePhase(g, seat) {
		return sgserr.Disallowed(sgserr.CodePhaseNotAllowed, "not seat's card usage phase")
	}
	if !g.Player(seat).Hand.Contains(c.ID) {
		return sgserr.Disallowed(sgserr.CodeCardNotOwned, "card not in seat's hand")
	}
	if c.SubType == card.SubTypeSlash {
		used := g.Player(seat).FlagInt(slashCountFlag(g, seat))
		if used >= s.MaxSlashPerTurn(g, seat) {
			return sgserr.Disallowed(sgserr.CodeUsageLimitReached, "slash usage limit reached this turn")
		}
	}
	return sgserr.Allowed()
}

func slashCountFlag(g *engine.Game, seat int) string {
	return fmt.Sprintf("slash_used_turn_%d_seat_%d", g.TurnNumber, seat)
}

// LegalTargets enumerates the seats c may legally target, given its
// TargetSelectionType (spec.md §4.3 "Legal targets"). Cards with no
// targeting requirement (TargetNone) return an empty, always-legal slice.
func (s *Service) LegalTargets(g *engine.Game, seat int, c card.Card) ([]int, sgserr.RuleResult) {
	sel := targetSelectionFor(c.SubType)
	ignoreDistance := c.SubType.IsImmediateTrick() && s.ownerIgnoresTrickDistance(g, seat)
	var out []int
	for _, candidate := range g.AliveSeats(seat) {
		if candidate == seat && sel != TargetSelf && sel != TargetPeachTargets {
			continue
		}
		switch sel {
		case TargetSingleOtherWithRange:
			if candidate != seat && (ignoreDistance || s.IsWithinAttackRange(g, seat, candidate)) {
				out = append(out, candidate)
			}
		case TargetSingleOtherWithDistance1:
			if candidate != seat && (ignoreDistance || s.SeatDistance(g, seat, candidate) == 1) {
				out = append(out, candidate)
			}
		case TargetSingleOtherNoDistance, TargetAllOther:
			if candidate != seat {
				out = append(out, candidate)
			}
		case TargetSelf:
			if candidate == seat {
				out = append(out, candidate)
			}
		case TargetPeachTargets:
			if candidate == seat || g.Player(candidate).IsInjured() {
				out = append(out, candidate)
			}
		}
	}
	out = s.applyTargetFiltering(g, seat, c, out)
	if sel != TargetNone && len(out) == 0 {
		return nil, sgserr.Disallowed(sgserr.CodeNoLegalOptions, "no legal targets for card")
	}
	return out, sgserr.Allowed()
}

// ownerIgnoresTrickDistance reports whether seat carries an active
// DistanceIgnoringProvider (Qicai), per spec.md §4.3 "Legal targets".
func (s *Service) ownerIgnoresTrickDistance(g *engine.Game, seat int) bool {
	if g.Skills == nil {
		return false
	}
	for _, sk := range g.Skills.ActiveSkills(g, seat) {
		if dp, ok := sk.(DistanceIgnoringProvider); ok && dp.IgnoresDistanceForTricks(g, seat) {
			return true
		}
	}
	return false
}

// applyTargetFiltering lets every active skill across every seat exclude
// candidates from out (spec.md §4.3: "every active target-filtering
// skill may exclude members"). A TargetFiltering skill advertises its own
// removal rules (e.g. Modesty removing its owner from single-target trick
// target lists); it is consulted regardless of which seat is using c.
func (s *Service) applyTargetFiltering(g *engine.Game, seat int, c card.Card, candidates []int) []int {
	if g.Skills == nil || len(candidates) == 0 {
		return candidates
	}
	out := candidates
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		for _, sk := range g.Skills.ActiveSkills(g, p.Seat) {
			if tf, ok := sk.(skill.TargetFiltering); ok {
				out = tf.FilterTargets(g, seat, c, out)
			}
		}
	}
	return out
}

func targetSelectionFor(st card.SubType) TargetSelectionType {
	switch st {
	case card.SubTypeSlash:
		return TargetSingleOtherWithRange
	case card.SubTypeWuzhongShengyou:
		return TargetSelf
	case card.SubTypeTaoyuanJieyi, card.SubTypeWanjianQifa, card.SubTypeNanmanRushin:
		return TargetAllOther
	case card.SubTypePeach:
		return TargetPeachTargets
	case card.SubTypeShunshouQianyang, card.SubTypeGuoheChaiqiao, card.SubTypeDuel,
		card.SubTypeJieDaoShaRen, card.SubTypeLebusishu, card.SubTypeShandian:
		return TargetSingleOtherNoDistance
	default:
		return TargetNone
	}
}

// LegalResponseCards filters seat's hand down to cards satisfying rt's
// required subtype directly, unioned with hand cards an active
// CardConversion skill can convert to that subtype, deduplicated by
// CardId (spec.md §4.3 "Response rule"). Returns nil if no CardLookup was
// configured.
func (s *Service) LegalResponseCards(g *engine.Game, seat int, rt engine.ResponseType) []card.Card {
	if s.Cards == nil {
		return nil
	}
	required := rt.RequiredSubType()
	seen := make(map[card.ID]bool)
	var out []card.Card
	for _, id := range g.Player(seat).Hand.Cards() {
		c := s.Cards(id)
		if c.SubType == required && !seen[id] {
			out = append(out, c)
			seen[id] = true
			continue
		}
		if g.Skills == nil {
			continue
		}
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			cv, ok := sk.(skill.CardConversion)
			if !ok || seen[id] {
				continue
			}
			if converted, eligible := cv.Convert(g, seat, c); eligible && converted.SubType == required {
				out = append(out, converted)
				seen[id] = true
			}
		}
	}
	return out
}

// AvailableActions lists the actions seat may take this instant: one
// ActionDescriptor per distinct actionable card subtype (candidates
// merging directly usable and convertible cards), one per
// action-providing active skill, plus the universal EndPlayPhase (spec.md
// §4.3 "Action query"). Without a CardLookup configured, only the
// skill-provided and end-phase actions are reported.
func (s *Service) AvailableActions(g *engine.Game, seat int) []engine.ActionDescriptor {
	out := []engine.ActionDescriptor{}
	if !s.IsCardUsagePhase(g, seat) {
		return append(out, engine.ActionDescriptor{Kind: engine.ActionEndPlayPhase})
	}

	if s.Cards != nil {
		bySubType := make(map[card.SubType][]card.Card)
		for _, id := range g.Player(seat).Hand.Cards() {
			c := s.Cards(id)
			if s.CanUseCard(g, seat, c).IsAllowed {
				bySubType[c.SubType] = append(bySubType[c.SubType], c)
			}
			if g.Skills == nil {
				continue
			}
			for _, sk := range g.Skills.ActiveSkills(g, seat) {
				cv, ok := sk.(skill.CardConversion)
				if !ok {
					continue
				}
				converted, eligible := cv.Convert(g, seat, c)
				if eligible && s.CanUseCard(g, seat, converted).IsAllowed {
					bySubType[converted.SubType] = append(bySubType[converted.SubType], converted)
				}
			}
		}
		for subType, candidates := range bySubType {
			maxTargets := 1
			for _, candidate := range candidates {
				if targets, res := s.LegalTargets(g, seat, candidate); res.IsAllowed && len(targets) > maxTargets {
					maxTargets = len(targets)
				}
			}
			out = append(out, engine.ActionDescriptor{
				Kind:        engine.ActionUseCard,
				CardSubType: subType,
				Candidates:  candidates,
				MaxTargets:  maxTargets,
			})
		}
	}

	if g.Skills != nil {
		for _, sk := range g.Skills.ActiveSkills(g, seat) {
			ap, ok := sk.(skill.ActionProviding)
			if !ok {
				continue
			}
			if pl, ok := sk.(skill.PhaseLimitedActionProviding); ok && pl.AllowedPhase() != g.CurrentPhase {
				continue
			}
			out = append(out, ap.ProvideActions(g, seat)...)
		}
	}

	return append(out, engine.ActionDescriptor{Kind: engine.ActionEndPlayPhase})
}

// TargetSelectionType and the selection constants live on engine so both
// the rules and resolution packages can share them without a cycle; this
// package simply imports and switches on them via the aliases below.
type TargetSelectionType = engine.TargetSelectionType

const (
	TargetNone                     = engine.TargetNone
	TargetSingleOtherWithRange     = engine.TargetSingleOtherWithRange
	TargetSingleOtherWithDistance1 = engine.TargetSingleOtherWithDistance1
	TargetSingleOtherNoDistance    = engine.TargetSingleOtherNoDistance
	TargetAllOther                 = engine.TargetAllOther
	TargetSelf                     = engine.TargetSelf
	TargetPeachTargets             = engine.TargetPeachTargets
)
