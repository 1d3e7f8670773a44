// Package player defines the per-seat mutable state described in
// spec.md §3: seat identity, camp/faction/hero, health, zones, and the
// skill-state flag bag.
package player

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Gender of a player's hero, relevant to a small number of skills.
type Gender int

// Genders.
const (
	GenderMale Gender = iota
	GenderFemale
)

// Player is one seat's mutable state.
type Player struct {
	Seat        int
	CampID      string
	FactionID   string
	HeroID      string
	Gender      Gender
	MaxHealth   int
	CurrentHealth int // signed; may be <= 0 while dying
	IsAlive     bool
	IsLord      bool

	Hand      *zone.Zone
	Equipment *zone.Zone
	Judgement *zone.Zone

	// Flags holds skill state keyed by strings that typically embed the
	// current TurnNumber and Seat, so per-turn/per-phase usage resets
	// implicitly once the turn number moves on (spec.md §4.7).
	Flags map[string]any
}

// New creates a player seated at seat with the given starting health.
func New(seat int, heroID, campID, factionID string, gender Gender, maxHealth int) *Player {
	return &Player{
		Seat:          seat,
		CampID:        campID,
		FactionID:     factionID,
		HeroID:        heroID,
		Gender:        gender,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		IsAlive:       true,
		Hand:          zone.NewOwned(zone.Hand(seat), seat, false),
		Equipment:     zone.NewOwned(zone.Equip(seat), seat, true),
		Judgement:     zone.NewOwned(zone.Judge(seat), seat, true),
		Flags:         make(map[string]any),
	}
}

// IsInjured reports whether the player is below max health (but may still
// be above zero). Used by the Peach usage rule (spec.md §4.3).
func (p *Player) IsInjured() bool {
	return p.CurrentHealth < p.MaxHealth
}

// IsDying reports whether the player's health has dropped to zero or below
// without the dying protocol having concluded yet.
func (p *Player) IsDying() bool {
	return p.CurrentHealth <= 0
}

// SetFlag stores a skill-state value.
func (p *Player) SetFlag(key string, value any) {
	p.Flags[key] = value
}

// GetFlag retrieves a skill-state value.
func (p *Player) GetFlag(key string) (any, bool) {
	v, ok := p.Flags[key]
	return v, ok
}

// FlagBool is a convenience for the common boolean-toggle flag shape.
func (p *Player) FlagBool(key string) bool {
	v, ok := p.Flags[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// FlagInt is a convenience for the common per-turn usage-counter flag
// shape, defaulting to 0 when unset.
func (p *Player) FlagInt(key string) int {
	v, ok := p.Flags[key]
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
