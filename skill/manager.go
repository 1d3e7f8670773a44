package skill

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
)

// Manager is the default engine.SkillManager implementation: a seat ->
// []engine.Skill map populated from an engine.SkillRegistry, with
// Attach/Detach lifecycle management for equipment-granted skills
// (spec.md §4.7).
type Manager struct {
	Registry engine.SkillRegistry
	bySeat   map[int][]engine.Skill
}

// New constructs a Manager backed by registry.
func New(registry engine.SkillRegistry) *Manager {
	return &Manager{Registry: registry, bySeat: make(map[int][]engine.Skill)}
}

var _ engine.SkillManager = (*Manager)(nil)

// LoadSkillsForPlayer instantiates and attaches every skill the registry
// grants seat's hero, appending them to seat's loaded skills. Skills
// already loaded for seat are kept, so loading the same seat twice
// attaches a second set.
func (m *Manager) LoadSkillsForPlayer(g *engine.Game, seat int) error {
	heroID := g.Player(seat).HeroID
	factories := m.Registry.SkillsForHero(heroID)
	for _, factory := range factories {
		sk := factory()
		if err := sk.Attach(g, seat, g.Bus); err != nil {
			return err
		}
		m.bySeat[seat] = append(m.bySeat[seat], sk)
	}
	return nil
}

// LoadSkillsForAllPlayers calls LoadSkillsForPlayer for every seat.
func (m *Manager) LoadSkillsForAllPlayers(g *engine.Game) error {
	for i := range g.Players {
		if err := m.LoadSkillsForPlayer(g, i); err != nil {
			return err
		}
	}
	return nil
}

// ActiveSkills returns seat's currently-applying skills: every loaded
// skill whose IsActive reports true (spec.md §4.7 "IsActive").
func (m *Manager) ActiveSkills(g *engine.Game, seat int) []engine.Skill {
	var out []engine.Skill
	for _, sk := range m.bySeat[seat] {
		if sk.IsActive(g) {
			out = append(out, sk)
		}
	}
	return out
}

// AllSkills returns every skill loaded for seat regardless of IsActive.
func (m *Manager) AllSkills(g *engine.Game, seat int) []engine.Skill {
	return append([]engine.Skill(nil), m.bySeat[seat]...)
}

// AddEquipmentSkill attaches sk to seat, for an equip card's locked skill
// (spec.md §4.7 "Equipment skill").
func (m *Manager) AddEquipmentSkill(g *engine.Game, seat int, sk engine.Skill) error {
	if err := sk.Attach(g, seat, g.Bus); err != nil {
		return err
	}
	m.bySeat[seat] = append(m.bySeat[seat], sk)
	return nil
}

// RemoveEquipmentSkill detaches and removes the first loaded skill with
// the given ID, for unequip/dismantle (spec.md §4.7).
func (m *Manager) RemoveEquipmentSkill(g *engine.Game, seat int, skillID string) error {
	skills := m.bySeat[seat]
	for i, sk := range skills {
		if sk.ID() != skillID {
			continue
		}
		if err := sk.Detach(g.Bus); err != nil {
			return err
		}
		m.bySeat[seat] = append(skills[:i], skills[i+1:]...)
		return nil
	}
	return sgserr.New(sgserr.CodeInvalidState, "skill not loaded for seat", sgserr.WithMeta("skill_id", skillID), sgserr.WithMeta("seat", seat))
}
