// Package mode provides a minimal, concrete engine.GameMode
// implementation so the engine is runnable end-to-end without an
// external mode package (spec.md §6 "Game mode contract"; SPEC_FULL.md
// expansion item 2). Standard is a pass-through default: fixed seating
// order, no role assignment, no win condition.
package mode

import (
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/modecfg"
)

// Standard is the minimal engine.GameMode: seat 0 always goes first, and
// neither role assignment nor a win-condition check is wired in unless
// WithWinCondition supplies one.
type Standard struct {
	id          string
	displayName string
	win         engine.WinConditionService
}

// WithWinCondition returns a copy of s that reports win as its
// WinConditionService (e.g. LastManStanding), for hosts that want the
// engine to recognize game-over without a full role-assignment mode.
func (s *Standard) WithWinCondition(win engine.WinConditionService) *Standard {
	return &Standard{id: s.id, displayName: s.displayName, win: win}
}

var _ engine.GameMode = (*Standard)(nil)

// New constructs a Standard mode from cfg.
func New(cfg modecfg.Config) *Standard {
	return &Standard{id: cfg.ID, displayName: cfg.DisplayName}
}

// NewDefault constructs a Standard mode with hardcoded identity, for
// tests and demos that don't need a config file.
func NewDefault() *Standard {
	return &Standard{id: "standard", displayName: "Standard Duel"}
}

// ID implements engine.GameMode.
func (s *Standard) ID() string { return s.id }

// DisplayName implements engine.GameMode.
func (s *Standard) DisplayName() string { return s.displayName }

// SelectFirstPlayerSeat implements engine.GameMode: seat 0 always opens,
// matching the fixed-seating default SPEC_FULL.md calls for.
func (s *Standard) SelectFirstPlayerSeat(g *engine.Game) int { return 0 }

// RoleAssignment implements engine.GameMode: Standard performs no role
// assignment (out of scope per spec.md §1).
func (s *Standard) RoleAssignment() engine.RoleAssignmentService { return nil }

// WinCondition implements engine.GameMode: nil unless WithWinCondition
// was used to attach one.
func (s *Standard) WinCondition() engine.WinConditionService { return s.win }
