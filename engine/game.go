// Package engine holds the shared arena (Game/Player/zones) and the
// contracts every other package implements against: rule service, card
// movement, skill manager, judgement service, and resolution stack
// interfaces, plus the plain request/response types they share. Following
// the teacher toolkit's own `core` package, engine is deliberately a thin,
// dependency-free hub — interfaces and DTOs live here, behavior lives in
// the packages that implement them (rules, cardmove, skill, judgement,
// resolution, damage, trick).
package engine

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/events"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/phase"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/player"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/randsrc"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/zone"
)

// Game is the single arena owning every piece of mutable state. All
// "references" between subsystems are seat indices or card IDs resolved
// through this arena, collapsing the cyclic references a naive
// object-graph model would otherwise need (spec.md §9).
type Game struct {
	Players           []*player.Player
	DrawPile          *zone.Zone
	DiscardPile       *zone.Zone
	CurrentPhase      phase.Phase
	CurrentPlayerSeat int
	TurnNumber        int

	Bus      events.Bus
	Random   randsrc.Source
	Log      LogSink
	Mode     GameMode

	CardMove   CardMoveService
	Rules      RuleService
	Skills     SkillManager
	Judgement  JudgementService
	Resolution ResolutionStack

	tempZones map[zone.ID]*zone.Zone
}

// NewGame constructs an empty Game with n seats, wiring the shared
// services. Callers populate Players, DrawPile/DiscardPile afterward
// (deck construction is out of scope, per spec.md §1).
func NewGame(n int, bus events.Bus, random randsrc.Source, log LogSink, mode GameMode) *Game {
	return &Game{
		Players:     make([]*player.Player, n),
		DrawPile:    zone.New(zone.Draw, false),
		DiscardPile: zone.New(zone.Discard, true),
		Bus:         bus,
		Random:      random,
		Log:         log,
		Mode:        mode,
		tempZones:   make(map[zone.ID]*zone.Zone),
	}
}

// Player returns the player seated at seat. Panics on an out-of-range
// seat: this is a programming-error condition per spec.md §7, not a
// recoverable one.
func (g *Game) Player(seat int) *player.Player {
	return g.Players[seat]
}

// AliveSeats returns the seats (in seating order starting at from,
// clockwise) of every player still alive.
func (g *Game) AliveSeats(from int) []int {
	n := len(g.Players)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if g.Players[seat].IsAlive {
			out = append(out, seat)
		}
	}
	return out
}

// NextClockwise returns the next seat clockwise from seat, including seats
// occupied by dead players (seats are never removed, only IsAlive
// changes — spec.md §4.3 Range rule).
func (g *Game) NextClockwise(seat int) int {
	return (seat + 1) % len(g.Players)
}

// AdvancePhase moves CurrentPhase forward one step, publishing PhaseEnd for
// the outgoing phase and PhaseStart for the incoming one. When the phase
// wraps from End back to Start it also advances CurrentPlayerSeat and
// TurnNumber, publishing TurnEnd/TurnStart around the wrap.
func (g *Game) AdvancePhase(ctx context.Context) error {
	ending := g.CurrentPhase
	seat := g.CurrentPlayerSeat

	if err := g.Bus.PublishWithContext(ctx, events.NewPhaseEndEvent(seat, ending)); err != nil {
		return err
	}

	next := ending.Next()
	wrapped := ending == phase.End

	if wrapped {
		if err := g.Bus.PublishWithContext(ctx, events.NewTurnEndEvent(seat, g.TurnNumber)); err != nil {
			return err
		}
		g.CurrentPlayerSeat = g.nextAliveSeat(seat)
		g.TurnNumber++
		if err := g.Bus.PublishWithContext(ctx, events.NewTurnStartEvent(g.CurrentPlayerSeat, g.TurnNumber)); err != nil {
			return err
		}
	}

	g.CurrentPhase = next
	return g.Bus.PublishWithContext(ctx, events.NewPhaseStartEvent(g.CurrentPlayerSeat, g.CurrentPhase))
}

// ResolveZone finds the live *zone.Zone backing id: the draw or discard
// pile, a seat's hand/equipment/judgement zone, or an ephemeral Temp_
// zone created lazily on first reference (spec.md §3). It never returns
// nil: an unrecognized Temp_ id is simply a fresh empty zone.
func (g *Game) ResolveZone(id zone.ID) *zone.Zone {
	if id == g.DrawPile.ID() {
		return g.DrawPile
	}
	if id == g.DiscardPile.ID() {
		return g.DiscardPile
	}
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		switch id {
		case p.Hand.ID():
			return p.Hand
		case p.Equipment.ID():
			return p.Equipment
		case p.Judgement.ID():
			return p.Judgement
		}
	}
	if z, ok := g.tempZones[id]; ok {
		return z
	}
	z := zone.New(id, true)
	g.tempZones[id] = z
	return z
}

// nextAliveSeat returns the next alive seat clockwise from seat. Per
// spec.md §4.3, seats are never removed; the turn simply skips dead ones.
func (g *Game) nextAliveSeat(seat int) int {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		candidate := (seat + i) % n
		if g.Players[candidate].IsAlive {
			return candidate
		}
	}
	return seat
}
