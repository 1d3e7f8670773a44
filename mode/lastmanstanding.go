package mode

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
)

// LastManStanding is a concrete engine.WinConditionService: the game ends
// the instant at most one seat remains alive (spec.md §6 "optional
// WinConditionService"). It has no opinion on camps/factions — that
// belongs to a richer mode's role-assignment collaborator, out of scope
// here per spec.md §1.
type LastManStanding struct{}

var _ engine.WinConditionService = LastManStanding{}

// CheckWin implements engine.WinConditionService.
func (LastManStanding) CheckWin(g *engine.Game) (bool, string) {
	var aliveSeat, aliveCount int
	for _, p := range g.Players {
		if p.IsAlive {
			aliveCount++
			aliveSeat = p.Seat
		}
	}
	if aliveCount <= 1 {
		if aliveCount == 1 {
			return true, fmt.Sprintf("seat %d is the last player standing", aliveSeat)
		}
		return true, "no players remain"
	}
	return false, ""
}
