package state

import "github.com/dreamtides/dreamtides-server-go/internal/battle/core"

// MulliganStatus tracks a player's progress through the opening-hand
// decision.
type MulliganStatus int

const (
	// MulliganUndecided means the player has not yet kept or mulliganed.
	MulliganUndecided MulliganStatus = iota
	// MulliganKept means the player kept their opening hand.
	MulliganKept
	// MulliganTaken means the player shuffled back and redrew.
	MulliganTaken
)

func (m MulliganStatus) String() string {
	switch m {
	case MulliganUndecided:
		return "UNDECIDED"
	case MulliganKept:
		return "KEPT"
	case MulliganTaken:
		return "TAKEN"
	default:
		return "UNKNOWN"
	}
}

// PlayerState holds one player's resources and score.
type PlayerState struct {
	// CurrentEnergy is the spendable pool. The dreamwell phase sets it to
	// ProducedEnergy rather than adding to it.
	CurrentEnergy core.Energy
	// ProducedEnergy is the per-turn production level, raised by dreamwell
	// activations.
	ProducedEnergy core.Energy
	// Points is the victory-point total. Reaching the battle's threshold
	// ends the game.
	Points core.Points
	// Mulligan records the opening-hand decision.
	Mulligan MulliganStatus
}

// Clone returns a deep copy.
func (p *PlayerState) Clone() *PlayerState {
	cp := *p
	return &cp
}
