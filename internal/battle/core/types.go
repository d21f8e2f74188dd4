package core

import "fmt"

// PlayerName identifies one of the two fixed player slots in a battle.
type PlayerName int

const (
	PlayerOne PlayerName = iota
	PlayerTwo
)

func (p PlayerName) String() string {
	switch p {
	case PlayerOne:
		return "ONE"
	case PlayerTwo:
		return "TWO"
	default:
		return fmt.Sprintf("PLAYER_%d", int(p))
	}
}

// Opponent returns the other player slot.
func (p PlayerName) Opponent() PlayerName {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Energy is the per-turn resource spent to play cards and activate abilities.
type Energy int

// Spark is a character's combat-strength statistic. Per-player spark totals
// are compared during the judgment phase.
type Spark int

// Points are victory points awarded by judgment. Reaching the configured
// threshold wins the battle.
type Points int

// TurnID is a monotonically increasing turn counter, incremented every time
// a player starts a turn.
type TurnID int

// ObjectID identifies one tenure of a card within a zone. A fresh ObjectID
// is assigned every time a card changes zone, so a captured ObjectID can be
// used to detect stale references to a card that has since moved.
type ObjectID uint64
