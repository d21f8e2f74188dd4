package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// DebugDrawCard draws a card outside normal rules.
func DebugDrawCard(b *state.BattleState, player core.PlayerName) error {
	if err := DrawCard(b, state.GameSource(player), player); err != nil {
		return err
	}
	return ResolvePendingTriggers(b)
}

// DebugSetEnergy sets a player's current energy directly.
func DebugSetEnergy(b *state.BattleState, player core.PlayerName, amount core.Energy) error {
	if amount < 0 {
		return core.Invariantf("negative energy %d", amount)
	}
	b.Player(player).CurrentEnergy = amount
	return nil
}
