package queries

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// LegalActionsCache memoizes legal-action computations per player and per
// current-energy level. Energy is the only input that changes without a
// structural mutation (AI search probes "what could I do with N energy"),
// so it forms the cache key; every structural mutation raises a dirty flag
// on the state, and any raised flag drops the whole cache.
//
// The cache lives outside BattleState so snapshots and clones never carry
// derived data.
type LegalActionsCache struct {
	byEnergy [2]map[core.Energy]LegalActions
}

// NewLegalActionsCache returns an empty cache.
func NewLegalActionsCache() *LegalActionsCache {
	return &LegalActionsCache{}
}

// Get returns the player's legal actions, computing and memoizing on miss.
// Results always match ComputeLegalActions on the same state.
func (c *LegalActionsCache) Get(b *state.BattleState, player core.PlayerName) LegalActions {
	if b.TakeDirty() != 0 {
		c.Invalidate()
	}
	energy := b.Player(player).CurrentEnergy
	if cached, ok := c.byEnergy[player][energy]; ok {
		return cached
	}
	actions := ComputeLegalActions(b, player)
	if c.byEnergy[player] == nil {
		c.byEnergy[player] = make(map[core.Energy]LegalActions)
	}
	c.byEnergy[player][energy] = actions
	return actions
}

// Invalidate drops every memoized entry.
func (c *LegalActionsCache) Invalidate() {
	c.byEnergy = [2]map[core.Energy]LegalActions{}
}

// Size returns the number of memoized entries, for tests and metrics.
func (c *LegalActionsCache) Size() int {
	return len(c.byEnergy[0]) + len(c.byEnergy[1])
}
