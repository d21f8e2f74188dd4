package ai

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/queries"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// Node is the search-facing view of a battle: what can be done, by whom,
// how to do it, and how to branch. Search algorithms depend on nothing
// else.
type Node interface {
	// ToAct returns the player expected to act, false when the battle is
	// over.
	ToAct() (core.PlayerName, bool)
	// LegalActions returns the acting player's available actions.
	LegalActions(player core.PlayerName) queries.LegalActions
	// Execute applies an action for a player.
	Execute(player core.PlayerName, action state.BattleAction) error
	// Branch returns an independent copy with a forked random stream.
	Branch() Node
	// Winner returns the winner once the battle is over. Nil means a draw
	// or a battle still in progress.
	Winner() *core.PlayerName
}

// BattleNode adapts a BattleState to the Node interface, carrying the
// legal-action cache alongside the state it derives from.
type BattleNode struct {
	State *state.BattleState
	Cache *queries.LegalActionsCache
}

// NewBattleNode wraps a battle state with a fresh cache.
func NewBattleNode(b *state.BattleState) *BattleNode {
	return &BattleNode{State: b, Cache: queries.NewLegalActionsCache()}
}

// ToAct returns the prompted player, the priority holder, or an undecided
// mulligan player, in that order of precedence.
func (n *BattleNode) ToAct() (core.PlayerName, bool) {
	b := n.State
	switch b.Status {
	case state.StatusGameOver:
		return 0, false
	case state.StatusResolveMulligans:
		for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
			if b.Player(player).Mulligan == state.MulliganUndecided {
				return player, true
			}
		}
		return 0, false
	}
	if b.Prompt != nil {
		return b.Prompt.Player, true
	}
	return b.Priority, true
}

// LegalActions returns the player's actions through the cache.
func (n *BattleNode) LegalActions(player core.PlayerName) queries.LegalActions {
	return n.Cache.Get(n.State, player)
}

// Execute applies an action.
func (n *BattleNode) Execute(player core.PlayerName, action state.BattleAction) error {
	return mutations.ExecuteAction(n.State, player, action)
}

// Branch returns a logical clone: deep-copied state with a forked stream
// and an empty cache.
func (n *BattleNode) Branch() Node {
	return NewBattleNode(n.State.LogicalClone())
}

// Winner returns the winning player once the battle has ended.
func (n *BattleNode) Winner() *core.PlayerName {
	return n.State.Winner
}
