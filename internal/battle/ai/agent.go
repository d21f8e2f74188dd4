package ai

import (
	"fmt"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// Agent picks one action from a node's legal actions.
type Agent interface {
	Name() string
	SelectAction(node Node, player core.PlayerName) (state.BattleAction, error)
}

// NewAgent resolves an agent by name.
func NewAgent(name string, seed uint64) (Agent, error) {
	switch name {
	case "random":
		return NewRandomAgent(seed), nil
	case "greedy":
		return NewGreedyAgent(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

// RandomAgent picks uniformly among legal actions with its own seeded
// stream, independent of the battle's stream.
type RandomAgent struct {
	rng state.Rng
}

// NewRandomAgent returns a random agent with its own stream.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: state.NewRng(seed)}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) SelectAction(node Node, player core.PlayerName) (state.BattleAction, error) {
	actions := node.LegalActions(player)
	action, ok := actions.Random(&a.rng)
	if !ok {
		return state.BattleAction{}, fmt.Errorf("no legal actions for %s", player)
	}
	return action, nil
}

// GreedyAgent evaluates each legal action with a one-step lookahead on a
// branched node and picks the best outcome, breaking ties with its stream.
type GreedyAgent struct {
	rng state.Rng
}

// NewGreedyAgent returns a greedy one-ply agent.
func NewGreedyAgent(seed uint64) *GreedyAgent {
	return &GreedyAgent{rng: state.NewRng(seed)}
}

func (a *GreedyAgent) Name() string { return "greedy" }

func (a *GreedyAgent) SelectAction(node Node, player core.PlayerName) (state.BattleAction, error) {
	actions := node.LegalActions(player).All()
	if len(actions) == 0 {
		return state.BattleAction{}, fmt.Errorf("no legal actions for %s", player)
	}
	best := actions[0]
	bestScore := int64(-1 << 62)
	for _, action := range actions {
		branch := node.Branch()
		if err := branch.Execute(player, action); err != nil {
			// An action the cache offered must execute; surface the bug.
			return state.BattleAction{}, err
		}
		score := evaluate(branch, player)
		if score > bestScore || (score == bestScore && a.rng.Intn(2) == 0) {
			best = action
			bestScore = score
		}
	}
	return best, nil
}

// evaluate scores a position for a player. Points dominate, then board
// spark, then cards in hand.
func evaluate(node Node, player core.PlayerName) int64 {
	bn, ok := node.(*BattleNode)
	if !ok {
		return 0
	}
	b := bn.State
	opponent := player.Opponent()
	if b.Status == state.StatusGameOver {
		if b.Winner != nil && *b.Winner == player {
			return 1 << 40
		}
		if b.Winner != nil {
			return -(1 << 40)
		}
		return 0
	}
	var score int64
	score += 1000 * int64(b.Player(player).Points-b.Player(opponent).Points)
	score += 50 * int64(b.TotalSpark(player)-b.TotalSpark(opponent))
	score += 5 * int64(b.Zones(player).Hand.Len()-b.Zones(opponent).Hand.Len())
	score += int64(b.Player(player).CurrentEnergy)
	return score
}
