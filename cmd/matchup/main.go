package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/ai"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/save"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
	"github.com/dreamtides/dreamtides-server-go/internal/matchup"
)

var (
	battles   = flag.Int("battles", 10, "number of battles to run")
	seed      = flag.Uint64("seed", 1, "seed of the first battle; battle i uses seed+i")
	agentOne  = flag.String("one", "greedy", "agent for player one (random, greedy)")
	agentTwo  = flag.String("two", "random", "agent for player two (random, greedy)")
	maxSteps  = flag.Int("max-steps", 5000, "per-battle action limit")
	checksums = flag.Bool("checksums", false, "print the final state checksum of each battle")
)

// matchup runs deterministic AI-vs-AI battles and reports the result of
// each. The same flags always reproduce the same outcomes.
func main() {
	flag.Parse()

	registry := cards.CoreRegistry()
	deckList := cards.DefaultDeck()
	var deck []*cards.Definition
	for _, name := range deckList.Cards {
		deck = append(deck, registry.MustGet(name))
	}

	standings, err := matchup.NewStandings("ONE", "TWO")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i := 0; i < *battles; i++ {
		battleSeed := *seed + uint64(i)
		result, err := runBattle(battleSeed, deck)
		if err != nil {
			fmt.Fprintf(os.Stderr, "battle %d (seed %d) failed: %v\n", i, battleSeed, err)
			os.Exit(1)
		}
		if err := standings.Record(result.toResult(battleSeed)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		line := fmt.Sprintf("battle %3d seed %6d winner %-5s turns %3d actions %4d",
			i, battleSeed, result.winner, result.turns, result.actions)
		if *checksums {
			line += " " + result.checksum[:16]
		}
		fmt.Println(line)
	}

	names := map[string]string{"ONE": *agentOne, "TWO": *agentTwo}
	fmt.Println()
	for _, record := range standings.Table() {
		fmt.Printf("%-5s %-8s %2d wins %2d losses %2d draws %3d points\n",
			record.Name, names[record.Name], record.Wins, record.Losses, record.Draws, record.Points())
	}
}

type battleResult struct {
	winner   string
	turns    int
	actions  int
	checksum string
}

// toResult maps the printable outcome to a standings result; drawn and
// unfinished battles both score as draws.
func (r battleResult) toResult(battleSeed uint64) matchup.Result {
	winner := r.winner
	if winner != "ONE" && winner != "TWO" {
		winner = ""
	}
	return matchup.Result{Seed: battleSeed, Winner: winner, Turns: r.turns, Actions: r.actions}
}

func runBattle(battleSeed uint64, deck []*cards.Definition) (battleResult, error) {
	b, err := mutations.NewBattle(mutations.BattleConfig{
		Seed:  battleSeed,
		Decks: [2][]*cards.Definition{deck, deck},
	})
	if err != nil {
		return battleResult{}, err
	}
	node := ai.NewBattleNode(b)

	one, err := ai.NewAgent(*agentOne, battleSeed)
	if err != nil {
		return battleResult{}, err
	}
	two, err := ai.NewAgent(*agentTwo, battleSeed+1)
	if err != nil {
		return battleResult{}, err
	}
	agents := [2]ai.Agent{one, two}

	for step := 0; step < *maxSteps; step++ {
		player, ok := node.ToAct()
		if !ok {
			break
		}
		action, err := agents[player].SelectAction(node, player)
		if err != nil {
			return battleResult{}, err
		}
		if err := node.Execute(player, action); err != nil {
			return battleResult{}, fmt.Errorf("%s executing %s: %w", player, action, err)
		}
	}

	result := battleResult{
		winner:  "draw",
		turns:   int(node.State.Turn.ID),
		actions: len(node.State.History),
	}
	if node.State.Status != state.StatusGameOver {
		result.winner = "none"
	} else if node.State.Winner != nil {
		result.winner = node.State.Winner.String()
	}
	if *checksums {
		result.checksum = save.Capture(node.State).Checksum()
	}
	return result, nil
}
