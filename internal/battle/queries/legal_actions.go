package queries

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// LegalActions is the set of actions a player may take right now, in a
// deterministic order: primary actions first, then card plays, then ability
// activations.
type LegalActions struct {
	Actions []state.BattleAction
}

// All returns the ordered action list.
func (l LegalActions) All() []state.BattleAction {
	return l.Actions
}

// IsEmpty reports whether the player has no available action.
func (l LegalActions) IsEmpty() bool {
	return len(l.Actions) == 0
}

// Len returns the number of available actions.
func (l LegalActions) Len() int {
	return len(l.Actions)
}

// Contains reports whether the exact action is available.
func (l LegalActions) Contains(action state.BattleAction) bool {
	for _, a := range l.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Random picks a uniformly random available action using the given stream.
func (l LegalActions) Random(rng *state.Rng) (state.BattleAction, bool) {
	if len(l.Actions) == 0 {
		return state.BattleAction{}, false
	}
	return l.Actions[rng.Intn(len(l.Actions))], true
}

// ComputeLegalActions derives the player's available actions from scratch.
// This is the ground truth the cache must always agree with.
func ComputeLegalActions(b *state.BattleState, player core.PlayerName) LegalActions {
	var l LegalActions

	switch b.Status {
	case state.StatusGameOver:
		return l
	case state.StatusResolveMulligans:
		if b.Player(player).Mulligan == state.MulliganUndecided {
			l.Actions = append(l.Actions,
				state.BattleAction{Kind: state.ActionKeepHand},
				state.BattleAction{Kind: state.ActionMulligan},
			)
		}
		return l
	}

	if b.Prompt != nil {
		if b.Prompt.Player == player {
			l.Actions = promptActions(b.Prompt)
		}
		return l
	}
	if b.Priority != player {
		return l
	}

	mainTiming := b.Turn.Active == player && b.Phase == state.PhaseMain && len(b.Cards.Stack) == 0

	// Primary action.
	switch {
	case len(b.Cards.Stack) > 0:
		l.Actions = append(l.Actions, state.PassPriority())
	case mainTiming:
		l.Actions = append(l.Actions, state.EndTurn())
	case b.Phase == state.PhaseEnding && b.Turn.Active != player:
		l.Actions = append(l.Actions, state.StartNextTurn())
	}

	for _, id := range b.Zones(player).Hand.Items() {
		card := b.Cards.Card(state.CardID(id))
		if !mainTiming && !card.Definition.Fast {
			continue
		}
		if mutations.CanPayCost(b, player, card.Definition.PlayCost()) {
			l.Actions = append(l.Actions, state.PlayFromHand(id))
		}
	}

	for _, id := range b.Zones(player).Void.Items() {
		card := b.Cards.Card(state.CardID(id))
		cost, ok := card.Definition.ReclaimCost()
		if !ok {
			continue
		}
		if !mainTiming && !card.Definition.Fast {
			continue
		}
		if mutations.CanPayCost(b, player, cost) {
			l.Actions = append(l.Actions, state.PlayFromVoid(id))
		}
	}

	for _, id := range b.Zones(player).Battlefield.Items() {
		card := b.Cards.Card(state.CardID(id))
		for index, ability := range card.Definition.Abilities.Activated {
			if !mainTiming && !ability.IsFast {
				continue
			}
			key := state.AbilityKey{Card: state.CardID(id), Index: index}
			if ability.OncePerTurn && b.Abilities.ActivatedThisTurnCycle[key] {
				continue
			}
			cost := abilities.Cost{Kind: abilities.CostList, List: ability.Costs}
			if mutations.CanPayCost(b, player, cost) {
				l.Actions = append(l.Actions, state.Activate(id, index))
			}
		}
	}

	return l
}

func promptActions(prompt *state.PromptData) []state.BattleAction {
	var actions []state.BattleAction
	switch prompt.Kind {
	case state.PromptChooseCharacter:
		for _, id := range prompt.ValidCharacters.Items() {
			actions = append(actions, state.SelectCharacter(id))
		}
	case state.PromptChooseStackCard:
		for _, id := range prompt.ValidStackCards.Items() {
			actions = append(actions, state.SelectStackCard(id))
		}
	case state.PromptChoose:
		for i := range prompt.Choices {
			actions = append(actions, state.SelectChoice(i))
		}
		if prompt.Optional {
			actions = append(actions, state.SelectChoice(-1))
		}
	case state.PromptChooseEnergyAmount:
		for amount := prompt.MinEnergy; amount <= prompt.MaxEnergy; amount++ {
			actions = append(actions, state.SelectEnergy(amount))
		}
	}
	return actions
}
