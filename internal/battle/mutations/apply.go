package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// ExecuteAction applies one battle action for a player and records it in
// the history. Legality is the caller's concern; this layer enforces
// invariants and fails hard when they do not hold.
func ExecuteAction(b *state.BattleState, player core.PlayerName, action state.BattleAction) error {
	if b.Status == state.StatusGameOver {
		return core.Invariantf("action %s after game over", action.Kind)
	}
	// While a prompt is open the only permitted mutation is its resolution;
	// takePrompt checks the kind and player match.
	if b.Prompt != nil && !resolvesPrompt(action.Kind) {
		return core.Invariantf("action %s while a %s prompt is open", action.Kind, b.Prompt.Kind)
	}

	var err error
	switch action.Kind {
	case state.ActionPlayCardFromHand:
		err = PlayCardFromHand(b, player, action.HandCard)
	case state.ActionPlayCardFromVoid:
		err = PlayCardFromVoid(b, player, action.VoidCard)
	case state.ActionActivateAbility:
		err = ActivateAbility(b, player, action.Character, action.AbilityIndex)
	case state.ActionPassPriority:
		err = PassPriority(b, player)
	case state.ActionEndTurn:
		err = EndTurn(b, player)
	case state.ActionStartNextTurn:
		err = StartNextTurn(b, player)
	case state.ActionSelectCharacterTarget:
		err = SelectCharacterTarget(b, player, action.Character)
	case state.ActionSelectStackCardTarget:
		err = SelectStackCardTarget(b, player, action.StackCard)
	case state.ActionSelectPromptChoice:
		err = SelectPromptChoice(b, player, action.ChoiceIndex)
	case state.ActionSelectEnergyCost:
		err = SelectEnergyCost(b, player, action.Energy)
	case state.ActionKeepHand:
		err = KeepHand(b, player)
	case state.ActionMulligan:
		err = MulliganHand(b, player)
	case state.ActionDebugDrawCard:
		err = DebugDrawCard(b, player)
	case state.ActionDebugSetEnergy:
		err = DebugSetEnergy(b, player, action.Energy)
	case state.ActionDebugRestartBattle, state.ActionDebugSetOpponentAgent:
		// Session-level actions; the battle core cannot service them.
		err = core.Unsupportedf("action %s at battle level", action.Kind)
	default:
		err = core.Unsupportedf("action kind %s", action.Kind)
	}
	if err != nil {
		return err
	}

	b.History = append(b.History, state.HistoryEntry{
		Player: player,
		Action: action,
		Turn:   b.Turn.ID,
	})
	return nil
}

func resolvesPrompt(kind state.ActionKind) bool {
	switch kind {
	case state.ActionSelectCharacterTarget,
		state.ActionSelectStackCardTarget,
		state.ActionSelectPromptChoice,
		state.ActionSelectEnergyCost:
		return true
	default:
		return false
	}
}
