package state

import (
	"fmt"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// ActionKind discriminates the closed set of battle actions.
type ActionKind int

const (
	// ActionPlayCardFromHand plays a hand card, paying its cost and putting
	// it on the stack.
	ActionPlayCardFromHand ActionKind = iota
	// ActionPlayCardFromVoid plays a void card via its reclaim ability.
	ActionPlayCardFromVoid
	// ActionActivateAbility activates a character's activated ability.
	// Activated abilities apply immediately without using the stack.
	ActionActivateAbility
	// ActionPassPriority declines to respond, letting the stack resolve.
	ActionPassPriority
	// ActionEndTurn ends the active player's main phase.
	ActionEndTurn
	// ActionStartNextTurn is taken by the opponent during the ending phase
	// to begin their own turn.
	ActionStartNextTurn
	// ActionSelectCharacterTarget answers a character-selection prompt.
	ActionSelectCharacterTarget
	// ActionSelectStackCardTarget answers a stack-card-selection prompt.
	ActionSelectStackCardTarget
	// ActionSelectPromptChoice answers a modal prompt by index.
	ActionSelectPromptChoice
	// ActionSelectEnergyCost answers an additional-energy prompt.
	ActionSelectEnergyCost
	// ActionKeepHand keeps the opening hand during mulligan resolution.
	ActionKeepHand
	// ActionMulligan shuffles the opening hand back and redraws.
	ActionMulligan
	// ActionDebugDrawCard draws a card outside normal rules. Debug builds
	// and tests only.
	ActionDebugDrawCard
	// ActionDebugSetEnergy sets current energy directly. Debug builds and
	// tests only.
	ActionDebugSetEnergy
	// ActionDebugRestartBattle restarts the battle from its initial seed.
	// Handled at the session layer.
	ActionDebugRestartBattle
	// ActionDebugSetOpponentAgent swaps the opponent's AI agent. Handled at
	// the session layer.
	ActionDebugSetOpponentAgent
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlayCardFromHand:
		return "PLAY_CARD_FROM_HAND"
	case ActionPlayCardFromVoid:
		return "PLAY_CARD_FROM_VOID"
	case ActionActivateAbility:
		return "ACTIVATE_ABILITY"
	case ActionPassPriority:
		return "PASS_PRIORITY"
	case ActionEndTurn:
		return "END_TURN"
	case ActionStartNextTurn:
		return "START_NEXT_TURN"
	case ActionSelectCharacterTarget:
		return "SELECT_CHARACTER_TARGET"
	case ActionSelectStackCardTarget:
		return "SELECT_STACK_CARD_TARGET"
	case ActionSelectPromptChoice:
		return "SELECT_PROMPT_CHOICE"
	case ActionSelectEnergyCost:
		return "SELECT_ENERGY_COST"
	case ActionKeepHand:
		return "KEEP_HAND"
	case ActionMulligan:
		return "MULLIGAN"
	case ActionDebugDrawCard:
		return "DEBUG_DRAW_CARD"
	case ActionDebugSetEnergy:
		return "DEBUG_SET_ENERGY"
	case ActionDebugRestartBattle:
		return "DEBUG_RESTART_BATTLE"
	case ActionDebugSetOpponentAgent:
		return "DEBUG_SET_OPPONENT_AGENT"
	default:
		return "UNKNOWN"
	}
}

// BattleAction is one atomic step a player can take. Exactly the fields
// relevant to Kind are set.
type BattleAction struct {
	Kind ActionKind

	// HandCard identifies the card for ActionPlayCardFromHand.
	HandCard HandCardID
	// VoidCard identifies the card for ActionPlayCardFromVoid.
	VoidCard VoidCardID
	// Character identifies the ability source for ActionActivateAbility and
	// the chosen target for ActionSelectCharacterTarget.
	Character CharacterID
	// AbilityIndex selects among a character's activated abilities.
	AbilityIndex int
	// StackCard is the chosen target for ActionSelectStackCardTarget.
	StackCard StackCardID
	// ChoiceIndex answers ActionSelectPromptChoice.
	ChoiceIndex int
	// Energy carries the amount for ActionSelectEnergyCost and
	// ActionDebugSetEnergy.
	Energy core.Energy
	// AgentName names the replacement for ActionDebugSetOpponentAgent.
	AgentName string
}

func (a BattleAction) String() string {
	switch a.Kind {
	case ActionPlayCardFromHand:
		return fmt.Sprintf("%s(%d)", a.Kind, a.HandCard)
	case ActionPlayCardFromVoid:
		return fmt.Sprintf("%s(%d)", a.Kind, a.VoidCard)
	case ActionActivateAbility:
		return fmt.Sprintf("%s(%d/%d)", a.Kind, a.Character, a.AbilityIndex)
	case ActionSelectCharacterTarget:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Character)
	case ActionSelectStackCardTarget:
		return fmt.Sprintf("%s(%d)", a.Kind, a.StackCard)
	case ActionSelectPromptChoice:
		return fmt.Sprintf("%s(%d)", a.Kind, a.ChoiceIndex)
	case ActionSelectEnergyCost, ActionDebugSetEnergy:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Energy)
	default:
		return a.Kind.String()
	}
}

// PlayFromHand builds a play-card action.
func PlayFromHand(id HandCardID) BattleAction {
	return BattleAction{Kind: ActionPlayCardFromHand, HandCard: id}
}

// PlayFromVoid builds a reclaim action.
func PlayFromVoid(id VoidCardID) BattleAction {
	return BattleAction{Kind: ActionPlayCardFromVoid, VoidCard: id}
}

// Activate builds an ability-activation action.
func Activate(id CharacterID, index int) BattleAction {
	return BattleAction{Kind: ActionActivateAbility, Character: id, AbilityIndex: index}
}

// PassPriority builds a pass-priority action.
func PassPriority() BattleAction {
	return BattleAction{Kind: ActionPassPriority}
}

// EndTurn builds an end-turn action.
func EndTurn() BattleAction {
	return BattleAction{Kind: ActionEndTurn}
}

// StartNextTurn builds a start-next-turn action.
func StartNextTurn() BattleAction {
	return BattleAction{Kind: ActionStartNextTurn}
}

// SelectCharacter builds a character-target response.
func SelectCharacter(id CharacterID) BattleAction {
	return BattleAction{Kind: ActionSelectCharacterTarget, Character: id}
}

// SelectStackCard builds a stack-card-target response.
func SelectStackCard(id StackCardID) BattleAction {
	return BattleAction{Kind: ActionSelectStackCardTarget, StackCard: id}
}

// SelectChoice builds a modal-prompt response.
func SelectChoice(index int) BattleAction {
	return BattleAction{Kind: ActionSelectPromptChoice, ChoiceIndex: index}
}

// SelectEnergy builds an additional-energy response.
func SelectEnergy(amount core.Energy) BattleAction {
	return BattleAction{Kind: ActionSelectEnergyCost, Energy: amount}
}

// HistoryEntry records one executed action for replay and debugging.
type HistoryEntry struct {
	Player core.PlayerName
	Action BattleAction
	Turn   core.TurnID
}
