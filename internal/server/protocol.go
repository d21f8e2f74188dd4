package server

import (
	"fmt"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/display"
)

// ClientMessage is one inbound websocket frame.
type ClientMessage struct {
	Type   string         `json:"type"`
	Action *ActionMessage `json:"action,omitempty"`
}

// ActionMessage is the wire form of a battle action.
type ActionMessage struct {
	Kind         string `json:"kind"`
	Card         int    `json:"card,omitempty"`
	AbilityIndex int    `json:"abilityIndex,omitempty"`
	ChoiceIndex  int    `json:"choiceIndex"`
	Energy       int    `json:"energy,omitempty"`
	AgentName    string `json:"agentName,omitempty"`
}

// ServerMessage is one outbound websocket frame.
type ServerMessage struct {
	Type         string              `json:"type"`
	View         *display.BattleView `json:"view,omitempty"`
	LegalActions []ActionMessage     `json:"legalActions,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// ToAction converts a wire action into a battle action.
func (m *ActionMessage) ToAction() (state.BattleAction, error) {
	switch m.Kind {
	case "PLAY_CARD_FROM_HAND":
		return state.PlayFromHand(state.HandCardID(m.Card)), nil
	case "PLAY_CARD_FROM_VOID":
		return state.PlayFromVoid(state.VoidCardID(m.Card)), nil
	case "ACTIVATE_ABILITY":
		return state.Activate(state.CharacterID(m.Card), m.AbilityIndex), nil
	case "PASS_PRIORITY":
		return state.PassPriority(), nil
	case "END_TURN":
		return state.EndTurn(), nil
	case "START_NEXT_TURN":
		return state.StartNextTurn(), nil
	case "SELECT_CHARACTER_TARGET":
		return state.SelectCharacter(state.CharacterID(m.Card)), nil
	case "SELECT_STACK_CARD_TARGET":
		return state.SelectStackCard(state.StackCardID(m.Card)), nil
	case "SELECT_PROMPT_CHOICE":
		return state.SelectChoice(m.ChoiceIndex), nil
	case "SELECT_ENERGY_COST":
		return state.SelectEnergy(core.Energy(m.Energy)), nil
	case "KEEP_HAND":
		return state.BattleAction{Kind: state.ActionKeepHand}, nil
	case "MULLIGAN":
		return state.BattleAction{Kind: state.ActionMulligan}, nil
	case "DEBUG_DRAW_CARD":
		return state.BattleAction{Kind: state.ActionDebugDrawCard}, nil
	case "DEBUG_SET_ENERGY":
		return state.BattleAction{Kind: state.ActionDebugSetEnergy, Energy: core.Energy(m.Energy)}, nil
	case "DEBUG_RESTART_BATTLE":
		return state.BattleAction{Kind: state.ActionDebugRestartBattle}, nil
	case "DEBUG_SET_OPPONENT_AGENT":
		return state.BattleAction{Kind: state.ActionDebugSetOpponentAgent, AgentName: m.AgentName}, nil
	default:
		return state.BattleAction{}, fmt.Errorf("unknown action kind %q", m.Kind)
	}
}

// FromAction converts a battle action into its wire form, used to advertise
// legal actions.
func FromAction(a state.BattleAction) ActionMessage {
	m := ActionMessage{Kind: a.Kind.String()}
	switch a.Kind {
	case state.ActionPlayCardFromHand:
		m.Card = int(a.HandCard)
	case state.ActionPlayCardFromVoid:
		m.Card = int(a.VoidCard)
	case state.ActionActivateAbility:
		m.Card = int(a.Character)
		m.AbilityIndex = a.AbilityIndex
	case state.ActionSelectCharacterTarget:
		m.Card = int(a.Character)
	case state.ActionSelectStackCardTarget:
		m.Card = int(a.StackCard)
	case state.ActionSelectPromptChoice:
		m.ChoiceIndex = a.ChoiceIndex
	case state.ActionSelectEnergyCost, state.ActionDebugSetEnergy:
		m.Energy = int(a.Energy)
	case state.ActionDebugSetOpponentAgent:
		m.AgentName = a.AgentName
	}
	return m
}
