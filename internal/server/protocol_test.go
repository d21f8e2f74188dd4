package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

func TestActionMessageRoundtrip(t *testing.T) {
	actions := []state.BattleAction{
		state.PlayFromHand(3),
		state.PlayFromVoid(7),
		state.Activate(4, 1),
		state.PassPriority(),
		state.EndTurn(),
		state.StartNextTurn(),
		state.SelectCharacter(9),
		state.SelectStackCard(2),
		state.SelectChoice(1),
		state.SelectChoice(-1),
		state.SelectEnergy(3),
		{Kind: state.ActionKeepHand},
		{Kind: state.ActionMulligan},
		{Kind: state.ActionDebugDrawCard},
		{Kind: state.ActionDebugSetEnergy, Energy: 5},
		{Kind: state.ActionDebugRestartBattle},
		{Kind: state.ActionDebugSetOpponentAgent, AgentName: "greedy"},
	}
	for _, action := range actions {
		wire := FromAction(action)
		got, err := wire.ToAction()
		require.NoError(t, err, "kind %s", wire.Kind)
		assert.Equal(t, action, got, "kind %s", wire.Kind)
	}
}

func TestActionMessageWireNames(t *testing.T) {
	assert.Equal(t, "PLAY_CARD_FROM_HAND", FromAction(state.PlayFromHand(0)).Kind)
	assert.Equal(t, "SELECT_ENERGY_COST", FromAction(state.SelectEnergy(core.Energy(2))).Kind)

	m := FromAction(state.Activate(4, 2))
	assert.Equal(t, 4, m.Card)
	assert.Equal(t, 2, m.AbilityIndex)
}

func TestToActionRejectsUnknownKind(t *testing.T) {
	m := ActionMessage{Kind: "CONCEDE"}
	_, err := m.ToAction()
	assert.ErrorContains(t, err, "unknown action kind")
}
