package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
	"github.com/dreamtides/dreamtides-server-go/internal/display"
)

var testRegistry = cards.CoreRegistry()

func playingBattle() *state.BattleState {
	return &state.BattleState{
		Seed:        7,
		Players:     [2]*state.PlayerState{{}, {}},
		Cards:       state.NewBattleCards(),
		Status:      state.StatusPlaying,
		Turn:        state.TurnData{Active: core.PlayerOne, ID: 2},
		Phase:       state.PhaseMain,
		Priority:    core.PlayerOne,
		Rng:         state.NewRng(7),
		Triggers:    state.NewTriggerState(),
		Abilities:   state.NewAbilityState(),
		Dreamwell:   state.DefaultDreamwell(),
		PointsToWin: state.DefaultPointsToWin,
	}
}

func stage(t *testing.T, b *state.BattleState, owner core.PlayerName, name string, zone state.Zone) state.CardID {
	t.Helper()
	id := b.Cards.AddCard(owner, testRegistry.MustGet(name))
	if zone != state.ZoneDeck {
		_, err := mutations.MoveCard(b, state.GameSource(owner), id, zone)
		require.NoError(t, err)
	}
	b.Triggers.Pending = nil
	return id
}

func TestRenderHidesOpponentHand(t *testing.T) {
	b := playingBattle()
	stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneHand)
	stage(t, b, core.PlayerTwo, cards.Riftblade, state.ZoneHand)
	stage(t, b, core.PlayerTwo, cards.DawnwingScout, state.ZoneDeck)

	view := display.Render(b, core.PlayerOne)
	assert.Equal(t, core.PlayerOne, view.Viewer)
	require.Len(t, view.You.Hand, 1)
	assert.Equal(t, "Dawnwing Scout", view.You.Hand[0].Name)

	assert.Empty(t, view.Opponent.Hand, "opponent hand contents leaked")
	assert.Equal(t, 1, view.Opponent.HandCount)
	assert.Equal(t, 1, view.Opponent.DeckCount)
}

func TestRenderBattlefieldSparkIncludesGains(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneBattlefield)
	cs, err := b.Cards.CharacterState(state.CharacterID(id))
	require.NoError(t, err)
	cs.GainedSpark = 2

	view := display.Render(b, core.PlayerOne)
	require.Len(t, view.You.Battlefield, 1)
	assert.Equal(t, core.Spark(3), view.You.Battlefield[0].Spark)
	assert.Equal(t, core.Spark(3), view.You.SparkTotal)
}

func TestRenderStackAndPrompt(t *testing.T) {
	b := playingBattle()
	victim := stage(t, b, core.PlayerTwo, cards.EmberlineVanguard, state.ZoneBattlefield)
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 2
	require.NoError(t, mutations.PlayCardFromHand(b, core.PlayerOne, state.HandCardID(blade)))

	view := display.Render(b, core.PlayerOne)
	require.Len(t, view.Stack, 1)
	assert.Equal(t, "Riftblade", view.Stack[0].Name)
	assert.Equal(t, core.PlayerOne, view.Stack[0].Controller)
	assert.True(t, view.Stack[0].Fast)
	assert.Nil(t, view.Stack[0].TargetCharacter, "no target before the prompt resolves")

	require.NotNil(t, view.Prompt)
	assert.Equal(t, core.PlayerOne, view.Prompt.Player)
	assert.Equal(t, []state.CardID{victim}, view.Prompt.ValidCharacters)

	// Once selected, the target is public information on the stack view.
	require.NoError(t, mutations.SelectCharacterTarget(b, core.PlayerOne, state.CharacterID(victim)))
	opponent := display.Render(b, core.PlayerTwo)
	require.Len(t, opponent.Stack, 1)
	require.NotNil(t, opponent.Stack[0].TargetCharacter)
	assert.Equal(t, victim, *opponent.Stack[0].TargetCharacter)
	assert.Nil(t, opponent.Prompt)
}

func TestRenderVoidAndBanished(t *testing.T) {
	b := playingBattle()
	stage(t, b, core.PlayerOne, cards.LanternRite, state.ZoneVoid)
	stage(t, b, core.PlayerOne, cards.DreamDraught, state.ZoneBanished)

	view := display.Render(b, core.PlayerOne)
	require.Len(t, view.You.Void, 1)
	assert.Equal(t, "Lantern Rite", view.You.Void[0].Name)
	require.Len(t, view.You.Banished, 1)
	assert.Equal(t, "Dream Draught", view.You.Banished[0].Name)
}
