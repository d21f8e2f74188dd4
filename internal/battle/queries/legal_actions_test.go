package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
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

func TestMainPhaseActions(t *testing.T) {
	b := playingBattle()
	scout := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneHand)
	colossus := stage(t, b, core.PlayerOne, cards.TidecallerColossus, state.ZoneHand)
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 3

	l := ComputeLegalActions(b, core.PlayerOne)
	assert.True(t, l.Contains(state.EndTurn()))
	assert.True(t, l.Contains(state.PlayFromHand(state.HandCardID(scout))))
	assert.True(t, l.Contains(state.PlayFromHand(state.HandCardID(blade))))
	assert.False(t, l.Contains(state.PlayFromHand(state.HandCardID(colossus))), "unaffordable card offered")
	assert.False(t, l.Contains(state.PassPriority()), "no pass with an empty stack in main")

	// The non-priority player has nothing.
	assert.True(t, ComputeLegalActions(b, core.PlayerTwo).IsEmpty())
}

func TestFastCardsOnlyOutsideMainTiming(t *testing.T) {
	b := playingBattle()
	scout := stage(t, b, core.PlayerTwo, cards.DawnwingScout, state.ZoneHand)
	blade := stage(t, b, core.PlayerTwo, cards.Riftblade, state.ZoneHand)
	stage(t, b, core.PlayerOne, cards.DreamDraught, state.ZoneStack)
	b.Player(core.PlayerTwo).CurrentEnergy = 5
	b.Priority = core.PlayerTwo

	l := ComputeLegalActions(b, core.PlayerTwo)
	assert.True(t, l.Contains(state.PassPriority()))
	assert.True(t, l.Contains(state.PlayFromHand(state.HandCardID(blade))), "fast card playable on response")
	assert.False(t, l.Contains(state.PlayFromHand(state.HandCardID(scout))), "slow card playable only at main timing")
	assert.False(t, l.Contains(state.EndTurn()))
}

func TestEndingPhaseActions(t *testing.T) {
	b := playingBattle()
	require.NoError(t, mutations.EndTurn(b, core.PlayerOne))

	l := ComputeLegalActions(b, core.PlayerTwo)
	assert.True(t, l.Contains(state.StartNextTurn()))
	assert.True(t, ComputeLegalActions(b, core.PlayerOne).IsEmpty())
}

func TestReclaimActions(t *testing.T) {
	b := playingBattle()
	reclaimer := stage(t, b, core.PlayerOne, cards.CinderReclaimer, state.ZoneVoid)
	stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneVoid)
	b.Player(core.PlayerOne).CurrentEnergy = 3

	l := ComputeLegalActions(b, core.PlayerOne)
	assert.True(t, l.Contains(state.PlayFromVoid(state.VoidCardID(reclaimer))))
	assert.Equal(t, 2, l.Len(), "end turn plus one reclaim")

	b.Player(core.PlayerOne).CurrentEnergy = 2
	l = ComputeLegalActions(b, core.PlayerOne)
	assert.False(t, l.Contains(state.PlayFromVoid(state.VoidCardID(reclaimer))))
}

func TestActivatedAbilityActions(t *testing.T) {
	b := playingBattle()
	caller := stage(t, b, core.PlayerOne, cards.Stormcaller, state.ZoneBattlefield)
	b.Player(core.PlayerOne).CurrentEnergy = 2

	l := ComputeLegalActions(b, core.PlayerOne)
	activate := state.Activate(state.CharacterID(caller), 0)
	assert.True(t, l.Contains(activate))

	b.Abilities.ActivatedThisTurnCycle[state.AbilityKey{Card: caller, Index: 0}] = true
	l = ComputeLegalActions(b, core.PlayerOne)
	assert.False(t, l.Contains(activate), "once-per-turn ability offered twice")
}

func TestMulliganActions(t *testing.T) {
	b := playingBattle()
	b.Status = state.StatusResolveMulligans

	l := ComputeLegalActions(b, core.PlayerOne)
	assert.True(t, l.Contains(state.BattleAction{Kind: state.ActionKeepHand}))
	assert.True(t, l.Contains(state.BattleAction{Kind: state.ActionMulligan}))
	assert.Equal(t, 2, l.Len())

	b.Player(core.PlayerOne).Mulligan = state.MulliganKept
	assert.True(t, ComputeLegalActions(b, core.PlayerOne).IsEmpty())
}

func TestGameOverHasNoActions(t *testing.T) {
	b := playingBattle()
	b.Status = state.StatusGameOver
	assert.True(t, ComputeLegalActions(b, core.PlayerOne).IsEmpty())
}

func TestPromptActions(t *testing.T) {
	b := playingBattle()
	victim := stage(t, b, core.PlayerTwo, cards.EmberlineVanguard, state.ZoneBattlefield)
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 2
	require.NoError(t, mutations.PlayCardFromHand(b, core.PlayerOne, state.HandCardID(blade)))
	require.NotNil(t, b.Prompt)

	l := ComputeLegalActions(b, core.PlayerOne)
	assert.Equal(t, []state.BattleAction{state.SelectCharacter(state.CharacterID(victim))}, l.All())
	assert.True(t, ComputeLegalActions(b, core.PlayerTwo).IsEmpty(), "only the prompted player acts")
}

func TestModalPromptActionsIncludeDecline(t *testing.T) {
	b := playingBattle()
	b.Prompt = &state.PromptData{
		Kind:     state.PromptChoose,
		Player:   core.PlayerOne,
		Choices:  []abilities.Effect{{Kind: abilities.EffectNoOp}, {Kind: abilities.EffectNoOp}},
		Optional: true,
	}
	l := ComputeLegalActions(b, core.PlayerOne)
	assert.Equal(t, []state.BattleAction{
		state.SelectChoice(0),
		state.SelectChoice(1),
		state.SelectChoice(-1),
	}, l.All())
}

func TestEnergyPromptActions(t *testing.T) {
	b := playingBattle()
	b.Prompt = &state.PromptData{
		Kind:      state.PromptChooseEnergyAmount,
		Player:    core.PlayerOne,
		MinEnergy: 1,
		MaxEnergy: 3,
	}
	l := ComputeLegalActions(b, core.PlayerOne)
	assert.Equal(t, []state.BattleAction{
		state.SelectEnergy(1),
		state.SelectEnergy(2),
		state.SelectEnergy(3),
	}, l.All())
}

func TestLegalActionsRandom(t *testing.T) {
	l := LegalActions{Actions: []state.BattleAction{state.EndTurn(), state.PassPriority()}}
	rng := state.NewRng(3)
	for i := 0; i < 20; i++ {
		action, ok := l.Random(&rng)
		require.True(t, ok)
		assert.True(t, l.Contains(action))
	}
	empty := LegalActions{}
	_, ok := empty.Random(&rng)
	assert.False(t, ok)
}
