package mutations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

func defaultDecks(t *testing.T) [2][]*cards.Definition {
	t.Helper()
	var deck []*cards.Definition
	for _, name := range cards.DefaultDeck().Cards {
		deck = append(deck, testRegistry.MustGet(name))
	}
	return [2][]*cards.Definition{deck, deck}
}

func newDefaultBattle(t *testing.T, seed uint64) *state.BattleState {
	t.Helper()
	b, err := NewBattle(BattleConfig{Seed: seed, Decks: defaultDecks(t)})
	require.NoError(t, err)
	return b
}

func TestNewBattleOpeningState(t *testing.T) {
	b := newDefaultBattle(t, 42)

	assert.Equal(t, state.StatusResolveMulligans, b.Status)
	assert.Equal(t, state.DefaultPointsToWin, b.PointsToWin)
	assert.Empty(t, b.Triggers.Pending)
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		assert.Equal(t, OpeningHandSize, b.Zones(player).Hand.Len())
		assert.Len(t, b.Zones(player).Deck, len(cards.DefaultDeck().Cards)-OpeningHandSize)
		assert.Equal(t, state.MulliganUndecided, b.Player(player).Mulligan)
	}
}

func TestNewBattleIsDeterministic(t *testing.T) {
	a := newDefaultBattle(t, 42)
	b := newDefaultBattle(t, 42)
	assert.Equal(t, a.Turn.Active, b.Turn.Active)
	assert.Equal(t, a.Zones(core.PlayerOne).Deck, b.Zones(core.PlayerOne).Deck)
	assert.Equal(t, a.Zones(core.PlayerOne).Hand.Items(), b.Zones(core.PlayerOne).Hand.Items())
	assert.Equal(t, a.Zones(core.PlayerTwo).Deck, b.Zones(core.PlayerTwo).Deck)

	c := newDefaultBattle(t, 43)
	assert.NotEqual(t, a.Zones(core.PlayerOne).Deck, c.Zones(core.PlayerOne).Deck)
}

func TestNewBattleRejectsEmptyDeck(t *testing.T) {
	decks := defaultDecks(t)
	decks[1] = nil
	_, err := NewBattle(BattleConfig{Seed: 1, Decks: decks})
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestKeepBothHandsStartsFirstTurn(t *testing.T) {
	b := newDefaultBattle(t, 42)

	require.NoError(t, KeepHand(b, core.PlayerOne))
	assert.Equal(t, state.StatusResolveMulligans, b.Status, "battle waits for both decisions")

	require.NoError(t, KeepHand(b, core.PlayerTwo))
	assert.Equal(t, state.StatusPlaying, b.Status)
	assert.Equal(t, core.TurnID(1), b.Turn.ID)
	assert.Equal(t, state.PhaseMain, b.Phase)

	// The starting player skips the first draw and keeps a five card hand.
	assert.Equal(t, OpeningHandSize, b.Zones(b.Turn.Active).Hand.Len())
	assert.Equal(t, core.Energy(2), b.Player(b.Turn.Active).CurrentEnergy)
}

func TestMulliganRedrawsOnce(t *testing.T) {
	b := newDefaultBattle(t, 42)
	before := b.Zones(core.PlayerOne).Hand.Items()

	require.NoError(t, MulliganHand(b, core.PlayerOne))
	assert.Len(t, before, OpeningHandSize)
	assert.Equal(t, OpeningHandSize, b.Zones(core.PlayerOne).Hand.Len())
	assert.Len(t, b.Zones(core.PlayerOne).Deck, len(cards.DefaultDeck().Cards)-OpeningHandSize)
	assert.Equal(t, state.MulliganTaken, b.Player(core.PlayerOne).Mulligan)

	// Each player decides exactly once.
	assert.ErrorIs(t, MulliganHand(b, core.PlayerOne), core.ErrInvariant)
	assert.ErrorIs(t, KeepHand(b, core.PlayerOne), core.ErrInvariant)
}

func TestMulliganDecisionOnlyDuringResolution(t *testing.T) {
	b := newDefaultBattle(t, 42)
	require.NoError(t, KeepHand(b, core.PlayerOne))
	require.NoError(t, KeepHand(b, core.PlayerTwo))
	assert.ErrorIs(t, KeepHand(b, core.PlayerOne), core.ErrInvariant)
}

func TestExecuteActionRecordsHistory(t *testing.T) {
	b := newDefaultBattle(t, 42)

	require.NoError(t, ExecuteAction(b, core.PlayerOne, state.BattleAction{Kind: state.ActionKeepHand}))
	require.NoError(t, ExecuteAction(b, core.PlayerTwo, state.BattleAction{Kind: state.ActionKeepHand}))
	require.Len(t, b.History, 2)
	assert.Equal(t, state.ActionKeepHand, b.History[0].Action.Kind)
	assert.Equal(t, core.PlayerOne, b.History[0].Player)

	// Failed actions leave no history entry.
	err := ExecuteAction(b, core.PlayerOne, state.BattleAction{Kind: state.ActionKeepHand})
	require.Error(t, err)
	assert.Len(t, b.History, 2)
}

func TestExecuteActionRejectsSessionActions(t *testing.T) {
	b := newDefaultBattle(t, 42)
	err := ExecuteAction(b, core.PlayerOne, state.BattleAction{Kind: state.ActionDebugRestartBattle})
	assert.ErrorIs(t, err, core.ErrUnsupported)
}

func TestDebugActions(t *testing.T) {
	b := newDefaultBattle(t, 42)
	require.NoError(t, KeepHand(b, core.PlayerOne))
	require.NoError(t, KeepHand(b, core.PlayerTwo))

	active := b.Turn.Active
	require.NoError(t, DebugSetEnergy(b, active, 9))
	assert.Equal(t, core.Energy(9), b.Player(active).CurrentEnergy)
	assert.ErrorIs(t, DebugSetEnergy(b, active, -1), core.ErrInvariant)

	hand := b.Zones(active).Hand.Len()
	require.NoError(t, DebugDrawCard(b, active))
	assert.Equal(t, hand+1, b.Zones(active).Hand.Len())
}
