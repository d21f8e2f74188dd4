package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

func TestCacheAgreesWithComputeAtEveryEnergyLevel(t *testing.T) {
	b := playingBattle()
	stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneHand)
	stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	stage(t, b, core.PlayerOne, cards.TidecallerColossus, state.ZoneHand)
	stage(t, b, core.PlayerOne, cards.Stormcaller, state.ZoneBattlefield)
	stage(t, b, core.PlayerOne, cards.CinderReclaimer, state.ZoneVoid)
	b.TakeDirty()

	cache := NewLegalActionsCache()
	for energy := core.Energy(0); energy <= 6; energy++ {
		b.Player(core.PlayerOne).CurrentEnergy = energy
		got := cache.Get(b, core.PlayerOne)
		want := ComputeLegalActions(b, core.PlayerOne)
		require.Equal(t, want.All(), got.All(), "energy %d", energy)
	}
	assert.Equal(t, 7, cache.Size())

	// A second pass over the same energies is served from the cache and
	// still agrees.
	for energy := core.Energy(0); energy <= 6; energy++ {
		b.Player(core.PlayerOne).CurrentEnergy = energy
		require.Equal(t, ComputeLegalActions(b, core.PlayerOne).All(), cache.Get(b, core.PlayerOne).All())
	}
	assert.Equal(t, 7, cache.Size())
}

func TestCacheInvalidatesOnStructuralChange(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 3
	b.TakeDirty()

	cache := NewLegalActionsCache()
	before := cache.Get(b, core.PlayerOne)
	assert.True(t, before.Contains(state.PlayFromHand(state.HandCardID(id))))
	assert.Equal(t, 1, cache.Size())

	// Moving a card raises a dirty flag; the next lookup recomputes.
	_, err := mutations.MoveCard(b, state.GameSource(core.PlayerOne), id, state.ZoneBattlefield)
	require.NoError(t, err)

	after := cache.Get(b, core.PlayerOne)
	assert.False(t, after.Contains(state.PlayFromHand(state.HandCardID(id))))
	assert.Equal(t, ComputeLegalActions(b, core.PlayerOne).All(), after.All())
}

func TestCacheServesBothPlayers(t *testing.T) {
	b := playingBattle()
	b.TakeDirty()
	cache := NewLegalActionsCache()

	one := cache.Get(b, core.PlayerOne)
	two := cache.Get(b, core.PlayerTwo)
	assert.False(t, one.IsEmpty())
	assert.True(t, two.IsEmpty())
	assert.Equal(t, 2, cache.Size())

	cache.Invalidate()
	assert.Equal(t, 0, cache.Size())
}
