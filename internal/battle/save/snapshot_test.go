package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

var testRegistry = cards.CoreRegistry()

func startedBattle(t *testing.T, seed uint64) *state.BattleState {
	t.Helper()
	var deck []*cards.Definition
	for _, name := range cards.DefaultDeck().Cards {
		deck = append(deck, testRegistry.MustGet(name))
	}
	b, err := mutations.NewBattle(mutations.BattleConfig{
		Seed:  seed,
		Decks: [2][]*cards.Definition{deck, deck},
	})
	require.NoError(t, err)
	require.NoError(t, mutations.KeepHand(b, core.PlayerOne))
	require.NoError(t, mutations.KeepHand(b, core.PlayerTwo))
	return b
}

func TestCaptureRestoreRoundtrip(t *testing.T) {
	b := startedBattle(t, 42)
	snap := Capture(b)

	restored, err := snap.Restore(testRegistry)
	require.NoError(t, err)
	assert.Equal(t, snap.Checksum(), Capture(restored).Checksum())

	// Zone containers are rebuilt consistently.
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		assert.Equal(t, b.Zones(player).Hand.Items(), restored.Zones(player).Hand.Items())
		assert.Equal(t, b.Zones(player).Deck, restored.Zones(player).Deck)
	}
	assert.Equal(t, b.Turn, restored.Turn)
	assert.Equal(t, b.Rng, restored.Rng)
}

func TestRestoredBattleContinuesIdentically(t *testing.T) {
	b := startedBattle(t, 42)
	restored, err := Capture(b).Restore(testRegistry)
	require.NoError(t, err)

	active := b.Turn.Active
	require.NoError(t, mutations.EndTurn(b, active))
	require.NoError(t, mutations.EndTurn(restored, active))
	require.NoError(t, mutations.StartNextTurn(b, active.Opponent()))
	require.NoError(t, mutations.StartNextTurn(restored, active.Opponent()))

	assert.Equal(t, Capture(b).Checksum(), Capture(restored).Checksum())
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	snap := Capture(startedBattle(t, 7))
	require.NoError(t, ValidateRoundtrip(snap))

	data, err := snap.Encode()
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Checksum(), decoded.Checksum())
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := Decode([]byte("not a snapshot"))
	assert.Error(t, err)
}

func TestRestoreRejectsUnknownCard(t *testing.T) {
	snap := Capture(startedBattle(t, 7))
	snap.Cards[0].Name = "No Such Card"
	_, err := snap.Restore(testRegistry)
	assert.ErrorContains(t, err, "unknown card")
}

func TestRestoreRejectsVersionMismatch(t *testing.T) {
	snap := Capture(startedBattle(t, 7))
	snap.Version = 99
	_, err := snap.Restore(testRegistry)
	assert.ErrorContains(t, err, "version")
}

func TestChecksumTracksState(t *testing.T) {
	b := startedBattle(t, 42)
	before := Capture(b).Checksum()
	assert.Equal(t, before, Capture(b).Checksum(), "capture must not disturb the state")

	require.NoError(t, mutations.EndTurn(b, b.Turn.Active))
	assert.NotEqual(t, before, Capture(b).Checksum())
}

func TestChecksumIdenticalAcrossIdenticalBattles(t *testing.T) {
	assert.Equal(t,
		Capture(startedBattle(t, 42)).Checksum(),
		Capture(startedBattle(t, 42)).Checksum())
	assert.NotEqual(t,
		Capture(startedBattle(t, 42)).Checksum(),
		Capture(startedBattle(t, 43)).Checksum())
}
