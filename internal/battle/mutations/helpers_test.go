package mutations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

var testRegistry = cards.CoreRegistry()

// playingBattle returns a mid-battle state in player one's main phase with no
// cards anywhere, for tests that stage zones explicitly.
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

// stage adds a named core-set card for a player and moves it to the zone,
// discarding any triggers the setup move fired.
func stage(t *testing.T, b *state.BattleState, owner core.PlayerName, name string, zone state.Zone) state.CardID {
	t.Helper()
	id := b.Cards.AddCard(owner, testRegistry.MustGet(name))
	if zone != state.ZoneDeck {
		_, err := MoveCard(b, state.GameSource(owner), id, zone)
		require.NoError(t, err)
	}
	b.Triggers.Pending = nil
	return id
}

func zoneOf(b *state.BattleState, id state.CardID) state.Zone {
	return b.Cards.Card(id).CurrentZone
}
