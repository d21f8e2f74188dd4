package matchup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsScoring(t *testing.T) {
	s, err := NewStandings("ONE", "TWO")
	require.NoError(t, err)

	require.NoError(t, s.Record(Result{Seed: 1, Winner: "ONE"}))
	require.NoError(t, s.Record(Result{Seed: 2, Winner: "ONE"}))
	require.NoError(t, s.Record(Result{Seed: 3, Winner: "TWO"}))
	require.NoError(t, s.Record(Result{Seed: 4}))

	table := s.Table()
	require.Len(t, table, 2)
	assert.Equal(t, Record{Name: "ONE", Wins: 2, Losses: 1, Draws: 1}, table[0])
	assert.Equal(t, Record{Name: "TWO", Wins: 1, Losses: 2, Draws: 1}, table[1])
	assert.Equal(t, 7, table[0].Points())
	assert.Equal(t, 4, s.Played())
	assert.Len(t, s.Results(), 4)
}

func TestStandingsRejectsUnknownWinner(t *testing.T) {
	s, err := NewStandings("ONE", "TWO")
	require.NoError(t, err)

	err = s.Record(Result{Winner: "THREE"})
	assert.Error(t, err)
	assert.Zero(t, s.Played())
}

func TestStandingsRejectsDuplicateSeats(t *testing.T) {
	_, err := NewStandings("ONE", "ONE")
	assert.Error(t, err)
}

func TestStandingsTieBreaksBySeatOrder(t *testing.T) {
	s, err := NewStandings("ONE", "TWO")
	require.NoError(t, err)
	require.NoError(t, s.Record(Result{Winner: "ONE"}))
	require.NoError(t, s.Record(Result{Winner: "TWO"}))

	table := s.Table()
	assert.Equal(t, "ONE", table[0].Name)
	assert.Equal(t, "TWO", table[1].Name)
}
