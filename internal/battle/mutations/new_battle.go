package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

// OpeningHandSize is the number of cards drawn before mulligans.
const OpeningHandSize = 5

// BattleConfig describes a new battle.
type BattleConfig struct {
	Seed        uint64
	PointsToWin core.Points
	Dreamwell   state.Dreamwell
	// Decks holds each player's deck as resolved definitions.
	Decks [2][]*cards.Definition
}

// NewBattle builds a battle from the config: decks shuffled, opening hands
// drawn, starting player chosen from the seed, and the state left awaiting
// mulligan decisions.
func NewBattle(cfg BattleConfig) (*state.BattleState, error) {
	if cfg.PointsToWin <= 0 {
		cfg.PointsToWin = state.DefaultPointsToWin
	}
	if len(cfg.Dreamwell.Schedule) == 0 && cfg.Dreamwell.NextIndex == 0 {
		cfg.Dreamwell = state.DefaultDreamwell()
	}
	b := &state.BattleState{
		Seed:        cfg.Seed,
		Players:     [2]*state.PlayerState{{}, {}},
		Cards:       state.NewBattleCards(),
		Status:      state.StatusResolveMulligans,
		Rng:         state.NewRng(cfg.Seed),
		Triggers:    state.NewTriggerState(),
		Abilities:   state.NewAbilityState(),
		Dreamwell:   cfg.Dreamwell,
		PointsToWin: cfg.PointsToWin,
	}

	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		deck := cfg.Decks[player]
		if len(deck) == 0 {
			return nil, core.Invariantf("player %s has an empty deck", player)
		}
		for _, def := range deck {
			b.Cards.AddCard(player, def)
		}
		ShuffleDeck(b, player)
	}

	starting := core.PlayerName(b.Rng.Intn(2))
	b.Turn = state.TurnData{Active: starting, ID: 0}
	b.Priority = starting

	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for i := 0; i < OpeningHandSize; i++ {
			if err := DrawCard(b, state.GameSource(player), player); err != nil {
				return nil, err
			}
		}
	}
	// Nothing listens before the first turn; discard any queued noise.
	b.Triggers.Pending = nil
	return b, nil
}

// KeepHand records a keep decision during mulligan resolution. Once both
// players have decided, the first turn starts.
func KeepHand(b *state.BattleState, player core.PlayerName) error {
	if err := recordMulligan(b, player, state.MulliganKept); err != nil {
		return err
	}
	return maybeStartFirstTurn(b)
}

// MulliganHand shuffles the player's opening hand back and draws a fresh
// one. Each player may mulligan once.
func MulliganHand(b *state.BattleState, player core.PlayerName) error {
	if err := recordMulligan(b, player, state.MulliganTaken); err != nil {
		return err
	}
	source := state.GameSource(player)
	for _, id := range b.Zones(player).Hand.Items() {
		if _, err := MoveCard(b, source, state.CardID(id), state.ZoneDeck); err != nil {
			return err
		}
	}
	ShuffleDeck(b, player)
	for i := 0; i < OpeningHandSize; i++ {
		if err := DrawCard(b, source, player); err != nil {
			return err
		}
	}
	b.Triggers.Pending = nil
	return maybeStartFirstTurn(b)
}

func recordMulligan(b *state.BattleState, player core.PlayerName, decision state.MulliganStatus) error {
	if b.Status != state.StatusResolveMulligans {
		return core.Invariantf("mulligan decision during %s", b.Status)
	}
	p := b.Player(player)
	if p.Mulligan != state.MulliganUndecided {
		return core.Invariantf("player %s already decided their opening hand", player)
	}
	p.Mulligan = decision
	b.MarkDirty(state.DirtyTurn)
	return nil
}

func maybeStartFirstTurn(b *state.BattleState) error {
	for _, p := range b.Players {
		if p.Mulligan == state.MulliganUndecided {
			return nil
		}
	}
	b.Status = state.StatusPlaying
	return StartTurn(b, b.Turn.Active)
}
