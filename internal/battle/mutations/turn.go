package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// EndTurn ends the active player's main phase. End-of-turn triggers fire,
// then priority passes to the opponent, who may respond with fast cards
// before starting their own turn.
func EndTurn(b *state.BattleState, player core.PlayerName) error {
	if b.Turn.Active != player {
		return core.Invariantf("player %s ended a turn they do not own", player)
	}
	if b.Phase != state.PhaseMain {
		return core.Invariantf("cannot end turn during %s phase", b.Phase)
	}
	if len(b.Cards.Stack) != 0 {
		return core.Invariantf("cannot end turn with %d cards on the stack", len(b.Cards.Stack))
	}
	b.Phase = state.PhaseEnding
	b.Priority = player.Opponent()
	b.MarkDirty(state.DirtyTurn)

	fireTrigger(b, triggerEvent{Name: abilities.TriggerEndOfTurn, Player: player})
	return ResolvePendingTriggers(b)
}

// StartNextTurn is taken by the opponent during the ending phase to begin
// their own turn.
func StartNextTurn(b *state.BattleState, player core.PlayerName) error {
	if b.Phase != state.PhaseEnding {
		return core.Invariantf("cannot start next turn during %s phase", b.Phase)
	}
	if b.Turn.Active == player {
		return core.Invariantf("player %s cannot start a turn after their own", player)
	}
	if len(b.Cards.Stack) != 0 {
		return core.Invariantf("cannot start next turn with %d cards on the stack", len(b.Cards.Stack))
	}
	return StartTurn(b, player)
}

// StartTurn runs the automatic phase sequence for the given player: turn
// bookkeeping, judgment scoring, dreamwell energy production, the draw, and
// entry into the main phase. Triggers fired along the way resolve at the
// end; a trigger prompt leaves the turn in its main phase awaiting the
// answer.
func StartTurn(b *state.BattleState, player core.PlayerName) error {
	b.Turn = state.TurnData{Active: player, ID: b.Turn.ID + 1}
	b.Phase = state.PhaseStarting
	b.Priority = player
	b.MarkDirty(state.DirtyTurn)

	// Dissolve protection lasts until the protected player's opponent
	// finishes their turn; both flags reset here.
	b.Abilities.PreventDissolve = [2]bool{}
	for key := range b.Abilities.TriggeredThisTurn {
		delete(b.Abilities.TriggeredThisTurn, key)
	}
	for key := range b.Abilities.ActivatedThisTurnCycle {
		if b.Cards.Card(key.Card).Owner == player {
			delete(b.Abilities.ActivatedThisTurnCycle, key)
		}
	}
	b.MarkDirty(state.DirtyAbilities)

	b.Phase = state.PhaseJudgment
	runJudgment(b)
	if b.Status != state.StatusPlaying {
		return nil
	}

	b.Phase = state.PhaseDreamwell
	p := b.Player(player)
	p.ProducedEnergy += b.Dreamwell.Advance()
	p.CurrentEnergy = p.ProducedEnergy

	b.Phase = state.PhaseDraw
	// The starting player skips the draw on the battle's first turn.
	if b.Turn.ID > 1 {
		if err := DrawCard(b, state.GameSource(player), player); err != nil {
			return err
		}
	}

	b.Phase = state.PhaseMain
	b.MarkDirty(state.DirtyTurn)
	return ResolvePendingTriggers(b)
}

// runJudgment compares total spark and awards the difference in points to
// the strictly higher side, then checks for victory.
func runJudgment(b *state.BattleState) {
	one := b.TotalSpark(core.PlayerOne)
	two := b.TotalSpark(core.PlayerTwo)
	switch {
	case one > two:
		b.Players[core.PlayerOne].Points += core.Points(one - two)
	case two > one:
		b.Players[core.PlayerTwo].Points += core.Points(two - one)
	}
	checkVictory(b)
}

// checkVictory ends the battle if a player has reached the point threshold.
// With both at or past it, the higher total wins and a tie is a draw.
func checkVictory(b *state.BattleState) {
	if b.Status != state.StatusPlaying {
		return
	}
	one := b.Players[core.PlayerOne].Points
	two := b.Players[core.PlayerTwo].Points
	if one < b.PointsToWin && two < b.PointsToWin {
		return
	}
	b.Status = state.StatusGameOver
	switch {
	case one > two:
		winner := core.PlayerOne
		b.Winner = &winner
	case two > one:
		winner := core.PlayerTwo
		b.Winner = &winner
	}
	b.MarkDirty(state.DirtyTurn)
}
