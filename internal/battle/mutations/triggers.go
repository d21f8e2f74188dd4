package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// triggerEvent describes one game event that may fire listeners.
type triggerEvent struct {
	Name abilities.TriggerName
	// Player is the player the event happened to (who played, drew, or owns
	// the moved card).
	Player core.PlayerName
	// That is the card that caused the event, if any.
	That *state.CardID
}

// listens reports whether a listener responds to this particular event.
// Materialized abilities are self-triggers; dissolved, played and drew
// abilities respond to allied events; end-of-turn abilities always respond.
func (e triggerEvent) listens(b *state.BattleState, listener state.CardID) bool {
	owner := b.Cards.Card(listener).Owner
	switch e.Name {
	case abilities.TriggerMaterialized:
		return e.That != nil && *e.That == listener
	case abilities.TriggerDissolved:
		return e.That != nil && b.Cards.Card(*e.That).Owner == owner
	case abilities.TriggerPlayedCard, abilities.TriggerDrewCard:
		return e.Player == owner
	case abilities.TriggerEndOfTurn:
		return true
	default:
		return false
	}
}

// fireTrigger queues pending triggers for every listener that responds to
// the event, in listener registration order. Resolution happens separately
// so that a single event's listeners all observe the same pre-resolution
// state.
func fireTrigger(b *state.BattleState, event triggerEvent) {
	for _, listener := range b.Triggers.Listeners.Listening(event.Name) {
		if !event.listens(b, listener) {
			continue
		}
		card := b.Cards.Card(listener)
		pending := state.PendingTrigger{
			Name:           event.Name,
			Listener:       listener,
			ListenerObject: card.ObjectID,
			Controller:     card.Owner,
		}
		if event.That != nil {
			that := *event.That
			pending.That = &that
		}
		b.Triggers.Pending = append(b.Triggers.Pending, pending)
	}
}

// ResolvePendingTriggers applies queued triggers FIFO until the queue is
// empty or a trigger opens a prompt. Resolving a trigger may fire further
// triggers; those join the back of the queue. Listeners that changed zone
// since firing are skipped, as are once-per-turn abilities that already
// fired this turn.
func ResolvePendingTriggers(b *state.BattleState) error {
	for len(b.Triggers.Pending) > 0 && b.Prompt == nil && b.Status == state.StatusPlaying {
		pending := b.Triggers.Pending[0]
		b.Triggers.Pending = b.Triggers.Pending[1:]
		if err := resolveTrigger(b, pending); err != nil {
			return err
		}
	}
	return nil
}

func resolveTrigger(b *state.BattleState, pending state.PendingTrigger) error {
	card := b.Cards.Card(pending.Listener)
	if card.ObjectID != pending.ListenerObject {
		// Listener left its zone after firing; the ability no longer exists.
		return nil
	}
	for index, ability := range card.Definition.Abilities.Triggered {
		if ability.Trigger != pending.Name {
			continue
		}
		if ability.OncePerTurn {
			key := state.AbilityKey{Card: pending.Listener, Index: index}
			if b.Abilities.TriggeredThisTurn[key] {
				continue
			}
			b.Abilities.TriggeredThisTurn[key] = true
			b.MarkDirty(state.DirtyAbilities)
		}
		source := state.TriggeredSource(pending.Controller, pending.Listener, pending.ListenerObject)
		ctx := effectContext{
			Controller: pending.Controller,
			This:       pending.Listener,
			That:       pending.That,
		}
		if err := ApplyEffect(b, source, ability.Effect, ctx); err != nil {
			return err
		}
		if b.Prompt != nil || b.Status != state.StatusPlaying {
			return nil
		}
	}
	return nil
}
