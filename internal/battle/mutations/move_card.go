package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// MoveCard is the single primitive for zone transitions. It handles listener
// registration, per-tenure state lifecycle, the banish-when-leaves-play
// redirect, and materialized/dissolved trigger firing. Every other mutation
// moves cards through here.
func MoveCard(b *state.BattleState, source state.EffectSource, id state.CardID, to state.Zone) (core.ObjectID, error) {
	card := b.Cards.Card(id)
	from := card.CurrentZone
	if from == to {
		return card.ObjectID, nil
	}

	dissolved := from == state.ZoneBattlefield && to == state.ZoneVoid

	if from == state.ZoneBattlefield {
		b.Triggers.Listeners.Remove(id, card.Definition.Abilities.BattlefieldTriggers())
	}
	if from == state.ZoneStack {
		b.Triggers.Listeners.Remove(id, card.Definition.Abilities.StackTriggers())
	}

	// Cards flagged banish-when-leaves-play go to the banished zone instead
	// of a void. The flag survives moves between in-play zones, so a
	// reclaimed character keeps it from stack to battlefield to its final
	// departure.
	leavingPlay := (from == state.ZoneBattlefield || from == state.ZoneStack) &&
		to != state.ZoneBattlefield && to != state.ZoneStack
	if leavingPlay && b.Abilities.BanishWhenLeavesPlay.Contains(id) {
		b.Abilities.BanishWhenLeavesPlay.Remove(id)
		if to == state.ZoneVoid {
			to = state.ZoneBanished
		}
	}

	obj, err := b.Cards.Transfer(id, to)
	if err != nil {
		return 0, err
	}

	if to == state.ZoneBattlefield {
		b.Triggers.Listeners.Add(id, card.Definition.Abilities.BattlefieldTriggers())
	}
	if to == state.ZoneStack {
		b.Triggers.Listeners.Add(id, card.Definition.Abilities.StackTriggers())
	}

	b.MarkDirty(state.DirtyZones)

	if to == state.ZoneBattlefield {
		fireTrigger(b, triggerEvent{
			Name:   abilities.TriggerMaterialized,
			Player: card.Owner,
			That:   &id,
		})
	}
	if dissolved {
		fireTrigger(b, triggerEvent{
			Name:   abilities.TriggerDissolved,
			Player: card.Owner,
			That:   &id,
		})
	}
	return obj, nil
}

// DrawCard moves the top card of the player's deck to their hand, reshuffling
// the void into the deck first if the deck is empty. Drawing with both deck
// and void empty is a no-op.
func DrawCard(b *state.BattleState, source state.EffectSource, player core.PlayerName) error {
	zones := b.Zones(player)
	if len(zones.Deck) == 0 {
		if zones.Void.IsEmpty() {
			return nil
		}
		for _, id := range zones.Void.Items() {
			if _, err := MoveCard(b, source, state.CardID(id), state.ZoneDeck); err != nil {
				return err
			}
		}
		ShuffleDeck(b, player)
	}
	top := zones.Deck[len(zones.Deck)-1]
	if _, err := MoveCard(b, source, top, state.ZoneHand); err != nil {
		return err
	}
	fireTrigger(b, triggerEvent{
		Name:   abilities.TriggerDrewCard,
		Player: player,
		That:   &top,
	})
	return nil
}

// ShuffleDeck randomizes the order of the player's deck using the battle
// stream.
func ShuffleDeck(b *state.BattleState, player core.PlayerName) {
	deck := b.Zones(player).Deck
	b.Rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
