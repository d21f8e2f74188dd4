package save

import (
	"fmt"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

// Version is the current snapshot format version.
const Version = 1

// CardSnapshot is one card's saved identity. Definitions are stored by name
// and resolved against a registry on restore, so snapshots stay small and
// survive definition updates that do not rename cards.
type CardSnapshot struct {
	Name        string
	Owner       core.PlayerName
	ObjectID    core.ObjectID
	Zone        state.Zone
	GainedSpark core.Spark
}

// PlayerSnapshot is one player's saved resources.
type PlayerSnapshot struct {
	CurrentEnergy  core.Energy
	ProducedEnergy core.Energy
	Points         core.Points
	Mulligan       state.MulliganStatus
}

// Snapshot is a complete saved battle: everything needed to resume play at
// the exact same point, including the random stream position.
type Snapshot struct {
	Version int

	Seed uint64
	Rng  state.Rng

	Status         state.BattleStatus
	Winner         *core.PlayerName
	Turn           state.TurnData
	Phase          state.TurnPhase
	Priority       core.PlayerName
	ResolvingStack bool

	Players [2]PlayerSnapshot
	// Cards is indexed by CardID.
	Cards []CardSnapshot
	// Decks and Stack preserve ordering; the other zones are recovered from
	// each card's Zone field.
	Decks        [2][]state.CardID
	Stack        []state.StackCardID
	StackState   map[state.StackCardID]*state.StackCardState
	NextObjectID core.ObjectID

	Prompt    *state.PromptData
	Listeners map[abilities.TriggerName][]state.CardID
	Pending   []state.PendingTrigger
	Abilities *state.AbilityState
	Dreamwell state.Dreamwell

	PointsToWin core.Points
	History     []state.HistoryEntry
}

// Capture builds a snapshot from a battle state. The state is read only.
func Capture(b *state.BattleState) *Snapshot {
	src := b.Clone()
	s := &Snapshot{
		Version:        Version,
		Seed:           src.Seed,
		Rng:            src.Rng,
		Status:         src.Status,
		Winner:         src.Winner,
		Turn:           src.Turn,
		Phase:          src.Phase,
		Priority:       src.Priority,
		ResolvingStack: src.ResolvingStack,
		Stack:          src.Cards.Stack,
		StackState:     src.Cards.StackState,
		NextObjectID:   src.Cards.NextObjectID,
		Prompt:         src.Prompt,
		Listeners:      src.Triggers.Listeners.ByName,
		Pending:        src.Triggers.Pending,
		Abilities:      src.Abilities,
		Dreamwell:      src.Dreamwell,
		PointsToWin:    src.PointsToWin,
		History:        src.History,
	}
	for i, p := range src.Players {
		s.Players[i] = PlayerSnapshot{
			CurrentEnergy:  p.CurrentEnergy,
			ProducedEnergy: p.ProducedEnergy,
			Points:         p.Points,
			Mulligan:       p.Mulligan,
		}
	}
	s.Cards = make([]CardSnapshot, len(src.Cards.All))
	for i, card := range src.Cards.All {
		cs := CardSnapshot{
			Name:     card.Definition.Name,
			Owner:    card.Owner,
			ObjectID: card.ObjectID,
			Zone:     card.CurrentZone,
		}
		if card.CurrentZone == state.ZoneBattlefield {
			if char, ok := src.Cards.Zones[card.Owner].BattlefieldState[state.CharacterID(card.ID)]; ok {
				cs.GainedSpark = char.GainedSpark
			}
		}
		s.Cards[i] = cs
	}
	for player := range src.Cards.Zones {
		s.Decks[player] = src.Cards.Zones[player].Deck
	}
	return s
}

// Restore rebuilds a battle state from a snapshot, resolving card names
// against the registry.
func (s *Snapshot) Restore(reg *cards.Registry) (*state.BattleState, error) {
	if s.Version != Version {
		return nil, fmt.Errorf("snapshot version %d, supported %d", s.Version, Version)
	}
	table := state.NewBattleCards()
	for i, cs := range s.Cards {
		def, ok := reg.Get(cs.Name)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown card %q", cs.Name)
		}
		card := &state.CardState{
			ID:          state.CardID(i),
			Owner:       cs.Owner,
			Definition:  def,
			ObjectID:    cs.ObjectID,
			CurrentZone: cs.Zone,
		}
		table.All = append(table.All, card)
		zones := table.Zones[cs.Owner]
		switch cs.Zone {
		case state.ZoneDeck:
			// Restored in order below.
		case state.ZoneHand:
			zones.Hand.Insert(state.HandCardID(i))
		case state.ZoneVoid:
			zones.Void.Insert(state.VoidCardID(i))
		case state.ZoneBattlefield:
			zones.Battlefield.Insert(state.CharacterID(i))
			zones.BattlefieldState[state.CharacterID(i)] = &state.CharacterState{GainedSpark: cs.GainedSpark}
		case state.ZoneBanished:
			zones.Banished.Insert(state.BanishedCardID(i))
		case state.ZoneStack:
			// Restored in order below.
		}
	}
	for player := range s.Decks {
		table.Zones[player].Deck = append([]state.CardID(nil), s.Decks[player]...)
	}
	table.Stack = append([]state.StackCardID(nil), s.Stack...)
	table.StackState = make(map[state.StackCardID]*state.StackCardState, len(s.StackState))
	for id, ss := range s.StackState {
		table.StackState[id] = ss.Clone()
	}
	table.NextObjectID = s.NextObjectID

	triggers := state.NewTriggerState()
	for name, listeners := range s.Listeners {
		triggers.Listeners.ByName[name] = append([]state.CardID(nil), listeners...)
	}
	triggers.Pending = append([]state.PendingTrigger(nil), s.Pending...)

	b := &state.BattleState{
		Seed:           s.Seed,
		Players:        [2]*state.PlayerState{{}, {}},
		Cards:          table,
		Status:         s.Status,
		Winner:         s.Winner,
		Turn:           s.Turn,
		Phase:          s.Phase,
		Priority:       s.Priority,
		ResolvingStack: s.ResolvingStack,
		Prompt:         s.Prompt,
		Rng:            s.Rng,
		Triggers:       triggers,
		Abilities:      s.Abilities.Clone(),
		Dreamwell:      s.Dreamwell.Clone(),
		PointsToWin:    s.PointsToWin,
		History:        append([]state.HistoryEntry(nil), s.History...),
	}
	for i, p := range s.Players {
		b.Players[i] = &state.PlayerState{
			CurrentEnergy:  p.CurrentEnergy,
			ProducedEnergy: p.ProducedEnergy,
			Points:         p.Points,
			Mulligan:       p.Mulligan,
		}
	}
	return b, nil
}
