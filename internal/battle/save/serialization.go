package save

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// Encode serializes a snapshot with gob, the format used for save files
// and network transfer.
func (s *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes a gob snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Checksum computes a deterministic SHA-256 over a canonical representation
// of the snapshot, independent of map iteration order. Two battles that
// played identically produce identical checksums.
func (s *Snapshot) Checksum() string {
	hash := sha256.New()
	hash.Write([]byte(s.canonical()))
	return hex.EncodeToString(hash.Sum(nil))
}

func (s *Snapshot) canonical() string {
	var buf bytes.Buffer

	winner := "-"
	if s.Winner != nil {
		winner = s.Winner.String()
	}
	fmt.Fprintf(&buf, "BATTLE:%d|%d|%d|%d|%s|%d|%d|%s|%s|%t|%d\n",
		s.Version, s.Seed, s.Rng.State, s.Status, winner,
		s.Turn.ID, s.Phase, s.Turn.Active, s.Priority, s.ResolvingStack,
		s.PointsToWin)

	for i, p := range s.Players {
		fmt.Fprintf(&buf, "PLAYER:%d|%d|%d|%d|%d\n",
			i, p.CurrentEnergy, p.ProducedEnergy, p.Points, p.Mulligan)
	}

	for i, c := range s.Cards {
		fmt.Fprintf(&buf, "CARD:%d|%s|%s|%d|%s|%d\n",
			i, c.Name, c.Owner, c.ObjectID, c.Zone, c.GainedSpark)
	}

	// Order matters for decks and the stack.
	for player, deck := range s.Decks {
		fmt.Fprintf(&buf, "DECK:%d:", player)
		for _, id := range deck {
			fmt.Fprintf(&buf, "%d,", id)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("STACK:")
	for _, id := range s.Stack {
		ss := s.StackState[id]
		target := "-"
		switch {
		case ss != nil && ss.TargetCharacter != nil:
			target = fmt.Sprintf("c%d@%d", *ss.TargetCharacter, ss.TargetObject)
		case ss != nil && ss.TargetStackCard != nil:
			target = fmt.Sprintf("s%d@%d", *ss.TargetStackCard, ss.TargetObject)
		}
		fmt.Fprintf(&buf, "%d:%s,", id, target)
	}
	buf.WriteString("\n")

	if s.Prompt != nil {
		fmt.Fprintf(&buf, "PROMPT:%s|%s|%v|%v|%d|%d\n",
			s.Prompt.Kind, s.Prompt.Player,
			s.Prompt.ValidCharacters.Items(), s.Prompt.ValidStackCards.Items(),
			s.Prompt.MinEnergy, s.Prompt.MaxEnergy)
	}

	// Listener maps are sorted by trigger name for a stable ordering;
	// listener order within a trigger is registration order and kept as-is.
	names := make([]int, 0, len(s.Listeners))
	for name := range s.Listeners {
		names = append(names, int(name))
	}
	sort.Ints(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "LISTENERS:%d:%v\n", name, s.Listeners[abilities.TriggerName(name)])
	}
	for _, p := range s.Pending {
		that := -1
		if p.That != nil {
			that = int(*p.That)
		}
		fmt.Fprintf(&buf, "PENDING:%d|%d|%d|%d|%s\n",
			p.Name, p.Listener, p.ListenerObject, that, p.Controller)
	}

	if s.Abilities != nil {
		keys := make([]abilityKeyOrd, 0, len(s.Abilities.ActivatedThisTurnCycle))
		for key := range s.Abilities.ActivatedThisTurnCycle {
			keys = append(keys, abilityKeyOrd{int(key.Card), key.Index})
		}
		sortKeys(keys)
		for _, key := range keys {
			fmt.Fprintf(&buf, "ACTIVATED:%d/%d\n", key.card, key.index)
		}
		keys = keys[:0]
		for key := range s.Abilities.TriggeredThisTurn {
			keys = append(keys, abilityKeyOrd{int(key.Card), key.Index})
		}
		sortKeys(keys)
		for _, key := range keys {
			fmt.Fprintf(&buf, "TRIGGERED:%d/%d\n", key.card, key.index)
		}
		fmt.Fprintf(&buf, "BANISH_FLAGS:%v\n", s.Abilities.BanishWhenLeavesPlay.Items())
		fmt.Fprintf(&buf, "PREVENT:%t|%t\n",
			s.Abilities.PreventDissolve[core.PlayerOne],
			s.Abilities.PreventDissolve[core.PlayerTwo])
	}

	fmt.Fprintf(&buf, "DREAMWELL:%v|%d\n", s.Dreamwell.Schedule, s.Dreamwell.NextIndex)
	fmt.Fprintf(&buf, "HISTORY:%d\n", len(s.History))

	return buf.String()
}

type abilityKeyOrd struct {
	card, index int
}

func sortKeys(keys []abilityKeyOrd) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].card != keys[j].card {
			return keys[i].card < keys[j].card
		}
		return keys[i].index < keys[j].index
	})
}

// ValidateRoundtrip encodes and decodes a snapshot and verifies the
// checksum survives, guarding the save path against lossy serialization.
func ValidateRoundtrip(s *Snapshot) error {
	original := s.Checksum()
	data, err := s.Encode()
	if err != nil {
		return err
	}
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	if restored := decoded.Checksum(); restored != original {
		return fmt.Errorf("checksum mismatch after roundtrip: %s != %s", restored, original)
	}
	return nil
}
