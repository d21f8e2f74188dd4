package state

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

// CardState is one card's mutable identity within a battle.
type CardState struct {
	ID    CardID
	Owner core.PlayerName
	// Definition is the immutable printed card, interned in the registry.
	Definition *cards.Definition
	// ObjectID is reassigned on every zone transition. References captured
	// before a move are detectably stale.
	ObjectID core.ObjectID
	// CurrentZone is the card's location.
	CurrentZone Zone
}

// CharacterState is per-tenure battlefield data, created when a character
// enters the battlefield and discarded when it leaves.
type CharacterState struct {
	// GainedSpark accumulates spark modifications for this tenure only.
	GainedSpark core.Spark
}

// StackCardState is per-tenure stack data, created when a card is played and
// discarded when the card leaves the stack.
type StackCardState struct {
	// Controller is the player who played the card.
	Controller core.PlayerName
	// TargetCharacter and TargetObject capture a chosen character target.
	// The ObjectID detects targets that moved before resolution; such cards
	// fizzle.
	TargetCharacter *CharacterID
	// TargetStackCard and TargetObject capture a chosen stack-card target.
	TargetStackCard *StackCardID
	// TargetObject is the target's ObjectID at selection time.
	TargetObject core.ObjectID
	// AdditionalEnergy records an additional-energy payment chosen when the
	// card was played.
	AdditionalEnergy core.Energy
}

// Clone returns a deep copy.
func (s *StackCardState) Clone() *StackCardState {
	cp := *s
	if s.TargetCharacter != nil {
		id := *s.TargetCharacter
		cp.TargetCharacter = &id
	}
	if s.TargetStackCard != nil {
		id := *s.TargetStackCard
		cp.TargetStackCard = &id
	}
	return &cp
}

// PlayerZones holds one player's six zones. Hand, void, battlefield and
// banished are unordered sets; the deck is ordered with the top at the end
// of the slice.
type PlayerZones struct {
	Deck        []CardID
	Hand        CardSet[HandCardID]
	Void        CardSet[VoidCardID]
	Battlefield CardSet[CharacterID]
	Banished    CardSet[BanishedCardID]
	// BattlefieldState holds per-tenure character data, keyed by the cards
	// currently in Battlefield.
	BattlefieldState map[CharacterID]*CharacterState
}

// Clone returns a deep copy.
func (z *PlayerZones) Clone() *PlayerZones {
	cp := &PlayerZones{
		Deck:             append([]CardID(nil), z.Deck...),
		Hand:             z.Hand,
		Void:             z.Void,
		Battlefield:      z.Battlefield,
		Banished:         z.Banished,
		BattlefieldState: make(map[CharacterID]*CharacterState, len(z.BattlefieldState)),
	}
	for id, cs := range z.BattlefieldState {
		c := *cs
		cp.BattlefieldState[id] = &c
	}
	return cp
}

// BattleCards is the card table plus zone containers for both players and
// the shared stack.
type BattleCards struct {
	// All indexes every card in the battle by CardID.
	All []*CardState
	// Zones holds each player's zone containers, indexed by PlayerName.
	Zones [2]*PlayerZones
	// Stack is the shared ordered stack, top at the end.
	Stack []StackCardID
	// StackState holds per-tenure stack data, keyed by the cards currently
	// in Stack.
	StackState map[StackCardID]*StackCardState
	// NextObjectID is the monotonic ObjectID allocator. Starts at 1 so the
	// zero ObjectID never matches a live card.
	NextObjectID core.ObjectID
}

// NewBattleCards returns an empty card table.
func NewBattleCards() *BattleCards {
	return &BattleCards{
		Zones: [2]*PlayerZones{
			{BattlefieldState: make(map[CharacterID]*CharacterState)},
			{BattlefieldState: make(map[CharacterID]*CharacterState)},
		},
		StackState:   make(map[StackCardID]*StackCardState),
		NextObjectID: 1,
	}
}

// AddCard appends a new card to the table, placing it in the owner's deck at
// a random position determined later by shuffling. Returns the new CardID.
func (b *BattleCards) AddCard(owner core.PlayerName, def *cards.Definition) CardID {
	id := CardID(len(b.All))
	b.All = append(b.All, &CardState{
		ID:         id,
		Owner:      owner,
		Definition: def,
		ObjectID:   b.allocateObjectID(),
	})
	b.All[id].CurrentZone = ZoneDeck
	b.Zones[owner].Deck = append(b.Zones[owner].Deck, id)
	return id
}

func (b *BattleCards) allocateObjectID() core.ObjectID {
	id := b.NextObjectID
	b.NextObjectID++
	return id
}

// Card returns the card state for an id. Panics on out-of-range ids, which
// can only arise from engine bugs.
func (b *BattleCards) Card(id CardID) *CardState {
	return b.All[id]
}

// Transfer moves a card between zone containers and assigns a fresh
// ObjectID. It performs container bookkeeping only; listener registration,
// character-state lifecycle and trigger firing are layered above. Returns
// the new ObjectID.
func (b *BattleCards) Transfer(id CardID, to Zone) (core.ObjectID, error) {
	card := b.All[id]
	from := card.CurrentZone
	if from == to {
		return card.ObjectID, nil
	}
	zones := b.Zones[card.Owner]

	switch from {
	case ZoneDeck:
		removeOrdered(&zones.Deck, id)
	case ZoneHand:
		if !zones.Hand.Remove(HandCardID(id)) {
			return 0, core.Invariantf("card %d not in hand", id)
		}
	case ZoneVoid:
		if !zones.Void.Remove(VoidCardID(id)) {
			return 0, core.Invariantf("card %d not in void", id)
		}
	case ZoneBattlefield:
		if !zones.Battlefield.Remove(CharacterID(id)) {
			return 0, core.Invariantf("card %d not on battlefield", id)
		}
		delete(zones.BattlefieldState, CharacterID(id))
	case ZoneBanished:
		if !zones.Banished.Remove(BanishedCardID(id)) {
			return 0, core.Invariantf("card %d not banished", id)
		}
	case ZoneStack:
		removeStack(&b.Stack, StackCardID(id))
		delete(b.StackState, StackCardID(id))
	}

	switch to {
	case ZoneDeck:
		zones.Deck = append(zones.Deck, id)
	case ZoneHand:
		zones.Hand.Insert(HandCardID(id))
	case ZoneVoid:
		zones.Void.Insert(VoidCardID(id))
	case ZoneBattlefield:
		zones.Battlefield.Insert(CharacterID(id))
		zones.BattlefieldState[CharacterID(id)] = &CharacterState{}
	case ZoneBanished:
		zones.Banished.Insert(BanishedCardID(id))
	case ZoneStack:
		b.Stack = append(b.Stack, StackCardID(id))
		b.StackState[StackCardID(id)] = &StackCardState{Controller: card.Owner}
	}

	card.CurrentZone = to
	card.ObjectID = b.allocateObjectID()
	return card.ObjectID, nil
}

func removeOrdered(deck *[]CardID, id CardID) {
	d := *deck
	for i, c := range d {
		if c == id {
			*deck = append(d[:i:i], d[i+1:]...)
			return
		}
	}
}

func removeStack(stack *[]StackCardID, id StackCardID) {
	s := *stack
	for i, c := range s {
		if c == id {
			*stack = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// TopOfStack returns the topmost stack card.
func (b *BattleCards) TopOfStack() (StackCardID, bool) {
	if len(b.Stack) == 0 {
		return 0, false
	}
	return b.Stack[len(b.Stack)-1], true
}

// CharacterState returns per-tenure data for a battlefield character, or an
// invariant error if the id no longer refers to a battlefield card.
func (b *BattleCards) CharacterState(id CharacterID) (*CharacterState, error) {
	card := b.All[CardID(id)]
	cs, ok := b.Zones[card.Owner].BattlefieldState[id]
	if !ok {
		return nil, core.Invariantf("card %d is not on the battlefield (zone %s)", id, card.CurrentZone)
	}
	return cs, nil
}

// StackCard returns per-tenure data for a stack card, or an invariant error
// if the id no longer refers to a stack card.
func (b *BattleCards) StackCard(id StackCardID) (*StackCardState, error) {
	ss, ok := b.StackState[id]
	if !ok {
		card := b.All[CardID(id)]
		return nil, core.Invariantf("card %d is not on the stack (zone %s)", id, card.CurrentZone)
	}
	return ss, nil
}

// Clone returns a deep copy.
func (b *BattleCards) Clone() *BattleCards {
	cp := &BattleCards{
		All:          make([]*CardState, len(b.All)),
		Stack:        append([]StackCardID(nil), b.Stack...),
		StackState:   make(map[StackCardID]*StackCardState, len(b.StackState)),
		NextObjectID: b.NextObjectID,
	}
	for i, c := range b.All {
		card := *c
		cp.All[i] = &card
	}
	for i, z := range b.Zones {
		cp.Zones[i] = z.Clone()
	}
	for id, ss := range b.StackState {
		cp.StackState[id] = ss.Clone()
	}
	return cp
}
