package state

import "fmt"

// Zone is one of the six regions a card can occupy.
type Zone int

const (
	ZoneBanished Zone = iota
	ZoneBattlefield
	ZoneDeck
	ZoneHand
	ZoneStack
	ZoneVoid
)

// AllZones lists every zone in a stable order.
var AllZones = []Zone{ZoneBanished, ZoneBattlefield, ZoneDeck, ZoneHand, ZoneStack, ZoneVoid}

func (z Zone) String() string {
	switch z {
	case ZoneBanished:
		return "BANISHED"
	case ZoneBattlefield:
		return "BATTLEFIELD"
	case ZoneDeck:
		return "DECK"
	case ZoneHand:
		return "HAND"
	case ZoneStack:
		return "STACK"
	case ZoneVoid:
		return "VOID"
	default:
		return fmt.Sprintf("ZONE_%d", int(z))
	}
}

// Ordered reports whether card order within the zone is meaningful. The
// stack and deck are ordered; the other zones behave as sets.
func (z Zone) Ordered() bool {
	return z == ZoneStack || z == ZoneDeck
}

// CardID is a card's stable logical identity for the lifetime of a battle:
// a dense index into the battle's card table. It never changes, unlike the
// ObjectID which is reassigned on every zone transition.
type CardID int

// Zone-scoped identifier types. A value of one of these types asserts the
// card was in the corresponding zone when the identifier was captured;
// functions accepting them fail with an invariant violation if the card has
// since moved.
type (
	CharacterID    CardID
	HandCardID     CardID
	StackCardID    CardID
	VoidCardID     CardID
	DeckCardID     CardID
	BanishedCardID CardID
)
