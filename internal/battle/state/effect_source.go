package state

import (
	"fmt"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// EffectSourceKind discriminates where a mutation originated.
type EffectSourceKind int

const (
	// SourceGame marks mutations performed by the game rules themselves,
	// such as turn-phase draws and judgment scoring.
	SourceGame EffectSourceKind = iota
	// SourceCard marks a card resolving from the stack.
	SourceCard
	// SourceActivated marks an activated ability.
	SourceActivated
	// SourceTriggered marks a triggered ability.
	SourceTriggered
)

// EffectSource records the provenance of a mutation, carried through effect
// application for logging and for resolving This/That predicates.
type EffectSource struct {
	Kind       EffectSourceKind
	Controller core.PlayerName
	Card       CardID // SourceCard/SourceActivated/SourceTriggered
	ObjectID   core.ObjectID
}

// GameSource builds a source for rule-driven mutations.
func GameSource(controller core.PlayerName) EffectSource {
	return EffectSource{Kind: SourceGame, Controller: controller}
}

// CardSource builds a source for a card resolving from the stack.
func CardSource(controller core.PlayerName, card CardID, object core.ObjectID) EffectSource {
	return EffectSource{Kind: SourceCard, Controller: controller, Card: card, ObjectID: object}
}

// ActivatedSource builds a source for an activated ability.
func ActivatedSource(controller core.PlayerName, card CardID, object core.ObjectID) EffectSource {
	return EffectSource{Kind: SourceActivated, Controller: controller, Card: card, ObjectID: object}
}

// TriggeredSource builds a source for a triggered ability.
func TriggeredSource(controller core.PlayerName, card CardID, object core.ObjectID) EffectSource {
	return EffectSource{Kind: SourceTriggered, Controller: controller, Card: card, ObjectID: object}
}

func (s EffectSource) String() string {
	switch s.Kind {
	case SourceGame:
		return fmt.Sprintf("game(%s)", s.Controller)
	case SourceCard:
		return fmt.Sprintf("card(%s, %d)", s.Controller, s.Card)
	case SourceActivated:
		return fmt.Sprintf("activated(%s, %d)", s.Controller, s.Card)
	case SourceTriggered:
		return fmt.Sprintf("triggered(%s, %d)", s.Controller, s.Card)
	default:
		return "unknown"
	}
}
