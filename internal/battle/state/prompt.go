package state

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// PromptKind discriminates the decision a pending prompt asks for.
type PromptKind int

const (
	// PromptChooseCharacter asks the player to pick a battlefield character.
	PromptChooseCharacter PromptKind = iota
	// PromptChooseStackCard asks the player to pick a card on the stack.
	PromptChooseStackCard
	// PromptChoose asks the player to pick one of several modal effects.
	PromptChoose
	// PromptChooseEnergyAmount asks the player to pick an additional energy
	// payment within a range.
	PromptChooseEnergyAmount
)

func (k PromptKind) String() string {
	switch k {
	case PromptChooseCharacter:
		return "CHOOSE_CHARACTER"
	case PromptChooseStackCard:
		return "CHOOSE_STACK_CARD"
	case PromptChoose:
		return "CHOOSE"
	case PromptChooseEnergyAmount:
		return "CHOOSE_ENERGY_AMOUNT"
	default:
		return "UNKNOWN"
	}
}

// PromptData is a pending decision blocking the battle. While a prompt is
// set, only the prompted player may act, and only with a response matching
// the prompt's kind. At most one prompt exists at a time.
type PromptData struct {
	Kind   PromptKind
	Player core.PlayerName
	Source EffectSource

	// ValidCharacters holds the selectable characters for
	// PromptChooseCharacter.
	ValidCharacters CardSet[CharacterID]
	// ValidStackCards holds the selectable stack cards for
	// PromptChooseStackCard.
	ValidStackCards CardSet[StackCardID]
	// Choices holds the modal alternatives for PromptChoose.
	Choices []abilities.Effect
	// Optional marks a PromptChoose that may be declined outright.
	Optional bool
	// MinEnergy and MaxEnergy bound PromptChooseEnergyAmount responses.
	MinEnergy core.Energy
	MaxEnergy core.Energy

	// PendingEffect is applied once the prompt resolves, against the chosen
	// target or choice.
	PendingEffect abilities.Effect
	// ForStackCard links target-selection prompts back to the stack card
	// whose targets are being chosen, if any.
	ForStackCard *StackCardID
}

// Clone returns a deep copy.
func (p *PromptData) Clone() *PromptData {
	cp := *p
	if p.Choices != nil {
		cp.Choices = append([]abilities.Effect(nil), p.Choices...)
	}
	if p.ForStackCard != nil {
		id := *p.ForStackCard
		cp.ForStackCard = &id
	}
	return &cp
}
