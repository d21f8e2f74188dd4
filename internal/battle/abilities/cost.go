package abilities

import "github.com/dreamtides/dreamtides-server-go/internal/battle/core"

// CostKind discriminates the closed set of cost variants the engine can pay.
type CostKind int

const (
	// CostEnergy debits a fixed amount of the controller's current energy.
	CostEnergy CostKind = iota
	// CostAdditionalEnergy prompts the controller to choose an extra energy
	// amount within a range; the chosen amount is recorded on the stack card.
	CostAdditionalEnergy
	// CostBanishFromVoid banishes a number of cards from the controller's void.
	CostBanishFromVoid
	// CostAbandonCharacters dissolves a number of the controller's own
	// characters. Not implemented yet; payment surfaces core.ErrUnsupported.
	CostAbandonCharacters
	// CostList pays each sub-cost in listed order. Affordability of every
	// sub-cost is validated before any of them is paid.
	CostList
)

func (k CostKind) String() string {
	switch k {
	case CostEnergy:
		return "ENERGY"
	case CostAdditionalEnergy:
		return "ADDITIONAL_ENERGY"
	case CostBanishFromVoid:
		return "BANISH_FROM_VOID"
	case CostAbandonCharacters:
		return "ABANDON_CHARACTERS"
	case CostList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Cost is one node of the cost AST produced by the rules-text parser
// collaborator. The engine interprets it generically; it never parses text.
type Cost struct {
	Kind      CostKind
	Energy    core.Energy // CostEnergy amount
	MinEnergy core.Energy // CostAdditionalEnergy range
	MaxEnergy core.Energy
	Count     int    // CostBanishFromVoid / CostAbandonCharacters
	List      []Cost // CostList sub-costs, paid in order
}

// EnergyCost builds a plain energy cost.
func EnergyCost(amount core.Energy) Cost {
	return Cost{Kind: CostEnergy, Energy: amount}
}

// FirstEnergyCost extracts the first energy sub-cost of a possibly compound
// cost, for UI and AI display. Returns false if the cost contains no energy
// component.
func FirstEnergyCost(c Cost) (core.Energy, bool) {
	switch c.Kind {
	case CostEnergy:
		return c.Energy, true
	case CostList:
		for _, sub := range c.List {
			if e, ok := FirstEnergyCost(sub); ok {
				return e, true
			}
		}
	}
	return 0, false
}
