package cards

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// CardType distinguishes the two printed card types.
type CardType string

const (
	// TypeCharacter cards move to the battlefield when they resolve.
	TypeCharacter CardType = "CHARACTER"
	// TypeEvent cards move to their owner's void when they resolve.
	TypeEvent CardType = "EVENT"
)

// Definition is the immutable printed data of a card. The Abilities AST is
// supplied by the rules-text parser collaborator; YAML card files carry only
// the printed stats plus display text.
type Definition struct {
	Name      string   `yaml:"name"`
	Type      CardType `yaml:"type"`
	Cost      int      `yaml:"cost"`
	Spark     int      `yaml:"spark"`
	Fast      bool     `yaml:"fast"`
	RulesText string   `yaml:"rules,omitempty"`

	Abilities abilities.AbilityList `yaml:"-"`
}

// IsCharacter reports whether the card is a character.
func (d *Definition) IsCharacter() bool {
	return d.Type == TypeCharacter
}

// EnergyCost returns the printed energy cost.
func (d *Definition) EnergyCost() core.Energy {
	return core.Energy(d.Cost)
}

// PlayCost returns the full cost AST for playing this card from hand.
func (d *Definition) PlayCost() abilities.Cost {
	return abilities.EnergyCost(core.Energy(d.Cost))
}

// ReclaimCost returns the cost of playing this card from the void, if it
// carries a play-from-void static ability.
func (d *Definition) ReclaimCost() (abilities.Cost, bool) {
	for _, s := range d.Abilities.Static {
		if s.Kind == abilities.StaticPlayFromVoid && s.ReclaimCost != nil {
			return *s.ReclaimCost, true
		}
	}
	return abilities.Cost{}, false
}

// SparkBonus returns the static spark bonus this card grants its controller
// while on the battlefield.
func (d *Definition) SparkBonus() core.Spark {
	var total core.Spark
	for _, s := range d.Abilities.Static {
		if s.Kind == abilities.StaticSparkBonus {
			total += core.Spark(s.SparkBonus)
		}
	}
	return total
}

// DeckList is a named list of card names, with repetition, loaded from YAML.
type DeckList struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}
