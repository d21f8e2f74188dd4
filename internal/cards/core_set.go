package cards

import "github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"

// Core set card names, referenced by deck lists and tests.
const (
	DawnwingScout     = "Dawnwing Scout"
	EmberlineVanguard = "Emberline Vanguard"
	TidecallerColossus = "Tidecaller Colossus"
	ArchivistOfGlass  = "Archivist of Glass"
	VoidflameHerald   = "Voidflame Herald"
	Stormcaller       = "Stormcaller"
	GaleMessenger     = "Gale Messenger"
	CinderReclaimer   = "Cinder Reclaimer"
	BeaconOfWinter    = "Beacon of Winter"
	Riftblade         = "Riftblade"
	Refusal           = "Refusal"
	DreamDraught      = "Dream Draught"
	Emberstorm        = "Emberstorm"
	Wardlight         = "Wardlight"
	LanternRite       = "Lantern Rite"
)

// CoreSet returns the built-in card pool. The ability ASTs here stand in for
// the output of the rules-text parser collaborator.
func CoreSet() []Definition {
	reclaim := abilities.EnergyCost(3)
	return []Definition{
		{
			Name: DawnwingScout, Type: TypeCharacter, Cost: 1, Spark: 1,
			RulesText: "",
		},
		{
			Name: EmberlineVanguard, Type: TypeCharacter, Cost: 2, Spark: 2,
			RulesText: "",
		},
		{
			Name: TidecallerColossus, Type: TypeCharacter, Cost: 4, Spark: 5,
			RulesText: "",
		},
		{
			Name: ArchivistOfGlass, Type: TypeCharacter, Cost: 2, Spark: 1,
			RulesText: "Materialized: Draw a card.",
			Abilities: abilities.AbilityList{
				Triggered: []abilities.TriggeredAbility{{
					Trigger: abilities.TriggerMaterialized,
					Effect:  abilities.Effect{Kind: abilities.EffectDrawCards, Amount: 1},
				}},
			},
		},
		{
			Name: VoidflameHerald, Type: TypeCharacter, Cost: 3, Spark: 2,
			RulesText: "When an allied character is dissolved, gain 1 point. Once per turn.",
			Abilities: abilities.AbilityList{
				Triggered: []abilities.TriggeredAbility{{
					Trigger:     abilities.TriggerDissolved,
					Effect:      abilities.Effect{Kind: abilities.EffectGainPoints, Amount: 1},
					OncePerTurn: true,
				}},
			},
		},
		{
			Name: Stormcaller, Type: TypeCharacter, Cost: 3, Spark: 2,
			RulesText: "2 energy: This character gains +2 spark. Once per turn.",
			Abilities: abilities.AbilityList{
				Activated: []abilities.ActivatedAbility{{
					Costs: []abilities.Cost{abilities.EnergyCost(2)},
					Effect: abilities.Effect{
						Kind: abilities.EffectGainSpark, Amount: 2,
						Target: abilities.PredicateThis,
					},
					OncePerTurn: true,
				}},
			},
		},
		{
			Name: GaleMessenger, Type: TypeCharacter, Cost: 1, Spark: 1,
			RulesText: "When you draw a card, this character gains +1 spark. Once per turn.",
			Abilities: abilities.AbilityList{
				Triggered: []abilities.TriggeredAbility{{
					Trigger: abilities.TriggerDrewCard,
					Effect: abilities.Effect{
						Kind: abilities.EffectGainSpark, Amount: 1,
						Target: abilities.PredicateThis,
					},
					OncePerTurn: true,
				}},
			},
		},
		{
			Name: CinderReclaimer, Type: TypeCharacter, Cost: 2, Spark: 1,
			RulesText: "Reclaim 3.",
			Abilities: abilities.AbilityList{
				Static: []abilities.StaticAbility{{
					Kind:        abilities.StaticPlayFromVoid,
					ReclaimCost: &reclaim,
				}},
			},
		},
		{
			Name: BeaconOfWinter, Type: TypeCharacter, Cost: 2, Spark: 0,
			RulesText: "Your spark total is increased by 2.",
			Abilities: abilities.AbilityList{
				Static: []abilities.StaticAbility{{
					Kind:       abilities.StaticSparkBonus,
					SparkBonus: 2,
				}},
			},
		},
		{
			Name: Riftblade, Type: TypeEvent, Cost: 2, Fast: true,
			RulesText: "Dissolve an enemy character.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{
					Kind:   abilities.EffectDissolve,
					Target: abilities.PredicateEnemyCharacter,
				},
			},
		},
		{
			Name: Refusal, Type: TypeEvent, Cost: 1, Fast: true,
			RulesText: "Negate an enemy card on the stack.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{
					Kind:   abilities.EffectNegate,
					Target: abilities.PredicateEnemyStackCard,
				},
			},
		},
		{
			Name: DreamDraught, Type: TypeEvent, Cost: 1,
			RulesText: "Draw 2 cards.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{Kind: abilities.EffectDrawCards, Amount: 2},
			},
		},
		{
			Name: Emberstorm, Type: TypeEvent, Cost: 3,
			RulesText: "Choose one: dissolve an enemy character, or the opponent discards 2 cards.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{
					Kind: abilities.EffectChoose,
					Choices: []abilities.Effect{
						{Kind: abilities.EffectDissolve, Target: abilities.PredicateEnemyCharacter},
						{Kind: abilities.EffectDiscard, Amount: 2},
					},
				},
			},
		},
		{
			Name: Wardlight, Type: TypeEvent, Cost: 1, Fast: true,
			RulesText: "Your characters cannot be dissolved this turn.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{Kind: abilities.EffectPreventDissolve},
			},
		},
		{
			Name: LanternRite, Type: TypeEvent, Cost: 2,
			RulesText: "Gain 1 point.",
			Abilities: abilities.AbilityList{
				EventEffect: &abilities.Effect{Kind: abilities.EffectGainPoints, Amount: 1},
			},
		},
	}
}

// CoreRegistry returns a registry of the built-in core set.
func CoreRegistry() *Registry {
	reg, err := NewRegistry(CoreSet())
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultDeck returns the standard 20-card deck both players use when no
// deck list is configured.
func DefaultDeck() DeckList {
	return DeckList{
		Name: "Core Standard",
		Cards: []string{
			DawnwingScout, DawnwingScout,
			EmberlineVanguard, EmberlineVanguard,
			TidecallerColossus,
			ArchivistOfGlass, ArchivistOfGlass,
			VoidflameHerald,
			Stormcaller,
			GaleMessenger, GaleMessenger,
			CinderReclaimer,
			BeaconOfWinter,
			Riftblade, Riftblade,
			Refusal,
			DreamDraught, DreamDraught,
			Emberstorm,
			Wardlight,
		},
	}
}
