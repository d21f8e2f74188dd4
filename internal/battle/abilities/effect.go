package abilities

// Predicate selects the set of objects an effect may target, relative to the
// effect's controller.
type Predicate int

const (
	// PredicateNone marks an untargeted effect.
	PredicateNone Predicate = iota
	// PredicateEnemyCharacter targets a character the opponent controls.
	PredicateEnemyCharacter
	// PredicateAllyCharacter targets a character the controller controls.
	PredicateAllyCharacter
	// PredicateAnyCharacter targets any character on the battlefield.
	PredicateAnyCharacter
	// PredicateEnemyStackCard targets a card the opponent has on the stack.
	PredicateEnemyStackCard
	// PredicateAnyStackCard targets any other card on the stack.
	PredicateAnyStackCard
	// PredicateThis resolves to the card carrying the ability.
	PredicateThis
	// PredicateThat resolves to the card that caused the triggering event.
	PredicateThat
)

func (p Predicate) String() string {
	switch p {
	case PredicateNone:
		return "NONE"
	case PredicateEnemyCharacter:
		return "ENEMY_CHARACTER"
	case PredicateAllyCharacter:
		return "ALLY_CHARACTER"
	case PredicateAnyCharacter:
		return "ANY_CHARACTER"
	case PredicateEnemyStackCard:
		return "ENEMY_STACK_CARD"
	case PredicateAnyStackCard:
		return "ANY_STACK_CARD"
	case PredicateThis:
		return "THIS"
	case PredicateThat:
		return "THAT"
	default:
		return "UNKNOWN"
	}
}

// TargetsCharacters reports whether the predicate selects battlefield
// characters.
func (p Predicate) TargetsCharacters() bool {
	switch p {
	case PredicateEnemyCharacter, PredicateAllyCharacter, PredicateAnyCharacter:
		return true
	default:
		return false
	}
}

// TargetsStackCards reports whether the predicate selects cards on the stack.
func (p Predicate) TargetsStackCards() bool {
	return p == PredicateEnemyStackCard || p == PredicateAnyStackCard
}

// EffectKind discriminates the closed set of effect variants.
type EffectKind int

const (
	// EffectNoOp does nothing. Used for cards whose only purpose is a body.
	EffectNoOp EffectKind = iota
	// EffectDrawCards draws Amount cards for the controller.
	EffectDrawCards
	// EffectGainEnergy adds Amount to the controller's current energy.
	EffectGainEnergy
	// EffectGainPoints awards Amount points to the controller.
	EffectGainPoints
	// EffectGainSpark gives a target character +Amount spark.
	EffectGainSpark
	// EffectDissolve moves a target character to its owner's void.
	EffectDissolve
	// EffectBanish moves a target character to the banished zone.
	EffectBanish
	// EffectReturnToHand returns a target character to its owner's hand.
	EffectReturnToHand
	// EffectNegate removes a target stack card from the stack to its owner's
	// void without applying its effect.
	EffectNegate
	// EffectDiscard makes the opponent discard Amount random cards.
	EffectDiscard
	// EffectBanishWhenLeavesPlay marks a target character so that its next
	// departure from play redirects to the banished zone.
	EffectBanishWhenLeavesPlay
	// EffectPreventDissolve protects the controller's characters from
	// dissolve effects until end of turn.
	EffectPreventDissolve
	// EffectChoose presents Choices as a prompt and applies the selected one.
	EffectChoose
	// EffectOptional asks "you may"; on accept, Inner is applied.
	EffectOptional
)

func (k EffectKind) String() string {
	switch k {
	case EffectNoOp:
		return "NO_OP"
	case EffectDrawCards:
		return "DRAW_CARDS"
	case EffectGainEnergy:
		return "GAIN_ENERGY"
	case EffectGainPoints:
		return "GAIN_POINTS"
	case EffectGainSpark:
		return "GAIN_SPARK"
	case EffectDissolve:
		return "DISSOLVE"
	case EffectBanish:
		return "BANISH"
	case EffectReturnToHand:
		return "RETURN_TO_HAND"
	case EffectNegate:
		return "NEGATE"
	case EffectDiscard:
		return "DISCARD"
	case EffectBanishWhenLeavesPlay:
		return "BANISH_WHEN_LEAVES_PLAY"
	case EffectPreventDissolve:
		return "PREVENT_DISSOLVE"
	case EffectChoose:
		return "CHOOSE"
	case EffectOptional:
		return "OPTIONAL"
	default:
		return "UNKNOWN"
	}
}

// Effect is one node of the effect AST produced by the rules-text parser
// collaborator.
type Effect struct {
	Kind    EffectKind
	Amount  int
	Target  Predicate
	Choices []Effect // EffectChoose alternatives
	Inner   *Effect  // EffectOptional body
}

// RequiresTarget reports whether the effect needs a resolved target before
// it can be applied.
func (e Effect) RequiresTarget() bool {
	return e.Target.TargetsCharacters() || e.Target.TargetsStackCards()
}
