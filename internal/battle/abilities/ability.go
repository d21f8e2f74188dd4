package abilities

// TriggerName names a game event a triggered ability can listen for.
type TriggerName int

const (
	// TriggerMaterialized fires when a character enters the battlefield.
	TriggerMaterialized TriggerName = iota
	// TriggerDissolved fires when a character leaves the battlefield for a void.
	TriggerDissolved
	// TriggerPlayedCard fires when the listener's controller plays a card.
	TriggerPlayedCard
	// TriggerDrewCard fires when the listener's controller draws a card.
	TriggerDrewCard
	// TriggerEndOfTurn fires during the ending phase of each turn.
	TriggerEndOfTurn
)

// AllTriggerNames lists every trigger name in a stable order, used when
// iterating listener registries deterministically.
var AllTriggerNames = []TriggerName{
	TriggerMaterialized,
	TriggerDissolved,
	TriggerPlayedCard,
	TriggerDrewCard,
	TriggerEndOfTurn,
}

func (t TriggerName) String() string {
	switch t {
	case TriggerMaterialized:
		return "MATERIALIZED"
	case TriggerDissolved:
		return "DISSOLVED"
	case TriggerPlayedCard:
		return "PLAYED_CARD"
	case TriggerDrewCard:
		return "DREW_CARD"
	case TriggerEndOfTurn:
		return "END_OF_TURN"
	default:
		return "UNKNOWN"
	}
}

// TriggeredAbility fires its effect when the named event occurs while the
// carrying card is in the zone where the ability is active (the battlefield,
// unless OnStack is set).
type TriggeredAbility struct {
	Trigger     TriggerName
	Effect      Effect
	OncePerTurn bool
	OnStack     bool
}

// ActivatedAbility is activated explicitly by the controller. Activated
// abilities do not use the stack; their effect applies immediately after
// costs are paid.
type ActivatedAbility struct {
	Costs       []Cost
	Effect      Effect
	OncePerTurn bool
	IsFast      bool
}

// StaticAbilityKind discriminates the continuous abilities the engine tracks.
type StaticAbilityKind int

const (
	// StaticPlayFromVoid lets the card be played from the void for the
	// reclaim cost, banishing it when it next leaves play.
	StaticPlayFromVoid StaticAbilityKind = iota
	// StaticSparkBonus adds to the controller's spark total while the card
	// is on the battlefield.
	StaticSparkBonus
)

// StaticAbility is a continuous ability attached while its card is in the
// relevant zone.
type StaticAbility struct {
	Kind        StaticAbilityKind
	ReclaimCost *Cost
	SparkBonus  int
}

// AbilityList groups every ability a card definition carries. EventEffect is
// the spell effect of an event card; character cards use the other slots.
type AbilityList struct {
	EventEffect *Effect
	Triggered   []TriggeredAbility
	Activated   []ActivatedAbility
	Static      []StaticAbility
}

// BattlefieldTriggers returns the trigger names this list listens for while
// the card is on the battlefield.
func (l AbilityList) BattlefieldTriggers() []TriggerName {
	var names []TriggerName
	for _, t := range l.Triggered {
		if !t.OnStack {
			names = append(names, t.Trigger)
		}
	}
	return names
}

// StackTriggers returns the trigger names this list listens for while the
// card is on the stack.
func (l AbilityList) StackTriggers() []TriggerName {
	var names []TriggerName
	for _, t := range l.Triggered {
		if t.OnStack {
			names = append(names, t.Trigger)
		}
	}
	return names
}
