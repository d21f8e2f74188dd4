package state

import "github.com/dreamtides/dreamtides-server-go/internal/battle/core"

// CharacterSpark returns a battlefield character's effective spark: printed
// spark plus spark gained this tenure. Zero if the card is not on the
// battlefield.
func (b *BattleState) CharacterSpark(id CharacterID) core.Spark {
	card := b.Cards.Card(CardID(id))
	if card.CurrentZone != ZoneBattlefield {
		return 0
	}
	total := core.Spark(card.Definition.Spark)
	if cs, ok := b.Cards.Zones[card.Owner].BattlefieldState[id]; ok {
		total += cs.GainedSpark
	}
	return total
}

// TotalSpark returns a player's judgment total: the sum of their
// characters' effective spark plus static spark bonuses.
func (b *BattleState) TotalSpark(player core.PlayerName) core.Spark {
	var total core.Spark
	for _, id := range b.Cards.Zones[player].Battlefield.Items() {
		total += b.CharacterSpark(id)
		total += b.Cards.Card(CardID(id)).Definition.SparkBonus()
	}
	return total
}
