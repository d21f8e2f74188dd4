package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// PlayCardFromHand pays a hand card's cost and puts it on the stack. Target
// and additional-energy decisions open prompts; once all prompts are
// answered, priority passes to the opponent for a response window.
func PlayCardFromHand(b *state.BattleState, player core.PlayerName, id state.HandCardID) error {
	if !b.Zones(player).Hand.Contains(id) {
		return core.Invariantf("card %d is not in %s's hand", id, player)
	}
	card := b.Cards.Card(state.CardID(id))
	cost := card.Definition.PlayCost()
	if !CanPayCost(b, player, cost) {
		return core.Invariantf("player %s cannot pay for %s", player, card.Definition.Name)
	}
	return playCard(b, player, state.CardID(id), cost)
}

// PlayCardFromVoid plays a void card through its reclaim ability, paying the
// reclaim cost. The card is flagged to banish the next time it leaves play.
func PlayCardFromVoid(b *state.BattleState, player core.PlayerName, id state.VoidCardID) error {
	if !b.Zones(player).Void.Contains(id) {
		return core.Invariantf("card %d is not in %s's void", id, player)
	}
	card := b.Cards.Card(state.CardID(id))
	cost, ok := card.Definition.ReclaimCost()
	if !ok {
		return core.Invariantf("card %s cannot be played from the void", card.Definition.Name)
	}
	if !CanPayCost(b, player, cost) {
		return core.Invariantf("player %s cannot pay reclaim for %s", player, card.Definition.Name)
	}
	if err := playCard(b, player, state.CardID(id), cost); err != nil {
		return err
	}
	b.Abilities.BanishWhenLeavesPlay.Insert(state.CardID(id))
	b.MarkDirty(state.DirtyAbilities)
	return nil
}

func playCard(b *state.BattleState, player core.PlayerName, id state.CardID, cost abilities.Cost) error {
	source := state.CardSource(player, id, b.Cards.Card(id).ObjectID)
	if _, err := MoveCard(b, source, id, state.ZoneStack); err != nil {
		return err
	}
	stackID := state.StackCardID(id)
	if err := PayCost(b, player, cost, &stackID); err != nil {
		return err
	}

	fireTrigger(b, triggerEvent{
		Name:   abilities.TriggerPlayedCard,
		Player: player,
		That:   &id,
	})

	// An additional-energy prompt from payment takes precedence; target
	// selection happens when it resolves.
	if b.Prompt == nil {
		if err := maybePromptForTargets(b, player, stackID); err != nil {
			return err
		}
	}
	if b.Prompt == nil {
		b.Priority = player.Opponent()
		b.MarkDirty(state.DirtyTurn)
		return ResolvePendingTriggers(b)
	}
	return nil
}

// maybePromptForTargets opens a target-selection prompt for a stack card
// whose effect needs one and has none recorded. A card with no valid
// targets goes on the stack untargeted and fizzles at resolution.
func maybePromptForTargets(b *state.BattleState, player core.PlayerName, id state.StackCardID) error {
	card := b.Cards.Card(state.CardID(id))
	eff := card.Definition.Abilities.EventEffect
	if eff == nil || !eff.RequiresTarget() {
		return nil
	}
	ss, err := b.Cards.StackCard(id)
	if err != nil {
		return err
	}
	if ss.TargetCharacter != nil || ss.TargetStackCard != nil {
		return nil
	}
	source := state.CardSource(player, state.CardID(id), card.ObjectID)
	if eff.Target.TargetsCharacters() {
		valid := validCharacterTargets(b, eff.Target, player)
		if valid.IsEmpty() {
			return nil
		}
		return setPrompt(b, &state.PromptData{
			Kind:            state.PromptChooseCharacter,
			Player:          player,
			Source:          source,
			ValidCharacters: valid,
			PendingEffect:   *eff,
			ForStackCard:    &id,
		})
	}
	valid := validStackTargets(b, eff.Target, player, state.CardID(id))
	if valid.IsEmpty() {
		return nil
	}
	return setPrompt(b, &state.PromptData{
		Kind:            state.PromptChooseStackCard,
		Player:          player,
		Source:          source,
		ValidStackCards: valid,
		PendingEffect:   *eff,
		ForStackCard:    &id,
	})
}

// ActivateAbility pays an activated ability's costs and applies its effect
// immediately. Activated abilities never use the stack.
func ActivateAbility(b *state.BattleState, player core.PlayerName, id state.CharacterID, index int) error {
	if !b.Zones(player).Battlefield.Contains(id) {
		return core.Invariantf("character %d is not on %s's battlefield", id, player)
	}
	card := b.Cards.Card(state.CardID(id))
	activated := card.Definition.Abilities.Activated
	if index < 0 || index >= len(activated) {
		return core.Invariantf("character %s has no activated ability %d", card.Definition.Name, index)
	}
	ability := activated[index]
	key := state.AbilityKey{Card: state.CardID(id), Index: index}
	if ability.OncePerTurn && b.Abilities.ActivatedThisTurnCycle[key] {
		return core.Invariantf("ability %d of %s already activated this turn", index, card.Definition.Name)
	}
	cost := abilities.Cost{Kind: abilities.CostList, List: ability.Costs}
	if !CanPayCost(b, player, cost) {
		return core.Invariantf("player %s cannot pay to activate %s", player, card.Definition.Name)
	}
	if err := PayCost(b, player, cost, nil); err != nil {
		return err
	}
	b.Abilities.ActivatedThisTurnCycle[key] = true
	b.MarkDirty(state.DirtyAbilities)

	source := state.ActivatedSource(player, state.CardID(id), card.ObjectID)
	ctx := effectContext{Controller: player, This: state.CardID(id)}
	if err := ApplyEffect(b, source, ability.Effect, ctx); err != nil {
		return err
	}
	return ResolvePendingTriggers(b)
}
