package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// effectContext carries the references an effect node may need: the card
// whose ability is applying, the card that caused a triggering event, and
// any explicitly chosen targets.
type effectContext struct {
	Controller core.PlayerName
	This       state.CardID
	That       *state.CardID
	Character  *state.CharacterID
	StackCard  *state.StackCardID
}

// ApplyEffect interprets one effect AST node against the battle. Effects
// whose target has not been chosen yet open a prompt instead of applying;
// the prompt's resolution re-enters here with the target filled in.
func ApplyEffect(b *state.BattleState, source state.EffectSource, eff abilities.Effect, ctx effectContext) error {
	switch eff.Kind {
	case abilities.EffectNoOp:
		return nil

	case abilities.EffectDrawCards:
		for i := 0; i < eff.Amount; i++ {
			if err := DrawCard(b, source, ctx.Controller); err != nil {
				return err
			}
		}
		return nil

	case abilities.EffectGainEnergy:
		b.Player(ctx.Controller).CurrentEnergy += core.Energy(eff.Amount)
		return nil

	case abilities.EffectGainPoints:
		b.Player(ctx.Controller).Points += core.Points(eff.Amount)
		checkVictory(b)
		return nil

	case abilities.EffectGainSpark:
		target, ok, err := resolveCharacter(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		cs, err := b.Cards.CharacterState(target)
		if err != nil {
			return err
		}
		cs.GainedSpark += core.Spark(eff.Amount)
		b.MarkDirty(state.DirtyAbilities)
		return nil

	case abilities.EffectDissolve:
		target, ok, err := resolveCharacter(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		owner := b.Cards.Card(state.CardID(target)).Owner
		if b.Abilities.PreventDissolve[owner] {
			return nil
		}
		_, err = MoveCard(b, source, state.CardID(target), state.ZoneVoid)
		return err

	case abilities.EffectBanish:
		target, ok, err := resolveCharacter(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		_, err = MoveCard(b, source, state.CardID(target), state.ZoneBanished)
		return err

	case abilities.EffectReturnToHand:
		target, ok, err := resolveCharacter(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		_, err = MoveCard(b, source, state.CardID(target), state.ZoneHand)
		return err

	case abilities.EffectNegate:
		target, ok, err := resolveStackTarget(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		_, err = MoveCard(b, source, state.CardID(target), state.ZoneVoid)
		return err

	case abilities.EffectDiscard:
		return discardRandom(b, source, ctx.Controller.Opponent(), eff.Amount)

	case abilities.EffectBanishWhenLeavesPlay:
		target, ok, err := resolveCharacter(b, eff, ctx)
		if err != nil || !ok {
			return err
		}
		b.Abilities.BanishWhenLeavesPlay.Insert(state.CardID(target))
		b.MarkDirty(state.DirtyAbilities)
		return nil

	case abilities.EffectPreventDissolve:
		b.Abilities.PreventDissolve[ctx.Controller] = true
		b.MarkDirty(state.DirtyAbilities)
		return nil

	case abilities.EffectChoose:
		return promptChoice(b, source, eff, ctx, false)

	case abilities.EffectOptional:
		if eff.Inner == nil {
			return core.Invariantf("optional effect has no inner effect")
		}
		return promptChoice(b, source, abilities.Effect{
			Kind:    abilities.EffectChoose,
			Choices: []abilities.Effect{*eff.Inner},
		}, ctx, true)

	default:
		return core.Unsupportedf("effect kind %s", eff.Kind)
	}
}

// resolveCharacter determines the character an effect applies to. Explicit
// targets come from the context; This and That resolve against the carrying
// card and the event card. A missing or off-battlefield result makes the
// effect fizzle (ok=false). An effect that needs a chosen target but has
// none opens a prompt.
func resolveCharacter(b *state.BattleState, eff abilities.Effect, ctx effectContext) (state.CharacterID, bool, error) {
	switch {
	case eff.Target == abilities.PredicateThis:
		return characterIfOnBattlefield(b, ctx.This)
	case eff.Target == abilities.PredicateThat:
		if ctx.That == nil {
			return 0, false, core.Invariantf("effect references event card but none fired")
		}
		return characterIfOnBattlefield(b, *ctx.That)
	case ctx.Character != nil:
		return characterIfOnBattlefield(b, state.CardID(*ctx.Character))
	case eff.Target.TargetsCharacters():
		valid := validCharacterTargets(b, eff.Target, ctx.Controller)
		if valid.IsEmpty() {
			return 0, false, nil
		}
		return 0, false, setPrompt(b, &state.PromptData{
			Kind:            state.PromptChooseCharacter,
			Player:          ctx.Controller,
			Source:          state.TriggeredSource(ctx.Controller, ctx.This, b.Cards.Card(ctx.This).ObjectID),
			ValidCharacters: valid,
			PendingEffect:   eff,
		})
	default:
		return 0, false, core.Invariantf("effect %s has no character target", eff.Kind)
	}
}

func characterIfOnBattlefield(b *state.BattleState, id state.CardID) (state.CharacterID, bool, error) {
	if b.Cards.Card(id).CurrentZone != state.ZoneBattlefield {
		return 0, false, nil
	}
	return state.CharacterID(id), true, nil
}

// resolveStackTarget determines the stack card an effect applies to, opening
// a prompt when a choice is needed.
func resolveStackTarget(b *state.BattleState, eff abilities.Effect, ctx effectContext) (state.StackCardID, bool, error) {
	if ctx.StackCard != nil {
		if b.Cards.Card(state.CardID(*ctx.StackCard)).CurrentZone != state.ZoneStack {
			return 0, false, nil
		}
		return *ctx.StackCard, true, nil
	}
	if !eff.Target.TargetsStackCards() {
		return 0, false, core.Invariantf("effect %s has no stack target", eff.Kind)
	}
	valid := validStackTargets(b, eff.Target, ctx.Controller, ctx.This)
	if valid.IsEmpty() {
		return 0, false, nil
	}
	return 0, false, setPrompt(b, &state.PromptData{
		Kind:            state.PromptChooseStackCard,
		Player:          ctx.Controller,
		Source:          state.TriggeredSource(ctx.Controller, ctx.This, b.Cards.Card(ctx.This).ObjectID),
		ValidStackCards: valid,
		PendingEffect:   eff,
	})
}

// validCharacterTargets returns the battlefield characters a predicate can
// select for the given controller.
func validCharacterTargets(b *state.BattleState, p abilities.Predicate, controller core.PlayerName) state.CardSet[state.CharacterID] {
	var valid state.CardSet[state.CharacterID]
	if p == abilities.PredicateEnemyCharacter || p == abilities.PredicateAnyCharacter {
		valid.UnionWith(b.Zones(controller.Opponent()).Battlefield)
	}
	if p == abilities.PredicateAllyCharacter || p == abilities.PredicateAnyCharacter {
		valid.UnionWith(b.Zones(controller).Battlefield)
	}
	return valid
}

// validStackTargets returns the stack cards a predicate can select,
// excluding the selecting card itself.
func validStackTargets(b *state.BattleState, p abilities.Predicate, controller core.PlayerName, this state.CardID) state.CardSet[state.StackCardID] {
	var valid state.CardSet[state.StackCardID]
	for _, id := range b.Cards.Stack {
		if state.CardID(id) == this {
			continue
		}
		ss := b.Cards.StackState[id]
		if p == abilities.PredicateEnemyStackCard && ss.Controller == controller {
			continue
		}
		valid.Insert(id)
	}
	return valid
}

func discardRandom(b *state.BattleState, source state.EffectSource, player core.PlayerName, amount int) error {
	for i := 0; i < amount; i++ {
		hand := b.Zones(player).Hand
		if hand.IsEmpty() {
			return nil
		}
		pick, _ := hand.AtIndex(b.Rng.Intn(hand.Len()))
		if _, err := MoveCard(b, source, state.CardID(pick), state.ZoneVoid); err != nil {
			return err
		}
	}
	return nil
}

func promptChoice(b *state.BattleState, source state.EffectSource, eff abilities.Effect, ctx effectContext, optional bool) error {
	if len(eff.Choices) == 0 {
		return core.Invariantf("modal effect has no choices")
	}
	return setPrompt(b, &state.PromptData{
		Kind:          state.PromptChoose,
		Player:        ctx.Controller,
		Source:        source,
		Choices:       eff.Choices,
		Optional:      optional,
		PendingEffect: eff,
	})
}
