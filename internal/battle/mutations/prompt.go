package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// setPrompt installs a pending decision. A battle holds at most one prompt;
// a second is an engine bug, not a recoverable condition.
func setPrompt(b *state.BattleState, prompt *state.PromptData) error {
	if b.Prompt != nil {
		return core.Invariantf("prompt %s already active, cannot set %s", b.Prompt.Kind, prompt.Kind)
	}
	b.Prompt = prompt
	b.MarkDirty(state.DirtyPrompt)
	return nil
}

func clearPrompt(b *state.BattleState) {
	b.Prompt = nil
	b.MarkDirty(state.DirtyPrompt)
}

// takePrompt validates that a prompt of the given kind is active for the
// acting player and removes it.
func takePrompt(b *state.BattleState, player core.PlayerName, kind state.PromptKind) (*state.PromptData, error) {
	if b.Prompt == nil {
		return nil, core.Invariantf("no prompt active, expected %s", kind)
	}
	if b.Prompt.Player != player {
		return nil, core.Invariantf("prompt is for player %s, got response from %s", b.Prompt.Player, player)
	}
	if b.Prompt.Kind != kind {
		return nil, core.Invariantf("prompt is %s, got %s response", b.Prompt.Kind, kind)
	}
	prompt := b.Prompt
	clearPrompt(b)
	return prompt, nil
}

// SelectCharacterTarget answers a character-selection prompt. For a prompt
// raised while playing a card, the choice is recorded on the stack card and
// revalidated at resolution; for a prompt raised during effect application,
// the pending effect applies immediately.
func SelectCharacterTarget(b *state.BattleState, player core.PlayerName, target state.CharacterID) error {
	prompt, err := takePrompt(b, player, state.PromptChooseCharacter)
	if err != nil {
		return err
	}
	if !prompt.ValidCharacters.Contains(target) {
		return core.Invariantf("character %d is not a valid target", target)
	}
	if prompt.ForStackCard != nil {
		ss, err := b.Cards.StackCard(*prompt.ForStackCard)
		if err != nil {
			return err
		}
		ss.TargetCharacter = &target
		ss.TargetObject = b.Cards.Card(state.CardID(target)).ObjectID
		return afterPlayPromptResolved(b, player, *prompt.ForStackCard)
	}
	ctx := effectContext{
		Controller: prompt.Player,
		This:       prompt.Source.Card,
		Character:  &target,
	}
	if err := ApplyEffect(b, prompt.Source, prompt.PendingEffect, ctx); err != nil {
		return err
	}
	return continueAfterPrompt(b)
}

// SelectStackCardTarget answers a stack-card-selection prompt.
func SelectStackCardTarget(b *state.BattleState, player core.PlayerName, target state.StackCardID) error {
	prompt, err := takePrompt(b, player, state.PromptChooseStackCard)
	if err != nil {
		return err
	}
	if !prompt.ValidStackCards.Contains(target) {
		return core.Invariantf("stack card %d is not a valid target", target)
	}
	if prompt.ForStackCard != nil {
		ss, err := b.Cards.StackCard(*prompt.ForStackCard)
		if err != nil {
			return err
		}
		ss.TargetStackCard = &target
		ss.TargetObject = b.Cards.Card(state.CardID(target)).ObjectID
		return afterPlayPromptResolved(b, player, *prompt.ForStackCard)
	}
	ctx := effectContext{
		Controller: prompt.Player,
		This:       prompt.Source.Card,
		StackCard:  &target,
	}
	if err := ApplyEffect(b, prompt.Source, prompt.PendingEffect, ctx); err != nil {
		return err
	}
	return continueAfterPrompt(b)
}

// SelectPromptChoice answers a modal prompt by index. Optional prompts
// accept -1 to decline.
func SelectPromptChoice(b *state.BattleState, player core.PlayerName, index int) error {
	prompt, err := takePrompt(b, player, state.PromptChoose)
	if err != nil {
		return err
	}
	if index == -1 && prompt.Optional {
		return continueAfterPrompt(b)
	}
	if index < 0 || index >= len(prompt.Choices) {
		return core.Invariantf("choice index %d out of range (%d choices)", index, len(prompt.Choices))
	}
	ctx := effectContext{
		Controller: prompt.Player,
		This:       prompt.Source.Card,
	}
	if err := ApplyEffect(b, prompt.Source, prompt.Choices[index], ctx); err != nil {
		return err
	}
	return continueAfterPrompt(b)
}

// SelectEnergyCost answers an additional-energy prompt, debiting the chosen
// amount and recording it on the stack card being played.
func SelectEnergyCost(b *state.BattleState, player core.PlayerName, amount core.Energy) error {
	prompt, err := takePrompt(b, player, state.PromptChooseEnergyAmount)
	if err != nil {
		return err
	}
	if amount < prompt.MinEnergy || amount > prompt.MaxEnergy {
		return core.Invariantf("energy amount %d outside range [%d, %d]", amount, prompt.MinEnergy, prompt.MaxEnergy)
	}
	p := b.Player(player)
	if p.CurrentEnergy < amount {
		return core.Invariantf("cannot pay %d energy with %d available", amount, p.CurrentEnergy)
	}
	p.CurrentEnergy -= amount
	if prompt.ForStackCard != nil {
		ss, err := b.Cards.StackCard(*prompt.ForStackCard)
		if err != nil {
			return err
		}
		ss.AdditionalEnergy = amount
		return afterPlayPromptResolved(b, player, *prompt.ForStackCard)
	}
	return continueAfterPrompt(b)
}

// afterPlayPromptResolved continues the play sequence once one play-time
// prompt is answered: any remaining target prompt opens next, and when all
// are done priority passes to the opponent for a response window.
func afterPlayPromptResolved(b *state.BattleState, player core.PlayerName, id state.StackCardID) error {
	if err := maybePromptForTargets(b, player, id); err != nil {
		return err
	}
	if b.Prompt != nil {
		return nil
	}
	b.Priority = player.Opponent()
	b.MarkDirty(state.DirtyTurn)
	return continueAfterPrompt(b)
}

// continueAfterPrompt resumes whatever the prompt interrupted: pending
// triggers first, then an in-progress stack resolution sweep.
func continueAfterPrompt(b *state.BattleState) error {
	if err := ResolvePendingTriggers(b); err != nil {
		return err
	}
	if b.ResolvingStack && b.Prompt == nil {
		return resolveStackToQuiescence(b)
	}
	return nil
}
