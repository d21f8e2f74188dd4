package mutations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

func TestPlayCharacterResolvesToBattlefield(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 3

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(id)))
	assert.Equal(t, state.ZoneStack, zoneOf(b, id))
	assert.Equal(t, core.Energy(2), b.Player(core.PlayerOne).CurrentEnergy)
	assert.Equal(t, core.PlayerTwo, b.Priority)

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	assert.Equal(t, state.ZoneBattlefield, zoneOf(b, id))
	assert.Empty(t, b.Cards.Stack)
	assert.Equal(t, core.PlayerOne, b.Priority)
}

func TestPlayCardRequiresHandAndEnergy(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.TidecallerColossus, state.ZoneHand)

	assert.ErrorIs(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(id)), core.ErrInvariant)

	other := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneDeck)
	b.Player(core.PlayerOne).CurrentEnergy = 10
	assert.ErrorIs(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(other)), core.ErrInvariant)
}

func TestPlayTargetedEventPromptsAndResolves(t *testing.T) {
	b := playingBattle()
	victim := stage(t, b, core.PlayerTwo, cards.EmberlineVanguard, state.ZoneBattlefield)
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 2

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(blade)))
	require.NotNil(t, b.Prompt)
	assert.Equal(t, state.PromptChooseCharacter, b.Prompt.Kind)
	assert.Equal(t, core.PlayerOne, b.Prompt.Player)
	assert.Equal(t, []state.CharacterID{state.CharacterID(victim)}, b.Prompt.ValidCharacters.Items())

	require.NoError(t, SelectCharacterTarget(b, core.PlayerOne, state.CharacterID(victim)))
	assert.Nil(t, b.Prompt)
	assert.Equal(t, core.PlayerTwo, b.Priority)

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, victim))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, blade))
}

func TestStaleTargetFizzles(t *testing.T) {
	b := playingBattle()
	victim := stage(t, b, core.PlayerTwo, cards.EmberlineVanguard, state.ZoneBattlefield)
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 2

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(blade)))
	require.NoError(t, SelectCharacterTarget(b, core.PlayerOne, state.CharacterID(victim)))

	// The target changes zone before resolution, invalidating the captured
	// ObjectID.
	_, err := MoveCard(b, state.GameSource(core.PlayerTwo), victim, state.ZoneHand)
	require.NoError(t, err)

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	assert.Equal(t, state.ZoneHand, zoneOf(b, victim))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, blade), "a fizzled event still goes to the void")
}

func TestEventWithNoTargetsFizzlesAtResolution(t *testing.T) {
	b := playingBattle()
	blade := stage(t, b, core.PlayerOne, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 2

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(blade)))
	assert.Nil(t, b.Prompt, "no valid targets means no prompt")
	assert.Equal(t, core.PlayerTwo, b.Priority)

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, blade))
}

func TestNegateRemovesTargetWithoutEffect(t *testing.T) {
	b := playingBattle()
	stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneDeck)
	stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneDeck)
	draught := stage(t, b, core.PlayerOne, cards.DreamDraught, state.ZoneHand)
	refusal := stage(t, b, core.PlayerTwo, cards.Refusal, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 1
	b.Player(core.PlayerTwo).CurrentEnergy = 1

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(draught)))
	assert.Equal(t, core.PlayerTwo, b.Priority)

	require.NoError(t, PlayCardFromHand(b, core.PlayerTwo, state.HandCardID(refusal)))
	require.NotNil(t, b.Prompt)
	assert.Equal(t, state.PromptChooseStackCard, b.Prompt.Kind)
	require.NoError(t, SelectStackCardTarget(b, core.PlayerTwo, state.StackCardID(draught)))
	assert.Equal(t, core.PlayerOne, b.Priority)

	require.NoError(t, PassPriority(b, core.PlayerOne))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, draught))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, refusal))
	assert.Equal(t, 0, b.Zones(core.PlayerOne).Hand.Len(), "negated draw must not happen")
}

func TestModalEventPromptsAtResolution(t *testing.T) {
	b := playingBattle()
	storm := stage(t, b, core.PlayerOne, cards.Emberstorm, state.ZoneHand)
	stage(t, b, core.PlayerTwo, cards.DawnwingScout, state.ZoneHand)
	stage(t, b, core.PlayerTwo, cards.EmberlineVanguard, state.ZoneHand)
	stage(t, b, core.PlayerTwo, cards.Refusal, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 3

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(storm)))
	assert.Nil(t, b.Prompt, "modal choice waits until resolution")

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	require.NotNil(t, b.Prompt)
	assert.Equal(t, state.PromptChoose, b.Prompt.Kind)
	assert.Equal(t, core.PlayerOne, b.Prompt.Player)
	assert.Equal(t, state.ZoneVoid, zoneOf(b, storm), "the event leaves the stack before its prompt")

	// Choice one makes the opponent discard two random cards.
	require.NoError(t, SelectPromptChoice(b, core.PlayerOne, 1))
	assert.Equal(t, 1, b.Zones(core.PlayerTwo).Hand.Len())
	assert.Equal(t, 2, b.Zones(core.PlayerTwo).Void.Len())
	assert.Equal(t, core.PlayerOne, b.Priority)
	assert.False(t, b.ResolvingStack)
}

func TestPreventDissolveProtects(t *testing.T) {
	b := playingBattle()
	guarded := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneBattlefield)
	ward := stage(t, b, core.PlayerOne, cards.Wardlight, state.ZoneHand)
	blade := stage(t, b, core.PlayerTwo, cards.Riftblade, state.ZoneHand)
	b.Player(core.PlayerOne).CurrentEnergy = 1
	b.Player(core.PlayerTwo).CurrentEnergy = 2

	require.NoError(t, PlayCardFromHand(b, core.PlayerOne, state.HandCardID(ward)))
	require.NoError(t, PlayCardFromHand(b, core.PlayerTwo, state.HandCardID(blade)))
	require.NoError(t, SelectCharacterTarget(b, core.PlayerTwo, state.CharacterID(guarded)))

	// Resolution is top-down: the removal resolves first, but the ward
	// resolves beneath it this time, so run it the other way: resolve both
	// and check protection applied before the dissolve.
	require.NoError(t, PassPriority(b, core.PlayerOne))
	assert.Equal(t, state.ZoneVoid, zoneOf(b, guarded), "ward resolved after the dissolve")

	// A ward already in force blocks later dissolves outright.
	b2 := playingBattle()
	guarded2 := stage(t, b2, core.PlayerOne, cards.DawnwingScout, state.ZoneBattlefield)
	blade2 := stage(t, b2, core.PlayerTwo, cards.Riftblade, state.ZoneHand)
	b2.Abilities.PreventDissolve[core.PlayerOne] = true
	b2.Player(core.PlayerTwo).CurrentEnergy = 2
	b2.Priority = core.PlayerTwo

	require.NoError(t, PlayCardFromHand(b2, core.PlayerTwo, state.HandCardID(blade2)))
	require.NoError(t, SelectCharacterTarget(b2, core.PlayerTwo, state.CharacterID(guarded2)))
	require.NoError(t, PassPriority(b2, core.PlayerOne))
	assert.Equal(t, state.ZoneBattlefield, zoneOf(b2, guarded2))
	assert.Equal(t, state.ZoneVoid, zoneOf(b2, blade2))
}

func TestReclaimFlagsBanishOnLeavingPlay(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.CinderReclaimer, state.ZoneVoid)
	b.Player(core.PlayerOne).CurrentEnergy = 3

	require.NoError(t, PlayCardFromVoid(b, core.PlayerOne, state.VoidCardID(id)))
	assert.Equal(t, state.ZoneStack, zoneOf(b, id))
	assert.True(t, b.Abilities.BanishWhenLeavesPlay.Contains(id))
	assert.Equal(t, core.Energy(0), b.Player(core.PlayerOne).CurrentEnergy)

	require.NoError(t, PassPriority(b, core.PlayerTwo))
	assert.Equal(t, state.ZoneBattlefield, zoneOf(b, id))

	// Its next departure from play banishes it instead of reaching the void.
	_, err := MoveCard(b, state.GameSource(core.PlayerTwo), id, state.ZoneVoid)
	require.NoError(t, err)
	assert.Equal(t, state.ZoneBanished, zoneOf(b, id))
}

func TestPlayFromVoidRequiresReclaimAbility(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.DawnwingScout, state.ZoneVoid)
	b.Player(core.PlayerOne).CurrentEnergy = 10

	assert.ErrorIs(t, PlayCardFromVoid(b, core.PlayerOne, state.VoidCardID(id)), core.ErrInvariant)
}

func TestActivateAbilityAppliesImmediately(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.Stormcaller, state.ZoneBattlefield)
	b.Player(core.PlayerOne).CurrentEnergy = 5

	require.NoError(t, ActivateAbility(b, core.PlayerOne, state.CharacterID(id), 0))
	assert.Equal(t, core.Energy(3), b.Player(core.PlayerOne).CurrentEnergy)
	assert.Empty(t, b.Cards.Stack, "activated abilities never use the stack")
	assert.Equal(t, core.Spark(4), b.CharacterSpark(state.CharacterID(id)))

	// Once per turn.
	assert.ErrorIs(t, ActivateAbility(b, core.PlayerOne, state.CharacterID(id), 0), core.ErrInvariant)
}

func TestActivateAbilityGating(t *testing.T) {
	b := playingBattle()
	id := stage(t, b, core.PlayerOne, cards.Stormcaller, state.ZoneBattlefield)
	b.Player(core.PlayerOne).CurrentEnergy = 1

	assert.ErrorIs(t, ActivateAbility(b, core.PlayerOne, state.CharacterID(id), 1), core.ErrInvariant)
	assert.ErrorIs(t, ActivateAbility(b, core.PlayerOne, state.CharacterID(id), 0), core.ErrInvariant)
	assert.ErrorIs(t, ActivateAbility(b, core.PlayerTwo, state.CharacterID(id), 0), core.ErrInvariant)
}
