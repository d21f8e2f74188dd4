package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// PassPriority declines to respond. With cards on the stack this starts a
// resolution sweep that runs until the stack empties or a prompt opens;
// with an empty stack priority simply returns to the active player.
func PassPriority(b *state.BattleState, player core.PlayerName) error {
	if b.Priority != player {
		return core.Invariantf("player %s passed priority without holding it", player)
	}
	if len(b.Cards.Stack) == 0 {
		restPriority(b)
		return nil
	}
	b.ResolvingStack = true
	return resolveStackToQuiescence(b)
}

// resolveStackToQuiescence resolves stack cards top-down, draining pending
// triggers between each, until the stack empties, a prompt opens, or the
// battle ends. Answering a mid-sweep prompt resumes the sweep.
func resolveStackToQuiescence(b *state.BattleState) error {
	for b.Prompt == nil && b.Status == state.StatusPlaying {
		top, ok := b.Cards.TopOfStack()
		if !ok {
			break
		}
		if err := resolveStackCard(b, top); err != nil {
			return err
		}
		if err := ResolvePendingTriggers(b); err != nil {
			return err
		}
	}
	if len(b.Cards.Stack) == 0 {
		b.ResolvingStack = false
		restPriority(b)
	}
	return nil
}

// restPriority returns priority to its quiescent holder: the active player,
// except during the ending phase where the opponent holds it to drive the
// next turn.
func restPriority(b *state.BattleState) {
	if b.Phase == state.PhaseEnding {
		b.Priority = b.Turn.Active.Opponent()
	} else {
		b.Priority = b.Turn.Active
	}
	b.MarkDirty(state.DirtyTurn)
}

// resolveStackCard resolves one card. Characters move to the battlefield;
// events leave the stack first and then apply their effect, so a prompt
// raised by the effect never re-resolves the card. Events whose recorded
// target has moved since selection fizzle without effect.
func resolveStackCard(b *state.BattleState, id state.StackCardID) error {
	card := b.Cards.Card(state.CardID(id))
	ss, err := b.Cards.StackCard(id)
	if err != nil {
		return err
	}
	controller := ss.Controller
	source := state.CardSource(controller, state.CardID(id), card.ObjectID)

	eff := card.Definition.Abilities.EventEffect
	fizzled := false
	ctx := effectContext{Controller: controller, This: state.CardID(id)}
	if eff != nil && eff.RequiresTarget() {
		switch {
		case ss.TargetCharacter != nil:
			target := *ss.TargetCharacter
			if b.Cards.Card(state.CardID(target)).ObjectID == ss.TargetObject {
				ctx.Character = &target
			} else {
				fizzled = true
			}
		case ss.TargetStackCard != nil:
			target := *ss.TargetStackCard
			if b.Cards.Card(state.CardID(target)).ObjectID == ss.TargetObject {
				ctx.StackCard = &target
			} else {
				fizzled = true
			}
		default:
			// Played with no valid targets.
			fizzled = true
		}
	}

	if card.Definition.IsCharacter() {
		_, err := MoveCard(b, source, state.CardID(id), state.ZoneBattlefield)
		return err
	}

	if _, err := MoveCard(b, source, state.CardID(id), state.ZoneVoid); err != nil {
		return err
	}
	if eff == nil || fizzled {
		return nil
	}
	return ApplyEffect(b, source, *eff, ctx)
}
