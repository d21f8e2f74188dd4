package mutations

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// CanPayCost reports whether the player can afford the full cost right now.
// For compound costs every sub-cost must be affordable against the current
// state; affordability does not model interactions between sub-costs beyond
// summing energy.
func CanPayCost(b *state.BattleState, player core.PlayerName, cost abilities.Cost) bool {
	return canPayWithEnergy(b, player, cost, b.Player(player).CurrentEnergy)
}

func canPayWithEnergy(b *state.BattleState, player core.PlayerName, cost abilities.Cost, available core.Energy) bool {
	switch cost.Kind {
	case abilities.CostEnergy:
		return available >= cost.Energy
	case abilities.CostAdditionalEnergy:
		return available >= cost.MinEnergy
	case abilities.CostBanishFromVoid:
		return b.Zones(player).Void.Len() >= cost.Count
	case abilities.CostAbandonCharacters:
		return b.Zones(player).Battlefield.Len() >= cost.Count
	case abilities.CostList:
		remaining := available
		for _, sub := range cost.List {
			if !canPayWithEnergy(b, player, sub, remaining) {
				return false
			}
			if e, ok := fixedEnergy(sub); ok {
				remaining -= e
			}
		}
		return true
	default:
		return false
	}
}

func fixedEnergy(cost abilities.Cost) (core.Energy, bool) {
	switch cost.Kind {
	case abilities.CostEnergy:
		return cost.Energy, true
	case abilities.CostAdditionalEnergy:
		return cost.MinEnergy, true
	default:
		return 0, false
	}
}

// PayCost pays a cost the player was already validated to afford. Compound
// costs validate every sub-cost before paying any, so payment never stops
// partway through. Additional-energy costs open a prompt for the amount;
// the prompt records its payment on the stack card being played.
func PayCost(b *state.BattleState, player core.PlayerName, cost abilities.Cost, forStackCard *state.StackCardID) error {
	if !CanPayCost(b, player, cost) {
		return core.Invariantf("player %s cannot pay cost %s", player, cost.Kind)
	}
	return payValidated(b, player, cost, forStackCard)
}

func payValidated(b *state.BattleState, player core.PlayerName, cost abilities.Cost, forStackCard *state.StackCardID) error {
	p := b.Player(player)
	switch cost.Kind {
	case abilities.CostEnergy:
		if p.CurrentEnergy < cost.Energy {
			return core.Invariantf("paying %d energy with %d available", cost.Energy, p.CurrentEnergy)
		}
		p.CurrentEnergy -= cost.Energy
		return nil

	case abilities.CostAdditionalEnergy:
		upper := cost.MaxEnergy
		if p.CurrentEnergy < upper {
			upper = p.CurrentEnergy
		}
		return setPrompt(b, &state.PromptData{
			Kind:         state.PromptChooseEnergyAmount,
			Player:       player,
			Source:       state.GameSource(player),
			MinEnergy:    cost.MinEnergy,
			MaxEnergy:    upper,
			ForStackCard: forStackCard,
		})

	case abilities.CostBanishFromVoid:
		void := b.Zones(player).Void
		if void.Len() < cost.Count {
			return core.Invariantf("banishing %d cards from void of %d", cost.Count, void.Len())
		}
		for i := 0; i < cost.Count; i++ {
			void = b.Zones(player).Void
			pick, _ := void.AtIndex(b.Rng.Intn(void.Len()))
			if _, err := MoveCard(b, state.GameSource(player), state.CardID(pick), state.ZoneBanished); err != nil {
				return err
			}
		}
		return nil

	case abilities.CostAbandonCharacters:
		return core.Unsupportedf("abandon-characters cost")

	case abilities.CostList:
		for _, sub := range cost.List {
			if err := payValidated(b, player, sub, forStackCard); err != nil {
				return err
			}
		}
		return nil

	default:
		return core.Unsupportedf("cost kind %s", cost.Kind)
	}
}
