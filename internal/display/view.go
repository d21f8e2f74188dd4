package display

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
)

// CardView is one visible card.
type CardView struct {
	ID    state.CardID `json:"id"`
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Cost  int          `json:"cost"`
	Spark core.Spark   `json:"spark,omitempty"`
	Fast  bool         `json:"fast,omitempty"`
	Rules string       `json:"rules,omitempty"`
}

// StackCardView is a card on the stack with its controller and target.
type StackCardView struct {
	CardView
	Controller      core.PlayerName `json:"controller"`
	TargetCharacter *state.CardID   `json:"targetCharacter,omitempty"`
	TargetStackCard *state.CardID   `json:"targetStackCard,omitempty"`
}

// PlayerView is one player's visible state. Hand contents are only present
// for the viewer; the opponent's hand and both decks appear as counts.
type PlayerView struct {
	Energy         core.Energy `json:"energy"`
	ProducedEnergy core.Energy `json:"producedEnergy"`
	Points         core.Points `json:"points"`
	SparkTotal     core.Spark  `json:"sparkTotal"`
	DeckCount      int         `json:"deckCount"`
	HandCount      int         `json:"handCount"`
	Hand           []CardView  `json:"hand,omitempty"`
	Battlefield    []CardView  `json:"battlefield"`
	Void           []CardView  `json:"void"`
	Banished       []CardView  `json:"banished"`
}

// PromptView is the pending decision as shown to the prompted player.
type PromptView struct {
	Kind            string          `json:"kind"`
	Player          core.PlayerName `json:"player"`
	ValidCharacters []state.CardID  `json:"validCharacters,omitempty"`
	ValidStackCards []state.CardID  `json:"validStackCards,omitempty"`
	Choices         []string        `json:"choices,omitempty"`
	Optional        bool            `json:"optional,omitempty"`
	MinEnergy       core.Energy     `json:"minEnergy,omitempty"`
	MaxEnergy       core.Energy     `json:"maxEnergy,omitempty"`
}

// BattleView is the full battle as seen by one player. Hidden information
// (the opponent's hand, both decks) is reduced to counts.
type BattleView struct {
	Viewer      core.PlayerName  `json:"viewer"`
	Status      string           `json:"status"`
	Winner      *core.PlayerName `json:"winner,omitempty"`
	TurnID      core.TurnID      `json:"turnId"`
	ActiveTurn  core.PlayerName  `json:"activeTurn"`
	Phase       string           `json:"phase"`
	Priority    core.PlayerName  `json:"priority"`
	PointsToWin core.Points      `json:"pointsToWin"`
	You         PlayerView       `json:"you"`
	Opponent    PlayerView       `json:"opponent"`
	Stack       []StackCardView  `json:"stack"`
	Prompt      *PromptView      `json:"prompt,omitempty"`
}

// Render builds a viewer-scoped view of the battle.
func Render(b *state.BattleState, viewer core.PlayerName) BattleView {
	view := BattleView{
		Viewer:      viewer,
		Status:      b.Status.String(),
		Winner:      b.Winner,
		TurnID:      b.Turn.ID,
		ActiveTurn:  b.Turn.Active,
		Phase:       b.Phase.String(),
		Priority:    b.Priority,
		PointsToWin: b.PointsToWin,
		You:         renderPlayer(b, viewer, true),
		Opponent:    renderPlayer(b, viewer.Opponent(), false),
	}
	for _, id := range b.Cards.Stack {
		sv := StackCardView{CardView: renderCard(b, state.CardID(id))}
		if ss, ok := b.Cards.StackState[id]; ok {
			sv.Controller = ss.Controller
			if ss.TargetCharacter != nil {
				target := state.CardID(*ss.TargetCharacter)
				sv.TargetCharacter = &target
			}
			if ss.TargetStackCard != nil {
				target := state.CardID(*ss.TargetStackCard)
				sv.TargetStackCard = &target
			}
		}
		view.Stack = append(view.Stack, sv)
	}
	if b.Prompt != nil {
		view.Prompt = renderPrompt(b.Prompt)
	}
	return view
}

func renderPlayer(b *state.BattleState, player core.PlayerName, ownHand bool) PlayerView {
	p := b.Player(player)
	zones := b.Zones(player)
	view := PlayerView{
		Energy:         p.CurrentEnergy,
		ProducedEnergy: p.ProducedEnergy,
		Points:         p.Points,
		SparkTotal:     b.TotalSpark(player),
		DeckCount:      len(zones.Deck),
		HandCount:      zones.Hand.Len(),
	}
	if ownHand {
		for _, id := range zones.Hand.Items() {
			view.Hand = append(view.Hand, renderCard(b, state.CardID(id)))
		}
	}
	for _, id := range zones.Battlefield.Items() {
		cv := renderCard(b, state.CardID(id))
		cv.Spark = b.CharacterSpark(id)
		view.Battlefield = append(view.Battlefield, cv)
	}
	for _, id := range zones.Void.Items() {
		view.Void = append(view.Void, renderCard(b, state.CardID(id)))
	}
	for _, id := range zones.Banished.Items() {
		view.Banished = append(view.Banished, renderCard(b, state.CardID(id)))
	}
	return view
}

func renderCard(b *state.BattleState, id state.CardID) CardView {
	def := b.Cards.Card(id).Definition
	return CardView{
		ID:    id,
		Name:  def.Name,
		Type:  string(def.Type),
		Cost:  def.Cost,
		Spark: core.Spark(def.Spark),
		Fast:  def.Fast,
		Rules: def.RulesText,
	}
}

func renderPrompt(prompt *state.PromptData) *PromptView {
	view := &PromptView{
		Kind:      prompt.Kind.String(),
		Player:    prompt.Player,
		Optional:  prompt.Optional,
		MinEnergy: prompt.MinEnergy,
		MaxEnergy: prompt.MaxEnergy,
	}
	for _, id := range prompt.ValidCharacters.Items() {
		view.ValidCharacters = append(view.ValidCharacters, state.CardID(id))
	}
	for _, id := range prompt.ValidStackCards.Items() {
		view.ValidStackCards = append(view.ValidStackCards, state.CardID(id))
	}
	for _, choice := range prompt.Choices {
		view.Choices = append(view.Choices, choice.Kind.String())
	}
	return view
}
