package state

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// BattleStatus tracks the battle's lifecycle.
type BattleStatus int

const (
	// StatusResolveMulligans means players are deciding their opening hands.
	StatusResolveMulligans BattleStatus = iota
	// StatusPlaying means the battle is in progress.
	StatusPlaying
	// StatusGameOver means a player has reached the point threshold or both
	// decks are exhausted.
	StatusGameOver
)

func (s BattleStatus) String() string {
	switch s {
	case StatusResolveMulligans:
		return "RESOLVE_MULLIGANS"
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// TurnPhase is the fixed phase progression within a turn.
type TurnPhase int

const (
	PhaseStarting TurnPhase = iota
	PhaseJudgment
	PhaseDreamwell
	PhaseDraw
	PhaseMain
	PhaseEnding
)

func (p TurnPhase) String() string {
	switch p {
	case PhaseStarting:
		return "STARTING"
	case PhaseJudgment:
		return "JUDGMENT"
	case PhaseDreamwell:
		return "DREAMWELL"
	case PhaseDraw:
		return "DRAW"
	case PhaseMain:
		return "MAIN"
	case PhaseEnding:
		return "ENDING"
	default:
		return "UNKNOWN"
	}
}

// TurnData identifies the current turn.
type TurnData struct {
	// Active is the player whose turn it is.
	Active core.PlayerName
	// ID increments every time a player starts a turn.
	ID core.TurnID
}

// Dreamwell is the shared energy-production track. Each activation raises
// the active player's produced energy by the next scheduled increment, then
// by one per activation once the schedule is exhausted.
type Dreamwell struct {
	Schedule  []core.Energy
	NextIndex int
}

// DefaultDreamwell returns the standard production track: two activations
// of two energy, then one per activation.
func DefaultDreamwell() Dreamwell {
	return Dreamwell{Schedule: []core.Energy{2, 2}}
}

// Advance returns the next increment and moves the track forward.
func (d *Dreamwell) Advance() core.Energy {
	if d.NextIndex < len(d.Schedule) {
		inc := d.Schedule[d.NextIndex]
		d.NextIndex++
		return inc
	}
	d.NextIndex++
	return 1
}

// Clone returns a deep copy.
func (d Dreamwell) Clone() Dreamwell {
	cp := d
	cp.Schedule = append([]core.Energy(nil), d.Schedule...)
	return cp
}

// AbilityKey identifies one ability slot on one card.
type AbilityKey struct {
	Card  CardID
	Index int
}

// AbilityState tracks ability bookkeeping that lives outside the cards
// themselves.
type AbilityState struct {
	// ActivatedThisTurnCycle records activated abilities used since the
	// controller's last turn started. Cleared for a player's cards when
	// their turn begins.
	ActivatedThisTurnCycle map[AbilityKey]bool
	// TriggeredThisTurn records once-per-turn triggered abilities that have
	// fired this turn. Cleared when any turn begins.
	TriggeredThisTurn map[AbilityKey]bool
	// BanishWhenLeavesPlay marks cards whose next move from play to a void
	// redirects to the banished zone instead.
	BanishWhenLeavesPlay CardSet[CardID]
	// PreventDissolve protects each player's characters from dissolve
	// effects until end of turn.
	PreventDissolve [2]bool
}

// NewAbilityState returns empty bookkeeping.
func NewAbilityState() *AbilityState {
	return &AbilityState{
		ActivatedThisTurnCycle: make(map[AbilityKey]bool),
		TriggeredThisTurn:      make(map[AbilityKey]bool),
	}
}

// Clone returns a deep copy.
func (a *AbilityState) Clone() *AbilityState {
	cp := &AbilityState{
		ActivatedThisTurnCycle: make(map[AbilityKey]bool, len(a.ActivatedThisTurnCycle)),
		TriggeredThisTurn:      make(map[AbilityKey]bool, len(a.TriggeredThisTurn)),
		BanishWhenLeavesPlay:   a.BanishWhenLeavesPlay,
		PreventDissolve:        a.PreventDissolve,
	}
	for k, v := range a.ActivatedThisTurnCycle {
		cp.ActivatedThisTurnCycle[k] = v
	}
	for k, v := range a.TriggeredThisTurn {
		cp.TriggeredThisTurn[k] = v
	}
	return cp
}

// Dirty flags raised by mutations to invalidate cached legal-action
// computations held outside the state.
const (
	// DirtyZones is raised whenever any card changes zone.
	DirtyZones uint32 = 1 << iota
	// DirtyPrompt is raised when a prompt is set or cleared.
	DirtyPrompt
	// DirtyTurn is raised on phase and priority changes.
	DirtyTurn
	// DirtyAbilities is raised when ability bookkeeping changes.
	DirtyAbilities
)

// DefaultPointsToWin is the victory-point threshold.
const DefaultPointsToWin core.Points = 25

// BattleState is the complete authoritative state of one battle. It holds
// no derived caches; everything needed to resume a battle is here, and a
// gob snapshot of it round-trips losslessly.
type BattleState struct {
	// Seed is the seed the battle started from, kept for restarts.
	Seed uint64

	Players [2]*PlayerState
	Cards   *BattleCards

	Status BattleStatus
	// Winner is set when Status is StatusGameOver. Nil means a draw.
	Winner *core.PlayerName

	Turn  TurnData
	Phase TurnPhase
	// Priority is the player currently entitled to act. Playing a card
	// passes priority to the opponent.
	Priority core.PlayerName

	// Prompt is the pending decision, if any. At most one exists; setting a
	// second is an invariant violation.
	Prompt *PromptData
	// ResolvingStack is set while a pass-priority resolution sweep is in
	// progress, so that answering a mid-resolution prompt resumes the sweep.
	ResolvingStack bool

	Rng       Rng
	Triggers  *TriggerState
	Abilities *AbilityState
	Dreamwell Dreamwell

	PointsToWin core.Points

	// History records every executed action in order.
	History []HistoryEntry

	// DirtyFlags accumulates cache-invalidation bits raised by mutations.
	// External caches read and clear them; the flags carry no game meaning.
	DirtyFlags uint32
}

// Player returns the state for a player slot.
func (b *BattleState) Player(name core.PlayerName) *PlayerState {
	return b.Players[name]
}

// Zones returns a player's zone containers.
func (b *BattleState) Zones(name core.PlayerName) *PlayerZones {
	return b.Cards.Zones[name]
}

// MarkDirty raises cache-invalidation flags.
func (b *BattleState) MarkDirty(flags uint32) {
	b.DirtyFlags |= flags
}

// TakeDirty returns and clears the accumulated flags.
func (b *BattleState) TakeDirty() uint32 {
	f := b.DirtyFlags
	b.DirtyFlags = 0
	return f
}

// Clone returns an exact deep copy, including the RNG position. Used by
// snapshotting.
func (b *BattleState) Clone() *BattleState {
	cp := *b
	cp.Players = [2]*PlayerState{b.Players[0].Clone(), b.Players[1].Clone()}
	cp.Cards = b.Cards.Clone()
	if b.Winner != nil {
		w := *b.Winner
		cp.Winner = &w
	}
	if b.Prompt != nil {
		cp.Prompt = b.Prompt.Clone()
	}
	cp.Triggers = b.Triggers.Clone()
	cp.Abilities = b.Abilities.Clone()
	cp.Dreamwell = b.Dreamwell.Clone()
	cp.History = append([]HistoryEntry(nil), b.History...)
	return &cp
}

// LogicalClone returns a deep copy with a forked RNG, for AI simulation.
// Playouts on the clone never perturb the parent's random stream.
func (b *BattleState) LogicalClone() *BattleState {
	cp := b.Clone()
	cp.Rng = b.Rng.Fork()
	return cp
}
