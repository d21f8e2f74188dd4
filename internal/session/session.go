package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/ai"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/save"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
	"github.com/dreamtides/dreamtides-server-go/internal/display"
	"github.com/dreamtides/dreamtides-server-go/internal/repository"
)

// maxAgentSteps bounds consecutive AI actions so a misbehaving agent pair
// cannot spin the session forever.
const maxAgentSteps = 1000

// Session owns one battle: the authoritative state, its legal-action cache,
// and any AI agents seated at it. All access goes through the session's
// lock; the battle state itself is single-threaded.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	node     *ai.BattleNode
	registry *cards.Registry
	cfg      mutations.BattleConfig
	agents   [2]ai.Agent
	store    repository.SaveStore
	logger   *zap.Logger
}

// Options configures a new session.
type Options struct {
	Battle mutations.BattleConfig
	// Agents seats an AI at a player slot; nil slots are human-controlled.
	Agents [2]ai.Agent
	// Store, when set, persists a snapshot after every executed action.
	Store repository.SaveStore
}

// New creates a session with a fresh battle.
func New(registry *cards.Registry, opts Options, logger *zap.Logger) (*Session, error) {
	b, err := mutations.NewBattle(opts.Battle)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.New(),
		node:     ai.NewBattleNode(b),
		registry: registry,
		cfg:      opts.Battle,
		agents:   opts.Agents,
		store:    opts.Store,
	}
	s.logger = logger.With(zap.String("session_id", s.ID.String()))
	s.logger.Info("session created",
		zap.Uint64("seed", opts.Battle.Seed),
		zap.Int("points_to_win", int(b.PointsToWin)),
	)
	return s, nil
}

// Resume creates a session from a saved snapshot.
func Resume(registry *cards.Registry, snapshot *save.Snapshot, opts Options, logger *zap.Logger) (*Session, error) {
	b, err := snapshot.Restore(registry)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.New(),
		node:     ai.NewBattleNode(b),
		registry: registry,
		cfg:      opts.Battle,
		agents:   opts.Agents,
		store:    opts.Store,
	}
	s.logger = logger.With(zap.String("session_id", s.ID.String()))
	s.logger.Info("session resumed",
		zap.Int("turn", int(b.Turn.ID)),
		zap.String("status", b.Status.String()),
	)
	return s, nil
}

// HandleAction executes one action for a player, then lets seated agents
// act until a human decision or the end of the battle. Illegal actions are
// rejected without touching the state.
func (s *Session) HandleAction(ctx context.Context, player core.PlayerName, action state.BattleAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action.Kind {
	case state.ActionDebugRestartBattle:
		return s.restart()
	case state.ActionDebugSetOpponentAgent:
		return s.setAgent(player.Opponent(), action.AgentName)
	}

	if !s.node.LegalActions(player).Contains(action) {
		return fmt.Errorf("action %s is not legal for %s", action, player)
	}
	if err := s.execute(player, action); err != nil {
		return err
	}
	if err := s.stepAgents(); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *Session) execute(player core.PlayerName, action state.BattleAction) error {
	if err := s.node.Execute(player, action); err != nil {
		s.logger.Error("action failed",
			zap.String("player", player.String()),
			zap.String("action", action.String()),
			zap.Error(err),
		)
		return err
	}
	b := s.node.State
	s.logger.Info("action executed",
		zap.String("player", player.String()),
		zap.String("action", action.String()),
		zap.Int("turn", int(b.Turn.ID)),
		zap.String("phase", b.Phase.String()),
	)
	return nil
}

// stepAgents advances AI-controlled seats until a human is to act or the
// battle ends.
func (s *Session) stepAgents() error {
	for i := 0; i < maxAgentSteps; i++ {
		player, ok := s.node.ToAct()
		if !ok {
			s.logFinished()
			return nil
		}
		agent := s.agents[player]
		if agent == nil {
			return nil
		}
		action, err := agent.SelectAction(s.node, player)
		if err != nil {
			return fmt.Errorf("agent %s: %w", agent.Name(), err)
		}
		if err := s.execute(player, action); err != nil {
			return err
		}
	}
	return fmt.Errorf("agents exceeded %d consecutive actions", maxAgentSteps)
}

func (s *Session) logFinished() {
	b := s.node.State
	winner := "draw"
	if b.Winner != nil {
		winner = b.Winner.String()
	}
	s.logger.Info("battle finished",
		zap.String("winner", winner),
		zap.Int("turns", int(b.Turn.ID)),
		zap.Int("actions", len(b.History)),
	)
}

func (s *Session) restart() error {
	b, err := mutations.NewBattle(s.cfg)
	if err != nil {
		return err
	}
	s.node = ai.NewBattleNode(b)
	s.logger.Info("battle restarted", zap.Uint64("seed", s.cfg.Seed))
	return s.stepAgents()
}

func (s *Session) setAgent(player core.PlayerName, name string) error {
	if name == "" {
		s.agents[player] = nil
		s.logger.Info("agent cleared", zap.String("player", player.String()))
		return nil
	}
	agent, err := ai.NewAgent(name, s.cfg.Seed)
	if err != nil {
		return err
	}
	s.agents[player] = agent
	s.logger.Info("agent set",
		zap.String("player", player.String()),
		zap.String("agent", name),
	)
	return s.stepAgents()
}

func (s *Session) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	snapshot := save.Capture(s.node.State)
	if err := s.store.Save(ctx, s.ID, snapshot); err != nil {
		s.logger.Error("persist failed", zap.Error(err))
		return err
	}
	return nil
}

// View renders the battle for one player.
func (s *Session) View(player core.PlayerName) display.BattleView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return display.Render(s.node.State, player)
}

// LegalActions returns the player's current legal actions.
func (s *Session) LegalActions(player core.PlayerName) []state.BattleAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.node.LegalActions(player).All()
}

// Start lets seated agents act first when the AI side opens the battle.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stepAgents(); err != nil {
		return err
	}
	return s.persist(ctx)
}
