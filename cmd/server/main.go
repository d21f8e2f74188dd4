package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/ai"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/mutations"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/state"
	"github.com/dreamtides/dreamtides-server-go/internal/cards"
	"github.com/dreamtides/dreamtides-server-go/internal/config"
	"github.com/dreamtides/dreamtides-server-go/internal/repository"
	"github.com/dreamtides/dreamtides-server-go/internal/server"
	"github.com/dreamtides/dreamtides-server-go/internal/session"
)

var configPath = flag.String("config", "config/config.yaml", "path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting dreamtides server", zap.String("config", *configPath))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	registry, decks, err := loadCards(cfg.Battle)
	if err != nil {
		logger.Fatal("failed to load cards", zap.Error(err))
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open save store", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	var agents [2]ai.Agent
	if cfg.Battle.OpponentAgent != "" {
		agent, err := ai.NewAgent(cfg.Battle.OpponentAgent, cfg.Battle.Seed)
		if err != nil {
			logger.Fatal("failed to create opponent agent", zap.Error(err))
		}
		agents[core.PlayerTwo] = agent
	}

	sess, err := session.New(registry, session.Options{
		Battle: mutations.BattleConfig{
			Seed:        cfg.Battle.Seed,
			PointsToWin: core.Points(cfg.Battle.PointsToWin),
			Dreamwell:   dreamwellFromConfig(cfg.Battle),
			Decks:       decks,
		},
		Agents: agents,
		Store:  store,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create session", zap.Error(err))
	}
	if err := sess.Start(ctx); err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}

	srv := server.New(cfg.Server, sess, logger)
	go func() {
		if serveErr := srv.ListenAndServe(ctx); serveErr != nil {
			logger.Error("websocket server error", zap.Error(serveErr))
		}
	}()

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	cancel()
	logger.Info("dreamtides server stopped")
}

// loadCards resolves the card pool and both deck lists, falling back to the
// built-in core set when no files are configured.
func loadCards(cfg config.BattleConfig) (*cards.Registry, [2][]*cards.Definition, error) {
	registry := cards.CoreRegistry()
	if cfg.CardFile != "" {
		defs, err := cards.LoadDefinitions(cfg.CardFile)
		if err != nil {
			return nil, [2][]*cards.Definition{}, err
		}
		registry, err = cards.NewRegistry(defs)
		if err != nil {
			return nil, [2][]*cards.Definition{}, err
		}
	}

	deckList := cards.DefaultDeck()
	if cfg.DeckFile != "" {
		var err error
		deckList, err = cards.LoadDeck(cfg.DeckFile, registry)
		if err != nil {
			return nil, [2][]*cards.Definition{}, err
		}
	}

	var decks [2][]*cards.Definition
	for player := range decks {
		for _, name := range deckList.Cards {
			decks[player] = append(decks[player], registry.MustGet(name))
		}
	}
	return registry, decks, nil
}

func dreamwellFromConfig(cfg config.BattleConfig) state.Dreamwell {
	schedule := make([]core.Energy, len(cfg.DreamwellSchedule))
	for i, inc := range cfg.DreamwellSchedule {
		schedule[i] = core.Energy(inc)
	}
	return state.Dreamwell{Schedule: schedule}
}

// openStore opens the configured save store, preferring Postgres when both
// are enabled.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.SaveStore, error) {
	switch {
	case cfg.Database.Enabled:
		return repository.NewPostgresStore(ctx, cfg.Database.URL, logger)
	case cfg.Redis.Enabled:
		return repository.NewRedisStore(ctx, cfg.Redis.Address, cfg.Redis.TTL, logger)
	default:
		return nil, nil
	}
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
