package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/providers/llm"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/history"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/internal/storage/badger"
	"github.com/sandevgo/argand/internal/storage/file"
	"github.com/sandevgo/argand/internal/storage/memory"
	"github.com/sandevgo/argand/internal/storage/sqlite"
	"github.com/sandevgo/argand/internal/transport/cli"
	"github.com/sandevgo/argand/internal/transport/telegram"
	"github.com/sandevgo/argand/internal/transport/web"
	"github.com/sandevgo/argand/pkg/log"
	"github.com/sandevgo/argand/pkg/srv"
)

// App holds the wired domain services shared by every command.
type App struct {
	Config     *config.AppConfig
	Controller *app.Controller
	// Cleanups for storage, run on shutdown
	Services []srv.Service
}

// Close runs the cleanups of one-shot commands that never call ShutdownServices.
func (a *App) Close(ctx context.Context) {
	for i := len(a.Services) - 1; i >= 0; i-- {
		if err := a.Services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to release resources")
		}
	}
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	providerCfg := config.NewProviderConfig(ctx)
	solverCfg := config.NewSolverConfig(ctx)

	// 2. Storage
	slot, cleanup, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	a := &App{Config: appCfg}
	if cleanup != nil {
		a.Services = append(a.Services, srv.NewCleanup(cleanup))
	}

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, providerCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. History
	store := history.NewStore(slot, history.WithKey(appCfg.HistoryKey))
	entries := store.Load(ctx)
	logger.Info().Int("entries", len(entries)).Str("backend", appCfg.StorageBackend).Msg("history loaded")

	// 5. Controller
	a.Controller = app.NewController(solver.NewService(aiProvider, solverCfg), store)
	return a
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.BlobStore, func() error, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	switch cfg.StorageBackend {
	case config.StorageSQLite:
		db, err := sqlite.NewDB(ctx, cfg.SQLiteDriver, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewKV(db), db.Close, nil
	case config.StorageBadger:
		store, err := badger.Open(ctx, badger.DefaultConfig(cfg.GetBadgerPath()))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StorageFile:
		store, err := file.NewStorage(cfg.GetHistoryDir())
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.StorageMemory:
		return memory.NewStore(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// NewTransports builds the enabled user-facing transports. stop ends the
// process when an interactive transport exits on its own.
func NewTransports(ctx context.Context, a *App, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)
	var services []srv.Service

	if a.Config.EnableHTTP {
		server, err := web.NewServer(ctx, config.NewServerConfig(ctx), a.Controller)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize http server")
		}
		services = append(services, server)
	}

	if a.Config.IsTelegramSelected() {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), a.Controller)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	if a.Config.EnableCLI {
		repl, err := cli.NewReadLine(a.Controller, a.Config)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize cli")
		}
		services = append(services, &stopOnReturn{Service: repl, stop: stop})
	}

	if len(services) == 0 {
		logger.Warn().Msg("no transport enabled, set ENABLE_HTTP, ENABLE_TELEGRAM or ENABLE_CLI")
	}
	return services
}

// stopOnReturn cancels the process context once the wrapped service's
// Start returns.
type stopOnReturn struct {
	srv.Service
	stop context.CancelFunc
}

func (s *stopOnReturn) Start(ctx context.Context) error {
	defer s.stop()
	return s.Service.Start(ctx)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
