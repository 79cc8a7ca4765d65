package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/argand/pkg/log"
)

const (
	StorageSQLite = "sqlite"
	StorageBadger = "badger"
	StorageFile   = "file"
	StorageMemory = "memory"
)

type AppConfig struct {
	RuntimePath string `env:"ARGAND_RUNTIME_PATH" envDefault:".argand"`

	// Durable slot for the history store
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLiteDriver   string `env:"SQLITE_DRIVER" envDefault:"sqlite3"`
	HistoryKey     string `env:"HISTORY_KEY" envDefault:"complex_solver_history"`

	// Transport Flags
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "argand.db")
}

func (c AppConfig) GetBadgerPath() string {
	return filepath.Join(c.RuntimePath, "badger")
}

func (c AppConfig) GetHistoryDir() string {
	return filepath.Join(c.RuntimePath, "history")
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
