package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/argand/pkg/log"
)

type SolverConfig struct {
	// 0 disables the input token guard
	MaxInputTokens int           `env:"SOLVER_MAX_INPUT_TOKENS" envDefault:"512"`
	Timeout        time.Duration `env:"SOLVER_TIMEOUT" envDefault:"2m"`
	// Transport-level retries only; solver failures are surfaced as-is by default
	MaxRetries int `env:"SOLVER_MAX_RETRIES" envDefault:"0"`
}

func NewSolverConfig(ctx context.Context) *SolverConfig {
	c := &SolverConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Solver config")
	}
	return c
}

func (c SolverConfig) GetMaxInputTokens() int    { return c.MaxInputTokens }
func (c SolverConfig) GetTimeout() time.Duration { return c.Timeout }
func (c SolverConfig) GetMaxRetries() int        { return c.MaxRetries }
