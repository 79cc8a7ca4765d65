package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/argand/pkg/log"
)

type ProviderConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`
	Model    string `env:"LLM_MODEL" envDefault:"gemini-2.5-flash"`
	APIKey   string `env:"LLM_API_KEY"`
	// Only used by ollama and custom providers
	BaseURL string `env:"LLM_BASE_URL"`
}

func NewProviderConfig(ctx context.Context) *ProviderConfig {
	c := &ProviderConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Provider config")
	}
	return c
}

func (c ProviderConfig) GetProvider() string { return c.Provider }
func (c ProviderConfig) GetModel() string    { return c.Model }
func (c ProviderConfig) GetAPIKey() string   { return c.APIKey }
func (c ProviderConfig) GetBaseURL() string  { return c.BaseURL }
