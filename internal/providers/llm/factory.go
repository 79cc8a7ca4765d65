package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/pkg/log"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderCustom     = "custom"
)

// Providers lists the accepted LLM_PROVIDER values.
var Providers = []string{
	ProviderGemini,
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderOpenRouter,
	ProviderOllama,
	ProviderCustom,
}

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, cfg core.ProviderConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.GetProvider()).
		Str("model", cfg.GetModel()).
		Msg("starting llm provider")

	if cfg.GetModel() == "" {
		return nil, fmt.Errorf("no model configured for provider %s", cfg.GetProvider())
	}

	switch cfg.GetProvider() {
	case ProviderGemini:
		return NewGemini(cfg.GetAPIKey(), cfg.GetModel(), cfg.GetBaseURL()), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg.GetAPIKey(), cfg.GetModel(), cfg.GetBaseURL()), nil
	case ProviderAnthropic:
		return NewAnthropic(cfg.GetAPIKey(), cfg.GetModel(), cfg.GetBaseURL()), nil
	case ProviderOpenRouter:
		return NewOpenRouter(cfg.GetAPIKey(), cfg.GetModel()), nil
	case ProviderOllama:
		return NewOllama(cfg.GetBaseURL(), cfg.GetAPIKey(), cfg.GetModel()), nil
	case ProviderCustom:
		if cfg.GetBaseURL() == "" {
			return nil, fmt.Errorf("custom provider requires LLM_BASE_URL")
		}
		return NewCustomOpenAI(cfg.GetBaseURL(), cfg.GetAPIKey(), cfg.GetModel()), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.GetProvider())
	}
}
