package llm

import (
	"github.com/sandevgo/argand/internal/core"
)

const (
	DefaultOllamaURL     = "http://localhost:11434"
	DefaultOpenRouterURL = "https://openrouter.ai/api"
)

// bearer configures an OpenAI-compatible endpoint authenticated with
// "Authorization: Bearer <key>". An empty key sends no header.
func bearer(baseURL, apiKey, model string, headers map[string]string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		Model:        model,
		AuthHeader:   "Authorization",
		AuthPrefix:   "Bearer ",
		ExtraHeaders: headers,
	})
}

// NewOpenRouter identifies the app through OpenRouter's attribution headers.
func NewOpenRouter(apiKey, model string) *OpenAICompatible {
	return bearer(DefaultOpenRouterURL, apiKey, model, map[string]string{
		"HTTP-Referer": core.AppRepositoryURL,
		"X-Title":      core.AppName,
	})
}

// NewOllama targets the server's /v1 compatibility layer.
func NewOllama(baseURL, apiKey, model string) *OpenAICompatible {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	return bearer(baseURL, apiKey, model, nil)
}

func NewCustomOpenAI(baseURL, apiKey, model string) *OpenAICompatible {
	return bearer(baseURL, apiKey, model, nil)
}
