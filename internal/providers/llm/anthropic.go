package llm

import (
	"context"

	"github.com/sandevgo/argand/internal/core"
)

const anthropicVersion = "2023-06-01"

// Anthropic has no response schema parameter; the schema is appended to the
// system prompt instead.
type Anthropic struct {
	baseProvider
	maxTokens int
}

func NewAnthropic(apiKey, model, baseURL string) *Anthropic {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	return &Anthropic{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
		maxTokens:    4096,
	}
}

func (a *Anthropic) Chat(ctx context.Context, req core.ChatRequest) (core.Message, error) {
	var messages []chatMessage
	for _, m := range req.Messages {
		if m.Role == core.RoleSystem {
			continue
		}
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	system := req.System
	if len(req.Schema) > 0 {
		system += "\n\nRéponds uniquement avec un objet JSON valide conforme à ce schéma, sans texte autour :\n" + string(req.Schema)
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": a.maxTokens,
		"messages":   messages,
	}
	if system != "" {
		payload["system"] = system
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := a.postJSON(ctx, "/v1/messages", payload, headers, &result); err != nil {
		return core.Message{}, err
	}

	var text string
	for _, c := range result.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	return core.Message{Role: core.RoleAssistant, Content: text}, nil
}
