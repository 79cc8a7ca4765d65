package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/sandevgo/argand/internal/core"
)

// Gemini calls the generateContent endpoint of the Generative Language API.
type Gemini struct {
	baseProvider
}

func NewGemini(apiKey, model, baseURL string) *Gemini {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	return &Gemini{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType   string          `json:"responseMimeType,omitempty"`
	ResponseJSONSchema json.RawMessage `json:"responseJsonSchema,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (g *Gemini) Chat(ctx context.Context, req core.ChatRequest) (core.Message, error) {
	payload := geminiRequest{}
	if req.System != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	for _, m := range req.Messages {
		role := "user"
		switch m.Role {
		case core.RoleSystem:
			continue
		case core.RoleAssistant:
			role = "model"
		}
		payload.Contents = append(payload.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}
	if len(req.Schema) > 0 {
		payload.GenerationConfig = &geminiGenerationConfig{
			ResponseMimeType:   "application/json",
			ResponseJSONSchema: req.Schema,
		}
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", url.PathEscape(g.model))
	headers := map[string]string{"x-goog-api-key": g.apiKey}

	var result geminiResponse
	if err := g.postJSON(ctx, path, payload, headers, &result); err != nil {
		return core.Message{}, err
	}

	if len(result.Candidates) == 0 {
		if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
			return core.Message{}, fmt.Errorf("prompt blocked: %s", result.PromptFeedback.BlockReason)
		}
		// an empty answer is reported by the caller
		return core.Message{Role: core.RoleAssistant}, nil
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return core.Message{Role: core.RoleAssistant, Content: sb.String()}, nil
}
