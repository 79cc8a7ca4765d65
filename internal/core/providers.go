package core

import (
	"context"
	"encoding/json"
)

// ChatRequest is a single-shot completion. When Schema is set the provider
// asks the model for JSON output conforming to it.
type ChatRequest struct {
	System   string
	Messages []Message
	Schema   json.RawMessage
}

type AIProvider interface {
	Chat(ctx context.Context, req ChatRequest) (Message, error)
}

type Solver interface {
	Solve(ctx context.Context, equation string) (SolutionResult, error)
}
