package solver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/providers/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadraticReply = `{
  "roots": [
    {"real": -0.5, "imaginary": 0.8660254, "label": "z1"},
    {"real": -0.5, "imaginary": -0.8660254, "label": "z2"}
  ],
  "latexSolution": "S = { -1/2 + i√3/2, -1/2 - i√3/2 }",
  "explanationSteps": ["**Discriminant**\nΔ = 1 - 4 = -3", "Racines conjuguées"],
  "equationType": "Équation du second degré"
}`

type fakeProvider struct {
	replies []string
	errs    []error
	calls   int
	lastReq core.ChatRequest
}

func (f *fakeProvider) Chat(_ context.Context, req core.ChatRequest) (core.Message, error) {
	i := f.calls
	f.calls++
	f.lastReq = req
	if i < len(f.errs) && f.errs[i] != nil {
		return core.Message{}, f.errs[i]
	}
	if i < len(f.replies) {
		return core.Message{Role: core.RoleAssistant, Content: f.replies[i]}, nil
	}
	return core.Message{Role: core.RoleAssistant, Content: f.replies[len(f.replies)-1]}, nil
}

func testConfig() config.SolverConfig {
	return config.SolverConfig{Timeout: time.Second}
}

func TestSolve_Success(t *testing.T) {
	p := &fakeProvider{replies: []string{quadraticReply}}
	s := NewService(p, testConfig())

	res, err := s.Solve(context.Background(), "z^2+z+1=0")
	require.NoError(t, err)

	require.Len(t, res.Roots, 2)
	assert.Equal(t, "z1", res.Roots[0].Label)
	assert.Equal(t, -0.5, res.Roots[0].Real)
	assert.InDelta(t, 0.866, res.Roots[0].Imaginary, 1e-3)
	assert.Empty(t, res.Roots[0].Color)
	assert.Equal(t, "Équation du second degré", res.EquationType)
	assert.Len(t, res.ExplanationSteps, 2)

	assert.Equal(t, systemInstruction, p.lastReq.System)
	require.Len(t, p.lastReq.Messages, 1)
	assert.Contains(t, p.lastReq.Messages[0].Content, "z^2+z+1=0")
	assert.JSONEq(t, responseSchema, string(p.lastReq.Schema))
}

func TestSolve_FencedReply(t *testing.T) {
	p := &fakeProvider{replies: []string{"```json\n" + quadraticReply + "\n```"}}

	res, err := NewService(p, testConfig()).Solve(context.Background(), "z^2+z+1=0")
	require.NoError(t, err)
	assert.Len(t, res.Roots, 2)
}

func TestSolve_EmptyRootsAllowed(t *testing.T) {
	reply := `{"roots":[],"latexSolution":"S = ∅","explanationSteps":[],"equationType":"Impossible"}`
	res, err := NewService(&fakeProvider{replies: []string{reply}}, testConfig()).Solve(context.Background(), "0 = 1")
	require.NoError(t, err)
	assert.Empty(t, res.Roots)
}

func TestSolve_InvalidReplies(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr error
	}{
		{"empty", "", ErrEmptyResponse},
		{"whitespace", "  \n ", ErrEmptyResponse},
		{"not json", "Les racines sont z1 et z2", ErrMalformedResponse},
		{"missing roots", `{"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"missing summary", `{"roots":[],"explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"missing steps", `{"roots":[],"latexSolution":"S","equationType":"t"}`, ErrMalformedResponse},
		{"missing type", `{"roots":[],"latexSolution":"S","explanationSteps":[]}`, ErrMalformedResponse},
		{"missing imaginary", `{"roots":[{"real":1,"label":"z1"}],"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"missing label", `{"roots":[{"real":1,"imaginary":0}],"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"string number", `{"roots":[{"real":"1","imaginary":0,"label":"z"}],"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"overflow", `{"roots":[{"real":1e999,"imaginary":0,"label":"z"}],"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
		{"null roots", `{"roots":null,"latexSolution":"S","explanationSteps":[],"equationType":"t"}`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(&fakeProvider{replies: []string{tt.reply}}, testConfig()).Solve(context.Background(), "z = 1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var se *SolveError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, FailureMessage, UserMessage(err))
		})
	}
}

func TestSolve_ZeroRootIsPresent(t *testing.T) {
	reply := `{"roots":[{"real":0,"imaginary":0,"label":"z1"}],"latexSolution":"S = {0}","explanationSteps":["z = 0"],"equationType":"Linéaire"}`
	res, err := NewService(&fakeProvider{replies: []string{reply}}, testConfig()).Solve(context.Background(), "z = 0")
	require.NoError(t, err)
	assert.Equal(t, core.ComplexRoot{Label: "z1"}, res.Roots[0])
}

func TestSolve_ProviderErrorNotRetriedByDefault(t *testing.T) {
	p := &fakeProvider{
		replies: []string{quadraticReply},
		errs:    []error{&llm.StatusError{Code: http.StatusServiceUnavailable, Body: "busy"}},
	}
	_, err := NewService(p, testConfig()).Solve(context.Background(), "z^2+z+1=0")
	require.Error(t, err)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, FailureMessage, UserMessage(err))
}

func TestSolve_RetriesTemporaryErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 2

	p := &fakeProvider{
		replies: []string{"", quadraticReply},
		errs:    []error{&llm.StatusError{Code: http.StatusTooManyRequests, Body: "slow down"}},
	}
	res, err := NewService(p, cfg).Solve(context.Background(), "z^2+z+1=0")
	require.NoError(t, err)
	assert.Len(t, res.Roots, 2)
	assert.Equal(t, 2, p.calls)
}

func TestSolve_PermanentErrorsStopRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 3

	p := &fakeProvider{
		replies: []string{quadraticReply},
		errs:    []error{&llm.StatusError{Code: http.StatusUnauthorized, Body: "bad key"}},
	}
	_, err := NewService(p, cfg).Solve(context.Background(), "z^2+z+1=0")
	require.Error(t, err)
	assert.Equal(t, 1, p.calls)

	var statusErr *llm.StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestSolve_InputTokenGuard(t *testing.T) {
	cfg := testConfig()
	cfg.MaxInputTokens = 8

	p := &fakeProvider{replies: []string{quadraticReply}}
	s := NewService(p, cfg)
	s.countTokens = func(text string) int { return len(strings.Fields(text)) }

	_, err := s.Solve(context.Background(), "z + z + z + z + z = 1")
	assert.ErrorIs(t, err, ErrInputTooLong)
	assert.Equal(t, 0, p.calls)
	assert.NotEqual(t, FailureMessage, UserMessage(err))

	_, err = s.Solve(context.Background(), "z = 1")
	assert.NoError(t, err)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Equal(t, FallbackMessage, UserMessage(errors.New("  ")))
	assert.Equal(t, "custom", UserMessage(&SolveError{Message: "custom"}))
	assert.Equal(t, FallbackMessage, UserMessage(&SolveError{Message: ""}))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences(`  {"a":1} `))
}
