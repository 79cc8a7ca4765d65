// Package solver asks a language model to solve an equation and validates
// the structured answer.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/providers/llm"
	"github.com/sandevgo/argand/pkg/log"
	"github.com/sandevgo/argand/pkg/retry"
)

type Service struct {
	provider    core.AIProvider
	cfg         core.SolverConfig
	retrier     *retry.Retrier
	countTokens func(string) int
}

func NewService(provider core.AIProvider, cfg core.SolverConfig) *Service {
	rc := retry.NewDefaultConfig()
	rc.MaxRetries = max(cfg.GetMaxRetries(), 0)

	return &Service{
		provider:    provider,
		cfg:         cfg,
		retrier:     retry.NewRetrier(rc),
		countTokens: countTokens,
	}
}

// Solve returns the validated solution for equation. Every failure is a
// *SolveError carrying the user-facing message.
func (s *Service) Solve(ctx context.Context, equation string) (core.SolutionResult, error) {
	logger := log.FromCtx(ctx).With().Str("equation", equation).Logger()

	if limit := s.cfg.GetMaxInputTokens(); limit > 0 {
		if n := s.countTokens(equation); n > limit {
			solveTotal.WithLabelValues("rejected").Inc()
			logger.Warn().Int("tokens", n).Int("limit", limit).Msg("equation rejected")
			return core.SolutionResult{}, newSolveError(ErrInputTooLong)
		}
	}

	if timeout := s.cfg.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := core.ChatRequest{
		System:   systemInstruction,
		Messages: []core.Message{{Role: core.RoleUser, Content: userPrompt(equation)}},
		Schema:   []byte(responseSchema),
	}

	start := time.Now()
	var reply core.Message
	err := s.retrier.Do(ctx, func() error {
		var err error
		reply, err = s.provider.Chat(ctx, req)
		if err != nil && !temporary(err) {
			return retry.Permanent(err)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("model call failed, retrying")
		}
		return err
	})
	solveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		solveTotal.WithLabelValues("transport_error").Inc()
		logger.Error().Err(err).Msg("model call failed")
		return core.SolutionResult{}, newSolveError(err)
	}

	solution, err := decodeSolution(reply.Content)
	if err != nil {
		result := "malformed"
		if errors.Is(err, ErrEmptyResponse) {
			result = "empty"
		}
		solveTotal.WithLabelValues(result).Inc()
		logger.Error().Err(err).Str("reply", truncate(reply.Content, 200)).Msg("invalid model answer")
		return core.SolutionResult{}, newSolveError(err)
	}

	solveTotal.WithLabelValues("ok").Inc()
	logger.Info().
		Int("roots", len(solution.Roots)).
		Str("type", solution.EquationType).
		Dur("took", time.Since(start)).
		Msg("equation solved")

	return solution, nil
}

func temporary(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	// no status code means the request never got an answer
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
