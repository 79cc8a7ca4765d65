package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/history"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solverFunc func(ctx context.Context, equation string) (core.SolutionResult, error)

func (f solverFunc) Solve(ctx context.Context, equation string) (core.SolutionResult, error) {
	return f(ctx, equation)
}

func conjugates() core.SolutionResult {
	return core.SolutionResult{
		Roots: []core.ComplexRoot{
			{Real: -0.5, Imaginary: 0.866, Label: "z1"},
			{Real: -0.5, Imaginary: -0.866, Label: "z2"},
		},
		LatexSolution:    "S = { -1/2 ± i√3/2 }",
		ExplanationSteps: []string{"Δ = -3"},
		EquationType:     "Second degré",
	}
}

func newController(s core.Solver) (*Controller, *history.Store) {
	h := history.NewStore(memory.NewStore())
	return NewController(s, h), h
}

func TestController_EndToEnd(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(solverFunc(func(_ context.Context, eq string) (core.SolutionResult, error) {
		return conjugates(), nil
	}))

	assert.Equal(t, StateIdle, c.State().State)

	out, err := c.SubmitEquation(ctx, "z^2+z+1=0")
	require.NoError(t, err)
	assert.True(t, out.Added)
	require.NotNil(t, out.Entry)
	assert.Len(t, out.Solution.Roots, 2)

	entries := c.CurrentHistory()
	require.Len(t, entries, 1)
	assert.Equal(t, history.Palette[0], entries[0].Color)

	roots := c.AggregatedRoots()
	require.Len(t, roots, 2)
	for _, r := range roots {
		assert.Equal(t, history.Palette[0], r.Color)
		assert.Equal(t, "z^2+z+1=0", r.SourceEquation)
	}

	snap := c.State()
	assert.Equal(t, StateSuccess, snap.State)
	require.NotNil(t, snap.Solution)
	assert.Equal(t, "z^2+z+1=0", snap.Equation)
}

func TestController_DuplicateReturnsExistingEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		return conjugates(), nil
	}))

	first, err := c.SubmitEquation(ctx, "z^2+z+1=0")
	require.NoError(t, err)

	again, err := c.SubmitEquation(ctx, "z^2+z+1=0")
	require.NoError(t, err)
	assert.False(t, again.Added)
	require.NotNil(t, again.Entry)
	assert.Equal(t, first.Entry.ID, again.Entry.ID)
	assert.Len(t, c.CurrentHistory(), 1)
}

func TestController_BlankInputSkipsSolver(t *testing.T) {
	called := false
	c, _ := newController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		called = true
		return conjugates(), nil
	}))

	_, err := c.SubmitEquation(context.Background(), "   \t")
	assert.ErrorIs(t, err, ErrEmptyEquation)
	assert.False(t, called)
	assert.Equal(t, StateIdle, c.State().State)
}

func TestController_SolverFailureLeavesHistory(t *testing.T) {
	failure := &solver.SolveError{Message: solver.FailureMessage, Err: solver.ErrMalformedResponse}
	c, h := newController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		return core.SolutionResult{}, failure
	}))

	_, err := c.SubmitEquation(context.Background(), "z^^2")
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrMalformedResponse)
	assert.Equal(t, 0, h.Len())

	snap := c.State()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, solver.FailureMessage, snap.Error)
	assert.Nil(t, snap.Solution)
}

func TestController_GenericFallbackMessage(t *testing.T) {
	c, _ := newController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		return core.SolutionResult{}, errors.New("")
	}))

	_, err := c.SubmitEquation(context.Background(), "z = 1")
	require.Error(t, err)
	assert.Equal(t, solver.FallbackMessage, c.State().Error)
}

func TestController_SingleInflight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c, _ := newController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		close(started)
		<-release
		return conjugates(), nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := c.SubmitEquation(context.Background(), "z^2+z+1=0")
		done <- err
	}()

	<-started
	assert.True(t, c.Busy())
	assert.Equal(t, StateLoading, c.State().State)

	_, err := c.SubmitEquation(context.Background(), "z^3 - 8 = 0")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("submission did not finish")
	}
	assert.False(t, c.Busy())
	assert.Len(t, c.CurrentHistory(), 1)
}

func TestController_SolveIgnoresCallerCancellation(t *testing.T) {
	var solveCtxErr error
	c, _ := newController(solverFunc(func(ctx context.Context, _ string) (core.SolutionResult, error) {
		solveCtxErr = ctx.Err()
		return conjugates(), nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SubmitEquation(ctx, "z^2+z+1=0")
	require.NoError(t, err)
	assert.NoError(t, solveCtxErr)
}

func TestController_Purge(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewStore()
	h := history.NewStore(slot)
	c := NewController(solverFunc(func(context.Context, string) (core.SolutionResult, error) {
		return conjugates(), nil
	}), h)

	_, err := c.SubmitEquation(ctx, "z^2+z+1=0")
	require.NoError(t, err)

	c.PurgeHistory(ctx)
	assert.Empty(t, c.CurrentHistory())
	assert.Empty(t, c.AggregatedRoots())

	assert.Empty(t, history.NewStore(slot).Load(ctx))
}

func TestExamples(t *testing.T) {
	ex := Examples()
	require.Len(t, ex, 4)
	assert.Equal(t, "z^2 + z + 1 = 0", ex[0].Equation)

	ex[0].Equation = "changed"
	assert.Equal(t, "z^2 + z + 1 = 0", Examples()[0].Equation)
}
