// Package app is the boundary between transports and the solving core. It
// owns the history store and serialises submissions.
package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/history"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/pkg/log"
)

var (
	ErrBusy          = errors.New("a solve request is already in progress")
	ErrEmptyEquation = errors.New("equation is empty")
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Snapshot is the submission state shown by the UI.
type Snapshot struct {
	State     State                `json:"state"`
	Equation  string               `json:"equation,omitempty"`
	Solution  *core.SolutionResult `json:"solution,omitempty"`
	Error     string               `json:"error,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Outcome of a successful submission. Entry is the history entry holding the
// equation; Added is false when it was already recorded.
type Outcome struct {
	Solution core.SolutionResult `json:"solution"`
	Entry    *core.HistoryEntry  `json:"entry,omitempty"`
	Added    bool                `json:"added"`
}

type Controller struct {
	solver   core.Solver
	history  *history.Store
	inflight atomic.Bool
	now      func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func NewController(s core.Solver, h *history.Store) *Controller {
	c := &Controller{
		solver:  s,
		history: h,
		now:     time.Now,
	}
	c.snap = Snapshot{State: StateIdle, UpdatedAt: c.now()}
	return c
}

// SubmitEquation solves text and records it in the history. Only one
// submission runs at a time; others fail with ErrBusy. The solve is not
// cancelled when ctx is.
func (c *Controller) SubmitEquation(ctx context.Context, text string) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		return Outcome{}, ErrEmptyEquation
	}
	if !c.inflight.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}
	defer c.inflight.Store(false)

	ctx = context.WithoutCancel(ctx)
	logger := log.FromCtx(ctx)
	c.setSnapshot(Snapshot{State: StateLoading, Equation: text})

	solution, err := c.solver.Solve(ctx, text)
	if err != nil {
		msg := solver.UserMessage(err)
		c.setSnapshot(Snapshot{State: StateError, Equation: text, Error: msg})
		logger.Warn().Err(err).Str("equation", text).Msg("submission failed")
		return Outcome{}, err
	}

	out := Outcome{Solution: solution}
	if entry, added := c.history.Ingest(ctx, text, solution); added {
		out.Entry, out.Added = entry, true
	} else if existing, ok := c.history.Find(text); ok {
		out.Entry = &existing
	}

	c.setSnapshot(Snapshot{State: StateSuccess, Equation: text, Solution: &solution})
	return out, nil
}

// Busy reports whether a submission is outstanding.
func (c *Controller) Busy() bool {
	return c.inflight.Load()
}

func (c *Controller) State() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func (c *Controller) setSnapshot(s Snapshot) {
	s.UpdatedAt = c.now()
	c.mu.Lock()
	c.snap = s
	c.mu.Unlock()
}

// CurrentHistory returns the entries, most recent first.
func (c *Controller) CurrentHistory() []core.HistoryEntry {
	return c.history.Entries()
}

// AggregatedRoots returns every root of the history tagged with its entry.
func (c *Controller) AggregatedRoots() []core.ComplexRoot {
	return plot.Aggregate(c.history.Entries())
}

// PurgeHistory clears the history. Confirmation is the caller's concern.
func (c *Controller) PurgeHistory(ctx context.Context) {
	c.history.Purge(ctx)
}

func (c *Controller) Examples() []core.Example {
	return Examples()
}
