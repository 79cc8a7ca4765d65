// Package history keeps the deduplicated, time-windowed record of solved
// equations and persists it as a single blob.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/pkg/log"
)

const DefaultKey = "complex_solver_history"

type Option func(*Store)

// WithKey sets the storage slot name.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Store owns the in-memory entries, most recent first. Storage failures are
// logged and absorbed; the in-memory state stays authoritative.
type Store struct {
	mu      sync.RWMutex
	slot    core.BlobStore
	key     string
	now     func() time.Time
	newID   func() string
	entries []core.HistoryEntry
	// ingested counts entries created since the store was loaded, seeded with
	// the loaded count. It drives color assignment and survives purges.
	ingested int
}

func NewStore(slot core.BlobStore, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory entries with the persisted ones, dropping those
// outside the retention window. Evictions are written back immediately.
func (s *Store) Load(ctx context.Context) []core.HistoryEntry {
	logger := log.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.read(ctx)
	kept, evicted := prune(s.now(), loaded)

	s.entries = kept
	s.ingested = len(kept)
	entriesGauge.Set(float64(len(kept)))

	if evicted > 0 {
		evictedTotal.Add(float64(evicted))
		logger.Info().Int("evicted", evicted).Int("kept", len(kept)).Msg("history retention applied")
		s.persist(ctx)
	}

	return cloneEntries(s.entries)
}

func (s *Store) read(ctx context.Context) []core.HistoryEntry {
	logger := log.FromCtx(ctx)

	blob, err := s.slot.Read(ctx, s.key)
	if err != nil {
		if !errors.Is(err, core.ErrBlobNotFound) {
			storageErrors.WithLabelValues("read").Inc()
			logger.Error().Err(err).Str("key", s.key).Msg("failed to read history")
		}
		return nil
	}

	var entries []core.HistoryEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		storageErrors.WithLabelValues("decode").Inc()
		logger.Error().Err(err).Str("key", s.key).Msg("history blob is corrupt, starting empty")
		return nil
	}
	return entries
}

// Ingest records a solved equation. An equation already present is left
// untouched and reported with ok=false.
func (s *Store) Ingest(ctx context.Context, equation string, solution core.SolutionResult) (*core.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Equation == equation {
			ingestTotal.WithLabelValues("duplicate").Inc()
			log.FromCtx(ctx).Debug().Str("equation", equation).Msg("equation already in history")
			return nil, false
		}
	}

	entry := core.HistoryEntry{
		ID:        s.newID(),
		Timestamp: s.now().UnixMilli(),
		Equation:  equation,
		Solution:  solution,
		Color:     ColorAt(s.ingested),
	}
	s.ingested++

	s.entries = append([]core.HistoryEntry{entry}, s.entries...)
	entriesGauge.Set(float64(len(s.entries)))
	ingestTotal.WithLabelValues("added").Inc()

	s.persist(ctx)

	return &entry, true
}

// Purge clears the history and removes the persisted slot.
func (s *Store) Purge(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	entriesGauge.Set(0)

	if err := s.slot.Delete(ctx, s.key); err != nil {
		storageErrors.WithLabelValues("delete").Inc()
		log.FromCtx(ctx).Error().Err(err).Str("key", s.key).Msg("failed to delete history")
		return
	}
	log.FromCtx(ctx).Info().Msg("history purged")
}

// Entries returns a copy of the current entries, most recent first.
func (s *Store) Entries() []core.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Find returns the entry recorded for equation, if any.
func (s *Store) Find(equation string) (core.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.Equation == equation {
			return e, true
		}
	}
	return core.HistoryEntry{}, false
}

// persist writes the whole sequence. Caller holds the lock.
func (s *Store) persist(ctx context.Context) {
	entries := s.entries
	if entries == nil {
		entries = []core.HistoryEntry{}
	}

	blob, err := json.Marshal(entries)
	if err != nil {
		storageErrors.WithLabelValues("encode").Inc()
		log.FromCtx(ctx).Error().Err(err).Msg("failed to encode history")
		return
	}

	if err := s.slot.Write(ctx, s.key, blob); err != nil {
		storageErrors.WithLabelValues("write").Inc()
		log.FromCtx(ctx).Error().Err(err).Str("key", s.key).Msg("failed to persist history")
	}
}

func cloneEntries(entries []core.HistoryEntry) []core.HistoryEntry {
	out := make([]core.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}
