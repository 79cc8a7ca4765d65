package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type spySlot struct {
	*memory.Store
	writes  int
	deletes int
	failAll bool
}

func newSpySlot() *spySlot {
	return &spySlot{Store: memory.NewStore()}
}

func (s *spySlot) Read(ctx context.Context, key string) ([]byte, error) {
	if s.failAll {
		return nil, errors.New("disk on fire")
	}
	return s.Store.Read(ctx, key)
}

func (s *spySlot) Write(ctx context.Context, key string, blob []byte) error {
	s.writes++
	if s.failAll {
		return errors.New("disk on fire")
	}
	return s.Store.Write(ctx, key, blob)
}

func (s *spySlot) Delete(ctx context.Context, key string) error {
	s.deletes++
	if s.failAll {
		return errors.New("disk on fire")
	}
	return s.Store.Delete(ctx, key)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(slot core.BlobStore) *Store {
	return NewStore(slot, WithClock(func() time.Time { return fixedNow }), WithIDFunc(sequentialIDs()))
}

func solution(labels ...string) core.SolutionResult {
	roots := make([]core.ComplexRoot, len(labels))
	for i, l := range labels {
		roots[i] = core.ComplexRoot{Real: float64(i), Imaginary: 1, Label: l}
	}
	return core.SolutionResult{
		Roots:            roots,
		LatexSolution:    "S = {}",
		ExplanationSteps: []string{"step"},
		EquationType:     "Polynomiale",
	}
}

func persisted(t *testing.T, slot core.BlobStore) []core.HistoryEntry {
	t.Helper()
	blob, err := slot.Read(context.Background(), DefaultKey)
	require.NoError(t, err)
	var entries []core.HistoryEntry
	require.NoError(t, json.Unmarshal(blob, &entries))
	return entries
}

func seed(t *testing.T, slot core.BlobStore, entries ...core.HistoryEntry) {
	t.Helper()
	blob, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, slot.Write(context.Background(), DefaultKey, blob))
}

func TestStore_IngestMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	s := newTestStore(slot)
	s.Load(ctx)

	_, ok := s.Ingest(ctx, "z^2 + 1 = 0", solution("z1", "z2"))
	require.True(t, ok)
	_, ok = s.Ingest(ctx, "z^3 - 8 = 0", solution("z1", "z2", "z3"))
	require.True(t, ok)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "z^3 - 8 = 0", entries[0].Equation)
	assert.Equal(t, "z^2 + 1 = 0", entries[1].Equation)

	assert.Equal(t, entries, persisted(t, slot))
	assert.Equal(t, 2, slot.writes)
}

func TestStore_IngestDuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	clock := fixedNow
	s := NewStore(slot, WithClock(func() time.Time { return clock }), WithIDFunc(sequentialIDs()))

	first, ok := s.Ingest(ctx, "z^4 - 1 = 0", solution("z1"))
	require.True(t, ok)
	_, ok = s.Ingest(ctx, "z^2 = -4", solution("z1"))
	require.True(t, ok)

	clock = clock.Add(time.Hour)
	dup, ok := s.Ingest(ctx, "z^4 - 1 = 0", solution("other"))
	assert.False(t, ok)
	assert.Nil(t, dup)

	entries := s.Entries()
	require.Len(t, entries, 2)
	// not bubbled to the top, not refreshed
	assert.Equal(t, "z^2 = -4", entries[0].Equation)
	assert.Equal(t, first.Timestamp, entries[1].Timestamp)
	assert.Equal(t, first.Color, entries[1].Color)
	assert.Equal(t, "z1", entries[1].Solution.Roots[0].Label)
	assert.Equal(t, 2, slot.writes)
}

func TestStore_EquationKeptVerbatim(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newSpySlot())

	_, ok := s.Ingest(ctx, "z^2+1=0", solution("z1"))
	require.True(t, ok)
	_, ok = s.Ingest(ctx, "z^2 + 1 = 0", solution("z1"))
	assert.True(t, ok, "equations differing in spacing are distinct")
	assert.Equal(t, 2, s.Len())
}

func TestStore_ColorsCycleByInsertion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newSpySlot())

	for k := 0; k < 20; k++ {
		entry, ok := s.Ingest(ctx, fmt.Sprintf("z^%d = 1", k+1), solution("z1"))
		require.True(t, ok)
		assert.Equal(t, Palette[k%9], entry.Color, "entry %d", k)
		assert.Equal(t, fmt.Sprintf("id-%d", k+1), entry.ID)
		assert.Equal(t, fixedNow.UnixMilli(), entry.Timestamp)
	}
}

func TestStore_ColorsIndependentOfPurge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newSpySlot())

	for k := 0; k < 3; k++ {
		_, ok := s.Ingest(ctx, fmt.Sprintf("eq%d", k), solution("z1"))
		require.True(t, ok)
	}
	s.Purge(ctx)

	entry, ok := s.Ingest(ctx, "eq3", solution("z1"))
	require.True(t, ok)
	assert.Equal(t, Palette[3], entry.Color)
}

func TestStore_LoadAppliesRetention(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	day := 24 * time.Hour

	seed(t, slot,
		core.HistoryEntry{ID: "recent", Timestamp: fixedNow.Add(-29 * day).UnixMilli(), Equation: "a", Color: Palette[1]},
		core.HistoryEntry{ID: "stale", Timestamp: fixedNow.Add(-31 * day).UnixMilli(), Equation: "b", Color: Palette[0]},
	)
	slot.writes = 0

	s := newTestStore(slot)
	entries := s.Load(ctx)

	require.Len(t, entries, 1)
	assert.Equal(t, "recent", entries[0].ID)
	assert.Equal(t, 1, slot.writes, "filtered history is re-persisted")
	assert.Equal(t, entries, persisted(t, slot))
}

func TestStore_LoadWithoutEvictionDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	seed(t, slot, core.HistoryEntry{ID: "x", Timestamp: fixedNow.Add(-29 * 24 * time.Hour).UnixMilli(), Equation: "a"})
	slot.writes = 0

	entries := newTestStore(slot).Load(ctx)
	assert.Len(t, entries, 1)
	assert.Equal(t, 0, slot.writes)
}

func TestStore_RetentionBoundary(t *testing.T) {
	assert.False(t, expired(fixedNow, fixedNow.Add(-RetentionWindow).UnixMilli()))
	assert.True(t, expired(fixedNow, fixedNow.Add(-RetentionWindow).UnixMilli()-1))
	assert.False(t, expired(fixedNow, fixedNow.UnixMilli()))
}

func TestStore_LoadSoftFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, newTestStore(newSpySlot()).Load(ctx))
	})

	t.Run("corrupt", func(t *testing.T) {
		slot := newSpySlot()
		require.NoError(t, slot.Store.Write(ctx, DefaultKey, []byte("{not json")))
		assert.Empty(t, newTestStore(slot).Load(ctx))
	})

	t.Run("read error", func(t *testing.T) {
		slot := newSpySlot()
		slot.failAll = true
		s := newTestStore(slot)
		assert.Empty(t, s.Load(ctx))

		// writes keep failing but memory stays authoritative
		entry, ok := s.Ingest(ctx, "z = 1", solution("z1"))
		require.True(t, ok)
		assert.Equal(t, []core.HistoryEntry{*entry}, s.Entries())
		s.Purge(ctx)
		assert.Empty(t, s.Entries())
	})
}

func TestStore_ColorsSeededFromLoadedCount(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	seed(t, slot,
		core.HistoryEntry{ID: "b", Timestamp: fixedNow.UnixMilli(), Equation: "b", Color: Palette[1]},
		core.HistoryEntry{ID: "a", Timestamp: fixedNow.UnixMilli(), Equation: "a", Color: Palette[0]},
	)

	s := newTestStore(slot)
	s.Load(ctx)

	entry, ok := s.Ingest(ctx, "c", solution("z1"))
	require.True(t, ok)
	assert.Equal(t, Palette[2], entry.Color)
}

func TestStore_PurgeThenLoad(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	s := newTestStore(slot)

	_, ok := s.Ingest(ctx, "z^2 + z + 1 = 0", solution("z1", "z2"))
	require.True(t, ok)

	s.Purge(ctx)
	assert.Empty(t, s.Entries())
	_, err := slot.Read(ctx, DefaultKey)
	assert.ErrorIs(t, err, core.ErrBlobNotFound)

	// idempotent
	s.Purge(ctx)
	assert.Equal(t, 2, slot.deletes)

	assert.Empty(t, newTestStore(slot).Load(ctx))
}

func TestStore_EntriesIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(newSpySlot())
	_, ok := s.Ingest(ctx, "z = i", solution("z1"))
	require.True(t, ok)

	entries := s.Entries()
	entries[0].Equation = "mutated"

	got, found := s.Find("z = i")
	assert.True(t, found)
	assert.Equal(t, "z = i", got.Equation)
}

func TestStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	slot := newSpySlot()
	s := NewStore(slot, WithKey("other"))

	_, ok := s.Ingest(ctx, "z = 2", solution("z1"))
	require.True(t, ok)

	_, err := slot.Read(ctx, "other")
	assert.NoError(t, err)
	_, err = slot.Read(ctx, DefaultKey)
	assert.ErrorIs(t, err, core.ErrBlobNotFound)
}
