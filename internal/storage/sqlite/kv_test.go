package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sandevgo/argand/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	db, err := NewDB(context.Background(), DriverPure, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKV(db)
}

func TestKV_ReadMissing(t *testing.T) {
	kv := newTestKV(t)

	_, err := kv.Read(context.Background(), "complex_solver_history")
	assert.ErrorIs(t, err, core.ErrBlobNotFound)
}

func TestKV_WriteOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	require.NoError(t, kv.Write(ctx, "k", []byte(`[1]`)))
	require.NoError(t, kv.Write(ctx, "k", []byte(`[1,2]`)))

	got, err := kv.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Read(ctx, "k")
	assert.ErrorIs(t, err, core.ErrBlobNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "argand.db")

	db, err := NewDB(ctx, DriverPure, path)
	require.NoError(t, err)
	require.NoError(t, NewKV(db).Write(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, DriverPure, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewKV(db).Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestNewDB_UnknownDriver(t *testing.T) {
	_, err := NewDB(context.Background(), "postgres", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}
