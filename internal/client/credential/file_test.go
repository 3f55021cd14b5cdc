package credential

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "sub", "token"))
	require.NoError(t, err)
	return s
}

func TestFileStore_GetAbsent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "abc.def.ghi"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", got)

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "first"))
	require.NoError(t, s.Set(ctx, "second"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", got)
}

func TestFileStore_Clear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	// clearing again is not an error
	require.NoError(t, s.Clear(ctx))
}

func TestFileStore_EmptyFileMeansAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "   \n"))
	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_CancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Set(ctx, "x"), context.Canceled)
	require.ErrorIs(t, s.Clear(ctx), context.Canceled)
}
