package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festaperfeita/festa/internal/types"
)

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "festa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	snap := Snapshot{
		IsAuthenticated: true,
		User: &types.UserProfile{
			ID:        "u1",
			Name:      "Maria",
			Email:     "maria@example.com",
			PartyType: types.PartyNatal,
		},
	}
	require.NoError(t, s.Save(ctx, snap))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsAuthenticated)
	assert.Equal(t, snap.User, got.User)
}

func TestSnapshot_LoadEmpty(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshot_OverwriteAndClear(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Snapshot{IsAuthenticated: true, User: &types.UserProfile{ID: "u1"}}))
	require.NoError(t, s.Save(ctx, Snapshot{IsAuthenticated: false, User: nil}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsAuthenticated)
	assert.Nil(t, got.User)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
