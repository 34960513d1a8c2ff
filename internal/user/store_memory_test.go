package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consentry/pkg/platform/sentinel"
)

func TestInMemoryStore_FindBySessionID(t *testing.T) {
	store := NewInMemoryStore()
	ctx := t.Context()

	require.NoError(t, store.Save(ctx, User{ID: "u1", SessionID: "sess-1"}))
	require.NoError(t, store.Save(ctx, User{ID: "u2"}))

	found, err := store.FindBySessionID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)

	_, err = store.FindBySessionID(ctx, "sess-unknown")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	// A blank session ID must never match users saved without one.
	_, err = store.FindBySessionID(ctx, "")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	ctx := t.Context()

	require.NoError(t, store.Save(ctx, User{ID: "u1", SessionID: "sess-1"}))
	require.NoError(t, store.Delete(ctx, "u1"))

	_, err := store.FindBySessionID(ctx, "sess-1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "u1"), sentinel.ErrNotFound)
}
