package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_SaveAndDelete(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	saved, err := store.Save(ctx, Record{
		ConsentID: "c1",
		IPAddress: "203.0.113.7",
		City:      "Berlin",
		Country:   "DE",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", saved.ConsentID)
	assert.False(t, saved.UpdatedAt.IsZero())

	result, err := store.Delete(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Location data deleted successfully.", result.Message)
	assert.Equal(t, "c1", result.ConsentID)
}

func TestInMemoryStore_SaveOverwritesByConsentID(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_, err := store.Save(ctx, Record{ConsentID: "c1", City: "Berlin"})
	require.NoError(t, err)
	saved, err := store.Save(ctx, Record{ConsentID: "c1", City: "Hamburg"})
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", saved.City)
}

func TestInMemoryStore_MissingConsentID(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_, err := store.Save(ctx, Record{City: "Berlin"})
	assert.EqualError(t, err, "consent ID is required")

	_, err = store.Delete(ctx, "")
	assert.EqualError(t, err, "consent ID is required")
}

func TestInMemoryStore_DeleteUnknown(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Delete(context.Background(), "ghost")
	assert.EqualError(t, err, "no location data for consent ID ghost")
}
