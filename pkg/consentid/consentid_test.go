package consentid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ShapeAndCharset(t *testing.T) {
	for range 100 {
		id, err := New()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(id), 8)
		assert.NotEmpty(t, id)
		for _, r := range id {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, isAlnum, "unexpected character %q in id %q", r, id)
		}
	}
}

func TestNew_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id, err := New()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
