package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewULID()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Len(t, id, 26)
		assert.NotContains(t, seen, id)
		assert.Greater(t, id, prev, "ids are monotonic")
		seen[id] = struct{}{}
		prev = id
	}
}
