package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_New(t *testing.T) {
	g := NewUUIDGenerator()

	got := g.New(PrefixComplaint)

	require.True(t, HasPrefix(got, PrefixComplaint))
	parsed, err := uuid.Parse(got[len(PrefixComplaint)+1:])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := g.New(PrefixComment)
		_, dup := seen[v]
		require.False(t, dup, "duplicate id %s", v)
		seen[v] = struct{}{}
	}
}

func TestWithPrefix(t *testing.T) {
	assert.Equal(t, "user-abc", WithPrefix(PrefixUser, "abc"))
	assert.Equal(t, "abc", WithPrefix("", "abc"))
	assert.False(t, HasPrefix("comp-1", PrefixComment))
}
