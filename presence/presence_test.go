package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore()

	_, online, err := s.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, online)

	require.NoError(t, s.Set(ctx, "Bob", 12))
	level, online, err := s.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.True(t, online)
	assert.Equal(t, 12, level)

	require.NoError(t, s.Set(ctx, "Bob", 13))
	level, _, err = s.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 13, level)

	require.NoError(t, s.Remove(ctx, "Bob"))
	_, online, err = s.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestNew_DefaultsToLocal(t *testing.T) {
	s, err := New(Config{})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)
}
