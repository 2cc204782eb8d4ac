package guild

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrLoad_LoadsOnce(t *testing.T) {
	c := NewCache()
	loads := 0
	load := func(name string) (*Guild, error) {
		loads++
		return &Guild{Name: name}, nil
	}

	g1, err := c.GetOrLoad("Knights", load)
	require.NoError(t, err)
	g2, err := c.GetOrLoad("Knights", load)
	require.NoError(t, err)

	assert.Same(t, g1, g2)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, c.Len())
}

func TestGetOrLoad_LoadErrorNotCached(t *testing.T) {
	c := NewCache()
	errDown := errors.New("db down")

	_, err := c.GetOrLoad("Knights", func(string) (*Guild, error) { return nil, errDown })
	assert.ErrorIs(t, err, errDown)
	assert.Equal(t, 0, c.Len())

	// A later successful load still populates the cache.
	g, err := c.GetOrLoad("Knights", func(name string) (*Guild, error) {
		return &Guild{Name: name}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Knights", g.Name)
	assert.Equal(t, 1, c.Len())
}

func TestPutGetRemove(t *testing.T) {
	c := NewCache()
	assert.Nil(t, c.Get("Knights"))

	g := &Guild{Name: "Knights"}
	c.Put(g)
	assert.Same(t, g, c.Get("Knights"))

	c.Remove("Knights")
	assert.Nil(t, c.Get("Knights"))
	assert.Equal(t, 0, c.Len())
}
