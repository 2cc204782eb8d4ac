package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxTerrain_Sample(t *testing.T) {
	b := &BoxTerrain{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10}

	snapped, ok := b.Sample(Vector3{X: 3, Y: 0.05, Z: -4}, 0.1)
	assert.True(t, ok)
	assert.Equal(t, Vector3{X: 3, Y: 0, Z: -4}, snapped, "snaps onto the surface")

	_, ok = b.Sample(Vector3{X: 3, Y: 0.5, Z: -4}, 0.1)
	assert.False(t, ok, "too far above the surface")

	_, ok = b.Sample(Vector3{X: 11, Y: 0, Z: 0}, 0.1)
	assert.False(t, ok, "outside the region")
}

func TestBoxTerrain_NearestSpawn(t *testing.T) {
	b := &BoxTerrain{
		Spawns: []Vector3{{X: -5, Z: -5}, {X: 5, Z: 5}},
	}

	assert.Equal(t, Vector3{X: 5, Z: 5}, b.NearestSpawn(Vector3{X: 4, Z: 4}))
	assert.Equal(t, Vector3{X: -5, Z: -5}, b.NearestSpawn(Vector3{X: -100, Z: 0}))
}

func TestBoxTerrain_NearestSpawn_NoSpawns(t *testing.T) {
	b := &BoxTerrain{}
	assert.Equal(t, Vector3{}, b.NearestSpawn(Vector3{X: 1, Z: 1}))
}
