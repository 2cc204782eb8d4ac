package world

import "math"

// Vector3 is a world-space position.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Terrain answers whether a position is on the walkable surface. World
// geometry can change between saves, so a persisted position is not
// guaranteed to still be walkable when the character loads.
type Terrain interface {
	// Sample snaps pos onto the walkable surface if it lies within
	// tolerance of it. ok is false when the position is off the surface.
	Sample(pos Vector3, tolerance float64) (snapped Vector3, ok bool)

	// NearestSpawn returns the designated spawn point closest to pos.
	NearestSpawn(pos Vector3) Vector3
}

// BoxTerrain is a rectangular walkable region on the Y=0 plane with fixed
// spawn points. Enough for dev worlds and tests; a production shard plugs
// in its navmesh instead.
type BoxTerrain struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	Spawns     []Vector3
}

func (b *BoxTerrain) Sample(pos Vector3, tolerance float64) (Vector3, bool) {
	if pos.X < b.MinX || pos.X > b.MaxX || pos.Z < b.MinZ || pos.Z > b.MaxZ {
		return Vector3{}, false
	}
	if math.Abs(pos.Y) > tolerance {
		return Vector3{}, false
	}
	return Vector3{pos.X, 0, pos.Z}, true
}

func (b *BoxTerrain) NearestSpawn(pos Vector3) Vector3 {
	if len(b.Spawns) == 0 {
		return Vector3{}
	}
	best := b.Spawns[0]
	bestDist := pos.Sub(best).Length()
	for _, s := range b.Spawns[1:] {
		if d := pos.Sub(s).Length(); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
