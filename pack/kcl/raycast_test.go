package kcl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/kcl_browser/config"
)

func floorTriangle(y float64, flags uint16) Triangle {
	return Triangle{
		V1:     mgl64.Vec3{-10, y, -10},
		V2:     mgl64.Vec3{10, y, -10},
		V3:     mgl64.Vec3{0, y, 10},
		Normal: mgl64.Vec3{0, 1, 0},
		Flags:  flags,
	}
}

func TestRaycastNearest(t *testing.T) {
	tris := []Triangle{floorTriangle(-5, 0), floorTriangle(-2, 0), floorTriangle(3, 0)}

	hit, ok := Raycast(tris, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -4, 0}, nil)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 2.0, hit.Distance, 1e-9)
	assert.True(t, hit.Position.ApproxEqualThreshold(mgl64.Vec3{0, -2, 0}, 1e-9))

	hit, ok = Raycast(tris, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, nil)
	require.True(t, ok)
	assert.Equal(t, 2, hit.Index)
}

func TestRaycastMiss(t *testing.T) {
	tris := []Triangle{floorTriangle(-5, 0)}

	_, ok := Raycast(tris, mgl64.Vec3{50, 0, 0}, mgl64.Vec3{0, -1, 0}, nil)
	assert.False(t, ok, "outside of triangle")

	_, ok = Raycast(tris, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, nil)
	assert.False(t, ok, "parallel")

	_, ok = Raycast(tris, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, nil)
	assert.False(t, ok, "zero direction")
}

func TestRaycastActive(t *testing.T) {
	k := &Kcl{
		Triangles: []Triangle{floorTriangle(-1, 12), floorTriangle(-3, 0)},
		States:    make([]TriangleState, 2),
	}
	k.Classify(&config.ClassifyConfig{EnableWalls: config.Bool(false)})

	hit, ok := k.RaycastActive(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)

	hit, ok = k.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)
}
