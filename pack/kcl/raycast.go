package kcl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/kcl_browser/utils"
)

const raycastEpsilon = 1e-9

type Hit struct {
	Index    int        `json:"index"`
	Distance float64    `json:"distance"`
	Position mgl64.Vec3 `json:"position"`
}

// intersect is Moller-Trumbore, dir must be normalized
func (t *Triangle) intersect(origin, dir mgl64.Vec3) (float64, bool) {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	p := dir.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < raycastEpsilon {
		return 0, false
	}
	invDet := 1.0 / det

	s := origin.Sub(t.V1)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := edge2.Dot(q) * invDet
	if dist < 0 {
		return 0, false
	}
	return dist, true
}

// Raycast finds nearest triangle hit along the ray. filter may be nil.
func Raycast(tris []Triangle, origin, dir mgl64.Vec3, filter func(i int) bool) (Hit, bool) {
	dir = utils.NormalizeV3(dir)
	if dir.LenSqr() == 0 {
		return Hit{}, false
	}

	best := Hit{Index: -1, Distance: math.Inf(1)}
	for i := range tris {
		if filter != nil && !filter(i) {
			continue
		}
		if dist, ok := tris[i].intersect(origin, dir); ok && dist < best.Distance {
			best.Index = i
			best.Distance = dist
		}
	}

	if best.Index < 0 {
		return Hit{}, false
	}
	best.Position = origin.Add(dir.Mul(best.Distance))
	return best, true
}

func (k *Kcl) Raycast(origin, dir mgl64.Vec3) (Hit, bool) {
	return Raycast(k.Triangles, origin, dir, nil)
}

func (k *Kcl) RaycastActive(origin, dir mgl64.Vec3) (Hit, bool) {
	return Raycast(k.Triangles, origin, dir, func(i int) bool { return k.States[i].Active })
}
