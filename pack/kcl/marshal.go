package kcl

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/kcl_browser/utils"
)

type Summary struct {
	Vertices    int        `json:"vertices" yaml:"vertices"`
	Normals     int        `json:"normals" yaml:"normals"`
	Prisms      int        `json:"prisms" yaml:"prisms"`
	Triangles   int        `json:"triangles" yaml:"triangles"`
	Active      int        `json:"active" yaml:"active"`
	OutOfBounds int        `json:"outOfBounds" yaml:"outOfBounds"`
	Degenerate  int        `json:"degenerate" yaml:"degenerate"`
	Types       []TypeStat `json:"types" yaml:"types"`
}

func (k *Kcl) Summary() *Summary {
	return &Summary{
		Vertices:    len(k.Vertices),
		Normals:     len(k.Normals),
		Prisms:      k.PrismsCount,
		Triangles:   len(k.Triangles),
		Active:      k.ActiveCount(),
		OutOfBounds: k.Dropped.OutOfBounds,
		Degenerate:  k.Dropped.Degenerate,
		Types:       k.Stats(),
	}
}

type TriangleView struct {
	Index  int              `json:"index"`
	V1     mgl64.Vec3       `json:"v1"`
	V2     mgl64.Vec3       `json:"v2"`
	V3     mgl64.Vec3       `json:"v3"`
	Normal mgl64.Vec3       `json:"normal"`
	Flags  uint16           `json:"flags"`
	Type   uint8            `json:"type"`
	Color  utils.ColorFloat `json:"color"`
	Active bool             `json:"active"`
}

type View struct {
	Summary   *Summary       `json:"summary"`
	Triangles []TriangleView `json:"triangles"`
}

func (k *Kcl) Marshal(activeOnly bool) *View {
	v := &View{
		Summary:   k.Summary(),
		Triangles: make([]TriangleView, 0, len(k.Triangles)),
	}
	for i := range k.Triangles {
		tri := &k.Triangles[i]
		st := &k.States[i]
		if activeOnly && !st.Active {
			continue
		}
		v.Triangles = append(v.Triangles, TriangleView{
			Index:  i,
			V1:     tri.V1,
			V2:     tri.V2,
			V3:     tri.V3,
			Normal: tri.Normal,
			Flags:  tri.Flags,
			Type:   tri.TypeCode(),
			Color:  st.Color,
			Active: st.Active,
		})
	}
	return v
}
