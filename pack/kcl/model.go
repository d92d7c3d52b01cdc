package kcl

import "github.com/mogaika/kcl_browser/utils"

// Model is flat vertex data of active triangles, three vertices per face
type Model struct {
	Positions [][3]float32
	Normals   [][3]float32
	Colors    []utils.ColorFloat
	Faces     []int
	// Faces not representable in float32
	Overflowed int
}

func (m *Model) addTriangle(index int, tri *Triangle, color utils.ColorFloat) {
	v1, v2, v3 := utils.V3ToF32(tri.V1), utils.V3ToF32(tri.V2), utils.V3ToF32(tri.V3)
	if !utils.IsFiniteF32V3(v1) || !utils.IsFiniteF32V3(v2) || !utils.IsFiniteF32V3(v3) {
		m.Overflowed++
		return
	}
	normal := utils.V3ToF32(tri.Normal)
	m.Positions = append(m.Positions, v1, v2, v3)
	m.Normals = append(m.Normals, normal, normal, normal)
	m.Colors = append(m.Colors, color, color, color)
	m.Faces = append(m.Faces, index)
}

func (m *Model) FacesCount() int {
	return len(m.Faces)
}

func (k *Kcl) buildModel(accept func(i int) bool) *Model {
	m := &Model{}
	for i := range k.Triangles {
		if accept(i) {
			m.addTriangle(i, &k.Triangles[i], k.States[i].Color)
		}
	}
	return m
}

func (k *Kcl) BuildModel() *Model {
	return k.buildModel(func(i int) bool { return k.States[i].Active })
}

func (k *Kcl) BuildModelOfType(typeCode uint8, activeOnly bool) *Model {
	return k.buildModel(func(i int) bool {
		return k.Triangles[i].TypeCode() == typeCode && (!activeOnly || k.States[i].Active)
	})
}
