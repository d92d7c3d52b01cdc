package kcl

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/kcl_browser/utils"
)

type prismRecord struct {
	Length     float32
	PosIndex   uint16
	DirIndex   uint16
	NormAIndex uint16
	NormBIndex uint16
	NormCIndex uint16
	Flags      uint16
}

func readPrism(bc *utils.ByteCursor) (p prismRecord, err error) {
	pos := bc.Pos()
	defer func() {
		if err != nil {
			bc.Seek(pos)
		}
	}()

	if p.Length, err = bc.ReadBF(); err != nil {
		return
	}
	for _, field := range []*uint16{&p.PosIndex, &p.DirIndex, &p.NormAIndex, &p.NormBIndex, &p.NormCIndex, &p.Flags} {
		if *field, err = bc.ReadBU16(); err != nil {
			return
		}
	}
	return
}

func (p *prismRecord) inBounds(verticesCount, normalsCount int) bool {
	return int(p.PosIndex) < verticesCount &&
		int(p.DirIndex) < normalsCount &&
		int(p.NormAIndex) < normalsCount &&
		int(p.NormBIndex) < normalsCount &&
		int(p.NormCIndex) < normalsCount
}

// reconstruct restores two missing corners of the face: edge direction
// cross(normal, direction) scaled to reach the plane at length along normal C
func (p *prismRecord) reconstruct(vertices, normals []mgl64.Vec3) (Triangle, bool) {
	vertex := vertices[p.PosIndex]
	direction := normals[p.DirIndex]
	normalA := normals[p.NormAIndex]
	normalB := normals[p.NormBIndex]
	normalC := normals[p.NormCIndex]

	length := float64(p.Length)
	crossA := normalA.Cross(direction)
	crossB := normalB.Cross(direction)

	v1 := vertex
	v2 := vertex.Add(crossB.Mul(length / crossB.Dot(normalC)))
	v3 := vertex.Add(crossA.Mul(length / crossA.Dot(normalC)))

	if !utils.IsFiniteV3(v1) || !utils.IsFiniteV3(v2) || !utils.IsFiniteV3(v3) {
		return Triangle{}, false
	}

	return Triangle{
		V1:     v1,
		V2:     v2,
		V3:     v3,
		Normal: utils.NormalizeV3(v2.Sub(v1).Cross(v3.Sub(v1))),
		Flags:  p.Flags,
	}, true
}
