package kcl

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/kcl_browser/utils/gltfutils"
)

// ExportGLTF builds document with one node per collision type present
// among active triangles
func (k *Kcl) ExportGLTF() *gltf.Document {
	doc := gltfutils.NewDocument()

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "collision",
		DoubleSided: true,
	})
	material := gltf.Index(uint32(len(doc.Materials) - 1))

	for typeCode := uint8(0); typeCode < TYPES_COUNT; typeCode++ {
		m := k.BuildModelOfType(typeCode, true)
		if m.FacesCount() == 0 {
			continue
		}

		colors := make([][4]uint8, len(m.Colors))
		for i, c := range m.Colors {
			colors[i] = c.RGBA8()
		}

		attributes := make(map[string]uint32)
		attributes["POSITION"] = modeler.WritePosition(doc, m.Positions)
		attributes["NORMAL"] = modeler.WriteNormal(doc, m.Normals)
		attributes["COLOR_0"] = modeler.WriteColor(doc, colors)

		name := objName(typeCode)
		gltfutils.AddMeshNode(doc, name, &gltf.Mesh{
			Name: name,
			Primitives: []*gltf.Primitive{
				{
					Attributes: attributes,
					Material:   material,
				},
			},
		})
	}

	return doc
}
