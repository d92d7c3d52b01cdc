package kcl

import (
	"fmt"
	"io"
	"strings"
)

func objName(typeCode uint8) string {
	name := strings.NewReplacer(" ", "_", "(", "", ")", "", "/", "_").Replace(TypeTable[typeCode].Name)
	return fmt.Sprintf("t%.2d_%s", typeCode, name)
}

// ExportObj writes one object per type code, vertex colors in "v x y z r g b" form
func (k *Kcl) ExportObj(_w io.Writer, activeOnly bool) error {
	var werr error
	w := func(format string, args ...interface{}) {
		if werr == nil {
			_, werr = fmt.Fprintf(_w, format+"\n", args...)
		}
	}

	w("# kcl: %d vertices, %d normals, %d prisms, %d triangles",
		len(k.Vertices), len(k.Normals), k.PrismsCount, len(k.Triangles))

	iV := 1
	iN := 1
	for typeCode := uint8(0); typeCode < TYPES_COUNT; typeCode++ {
		m := k.BuildModelOfType(typeCode, activeOnly)
		if m.FacesCount() == 0 {
			continue
		}

		w("o %s", objName(typeCode))
		for i, pos := range m.Positions {
			c := m.Colors[i]
			w("v %f %f %f %f %f %f", pos[0], pos[1], pos[2], c[0], c[1], c[2])
		}
		for iFace := 0; iFace < m.FacesCount(); iFace++ {
			w("vn %f %f %f", m.Normals[iFace*3][0], m.Normals[iFace*3][1], m.Normals[iFace*3][2])
		}
		for iFace := 0; iFace < m.FacesCount(); iFace++ {
			v := iV + iFace*3
			n := iN + iFace
			w("f %d//%d %d//%d %d//%d", v, n, v+1, n, v+2, n)
		}
		iV += len(m.Positions)
		iN += m.FacesCount()
	}

	return werr
}
