package kcl

import "github.com/mogaika/kcl_browser/utils"

const TYPE_CANNON_ACTIVATOR = 17

// TriggersOfType returns indexes of triangles with the type code.
// Indexes address both Triangles and States.
func TriggersOfType(tris []Triangle, typeCode uint8) []int {
	indexes := make([]int, 0)
	for i := range tris {
		if tris[i].TypeCode() == typeCode {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (k *Kcl) TriggersOfType(typeCode uint8) []int {
	return TriggersOfType(k.Triangles, typeCode)
}

func (k *Kcl) CannonTriggers() []int {
	return k.TriggersOfType(TYPE_CANNON_ACTIVATOR)
}

// Force paints triangles and marks them to be active on next Classify.
// Out of range indexes are skipped, returns count of forced triangles.
func (k *Kcl) Force(indexes []int, color utils.ColorFloat) int {
	forced := 0
	for _, i := range indexes {
		if i < 0 || i >= len(k.States) {
			continue
		}
		k.States[i].Color = color
		k.States[i].Forced = true
		forced++
	}
	return forced
}
