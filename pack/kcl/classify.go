package kcl

import (
	"github.com/mogaika/kcl_browser/config"
	"github.com/mogaika/kcl_browser/utils"
)

const (
	TYPE_MASK   = 0x1f
	TYPES_COUNT = TYPE_MASK + 1

	FLAG_HIGHLIGHT_2000 = 0x2000
	FLAG_HIGHLIGHT_8000 = 0x8000

	flatWallThreshold = 0.9
)

type TypeDescriptor struct {
	Name        string
	IsDeath     bool
	IsInvisible bool
	IsEffect    bool
	IsWall      bool
	Color       utils.ColorFloat
}

var TypeTable = [TYPES_COUNT]TypeDescriptor{
	{Name: "Road", Color: utils.ColorFloat{1.0, 1.0, 1.0, 1.0}},
	{Name: "Slippery Road (sand/dirt)", Color: utils.ColorFloat{1.0, 0.9, 0.8, 1.0}},
	{Name: "Weak Off-Road", Color: utils.ColorFloat{0.0, 0.8, 0.0, 1.0}},
	{Name: "Off-Road", Color: utils.ColorFloat{0.0, 0.6, 0.0, 1.0}},
	{Name: "Heavy Off-Road", Color: utils.ColorFloat{0.0, 0.4, 0.0, 1.0}},
	{Name: "Slippery Road (ice)", Color: utils.ColorFloat{0.8, 0.9, 1.0, 1.0}},
	{Name: "Boost Panel", Color: utils.ColorFloat{1.0, 0.5, 0.0, 1.0}},
	{Name: "Boost Ramp", Color: utils.ColorFloat{1.0, 0.6, 0.0, 1.0}},
	{Name: "Slow Ramp", Color: utils.ColorFloat{1.0, 0.8, 0.0, 1.0}},
	{Name: "Item Road", IsInvisible: true, Color: utils.ColorFloat{0.9, 0.9, 1.0, 0.5}},
	{Name: "Solid Fall", IsDeath: true, Color: utils.ColorFloat{0.7, 0.1, 0.1, 1.0}},
	{Name: "Moving Water", Color: utils.ColorFloat{0.0, 0.5, 1.0, 1.0}},
	{Name: "Wall", IsWall: true, Color: utils.ColorFloat{0.6, 0.6, 0.6, 1.0}},
	{Name: "Invisible Wall", IsInvisible: true, IsWall: true, Color: utils.ColorFloat{0.0, 0.0, 0.6, 0.8}},
	{Name: "Item Wall", IsInvisible: true, Color: utils.ColorFloat{0.6, 0.6, 0.7, 0.5}},
	{Name: "Wall", IsWall: true, Color: utils.ColorFloat{0.6, 0.6, 0.6, 1.0}},
	{Name: "Fall Boundary", IsDeath: true, Color: utils.ColorFloat{0.8, 0.0, 0.0, 0.8}},
	{Name: "Cannon Activator", IsEffect: true, Color: utils.ColorFloat{1.0, 0.0, 0.5, 0.8}},
	{Name: "Force Recalculation", IsEffect: true, Color: utils.ColorFloat{0.5, 0.0, 1.0, 0.5}},
	{Name: "Half-pipe Ramp", Color: utils.ColorFloat{0.0, 0.3, 1.0, 1.0}},
	{Name: "Wall (items pass through)", IsWall: true, Color: utils.ColorFloat{0.6, 0.6, 0.6, 1.0}},
	{Name: "Moving Road", Color: utils.ColorFloat{0.9, 0.9, 1.0, 1.0}},
	{Name: "Sticky Road", Color: utils.ColorFloat{0.9, 0.7, 1.0, 1.0}},
	{Name: "Road (alt sfx)", Color: utils.ColorFloat{1.0, 1.0, 1.0, 1.0}},
	{Name: "Sound Trigger", IsEffect: true, Color: utils.ColorFloat{1.0, 0.0, 1.0, 0.8}},
	{Name: "Weak Wall", IsEffect: true, IsWall: true, Color: utils.ColorFloat{0.4, 0.6, 0.4, 0.8}},
	{Name: "Effect Trigger", IsEffect: true, Color: utils.ColorFloat{0.8, 0.0, 1.0, 0.8}},
	{Name: "Item State Modifier", IsEffect: true, Color: utils.ColorFloat{1.0, 0.0, 1.0, 0.5}},
	{Name: "Half-pipe Invis Wall", IsEffect: true, IsWall: true, Color: utils.ColorFloat{0.0, 0.6, 0.0, 0.8}},
	{Name: "Rotating Road", Color: utils.ColorFloat{0.9, 0.9, 1.0, 1.0}},
	{Name: "Special Wall", IsWall: true, Color: utils.ColorFloat{0.8, 0.7, 0.8, 1.0}},
	{Name: "Wall", IsWall: true, Color: utils.ColorFloat{0.6, 0.6, 0.6, 1.0}},
}

func (td *TypeDescriptor) suppressed(cfg *config.ClassifyConfig) bool {
	return (td.IsWall && cfg.WallsDisabled()) ||
		(td.IsDeath && cfg.DeathBarriersDisabled()) ||
		(td.IsInvisible && cfg.InvisibleDisabled()) ||
		(td.IsEffect && cfg.EffectsDisabled())
}

func highlighted(tri *Triangle, td *TypeDescriptor, mode config.HighlightMode) bool {
	switch mode {
	case config.HighlightFlag2000:
		return tri.Flags&FLAG_HIGHLIGHT_2000 != 0
	case config.HighlightFlatWalls:
		return td.IsWall && tri.Normal.Z() > flatWallThreshold
	case config.HighlightWallFlag8000:
		return td.IsWall && tri.Flags&FLAG_HIGHLIGHT_8000 != 0
	}
	return false
}

// Classify recomputes active flag and color of every triangle.
// states must be parallel to tris. Forced triangles become active with
// their color untouched, and the force flag is consumed.
func Classify(tris []Triangle, states []TriangleState, cfg *config.ClassifyConfig) {
	colors := !cfg.ColorsDisabled()
	mode := cfg.HighlightMode()

	for i := range tris {
		tri := &tris[i]
		st := &states[i]

		if st.Forced {
			st.Active = true
			st.Forced = false
			continue
		}

		td := tri.Type()
		st.Active = false

		if colors {
			st.Color = td.Color
		} else {
			st.Color = utils.ColorWhite
		}
		if highlighted(tri, td, mode) {
			st.Color = utils.ColorHighlight
		}

		if td.suppressed(cfg) {
			continue
		}
		st.Active = true
	}
}

func (k *Kcl) Classify(cfg *config.ClassifyConfig) {
	Classify(k.Triangles, k.States, cfg)
}

type TypeStat struct {
	Code   uint8  `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Count  int    `json:"count" yaml:"count"`
	Active int    `json:"active" yaml:"active"`
}

// Stats returns per type counters for types present in mesh, ordered by code
func (k *Kcl) Stats() []TypeStat {
	var counts, active [TYPES_COUNT]int
	for i := range k.Triangles {
		code := k.Triangles[i].TypeCode()
		counts[code]++
		if k.States[i].Active {
			active[code]++
		}
	}

	stats := make([]TypeStat, 0)
	for code := range counts {
		if counts[code] == 0 {
			continue
		}
		stats = append(stats, TypeStat{
			Code:   uint8(code),
			Name:   TypeTable[code].Name,
			Count:  counts[code],
			Active: active[code],
		})
	}
	return stats
}
