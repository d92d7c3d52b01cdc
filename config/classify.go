package config

import (
	"sync"

	"github.com/pkg/errors"
)

type HighlightMode int

const (
	HighlightNone HighlightMode = iota
	HighlightFlag2000
	HighlightFlatWalls
	HighlightWallFlag8000
)

// ClassifyConfig controls which collision triangles are active and how
// they are colored. Nil fields mean "not set" and disable the related rule.
type ClassifyConfig struct {
	EnableWalls         *bool          `yaml:"kclEnableWalls,omitempty" json:"kclEnableWalls,omitempty"`
	EnableDeathBarriers *bool          `yaml:"kclEnableDeathBarriers,omitempty" json:"kclEnableDeathBarriers,omitempty"`
	EnableInvisible     *bool          `yaml:"kclEnableInvisible,omitempty" json:"kclEnableInvisible,omitempty"`
	EnableEffects       *bool          `yaml:"kclEnableEffects,omitempty" json:"kclEnableEffects,omitempty"`
	EnableColors        *bool          `yaml:"kclEnableColors,omitempty" json:"kclEnableColors,omitempty"`
	Highlighter         *HighlightMode `yaml:"kclHighlighter,omitempty" json:"kclHighlighter,omitempty"`
}

func Bool(b bool) *bool {
	return &b
}

func Highlight(m HighlightMode) *HighlightMode {
	return &m
}

// disabled reports true only when toggle is present and false
func disabled(toggle *bool) bool {
	return toggle != nil && !*toggle
}

func (c *ClassifyConfig) WallsDisabled() bool {
	return c != nil && disabled(c.EnableWalls)
}

func (c *ClassifyConfig) DeathBarriersDisabled() bool {
	return c != nil && disabled(c.EnableDeathBarriers)
}

func (c *ClassifyConfig) InvisibleDisabled() bool {
	return c != nil && disabled(c.EnableInvisible)
}

func (c *ClassifyConfig) EffectsDisabled() bool {
	return c != nil && disabled(c.EnableEffects)
}

func (c *ClassifyConfig) ColorsDisabled() bool {
	return c != nil && disabled(c.EnableColors)
}

func (c *ClassifyConfig) HighlightMode() HighlightMode {
	if c == nil || c.Highlighter == nil {
		return HighlightNone
	}
	return *c.Highlighter
}

func (c *ClassifyConfig) Validate() error {
	if c == nil || c.Highlighter == nil {
		return nil
	}
	switch *c.Highlighter {
	case HighlightNone, HighlightFlag2000, HighlightFlatWalls, HighlightWallFlag8000:
		return nil
	default:
		return errors.Errorf("Unknown highlighter mode %d", *c.Highlighter)
	}
}

var classifyLock sync.RWMutex
var classifyConfig ClassifyConfig

func GetClassify() ClassifyConfig {
	classifyLock.RLock()
	defer classifyLock.RUnlock()
	return classifyConfig
}

func SetClassify(c ClassifyConfig) {
	classifyLock.Lock()
	defer classifyLock.Unlock()
	classifyConfig = c
}
