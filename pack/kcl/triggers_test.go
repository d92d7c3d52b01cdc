package kcl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mogaika/kcl_browser/utils"
)

func TestTriggersOfType(t *testing.T) {
	k := newTestKcl(17, 0, 0x0031, 0xffff, 0x2011, 5)

	assert.Equal(t, []int{0, 2, 4}, k.CannonTriggers())
	assert.Equal(t, []int{3}, k.TriggersOfType(31))
	assert.Equal(t, []int{1}, TriggersOfType(k.Triangles, 0))
	assert.Empty(t, k.TriggersOfType(9))
}

func TestForce(t *testing.T) {
	k := newTestKcl(17, 0, 17)
	color := utils.ColorFloat{0.1, 0.2, 0.3, 1}

	assert.Equal(t, 2, k.Force(append(k.CannonTriggers(), -1, 99), color))
	assert.Equal(t, TriangleState{Color: color, Forced: true}, k.States[0])
	assert.Equal(t, TriangleState{Color: utils.ColorWhite}, k.States[1])
	assert.True(t, k.States[2].Forced)
}
