package kcl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

type testPrism struct {
	Length     float32
	PosIndex   uint16
	DirIndex   uint16
	NormAIndex uint16
	NormBIndex uint16
	NormCIndex uint16
	Flags      uint16
}

// buildKcl lays out sections back to back, normals must be at least two
// so the trailer window fits inside normals section
func buildKcl(t *testing.T, vertices, normals [][3]float32, prisms []testPrism) []byte {
	require.GreaterOrEqual(t, len(normals), 2)

	section1 := uint32(HEADER_SIZE)
	section2 := section1 + uint32(len(vertices)*VERTEX_SIZE)
	prismsStart := section2 + uint32(len(normals)*NORMAL_SIZE)
	section3 := prismsStart - NORMALS_TRAILER_SIZE
	section4 := prismsStart + uint32(len(prisms)*PRISM_SIZE)

	var buf bytes.Buffer
	write := func(v interface{}) {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, v))
	}
	write([4]uint32{section1, section2, section3, section4})
	for _, v := range vertices {
		write(v)
	}
	for _, n := range normals {
		write(n)
	}
	for _, p := range prisms {
		write(p)
	}
	require.Equal(t, int(section4), buf.Len())
	return buf.Bytes()
}

// raw stored normals, converted by decoder as (x, -z, -y):
// 0: (1,0,0) -> (1,0,0)
// 1: (0,1,0) -> (0,0,-1)
// 2: (0,0,1) -> (0,-1,0)
// 3: (0,s,s) -> (0,-s,-s)
var testNormals = [][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0, 0.70710678, 0.70710678},
}

func testPrismOfType(flags uint16) testPrism {
	return testPrism{Length: 10, PosIndex: 0, DirIndex: 0, NormAIndex: 1, NormBIndex: 2, NormCIndex: 3, Flags: flags}
}
