package kcl

import (
	"io"
	"io/ioutil"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/kcl_browser/pack"
	"github.com/mogaika/kcl_browser/utils"
)

const (
	HEADER_SIZE          = 0x10
	VERTEX_SIZE          = 0xc
	NORMAL_SIZE          = 0xc
	PRISM_SIZE           = 0x10
	NORMALS_TRAILER_SIZE = 0x10
)

var (
	ErrMalformedHeader = errors.New("malformed kcl header")
	ErrBufferUnderrun  = errors.New("kcl buffer underrun")
)

// Triangle is reconstructed collision face. Immutable after decode.
type Triangle struct {
	V1     mgl64.Vec3
	V2     mgl64.Vec3
	V3     mgl64.Vec3
	Normal mgl64.Vec3
	Flags  uint16
}

func (t *Triangle) TypeCode() uint8 {
	return uint8(t.Flags & TYPE_MASK)
}

func (t *Triangle) Type() *TypeDescriptor {
	return &TypeTable[t.Flags&TYPE_MASK]
}

// TriangleState is presentation state of triangle with the same index.
// Only the classifier and Force write it.
type TriangleState struct {
	Color  utils.ColorFloat
	Active bool
	Forced bool
}

type DropStats struct {
	OutOfBounds int
	Degenerate  int
}

type Kcl struct {
	Section1Offset uint32
	Section2Offset uint32
	Section3Offset uint32
	Section4Offset uint32

	Vertices    []mgl64.Vec3
	Normals     []mgl64.Vec3
	PrismsCount int
	Dropped     DropStats

	Triangles []Triangle
	States    []TriangleState
}

func readVec3(bc *utils.ByteCursor) (mgl64.Vec3, error) {
	var xyz [3]float32
	for i := range xyz {
		f, err := bc.ReadBF()
		if err != nil {
			return mgl64.Vec3{}, err
		}
		xyz[i] = f
	}
	return utils.ZUpToYUp(xyz[0], xyz[1], xyz[2]), nil
}

func capacityFor(from, to, recordSize, bufSize int) int {
	n := (to - from) / recordSize
	if n < 0 {
		return 0
	}
	if limit := bufSize / recordSize; n > limit {
		return limit
	}
	return n
}

func Decode(b []byte) (*Kcl, error) {
	if len(b) < HEADER_SIZE {
		return nil, errors.Wrapf(ErrMalformedHeader, "need 0x%x bytes, got 0x%x", HEADER_SIZE, len(b))
	}

	bc := utils.NewByteCursor("kcl", b)
	k := &Kcl{}
	for _, off := range []*uint32{&k.Section1Offset, &k.Section2Offset, &k.Section3Offset, &k.Section4Offset} {
		v, err := bc.ReadBU32()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "%v", err)
		}
		*off = v
	}

	section1 := int(k.Section1Offset)
	section2 := int(k.Section2Offset)
	prismsStart := int(k.Section3Offset) + NORMALS_TRAILER_SIZE
	section4 := int(k.Section4Offset)

	k.Vertices = make([]mgl64.Vec3, 0, capacityFor(section1, section2, VERTEX_SIZE, len(b)))
	bc.Seek(section1)
	for bc.Pos() < section2 {
		v, err := readVec3(bc)
		if err != nil {
			return nil, errors.Wrapf(ErrBufferUnderrun, "vertex %d: %v", len(k.Vertices), err)
		}
		k.Vertices = append(k.Vertices, v)
	}

	// normals section bound includes 0x10 bytes after section3 offset
	k.Normals = make([]mgl64.Vec3, 0, capacityFor(section2, prismsStart, NORMAL_SIZE, len(b)))
	bc.Seek(section2)
	for bc.Pos() < prismsStart {
		n, err := readVec3(bc)
		if err != nil {
			return nil, errors.Wrapf(ErrBufferUnderrun, "normal %d: %v", len(k.Normals), err)
		}
		k.Normals = append(k.Normals, n)
	}

	prismsCap := capacityFor(prismsStart, section4, PRISM_SIZE, len(b))
	k.Triangles = make([]Triangle, 0, prismsCap)
	bc.Seek(prismsStart)
	for bc.Pos() < section4 {
		p, err := readPrism(bc)
		if err != nil {
			return nil, errors.Wrapf(ErrBufferUnderrun, "prism %d: %v", k.PrismsCount, err)
		}
		k.PrismsCount++

		if !p.inBounds(len(k.Vertices), len(k.Normals)) {
			k.Dropped.OutOfBounds++
			continue
		}

		tri, ok := p.reconstruct(k.Vertices, k.Normals)
		if !ok {
			k.Dropped.Degenerate++
			continue
		}
		k.Triangles = append(k.Triangles, tri)
	}

	k.States = make([]TriangleState, len(k.Triangles))
	for i := range k.States {
		k.States[i].Color = utils.ColorWhite
	}

	return k, nil
}

func NewFromReader(r io.Reader) (*Kcl, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read kcl")
	}
	return Decode(data)
}

// Clone copies presentation state, triangles are shared
func (k *Kcl) Clone() *Kcl {
	c := *k
	c.States = make([]TriangleState, len(k.States))
	copy(c.States, k.States)
	return &c
}

func (k *Kcl) ActiveCount() int {
	count := 0
	for i := range k.States {
		if k.States[i].Active {
			count++
		}
	}
	return count
}

func init() {
	pack.SetHandler(".KCL", func(name string, r io.Reader) (interface{}, error) {
		k, err := NewFromReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to decode %q", name)
		}
		if k.Dropped.OutOfBounds != 0 || k.Dropped.Degenerate != 0 {
			log.Printf("[kcl] %s: dropped prisms of %d", name, k.PrismsCount)
			utils.LogDump(k.Dropped)
		}
		return k, nil
	})
}
