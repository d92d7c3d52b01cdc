package utils

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrOutOfBounds = errors.New("read out of bounds")

// ByteCursor is a sequential reader over an immutable buffer.
// All multi-byte reads are big-endian.
type ByteCursor struct {
	buf  []byte
	pos  int
	name string
}

func NewByteCursor(name string, b []byte) *ByteCursor {
	return &ByteCursor{buf: b, name: name}
}

func (bc *ByteCursor) Name() string {
	return bc.name
}

func (bc *ByteCursor) Size() int {
	return len(bc.buf)
}

func (bc *ByteCursor) Pos() int {
	return bc.pos
}

func (bc *ByteCursor) Remaining() int {
	if bc.pos >= len(bc.buf) {
		return 0
	}
	return len(bc.buf) - bc.pos
}

// Seek sets position absolutely. Positions past the end are allowed,
// the next read will fail.
func (bc *ByteCursor) Seek(offset int) {
	bc.pos = offset
}

func (bc *ByteCursor) Skip(amount int) error {
	if _, err := bc.Read(amount); err != nil {
		return err
	}
	return nil
}

func (bc *ByteCursor) String() string {
	return fmt.Sprintf("cursor<%s>[p:0x%x,s:0x%x]", bc.name, bc.pos, len(bc.buf))
}

// Read returns next amount bytes without copying them.
// On failure position stays untouched.
func (bc *ByteCursor) Read(amount int) ([]byte, error) {
	if amount < 0 || bc.pos < 0 || bc.pos+amount > len(bc.buf) {
		return nil, errors.Wrapf(ErrOutOfBounds, "%v: read of %d bytes", bc, amount)
	}
	oldPos := bc.pos
	bc.pos += amount
	return bc.buf[oldPos:bc.pos], nil
}

func (bc *ByteCursor) ReadBU32() (uint32, error) {
	b, err := bc.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (bc *ByteCursor) ReadBU16() (uint16, error) {
	b, err := bc.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (bc *ByteCursor) ReadBF() (float32, error) {
	u, err := bc.ReadBU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}
