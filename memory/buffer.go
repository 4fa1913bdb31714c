package memory

import (
	"encoding/binary"

	"github.com/wippyai/csizer/errors"
)

// Buffer is a little-endian memory region backed by a byte slice.
// Addresses start at Base.
type Buffer struct {
	data []byte
	Base uint64
}

// NewBuffer allocates a zeroed region of size bytes starting at address 0.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// BufferFrom wraps data without copying. Address base maps to data[0].
func BufferFrom(data []byte, base uint64) *Buffer {
	return &Buffer{data: data, Base: base}
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the address just past the end of the region.
func (b *Buffer) Size() uint64 {
	return b.Base + uint64(len(b.data))
}

func (b *Buffer) slice(offset, length uint64) ([]byte, error) {
	if offset < b.Base {
		return nil, errors.MemoryOutOfBounds(offset, length, b.Size())
	}
	start := offset - b.Base
	n := uint64(len(b.data))
	if start > n || length > n-start {
		return nil, errors.MemoryOutOfBounds(offset, length, b.Size())
	}
	return b.data[start : start+length], nil
}

// Read returns a view of length bytes at offset.
func (b *Buffer) Read(offset uint64, length uint64) ([]byte, error) {
	return b.slice(offset, length)
}

// ReadU8 reads an unsigned 8-bit value.
func (b *Buffer) ReadU8(offset uint64) (uint8, error) {
	p, err := b.slice(offset, 1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (b *Buffer) ReadU16(offset uint64) (uint16, error) {
	p, err := b.slice(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (b *Buffer) ReadU32(offset uint64) (uint32, error) {
	p, err := b.slice(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (b *Buffer) ReadU64(offset uint64) (uint64, error) {
	p, err := b.slice(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// Write copies data to offset.
func (b *Buffer) Write(offset uint64, data []byte) error {
	p, err := b.slice(offset, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(p, data)
	return nil
}

// WriteU8 writes an unsigned 8-bit value.
func (b *Buffer) WriteU8(offset uint64, value uint8) error {
	p, err := b.slice(offset, 1)
	if err != nil {
		return err
	}
	p[0] = value
	return nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (b *Buffer) WriteU16(offset uint64, value uint16) error {
	p, err := b.slice(offset, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(p, value)
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (b *Buffer) WriteU32(offset uint64, value uint32) error {
	p, err := b.slice(offset, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(p, value)
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (b *Buffer) WriteU64(offset uint64, value uint64) error {
	p, err := b.slice(offset, 8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(p, value)
	return nil
}
