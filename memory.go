package csizer

// Memory is a bounds-checked view of the region an aggregate lives in.
// Offsets are absolute addresses within the region.
type Memory interface {
	Read(offset uint64, length uint64) ([]byte, error)
	ReadU8(offset uint64) (uint8, error)
	ReadU16(offset uint64) (uint16, error)
	ReadU32(offset uint64) (uint32, error)
	ReadU64(offset uint64) (uint64, error)
}

// WritableMemory is a Memory that can also be written, used to lay out
// aggregates before rendering them.
type WritableMemory interface {
	Memory
	Write(offset uint64, data []byte) error
	WriteU8(offset uint64, value uint8) error
	WriteU16(offset uint64, value uint16) error
	WriteU32(offset uint64, value uint32) error
	WriteU64(offset uint64, value uint64) error
}

// MemorySizer provides the current size of a memory region in bytes.
type MemorySizer interface {
	Size() uint64
}
