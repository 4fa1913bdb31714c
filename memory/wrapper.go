package memory

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/csizer"
	"github.com/wippyai/csizer/errors"
)

// WrapMemory wraps a wazero api.Memory to implement csizer.WritableMemory.
func WrapMemory(mem api.Memory) csizer.WritableMemory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the csizer memory interfaces.
// Linear memory is 32-bit addressed; larger offsets are out of bounds.
type Wrapper struct {
	Mem api.Memory
}

func (m *Wrapper) addr(offset, length uint64) (uint32, error) {
	if offset > math.MaxUint32 || length > math.MaxUint32-offset {
		return 0, errors.MemoryOutOfBounds(offset, length, m.Size())
	}
	return uint32(offset), nil
}

// Size returns the current size of linear memory in bytes.
func (m *Wrapper) Size() uint64 {
	return uint64(m.Mem.Size())
}

// Read reads bytes from memory.
func (m *Wrapper) Read(offset uint64, length uint64) ([]byte, error) {
	a, err := m.addr(offset, length)
	if err != nil {
		return nil, err
	}
	data, ok := m.Mem.Read(a, uint32(length))
	if !ok {
		return nil, errors.MemoryOutOfBounds(offset, length, m.Size())
	}
	return data, nil
}

// ReadU8 reads an unsigned 8-bit value.
func (m *Wrapper) ReadU8(offset uint64) (uint8, error) {
	a, err := m.addr(offset, 1)
	if err != nil {
		return 0, err
	}
	v, ok := m.Mem.ReadByte(a)
	if !ok {
		return 0, errors.MemoryOutOfBounds(offset, 1, m.Size())
	}
	return v, nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (m *Wrapper) ReadU16(offset uint64) (uint16, error) {
	a, err := m.addr(offset, 2)
	if err != nil {
		return 0, err
	}
	v, ok := m.Mem.ReadUint16Le(a)
	if !ok {
		return 0, errors.MemoryOutOfBounds(offset, 2, m.Size())
	}
	return v, nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Wrapper) ReadU32(offset uint64) (uint32, error) {
	a, err := m.addr(offset, 4)
	if err != nil {
		return 0, err
	}
	v, ok := m.Mem.ReadUint32Le(a)
	if !ok {
		return 0, errors.MemoryOutOfBounds(offset, 4, m.Size())
	}
	return v, nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (m *Wrapper) ReadU64(offset uint64) (uint64, error) {
	a, err := m.addr(offset, 8)
	if err != nil {
		return 0, err
	}
	v, ok := m.Mem.ReadUint64Le(a)
	if !ok {
		return 0, errors.MemoryOutOfBounds(offset, 8, m.Size())
	}
	return v, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint64, data []byte) error {
	a, err := m.addr(offset, uint64(len(data)))
	if err != nil {
		return err
	}
	if !m.Mem.Write(a, data) {
		return errors.MemoryOutOfBounds(offset, uint64(len(data)), m.Size())
	}
	return nil
}

// WriteU8 writes an unsigned 8-bit value.
func (m *Wrapper) WriteU8(offset uint64, value uint8) error {
	a, err := m.addr(offset, 1)
	if err != nil {
		return err
	}
	if !m.Mem.WriteByte(a, value) {
		return errors.MemoryOutOfBounds(offset, 1, m.Size())
	}
	return nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (m *Wrapper) WriteU16(offset uint64, value uint16) error {
	a, err := m.addr(offset, 2)
	if err != nil {
		return err
	}
	if !m.Mem.WriteUint16Le(a, value) {
		return errors.MemoryOutOfBounds(offset, 2, m.Size())
	}
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *Wrapper) WriteU32(offset uint64, value uint32) error {
	a, err := m.addr(offset, 4)
	if err != nil {
		return err
	}
	if !m.Mem.WriteUint32Le(a, value) {
		return errors.MemoryOutOfBounds(offset, 4, m.Size())
	}
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (m *Wrapper) WriteU64(offset uint64, value uint64) error {
	a, err := m.addr(offset, 8)
	if err != nil {
		return err
	}
	if !m.Mem.WriteUint64Le(a, value) {
		return errors.MemoryOutOfBounds(offset, 8, m.Size())
	}
	return nil
}

// PageSize is the WebAssembly linear memory page size.
const PageSize = 65536

// memoryModule builds a wasm module that exports one memory of the given
// page count under the name "memory".
func memoryModule(pages uint8) []byte {
	return []byte{
		0x00, 0x61, 0x73, 0x6d, // magic
		0x01, 0x00, 0x00, 0x00, // version
		0x05, 0x03, 0x01, 0x00, pages, // memory section: min pages, no max
		0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
		0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory"
		0x02, 0x00, // kind: memory, index 0
	}
}

// LinearMemory is a sandboxed wazero linear memory owned by its own runtime.
type LinearMemory struct {
	*Wrapper
	rt  wazero.Runtime
	mod api.Module
}

// NewLinearMemory instantiates a memory-only module with the given number of
// 64KiB pages (1 to 127). Close releases the runtime.
func NewLinearMemory(ctx context.Context, pages uint8) (*LinearMemory, error) {
	if pages == 0 || pages > 127 {
		return nil, errors.InvalidInput(errors.PhaseMemory, "pages must be between 1 and 127")
	}

	rt := wazero.NewRuntime(ctx)

	compiled, err := rt.CompileModule(ctx, memoryModule(pages))
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindInvalidInput, err, "compile memory module")
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindInvalidInput, err, "instantiate memory module")
	}

	mem := mod.ExportedMemory("memory")
	if mem == nil {
		rt.Close(ctx)
		return nil, errors.InvalidInput(errors.PhaseMemory, "memory export missing")
	}

	Logger().Debug("linear memory ready",
		zap.Uint8("pages", pages),
		zap.Uint32("bytes", mem.Size()))

	return &LinearMemory{
		Wrapper: &Wrapper{Mem: mem},
		rt:      rt,
		mod:     mod,
	}, nil
}

// Close releases the module and its runtime.
func (l *LinearMemory) Close(ctx context.Context) error {
	if err := l.mod.Close(ctx); err != nil {
		Logger().Warn("failed to close memory module", zap.Error(err))
	}
	return l.rt.Close(ctx)
}
