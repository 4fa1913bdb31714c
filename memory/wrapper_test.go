package memory

import (
	"context"
	"math"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/csizer/errors"
)

func TestWrapMemory_Nil(t *testing.T) {
	mem := WrapMemory(nil)
	if mem != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_ReadWrite(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, memoryModule(1))
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	defer compiled.Close(ctx)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer mod.Close(ctx)

	mem := WrapMemory(mod.ExportedMemory("memory"))
	if mem == nil {
		t.Fatal("expected non-nil wrapped memory")
	}

	data := []byte{1, 2, 3, 4}
	if err := mem.Write(0, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := mem.Read(0, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range read {
		if b != data[i] {
			t.Errorf("byte %d: expected %d, got %d", i, data[i], b)
		}
	}

	if err := mem.WriteU8(10, 0x7F); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteU16(12, 0xBEEF); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteU32(16, 0xCAFEBABE); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteU64(24, math.MaxUint64-1); err != nil {
		t.Fatal(err)
	}
	if v, _ := mem.ReadU8(10); v != 0x7F {
		t.Errorf("ReadU8 = %#x", v)
	}
	if v, _ := mem.ReadU16(12); v != 0xBEEF {
		t.Errorf("ReadU16 = %#x", v)
	}
	if v, _ := mem.ReadU32(16); v != 0xCAFEBABE {
		t.Errorf("ReadU32 = %#x", v)
	}
	if v, _ := mem.ReadU64(24); v != math.MaxUint64-1 {
		t.Errorf("ReadU64 = %#x", v)
	}
}

func TestLinearMemory(t *testing.T) {
	ctx := context.Background()
	lm, err := NewLinearMemory(ctx, 1)
	if err != nil {
		t.Fatalf("NewLinearMemory: %v", err)
	}
	defer lm.Close(ctx)

	if lm.Size() != PageSize {
		t.Errorf("Size = %d, want %d", lm.Size(), PageSize)
	}

	if err := lm.WriteU32(PageSize-4, 42); err != nil {
		t.Fatalf("write at last word: %v", err)
	}
	if v, err := lm.ReadU32(PageSize - 4); err != nil || v != 42 {
		t.Errorf("ReadU32 = %d, %v", v, err)
	}

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read past end", func() error { _, err := lm.ReadU32(PageSize - 2); return err }},
		{"read slice past end", func() error { _, err := lm.Read(PageSize-1, 2); return err }},
		{"write past end", func() error { return lm.WriteU64(PageSize, 1) }},
		{"above 32-bit", func() error { _, err := lm.ReadU8(math.MaxUint32 + 1); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.HasKind(err, errors.KindOutOfBounds) {
				t.Errorf("expected out_of_bounds, got %v", err)
			}
		})
	}
}

func TestNewLinearMemory_InvalidPages(t *testing.T) {
	ctx := context.Background()
	for _, pages := range []uint8{0, 128, 255} {
		if _, err := NewLinearMemory(ctx, pages); !errors.HasKind(err, errors.KindInvalidInput) {
			t.Errorf("pages=%d: expected invalid_input, got %v", pages, err)
		}
	}
}
