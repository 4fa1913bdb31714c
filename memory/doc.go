// Package memory provides bounds-checked memory regions for rendering
// aggregates.
//
// # Buffer
//
// A byte slice with a base address:
//
//	buf := memory.BufferFrom(data, 0x1000)
//	// buf implements csizer.WritableMemory and csizer.MemorySizer
//
// # Linear Memory
//
// A wazero linear memory, either wrapped from an existing module or created
// as a standalone sandbox:
//
//	mem := memory.WrapMemory(mod.ExportedMemory("memory"))
//
//	lm, err := memory.NewLinearMemory(ctx, 1)
//	defer lm.Close(ctx)
//
// # Encoder
//
// Lays Go values out at the offsets a layout engine chooses:
//
//	enc := memory.NewEncoder(buf, layout.New())
//	err := enc.Put(typespec.MustParse("ci"), 0x1000, 'A', 24)
package memory
