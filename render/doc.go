// Package render decodes an aggregate from memory and prints its members.
//
// Member offsets come from a layout.Engine; each member is read from a
// csizer.Memory with a bounds-checked, little-endian read of exactly the
// member's size. When the memory also implements csizer.MemorySizer the
// whole aggregate is checked before the first read.
//
//	r := render.New(mem)
//	err := r.Print(os.Stdout, typespec.MustParse("ci"), 0x1000)
//	// 0x1000 char A
//	// 0x1004 int 24
//
// Reads outside the region fail with an invalid_memory_access error.
package render
