// Package csizer computes the in-memory layout of C-like aggregates described
// by compact type specifications, and renders memory according to them.
//
// A type specification is a string where each character is one struct member
// of a fundamental type:
//
//	c  char       1 byte,  align 1
//	s  short      2 bytes, align 2
//	i  int        4 bytes, align 4
//	l  long       8 bytes, align 8
//	z  size_t     8 bytes, align 8
//	f  float      4 bytes, align 4
//	d  double     8 bytes, align 8
//	p  pointer    8 bytes, align 8
//
// Sizes and alignments follow the x86-64 (LP64, little-endian) data model.
//
// # Architecture Overview
//
//	csizer/          Root package with the Memory interfaces
//	├── typespec/    Field kinds, their size/align table, spec parsing
//	├── layout/      Offset, padding and aggregate size computation
//	├── render/      Decodes and prints an aggregate from memory
//	├── memory/      Byte buffer and wazero linear memory backends
//	├── witgen/      WIT record description of an aggregate
//	├── errors/      Structured error types
//	└── cmd/csizer/  Command-line tool
//
// # Quick Start
//
//	spec, err := typespec.Parse("ci")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng := layout.New()
//	fmt.Println(eng.Size(spec)) // 8
//
//	r := render.New(mem)
//	if err := r.Print(os.Stdout, spec, base); err != nil {
//	    log.Fatal(err)
//	}
//
// # Layout Rules
//
// Each member is placed at the next offset that is a multiple of its
// alignment. By default the aggregate size is the offset just past the last
// member, without trailing padding; layout.WithTailPadding rounds it up to
// the largest member alignment the way a C compiler does.
//
// # Thread Safety
//
// The layout engine and renderer hold no mutable state and are safe for
// concurrent use. Memory passed to the renderer must not be modified while a
// render is in progress.
package csizer
