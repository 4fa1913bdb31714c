// Package layout computes member offsets, padding, and aggregate sizes for
// type specifications.
//
// # Layout Rules
//
//   - Members are placed in declaration order.
//   - Each member starts at the next multiple of its alignment; the gap is padding.
//   - The aggregate size is the offset just past the last member.
//   - With WithTailPadding the size is rounded up to the largest member
//     alignment, matching C struct layout.
//
// # Usage
//
//	eng := layout.New()
//	size := eng.Size(typespec.MustParse("ci"))      // 8
//	off, _ := eng.Offset(typespec.MustParse("cic"), 2) // 8
//	info := eng.Layout(spec) // info.Fields, info.Size, info.Align
package layout
