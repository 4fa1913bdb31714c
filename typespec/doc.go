// Package typespec defines the member kinds of an aggregate and parses
// compact type specifications into ordered kind lists.
//
// Each Kind carries a fixed size and alignment taken from the x86-64 LP64
// data model. The table is constant; a different target would need its own.
//
// # Parsing
//
// Parse rejects unknown characters with an invalid_spec error:
//
//	spec, err := typespec.Parse("cid")
//
// ParseLenient skips them instead:
//
//	spec := typespec.ParseLenient("c?id") // same as "cid"
package typespec
