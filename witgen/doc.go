// Package witgen describes aggregates as WebAssembly Interface Type records.
//
// Members become fields named f0, f1, ... with the WIT integer or float type
// of the same width. The WIT canonical ABI lays records out with full tail
// padding and 32-bit pointers, so sizes only agree with the layout package
// for specs without pointer members when tail padding is enabled.
package witgen
