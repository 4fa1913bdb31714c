package layout

import "math"

// AlignTo rounds offset up to the next multiple of align.
// align must be a power of two; 0 leaves offset unchanged.
func AlignTo(offset, align uint64) uint64 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// PaddingFor returns the bytes needed to bring offset up to align.
func PaddingFor(offset, align uint64) uint64 {
	return AlignTo(offset, align) - offset
}

func SafeAddU64(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}
