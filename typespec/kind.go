package typespec

// Kind is a fundamental scalar member type.
type Kind uint8

const (
	KindChar Kind = iota
	KindShort
	KindInt
	KindLong
	KindSize
	KindFloat
	KindDouble
	KindPointer
)

// NumKinds is the number of defined kinds.
const NumKinds = int(KindPointer) + 1

type kindInfo struct {
	name  string
	code  byte
	size  uint64
	align uint64
}

// x86-64 System V (LP64) sizes and alignments.
var kindTable = [NumKinds]kindInfo{
	KindChar:    {name: "char", code: 'c', size: 1, align: 1},
	KindShort:   {name: "short", code: 's', size: 2, align: 2},
	KindInt:     {name: "int", code: 'i', size: 4, align: 4},
	KindLong:    {name: "long", code: 'l', size: 8, align: 8},
	KindSize:    {name: "size_t", code: 'z', size: 8, align: 8},
	KindFloat:   {name: "float", code: 'f', size: 4, align: 4},
	KindDouble:  {name: "double", code: 'd', size: 8, align: 8},
	KindPointer: {name: "pointer", code: 'p', size: 8, align: 8},
}

var codeToKind = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for k, info := range kindTable {
		m[info.code] = int8(k)
	}
	return m
}()

// KindOf returns the kind for a spec code.
func KindOf(code byte) (Kind, bool) {
	k := codeToKind[code]
	if k < 0 {
		return 0, false
	}
	return Kind(k), true
}

// Valid reports whether k is a defined kind.
func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

func (k Kind) String() string {
	if k.Valid() {
		return kindTable[k].name
	}
	return "unknown"
}

// Code returns the spec character for k, or 0 for an undefined kind.
func (k Kind) Code() byte {
	if k.Valid() {
		return kindTable[k].code
	}
	return 0
}

// Size returns the storage size of k in bytes.
func (k Kind) Size() uint64 {
	if k.Valid() {
		return kindTable[k].size
	}
	return 0
}

// Align returns the required alignment of k in bytes.
func (k Kind) Align() uint64 {
	if k.Valid() {
		return kindTable[k].align
	}
	return 1
}

func (k Kind) IsInteger() bool {
	switch k {
	case KindShort, KindInt, KindLong, KindSize:
		return true
	default:
		return false
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}
