package render

import (
	"testing"

	"github.com/wippyai/csizer/typespec"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		kind typespec.Kind
		v    any
		want string
	}{
		{"char", typespec.KindChar, int8('z'), "z"},
		{"short", typespec.KindShort, int16(-32768), "-32768"},
		{"int", typespec.KindInt, int32(2147483647), "2147483647"},
		{"long", typespec.KindLong, int64(-5), "-5"},
		{"size", typespec.KindSize, uint64(42), "42"},
		{"float", typespec.KindFloat, float32(0.1), "0.100000"},
		{"double", typespec.KindDouble, 32.4, "32.400000"},
		{"double negative", typespec.KindDouble, -1.0, "-1.000000"},
		{"pointer", typespec.KindPointer, uintptr(0x7fffffabc), "0x7fffffabc"},
		{"null pointer", typespec.KindPointer, uintptr(0), "(nil)"},
		{"unknown value", typespec.KindInt, "x", "<int x>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.kind, tc.v); got != tc.want {
				t.Errorf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecordString(t *testing.T) {
	r := Record{Address: 0x7ffffffabc, Kind: typespec.KindChar, Text: "A"}
	if got := r.String(); got != "0x7ffffffabc char A" {
		t.Errorf("String = %q", got)
	}
}
