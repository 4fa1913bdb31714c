package witgen

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/csizer/typespec"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		kind typespec.Kind
		want string
	}{
		{typespec.KindChar, "s8"},
		{typespec.KindShort, "s16"},
		{typespec.KindInt, "s32"},
		{typespec.KindLong, "s64"},
		{typespec.KindSize, "u64"},
		{typespec.KindFloat, "f32"},
		{typespec.KindDouble, "f64"},
		{typespec.KindPointer, "u64"},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := typeName(TypeOf(tc.kind)); got != tc.want {
				t.Errorf("TypeOf(%v) = %s, want %s", tc.kind, got, tc.want)
			}
		})
	}

	if TypeOf(typespec.Kind(99)) != nil {
		t.Error("unknown kind should map to nil")
	}
}

func TestRecord(t *testing.T) {
	td := Record("point", typespec.MustParse("cid"))

	if td.Name == nil || *td.Name != "point" {
		t.Fatalf("name = %v", td.Name)
	}
	rec, ok := td.Kind.(*wit.Record)
	if !ok {
		t.Fatalf("kind = %T, want *wit.Record", td.Kind)
	}
	if len(rec.Fields) != 3 {
		t.Fatalf("got %d fields", len(rec.Fields))
	}
	if rec.Fields[1].Name != "f1" {
		t.Errorf("field 1 name = %q", rec.Fields[1].Name)
	}
	if _, ok := rec.Fields[2].Type.(wit.F64); !ok {
		t.Errorf("field 2 type = %T", rec.Fields[2].Type)
	}
}

func TestFormat(t *testing.T) {
	got := Format(Record("sample", typespec.MustParse("csp")))
	want := "record sample {\n    f0: s8,\n    f1: s16,\n    f2: u64,\n}"
	if got != want {
		t.Errorf("Format:\n%s\nwant:\n%s", got, want)
	}

	if got := Format(Record("", nil)); got != "record aggregate {}" {
		t.Errorf("empty Format = %q", got)
	}

	if got := Format(&wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}); got != "" {
		t.Errorf("non-record Format = %q", got)
	}
}
