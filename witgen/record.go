package witgen

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/csizer/typespec"
)

// TypeOf maps a member kind to the WIT type with the same width and
// signedness. Pointers and size_t become u64 addresses.
func TypeOf(k typespec.Kind) wit.Type {
	switch k {
	case typespec.KindChar:
		return wit.S8{}
	case typespec.KindShort:
		return wit.S16{}
	case typespec.KindInt:
		return wit.S32{}
	case typespec.KindLong:
		return wit.S64{}
	case typespec.KindSize, typespec.KindPointer:
		return wit.U64{}
	case typespec.KindFloat:
		return wit.F32{}
	case typespec.KindDouble:
		return wit.F64{}
	default:
		return nil
	}
}

// FieldName is the generated name of the member at index.
func FieldName(index int) string {
	return fmt.Sprintf("f%d", index)
}

// Record builds a WIT record type whose fields mirror spec in order.
func Record(name string, spec typespec.Spec) *wit.TypeDef {
	fields := make([]wit.Field, len(spec))
	for i, k := range spec {
		fields[i] = wit.Field{Name: FieldName(i), Type: TypeOf(k)}
	}
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Record{Fields: fields},
	}
}

// Format returns the WIT declaration of a record built by Record.
func Format(td *wit.TypeDef) string {
	rec, ok := td.Kind.(*wit.Record)
	if !ok {
		return ""
	}

	name := "aggregate"
	if td.Name != nil && *td.Name != "" {
		name = *td.Name
	}

	var b strings.Builder
	b.WriteString("record ")
	b.WriteString(name)
	if len(rec.Fields) == 0 {
		b.WriteString(" {}")
		return b.String()
	}
	b.WriteString(" {\n")
	for _, f := range rec.Fields {
		b.WriteString("    ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(typeName(f.Type))
		b.WriteString(",\n")
	}
	b.WriteByte('}')
	return b.String()
}

func typeName(t wit.Type) string {
	switch t.(type) {
	case wit.S8:
		return "s8"
	case wit.S16:
		return "s16"
	case wit.S32:
		return "s32"
	case wit.S64:
		return "s64"
	case wit.U64:
		return "u64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	default:
		return fmt.Sprintf("%T", t)
	}
}
