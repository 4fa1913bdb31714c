package layout

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/csizer/errors"
	"github.com/wippyai/csizer/typespec"
)

// Field is the placement of one member inside an aggregate.
type Field struct {
	Index   int
	Kind    typespec.Kind
	Offset  uint64
	Size    uint64
	Align   uint64
	Padding uint64 // bytes inserted before this field
}

// End returns the offset just past the field.
func (f Field) End() uint64 {
	return f.Offset + f.Size
}

// Info is the computed layout of a whole aggregate.
type Info struct {
	Fields      []Field
	Size        uint64
	Align       uint64
	TailPadding uint64
}

// Padding returns the total padding bytes, including tail padding.
func (i Info) Padding() uint64 {
	n := i.TailPadding
	for _, f := range i.Fields {
		n += f.Padding
	}
	return n
}

// Option configures an Engine.
type Option func(*Engine)

// WithTailPadding rounds the aggregate size up to the largest member
// alignment, as the platform ABI does for arrays of the aggregate.
func WithTailPadding() Option {
	return func(e *Engine) {
		e.tailPadding = true
	}
}

// Engine computes member offsets and aggregate sizes.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	tailPadding bool
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TailPadding reports whether the engine pads the aggregate tail.
func (e *Engine) TailPadding() bool {
	return e.tailPadding
}

// Size returns the aggregate size of spec. Without tail padding this is the
// offset just past the last member.
func (e *Engine) Size(spec typespec.Spec) uint64 {
	size := cursor(spec)
	if e.tailPadding {
		size = AlignTo(size, spec.MaxAlign())
	}
	return size
}

// SizeOf parses code strictly and returns its aggregate size.
func (e *Engine) SizeOf(code string) (uint64, error) {
	spec, err := typespec.Parse(code)
	if err != nil {
		return 0, err
	}
	return e.Size(spec), nil
}

// Offset returns the byte offset of the member at index by replaying the
// layout of the members before it. index == len(spec) addresses a virtual
// one-past-end member of alignment 1 and yields Size(spec).
func (e *Engine) Offset(spec typespec.Spec, index int) (uint64, error) {
	if index < 0 || index > len(spec) {
		return 0, errors.OutOfBounds(errors.PhaseLayout, []string{"offset"}, index, len(spec))
	}
	if index == len(spec) {
		return e.Size(spec), nil
	}
	return AlignTo(cursor(spec[:index]), spec[index].Align()), nil
}

// Fields places every member in a single pass.
func (e *Engine) Fields(spec typespec.Spec) []Field {
	fields := make([]Field, len(spec))
	offset := uint64(0)
	for i, k := range spec {
		pad := PaddingFor(offset, k.Align())
		fields[i] = Field{
			Index:   i,
			Kind:    k,
			Offset:  offset + pad,
			Size:    k.Size(),
			Align:   k.Align(),
			Padding: pad,
		}
		offset = fields[i].End()
	}
	return fields
}

// Layout computes the full layout of spec.
func (e *Engine) Layout(spec typespec.Spec) Info {
	fields := e.Fields(spec)

	end := uint64(0)
	if len(fields) > 0 {
		end = fields[len(fields)-1].End()
	}

	info := Info{
		Fields: fields,
		Size:   end,
		Align:  spec.MaxAlign(),
	}
	if e.tailPadding {
		info.Size = AlignTo(end, info.Align)
		info.TailPadding = info.Size - end
	}

	if ce := Logger().Check(zap.DebugLevel, "computed layout"); ce != nil {
		ce.Write(
			zap.Stringer("spec", spec),
			zap.Uint64("size", info.Size),
			zap.Uint64("align", info.Align),
			zap.Uint64("padding", info.Padding()),
			zap.Bool("tail_padding", e.tailPadding))
	}

	return info
}

// cursor is the offset just past the last member of spec.
func cursor(spec typespec.Spec) uint64 {
	offset := uint64(0)
	for _, k := range spec {
		offset = AlignTo(offset, k.Align()) + k.Size()
	}
	return offset
}

// FieldPath names a member for error paths.
func FieldPath(index int) []string {
	return []string{"field", strconv.Itoa(index)}
}
