package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/csizer"
	"github.com/wippyai/csizer/errors"
	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/typespec"
)

// Record is one decoded member of an aggregate.
type Record struct {
	Value   any // int8, int16, int32, int64, uint64, float32, float64 or uintptr
	Text    string
	Address uint64
	Index   int
	Kind    typespec.Kind
}

// String formats the record as "<address> <kind> <value>".
func (r Record) String() string {
	return "0x" + strconv.FormatUint(r.Address, 16) + " " + r.Kind.String() + " " + r.Text
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine sets the layout engine used to place members.
func WithEngine(e *layout.Engine) Option {
	return func(r *Renderer) {
		r.engine = e
	}
}

// Renderer decodes aggregates from a memory region.
type Renderer struct {
	mem    csizer.Memory
	engine *layout.Engine
}

func New(mem csizer.Memory, opts ...Option) *Renderer {
	r := &Renderer{mem: mem}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = layout.New()
	}
	return r
}

// Render decodes every member of spec from the aggregate at base.
// Each member read covers exactly its own bytes; padding is never read.
func (r *Renderer) Render(spec typespec.Spec, base uint64) ([]Record, error) {
	if r.mem == nil {
		return nil, errors.InvalidInput(errors.PhaseRender, "nil memory")
	}

	size := r.engine.Size(spec)
	end, ok := layout.SafeAddU64(base, size)
	if !ok {
		return nil, errors.Overflow(errors.PhaseRender, nil, base, "address")
	}
	if sizer, ok := r.mem.(csizer.MemorySizer); ok && end > sizer.Size() {
		return nil, errors.InvalidMemoryAccess(nil, base, size,
			errors.MemoryOutOfBounds(base, size, sizer.Size()))
	}

	records := make([]Record, 0, len(spec))
	for _, f := range r.engine.Fields(spec) {
		addr := base + f.Offset
		v, err := r.decode(f.Kind, addr)
		if err != nil {
			return records, errors.InvalidMemoryAccess(layout.FieldPath(f.Index), addr, f.Size, err)
		}

		if ce := Logger().Check(zap.DebugLevel, "decoded field"); ce != nil {
			ce.Write(
				zap.Int("index", f.Index),
				zap.Stringer("kind", f.Kind),
				zap.Uint64("address", addr),
				zap.Uint64("offset", f.Offset))
		}

		records = append(records, Record{
			Index:   f.Index,
			Kind:    f.Kind,
			Address: addr,
			Value:   v,
			Text:    Format(f.Kind, v),
		})
	}
	return records, nil
}

// Print renders spec at base and writes one line per member to w.
// Nothing is written if any member cannot be read.
func (r *Renderer) Print(w io.Writer, spec typespec.Spec, base uint64) error {
	records, err := r.Render(spec, base)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) decode(k typespec.Kind, addr uint64) (any, error) {
	switch k {
	case typespec.KindChar:
		v, err := r.mem.ReadU8(addr)
		return int8(v), err
	case typespec.KindShort:
		v, err := r.mem.ReadU16(addr)
		return int16(v), err
	case typespec.KindInt:
		v, err := r.mem.ReadU32(addr)
		return int32(v), err
	case typespec.KindLong:
		v, err := r.mem.ReadU64(addr)
		return int64(v), err
	case typespec.KindSize:
		return r.mem.ReadU64(addr)
	case typespec.KindFloat:
		v, err := r.mem.ReadU32(addr)
		return math.Float32frombits(v), err
	case typespec.KindDouble:
		v, err := r.mem.ReadU64(addr)
		return math.Float64frombits(v), err
	case typespec.KindPointer:
		v, err := r.mem.ReadU64(addr)
		return uintptr(v), err
	default:
		return nil, errors.InvalidInput(errors.PhaseRender, "unknown kind "+k.String())
	}
}
