package memory

import (
	"fmt"
	"math"

	"github.com/wippyai/csizer"
	"github.com/wippyai/csizer/errors"
	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/typespec"
)

// Encoder writes member values into memory at the offsets chosen by a
// layout engine.
type Encoder struct {
	mem    csizer.WritableMemory
	engine *layout.Engine
}

func NewEncoder(mem csizer.WritableMemory, engine *layout.Engine) *Encoder {
	if engine == nil {
		engine = layout.New()
	}
	return &Encoder{mem: mem, engine: engine}
}

// Put stores one value per member of spec, starting at base.
// Accepted values are Go integers, floats, runes and uintptr; each is
// converted to the member's width.
func (e *Encoder) Put(spec typespec.Spec, base uint64, values ...any) error {
	if len(values) != len(spec) {
		return errors.InvalidInput(errors.PhaseMemory,
			fmt.Sprintf("spec %q has %d members, got %d values", spec, len(spec), len(values)))
	}

	for i, f := range e.engine.Fields(spec) {
		addr, ok := layout.SafeAddU64(base, f.Offset)
		if !ok {
			return errors.Overflow(errors.PhaseMemory, layout.FieldPath(i), base, "address")
		}
		if err := e.put(f.Kind, addr, values[i]); err != nil {
			return errors.New(errors.PhaseMemory, errors.KindInvalidInput).
				Path(layout.FieldPath(i)...).
				Spec(spec.String()).
				Value(values[i]).
				Cause(err).
				Detail("store %s", f.Kind).
				Build()
		}
	}
	return nil
}

func (e *Encoder) put(k typespec.Kind, addr uint64, v any) error {
	switch k {
	case typespec.KindFloat:
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		return e.mem.WriteU32(addr, math.Float32bits(float32(f)))
	case typespec.KindDouble:
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		return e.mem.WriteU64(addr, math.Float64bits(f))
	}

	n, err := toBits(v)
	if err != nil {
		return err
	}
	switch k.Size() {
	case 1:
		return e.mem.WriteU8(addr, uint8(n))
	case 2:
		return e.mem.WriteU16(addr, uint16(n))
	case 4:
		return e.mem.WriteU32(addr, uint32(n))
	case 8:
		return e.mem.WriteU64(addr, n)
	default:
		return fmt.Errorf("unsupported kind %s", k)
	}
}

// toBits returns the two's complement bit pattern of an integer value.
func toBits(v any) (uint64, error) {
	switch x := v.(type) {
	case int:
		return uint64(x), nil
	case int8:
		return uint64(x), nil
	case int16:
		return uint64(x), nil
	case int32:
		return uint64(x), nil
	case int64:
		return uint64(x), nil
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case uintptr:
		return uint64(x), nil
	default:
		return 0, fmt.Errorf("cannot store %T as integer", v)
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("cannot store %T as float", v)
	}
}
