package typespec

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/csizer/errors"
)

// Spec is an ordered list of member kinds. Order is declaration order.
type Spec []Kind

// Parse converts a spec string into a Spec, rejecting any character outside
// the code alphabet.
func Parse(s string) (Spec, error) {
	spec := make(Spec, 0, len(s))
	for i := 0; i < len(s); i++ {
		k, ok := KindOf(s[i])
		if !ok {
			return nil, errors.InvalidSpec(s, i, s[i])
		}
		spec = append(spec, k)
	}
	return spec, nil
}

// ParseLenient converts a spec string into a Spec, silently skipping unknown
// characters.
func ParseLenient(s string) Spec {
	spec := make(Spec, 0, len(s))
	for i := 0; i < len(s); i++ {
		k, ok := KindOf(s[i])
		if !ok {
			Logger().Debug("skipping unknown field kind",
				zap.String("spec", s),
				zap.Int("pos", i),
				zap.String("code", string(s[i])))
			continue
		}
		spec = append(spec, k)
	}
	return spec
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}

func (s Spec) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, k := range s {
		b.WriteByte(k.Code())
	}
	return b.String()
}

// Len returns the number of members.
func (s Spec) Len() int {
	return len(s)
}

// RawSize returns the sum of member sizes, ignoring padding.
func (s Spec) RawSize() uint64 {
	var n uint64
	for _, k := range s {
		n += k.Size()
	}
	return n
}

// MaxAlign returns the largest member alignment, or 1 for an empty spec.
func (s Spec) MaxAlign() uint64 {
	maxAlign := uint64(1)
	for _, k := range s {
		if a := k.Align(); a > maxAlign {
			maxAlign = a
		}
	}
	return maxAlign
}
