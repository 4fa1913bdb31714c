package render

import (
	"fmt"
	"strconv"

	"github.com/wippyai/csizer/typespec"
)

// Format renders a decoded value the way printf would for the member's C
// type: the raw character, decimal integers, %f for floating kinds and a
// hex address for pointers.
func Format(k typespec.Kind, v any) string {
	switch x := v.(type) {
	case int8:
		return string([]byte{byte(x)})
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 6, 64)
	case float64:
		return strconv.FormatFloat(x, 'f', 6, 64)
	case uintptr:
		if x == 0 {
			return "(nil)"
		}
		return "0x" + strconv.FormatUint(uint64(x), 16)
	default:
		return fmt.Sprintf("<%s %v>", k, v)
	}
}
