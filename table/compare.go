package table

import (
	"bytes"
	"strings"
	"time"
)

// Compare orders two non-null cell values.
//
// Returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// Numbers compare numerically across int64 and float64. Values of
// incomparable types are treated as equal so that sorting stays stable.
func Compare(a, b any) int {
	if aNum, ok := ToFloat64(a); ok {
		if bNum, ok := ToFloat64(b); ok {
			switch {
			case aNum < bNum:
				return -1
			case aNum > bNum:
				return 1
			}
			return 0
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case !av && bv:
				return -1 // false < true
			case av && !bv:
				return 1
			}
			return 0
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case []byte:
		if bv, ok := b.([]byte); ok {
			return bytes.Compare(av, bv)
		}
	}

	return 0
}

// ToFloat64 converts a numeric cell to float64. Readers normalize numbers
// to int64 and float64, so only those convert.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}
