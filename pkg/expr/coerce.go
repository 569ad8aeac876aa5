package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	if f, ok := toFloat(value); ok {
		return f != 0
	}
	return true
}

// toBoolLoose mirrors rule comparison semantics: unparseable strings fall back
// to truthiness.
func toBoolLoose(value any) (bool, bool) {
	if value == nil {
		return false, false
	}
	if s, ok := value.(string); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return parsed, true
		}
	}
	return truthy(value), true
}

// toBool is the strict conversion used for typed attribute resolution.
func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrNotCoercible, v)
		}
		return parsed, nil
	}
	if f, ok := toFloat(value); ok {
		return f != 0, nil
	}
	return false, fmt.Errorf("%w: %T is not a boolean", ErrNotCoercible, value)
}

// toInt converts to an int that fits the signed 32-bit range.
func toInt(value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a 32-bit integer", ErrNotCoercible, v)
		}
		return int(parsed), nil
	case bool:
		return 0, fmt.Errorf("%w: boolean is not an integer", ErrNotCoercible)
	default:
		var ok bool
		f, ok = toFloat(value)
		if !ok {
			return 0, fmt.Errorf("%w: %T is not an integer", ErrNotCoercible, value)
		}
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v is not a 32-bit integer", ErrNotCoercible, f)
	}
	return int(f), nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
