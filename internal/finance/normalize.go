package finance

import (
	"encoding/json"
	"regexp"
	"strconv"
)

var nonNumericChars = regexp.MustCompile(`[^0-9.]`)

// Normalize coerces a value of unknown shape into a float64. Numbers pass
// through, currency-formatted strings are stripped down to digits and the
// decimal point, and nested cost maps are summed entry by entry. It is
// total: unparseable or missing input yields 0.
func Normalize(v any) float64 {
	f, _ := NormalizeOK(v)
	return f
}

// NormalizeOK is Normalize plus a flag reporting whether the input actually
// parsed. Callers that care about "present but garbage" (as opposed to an
// intentional zero) can collect warnings from it; callers that don't can use
// Normalize and keep the zero-coercion behavior.
func NormalizeOK(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		clean := nonNumericChars.ReplaceAllString(val, "")
		if clean == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case map[string]any:
		sum := 0.0
		ok := true
		for _, entry := range val {
			f, entryOK := NormalizeOK(entry)
			sum += f
			ok = ok && entryOK
		}
		return sum, ok
	default:
		return 0, false
	}
}
