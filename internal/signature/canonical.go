package signature

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonicalize builds the deterministic string that is hashed by Sign.
// sign and ver are never part of it, and neither are nil, "" or zero values.
// Keys are ordered by code point, which for Go strings is byte order.
func Canonicalize(r Request) string {
	keys := make([]string, 0, len(r))
	values := make(map[string]string, len(r))

	for key, value := range r {
		if key == FieldSign || key == FieldVersion {
			continue
		}
		s, ok := FormatValue(value)
		if !ok {
			continue
		}
		keys = append(keys, key)
		values[key] = s
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(values[key])
	}
	return b.String()
}

// FormatValue returns the canonical string form of a value and whether the
// value takes part in the signature at all. Booleans are kept.
func FormatValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			// Out of float range: keep the client's text.
			return v.String(), v.String() != ""
		}
		return formatFloat(f), f != 0
	case float64:
		return formatFloat(v), v != 0
	case float32:
		return formatFloat(float64(v)), v != 0
	case int:
		return strconv.FormatInt(int64(v), 10), v != 0
	case int8:
		return strconv.FormatInt(int64(v), 10), v != 0
	case int16:
		return strconv.FormatInt(int64(v), 10), v != 0
	case int32:
		return strconv.FormatInt(int64(v), 10), v != 0
	case int64:
		return strconv.FormatInt(v, 10), v != 0
	case uint:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint8:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint16:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint32:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint64:
		return strconv.FormatUint(v, 10), v != 0
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	default:
		s := fmt.Sprint(v)
		return s, s != ""
	}
}

// formatFloat renders a number like JavaScript's String(number): shortest
// round-trip digits, plain notation between 1e-6 and 1e21, exponent otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
