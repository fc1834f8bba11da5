package signature

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// VerifyFreshness reports whether the request timestamp (epoch milliseconds)
// is younger than tolerance. A missing timestamp fails. Timestamps ahead of
// the server clock always pass.
func VerifyFreshness(r Request, tolerance time.Duration) bool {
	return verifyFreshnessAt(r, tolerance, time.Now())
}

// verifyFreshnessAt compares in float64 so out-of-range timestamps cannot
// wrap around.
func verifyFreshnessAt(r Request, tolerance time.Duration, now time.Time) bool {
	ts, ok := timestampMillis(r[FieldTimestamp])
	if !ok {
		return false
	}
	return float64(now.UnixMilli())-ts < float64(tolerance.Milliseconds())
}

// timestampMillis extracts a non-zero millisecond timestamp. Numeric strings
// are accepted.
func timestampMillis(value interface{}) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(string(v), 64)
		if err != nil && !isRangeErr(err) {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil && !isRangeErr(err) {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return 0, false
	}

	if f == 0 || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// isRangeErr reports a literal beyond float64 range; ParseFloat still
// returns the signed infinity for it.
func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
