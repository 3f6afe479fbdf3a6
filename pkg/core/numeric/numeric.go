// Package numeric provides tolerant numeric coercion for intake records.
//
// The wizard persists half-filled applications: money, percentage and count
// fields arrive as JSON numbers, numeric strings, empty strings or null
// depending on how far the officer got. Every calculation in the engine reads
// through this package, so a partial record computes with zeros instead of
// propagating NaN or failing to decode.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that decodes leniently. Empty strings, null and
// unparseable values become 0; the stored value is always finite.
type Number float64

// UnmarshalJSON accepts numbers, numeric strings, "" and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" || s == `""` {
		*n = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		*n = Number(parseFloat(str))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(sanitize(f))
	return nil
}

// MarshalJSON emits a plain JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Float())
}

// Float returns the value as a finite float64.
func (n Number) Float() float64 {
	return sanitize(float64(n))
}

// ToFloat coerces an arbitrary decoded value to a finite float64.
// Numbers pass through, numeric strings are parsed, everything else
// (nil, bools, objects) is 0. It never panics and never returns NaN.
func ToFloat(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case Number:
		return x.Float()
	case float64:
		return sanitize(x)
	case float32:
		return sanitize(float64(x))
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		return parseFloat(x.String())
	case string:
		return parseFloat(x)
	default:
		return 0
	}
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return sanitize(f)
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
