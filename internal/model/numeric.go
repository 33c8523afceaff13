package model

import (
	"math"
	"strconv"
	"strings"
)

// Numeric is a request field that accepts either a JSON number or a numeric
// string, matching the loose coercion clients of this API have always relied
// on. A value that is present but not parseable decodes as NaN so validation
// can distinguish "not a number" from "absent".
type Numeric float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = Numeric(math.NaN())
		return nil
	}
	*n = Numeric(f)
	return nil
}

// IsNaN reports whether the field was present but not numeric.
func (n Numeric) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// Int returns the value truncated to an integer.
func (n Numeric) Int() int64 {
	return int64(n)
}

// Float returns the value as a float64.
func (n Numeric) Float() float64 {
	return float64(n)
}
