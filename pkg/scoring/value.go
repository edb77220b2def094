package scoring

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a survey answer value. On the wire it is either a JSON number or
// a JSON string, and both forms are preserved on re-encoding.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// Number wraps a numeric answer value.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// String wraps a textual answer value.
func String(s string) Value { return Value{str: s} }

// Float returns the numeric reading of the value. Numeric strings such as
// "4" or " 2.5 " are accepted. Empty strings, non-numeric text, NaN and
// infinities report ok=false.
func (v Value) Float() (float64, bool) {
	if v.isNum {
		return v.num, finite(v.num)
	}

	s := strings.TrimSpace(v.str)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return 0, false
	}
	return f, true
}

// IsNumber reports whether the value was supplied as a JSON number.
func (v Value) IsNumber() bool { return v.isNum }

// Text returns the value as a string, formatting numbers without trailing zeros.
func (v Value) Text() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		if !finite(v.num) {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	}
	return json.Marshal(v.str)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = Value{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		// Booleans are kept as text so they surface as non-numeric.
		*v = String(string(data))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*v = Number(f)
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
