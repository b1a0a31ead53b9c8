package marketshare

import (
	"encoding/json"
	"strconv"
)

// Value is a float64 that may be absent.
//
// The zero Value is absent. An absent Value means "no data" or "undefined",
// it is never equivalent to 0.
type Value struct {
	v  float64
	ok bool
}

// V returns a present Value.
func V(v float64) Value { return Value{v: v, ok: true} }

// Absent returns an absent Value.
func Absent() Value { return Value{} }

func (v Value) Present() bool          { return v.ok }
func (v Value) Float() (float64, bool) { return v.v, v.ok }
func (v Value) IsZero() bool           { return v.ok && v.v == 0 }
func (v Value) Equal(w Value) bool     { return v.ok == w.ok && (!v.ok || v.v == w.v) }

// Or returns the value if present, def otherwise.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

// Sub returns v-w, absent if either side is absent.
func (v Value) Sub(w Value) Value {
	if !v.ok || !w.ok {
		return Value{}
	}
	return V(v.v - w.v)
}

func (v Value) String() string {
	if !v.ok {
		return "absent"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// MarshalJSON encodes an absent Value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = V(f)
	return nil
}
