package types

import (
	"fmt"
	"strconv"
)

// Kind is the scalar type of a preference value
type Kind string

const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
	return false
}

// Value is a typed preference scalar. Values are comparable with ==.
type Value struct {
	kind Kind
	raw  any
}

// BoolValue wraps a boolean setting
func BoolValue(b bool) Value { return Value{kind: KindBool, raw: b} }

// IntValue wraps an integer setting
func IntValue(i int64) Value { return Value{kind: KindInt, raw: i} }

// FloatValue wraps a fractional setting
func FloatValue(f float64) Value { return Value{kind: KindFloat, raw: f} }

// StringValue wraps a text setting
func StringValue(s string) Value { return Value{kind: KindString, raw: s} }

// Kind returns the scalar type; empty for the zero Value
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v was never assigned
func (v Value) IsZero() bool { return v.kind == "" }

// Interface returns the underlying bool, int64, float64 or string
func (v Value) Interface() any { return v.raw }

func (v Value) GoString() string { return fmt.Sprintf("%s(%v)", v.kind, v.raw) }

// Equal reports whether both values have the same kind and payload
func (v Value) Equal(o Value) bool { return v == o }

// Bool returns the boolean payload; false for other kinds
func (v Value) Bool() bool {
	b, _ := v.raw.(bool)
	return b
}

// Int returns the integer payload; floats are truncated
func (v Value) Int() int64 {
	switch n := v.raw.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

// Float returns the numeric payload as float64
func (v Value) Float() float64 {
	switch n := v.raw.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

// Str returns the string payload; empty for other kinds
func (v Value) Str() string {
	s, _ := v.raw.(string)
	return s
}

// String formats the value for display
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case KindString:
		return v.Str()
	}
	return ""
}

// Snapshot is the whole preference store at one instant
type Snapshot map[string]Value

// Clone returns an independent copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both snapshots hold the same keys with the same typed values
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
