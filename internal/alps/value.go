package alps

import (
	"encoding/json"
	"strconv"
)

type valueKind int

const (
	unknownValue valueKind = iota
	numberValue
	stringValue
)

// Value is the result of a property accessor: a number, a string, or unknown.
// Unknown is distinct from zero.
type Value struct {
	kind valueKind
	num  int64
	str  string
}

// Unknown is the value reported when no source knows the answer
var Unknown = Value{}

// NumberValue returns a numeric value
func NumberValue(n int64) Value {
	return Value{kind: numberValue, num: n}
}

// StringValue returns a string value
func StringValue(s string) Value {
	return Value{kind: stringValue, str: s}
}

// Known reports whether the value is not Unknown
func (v Value) Known() bool {
	return v.kind != unknownValue
}

// Int returns the numeric value
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == numberValue
}

// Str returns the string value
func (v Value) Str() (string, bool) {
	return v.str, v.kind == stringValue
}

// String renders the value for display; Unknown renders as "unknown".
func (v Value) String() string {
	switch v.kind {
	case numberValue:
		return strconv.FormatInt(v.num, 10)
	case stringValue:
		return v.str
	default:
		return "unknown"
	}
}

// MarshalJSON encodes Unknown as null
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}

// MarshalYAML encodes Unknown as null
func (v Value) MarshalYAML() (interface{}, error) {
	return v.native(), nil
}

func (v Value) native() interface{} {
	switch v.kind {
	case numberValue:
		return v.num
	case stringValue:
		return v.str
	default:
		return nil
	}
}
