package msgformat

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind is the runtime type of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindDate
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "invalid"
	}
}

// Value is a runtime argument: a string, a number or a date.
// The zero Value is invalid and is reported as a type mismatch.
type Value struct {
	kind    Kind
	str     string
	integer int64
	float   float64
	isFloat bool
	date    time.Time
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer number Value.
func Int(n int64) Value {
	return Value{kind: KindNumber, integer: n}
}

// Float returns a floating point number Value.
// Floats with no fractional part are kept as floats; use Int for counts.
func Float(f float64) Value {
	return Value{kind: KindNumber, float: f, isFloat: true}
}

// Date returns a date/time Value.
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

// Kind reports the runtime type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInteger reports whether v is a number held as an integer.
func (v Value) IsInteger() bool {
	return v.kind == KindNumber && !v.isFloat
}

// Int64 returns the integer form of a number. Floats are truncated.
func (v Value) Int64() int64 {
	if v.isFloat {
		return int64(v.float)
	}
	return v.integer
}

// Float64 returns the number as a float64.
func (v Value) Float64() float64 {
	if v.isFloat {
		return v.float
	}
	return float64(v.integer)
}

// Str returns the string payload of a string Value.
func (v Value) Str() string {
	return v.str
}

// Time returns the payload of a date Value.
func (v Value) Time() time.Time {
	return v.date
}

// String returns the locale-independent textual form of v.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.isFloat {
			return strconv.FormatFloat(v.float, 'f', -1, 64)
		}
		return strconv.FormatInt(v.integer, 10)
	case KindDate:
		return v.date.Format(time.RFC3339)
	default:
		return ""
	}
}

// subtract returns v - offset, reporting false on integer overflow.
func (v Value) subtract(offset int64) (Value, bool) {
	if offset == 0 {
		return v, true
	}
	if v.isFloat {
		return Float(v.float - float64(offset)), true
	}
	if v.integer < math.MinInt64+offset {
		return Value{}, false
	}
	return Int(v.integer - offset), true
}

// Args maps argument names to runtime values.
type Args map[string]Value

// ArgsFrom converts loosely typed values into Args.
// Supported: Value, string, fmt.Stringer, every int/uint/float kind and time.Time.
func ArgsFrom(m map[string]any) (Args, error) {
	args := make(Args, len(m))
	for name, raw := range m {
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		args[name] = v
	}
	return args, nil
}

// ValueOf converts a single Go value into a Value.
func ValueOf(raw any) (Value, error) {
	switch x := raw.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return Date(x), nil
	case fmt.Stringer:
		return String(x.String()), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrArgumentTypeMismatch, raw)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrArgumentTypeMismatch, u)
	}
	return Int(int64(u)), nil
}
