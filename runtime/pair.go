package dxf

import (
	"math"
	"strconv"
)

// Kind identifies the type of value a code pair carries.
type Kind byte

const (
	InvalidKind Kind = iota
	StringKind
	Float64Kind
	Int16Kind
	Int32Kind
	Int64Kind
	BoolKind
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case StringKind:
		return "str"
	case Float64Kind:
		return "float64"
	case Int16Kind:
		return "int16"
	case Int32Kind:
		return "int32"
	case Int64Kind:
		return "int64"
	case BoolKind:
		return "bool"
	default:
		return "<invalid>"
	}
}

// Value is the typed payload of a code pair. Exactly one of the fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind
	i    int64
	f    float64
	s    string
}

// Str returns a string value.
func Str(s string) Value { return Value{Kind: StringKind, s: s} }

// Float returns a float64 value.
func Float(f float64) Value { return Value{Kind: Float64Kind, f: f} }

// Short returns an int16 value.
func Short(v int16) Value { return Value{Kind: Int16Kind, i: int64(v)} }

// Long returns an int32 value.
func Long(v int32) Value { return Value{Kind: Int32Kind, i: int64(v)} }

// Huge returns an int64 value.
func Huge(v int64) Value { return Value{Kind: Int64Kind, i: v} }

// Bool returns a bool value.
func Bool(b bool) Value {
	v := Value{Kind: BoolKind}
	if b {
		v.i = 1
	}
	return v
}

// String renders the value the way it would appear on a DXF value line.
func (v Value) String() string {
	switch v.Kind {
	case StringKind:
		return v.s
	case Float64Kind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Int16Kind, Int32Kind, Int64Kind, BoolKind:
		return strconv.FormatInt(v.i, 10)
	default:
		return ""
	}
}

// CodePair is one tagged record of a DXF stream.
type CodePair struct {
	Code  int
	Value Value
}

// NewPair builds a code pair; it is shorthand for literals in tests and
// encoders.
func NewPair(code int, v Value) CodePair { return CodePair{Code: code, Value: v} }

func (p CodePair) malformed(want Kind) error {
	return MalformedValueError{Code: p.Code, Want: want, Got: p.Value.Kind}
}

// Int16 returns the pair's value as an int16. Wider integers are accepted
// when they fit.
func (p CodePair) Int16() (int16, error) {
	switch p.Value.Kind {
	case Int16Kind, Int32Kind, Int64Kind, BoolKind:
		if p.Value.i < math.MinInt16 || p.Value.i > math.MaxInt16 {
			return 0, MalformedValueError{Code: p.Code, Want: Int16Kind, Got: p.Value.Kind,
				Reason: strconv.FormatInt(p.Value.i, 10) + " overflows int16"}
		}
		return int16(p.Value.i), nil
	}
	return 0, p.malformed(Int16Kind)
}

// Int32 returns the pair's value as an int32. int16 values are widened.
func (p CodePair) Int32() (int32, error) {
	switch p.Value.Kind {
	case Int16Kind, Int32Kind, Int64Kind, BoolKind:
		if p.Value.i < math.MinInt32 || p.Value.i > math.MaxInt32 {
			return 0, MalformedValueError{Code: p.Code, Want: Int32Kind, Got: p.Value.Kind,
				Reason: strconv.FormatInt(p.Value.i, 10) + " overflows int32"}
		}
		return int32(p.Value.i), nil
	}
	return 0, p.malformed(Int32Kind)
}

// Int64 returns the pair's value as an int64.
func (p CodePair) Int64() (int64, error) {
	switch p.Value.Kind {
	case Int16Kind, Int32Kind, Int64Kind, BoolKind:
		return p.Value.i, nil
	}
	return 0, p.malformed(Int64Kind)
}

// Float64 returns the pair's value as a float64.
func (p CodePair) Float64() (float64, error) {
	if p.Value.Kind != Float64Kind {
		return 0, p.malformed(Float64Kind)
	}
	return p.Value.f, nil
}

// Str returns the pair's value as a string.
func (p CodePair) Str() (string, error) {
	if p.Value.Kind != StringKind {
		return "", p.malformed(StringKind)
	}
	return p.Value.s, nil
}

// Bool returns the pair's value as a flag: any non-zero integer is true.
func (p CodePair) Bool() (bool, error) {
	switch p.Value.Kind {
	case Int16Kind, Int32Kind, Int64Kind, BoolKind:
		return p.Value.i != 0, nil
	}
	return false, p.malformed(BoolKind)
}

// String implements fmt.Stringer
func (p CodePair) String() string {
	return strconv.Itoa(p.Code) + "/" + p.Value.String()
}
