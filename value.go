// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"strconv"
	"strings"
)

// ValueType enumerates the types of scalar values.
type ValueType byte

const (
	EmptyValue   ValueType = iota // no value assigned yet
	StringValue                   // string text, escapes unprocessed
	IntegerValue                  // 64-bit signed integer
	DoubleValue                   // 64-bit floating point
	BooleanValue                  // true or false
	NullValue                     // null
)

var valueTypeStr = [...]string{
	EmptyValue:   "none",
	StringValue:  "string",
	IntegerValue: "integer",
	DoubleValue:  "double",
	BooleanValue: "boolean",
	NullValue:    "null",
}

// String returns the lowercase label for t, or "unknown".
func (t ValueType) String() string {
	if int(t) < len(valueTypeStr) {
		return valueTypeStr[t]
	}
	return "unknown"
}

// A Value is a single JSON scalar. The zero Value is empty.
//
// The text of a string value is kept exactly as written, so escape sequences
// such as \n or \u00e9 are stored as their input characters and are
// reproduced verbatim on output.
type Value struct {
	typ ValueType
	str string
	num int64
	dbl float64
	ok  bool
}

// NewString returns a string value with the given text.
func NewString(s string) *Value { return &Value{typ: StringValue, str: s} }

// NewInteger returns an integer value.
func NewInteger(v int64) *Value { return &Value{typ: IntegerValue, num: v} }

// NewDouble returns a floating-point value.
func NewDouble(v float64) *Value { return &Value{typ: DoubleValue, dbl: v} }

// NewBoolean returns a Boolean value.
func NewBoolean(v bool) *Value { return &Value{typ: BooleanValue, ok: v} }

// NewNull returns a null value.
func NewNull() *Value { return &Value{typ: NullValue} }

func (*Value) isInsertable() {}

// Type reports the type of v.
func (v *Value) Type() ValueType { return v.typ }

// TypeName returns the label of the type of v.
func (v *Value) TypeName() string { return v.typ.String() }

// IsString reports whether v is a string.
func (v *Value) IsString() bool { return v.typ == StringValue }

// IsInteger reports whether v is an integer.
func (v *Value) IsInteger() bool { return v.typ == IntegerValue }

// IsDouble reports whether v is a double.
func (v *Value) IsDouble() bool { return v.typ == DoubleValue }

// IsBoolean reports whether v is a Boolean.
func (v *Value) IsBoolean() bool { return v.typ == BooleanValue }

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.typ == NullValue }

// IsEmpty reports whether v has not been assigned a type.
func (v *Value) IsEmpty() bool { return v.typ == EmptyValue }

// IsNumber reports whether v is an integer or a double.
func (v *Value) IsNumber() bool { return v.typ == IntegerValue || v.typ == DoubleValue }

func (v *Value) wrongType(want string) error {
	return wrongType("wrong type: value is %s, not %s", v.typ, want)
}

// TryString returns the text of a string value, or a WrongType error.
func (v *Value) TryString() (string, error) {
	if v.typ != StringValue {
		return "", v.wrongType("string")
	}
	return v.str, nil
}

// TryInteger returns the value of an integer, or a WrongType error.
func (v *Value) TryInteger() (int64, error) {
	if v.typ != IntegerValue {
		return 0, v.wrongType("integer")
	}
	return v.num, nil
}

// TryDouble returns the value of a double, or a WrongType error.
func (v *Value) TryDouble() (float64, error) {
	if v.typ != DoubleValue {
		return 0, v.wrongType("double")
	}
	return v.dbl, nil
}

// TryNumber returns the value of an integer or a double as a float64, or a
// WrongType error.
func (v *Value) TryNumber() (float64, error) {
	switch v.typ {
	case IntegerValue:
		return float64(v.num), nil
	case DoubleValue:
		return v.dbl, nil
	}
	return 0, v.wrongType("number")
}

// TryBoolean returns the value of a Boolean, or a WrongType error.
func (v *Value) TryBoolean() (bool, error) {
	if v.typ != BooleanValue {
		return false, v.wrongType("boolean")
	}
	return v.ok, nil
}

// TryNull reports a WrongType error if v is not null.
func (v *Value) TryNull() error {
	if v.typ != NullValue {
		return v.wrongType("null")
	}
	return nil
}

// AsString is as TryString, but panics on error.
func (v *Value) AsString() string { return must(v.TryString()) }

// AsInteger is as TryInteger, but panics on error.
func (v *Value) AsInteger() int64 { return must(v.TryInteger()) }

// AsDouble is as TryDouble, but panics on error.
func (v *Value) AsDouble() float64 { return must(v.TryDouble()) }

// AsNumber is as TryNumber, but panics on error.
func (v *Value) AsNumber() float64 { return must(v.TryNumber()) }

// AsBoolean is as TryBoolean, but panics on error.
func (v *Value) AsBoolean() bool { return must(v.TryBoolean()) }

// Stringify renders the literal text of v. String values are not quoted, and
// an empty value renders as "".
func (v *Value) Stringify() string {
	switch v.typ {
	case StringValue:
		return v.str
	case IntegerValue:
		return strconv.FormatInt(v.num, 10)
	case DoubleValue:
		s := strconv.FormatFloat(v.dbl, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") { // not NaN or ±Inf
			s += ".0"
		}
		return s
	case BooleanValue:
		return strconv.FormatBool(v.ok)
	case NullValue:
		return "null"
	}
	return ""
}

// String returns the same text as Stringify.
func (v *Value) String() string { return v.Stringify() }

// Equal reports whether v and w have the same type and value.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	return *v == *w
}

// assign copies the contents of w into v, so that holders of v observe the
// new contents.
func (v *Value) assign(w *Value) { *v = *w }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
