package patternfmt

import "strconv"

// ValueKind identifies which alternative of Value is populated.
type ValueKind int

const (
	// KindString holds a string value.
	KindString ValueKind = iota
	// KindInt holds an integer value.
	KindInt
	// KindDouble holds a floating-point value.
	KindDouble
	// KindBool holds a boolean value.
	KindBool
)

// Value is one typed value held by a Pattern. A pattern carries a handful
// of concrete value kinds; Value is a small closed sum rather than an
// interface{} so callers can't smuggle in types the unparser doesn't know
// how to render.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int
	Dbl  float64
	Bool bool
}

// StringValue constructs a string-typed Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue constructs an integer-typed Value.
func IntValue(i int) Value { return Value{Kind: KindInt, Int: i} }

// DoubleValue constructs a floating-point-typed Value.
func DoubleValue(f float64) Value { return Value{Kind: KindDouble, Dbl: f} }

// BoolValue constructs a boolean-typed Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// unparse appends this value's textual form to dst.
func (v Value) unparse(dst []byte) []byte {
	switch v.Kind {
	case KindString:
		return append(dst, v.Str...)
	case KindInt:
		return strconv.AppendInt(dst, int64(v.Int), 10)
	case KindDouble:
		return appendDouble(dst, v.Dbl)
	case KindBool:
		if v.Bool {
			return append(dst, 't')
		}
		return append(dst, 'f')
	default:
		return dst
	}
}

// appendDouble renders a float with trailing zeroes and a trailing decimal
// point trimmed, e.g. 10.0 -> "10".
func appendDouble(dst []byte, f float64) []byte {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return append(dst, s...)
}
