package sfv

import (
	"fmt"
	"unicode/utf8"
)

// BareKind identifies the concrete kind of a BareValue.
type BareKind uint8

const (
	KindInteger BareKind = iota
	KindDecimal
	KindString
	KindToken
	KindByteSequence
	KindBoolean
	KindDate
	KindDisplayString
)

// String returns the kind name.
func (k BareKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindToken:
		return "token"
	case KindByteSequence:
		return "byte-sequence"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDisplayString:
		return "display-string"
	default:
		return "unknown"
	}
}

// BareValue is the sum type of the RFC 8941 (+9651) bare item kinds. The set
// of implementations is closed: Integer, Decimal, Str, Token, ByteSequence,
// Boolean, Date, DisplayString. Every implementation is immutable and is
// only ever constructed through its validating constructor, so a BareValue
// in hand always satisfies its type's range/charset invariant.
type BareValue interface {
	// Kind reports which of the closed set of bare kinds this value is.
	Kind() BareKind

	isBareValue()
}

const (
	maxIntegerDigits = 15
	maxIntegerAbs    = 999_999_999_999_999
	maxDecimalDigits = 12
	maxDecimalIntAbs = 999_999_999_999
	decimalScale     = 1_000_000 // internal precision: 6 fractional digits
)

// Integer is a signed integer bare value, |v| <= 999_999_999_999_999.
type Integer struct{ v int64 }

// NewInteger validates and constructs an Integer bare value.
func NewInteger(v int64) (Integer, error) {
	if v < -maxIntegerAbs || v > maxIntegerAbs {
		return Integer{}, fmt.Errorf("sfv: integer %d exceeds %d-digit range", v, maxIntegerDigits)
	}
	return Integer{v}, nil
}

// Value returns the wrapped int64.
func (i Integer) Value() int64 { return i.v }

func (Integer) Kind() BareKind { return KindInteger }
func (Integer) isBareValue()   {}

// Decimal is a finite decimal bare value. Internally it is stored at a
// fixed precision of 6 fractional digits (twice what the wire grammar
// allows) so that values built programmatically with up to 6 fractional
// digits retain their exact input before the serializer's banker's-rounding
// step collapses them to the canonical 3 digits; a value parsed from the
// wire always has <= 3 fractional digits and is therefore stored exactly.
type Decimal struct{ micros int64 } // value = micros / 1_000_000

// NewDecimalMicros constructs a Decimal directly from its micro-unit
// representation (value * 1_000_000). Used by the parser, where the
// fractional part is already known to have at most 3 digits.
func NewDecimalMicros(micros int64) (Decimal, error) {
	intPart := micros / decimalScale
	if intPart < -maxDecimalIntAbs || intPart > maxDecimalIntAbs {
		return Decimal{}, fmt.Errorf("sfv: decimal integer part exceeds %d-digit range", maxDecimalDigits)
	}
	return Decimal{micros}, nil
}

// Micros returns the internal micro-unit representation (value * 1_000_000).
func (d Decimal) Micros() int64 { return d.micros }

func (Decimal) Kind() BareKind { return KindDecimal }
func (Decimal) isBareValue()   {}

// Str is an RFC 8941 string: code points in 0x20..=0x7E.
type Str struct{ v string }

// NewString validates and constructs a Str bare value.
func NewString(s string) (Str, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return Str{}, fmt.Errorf("sfv: string contains byte 0x%02x outside 0x20..0x7e at offset %d", s[i], i)
		}
	}
	return Str{s}, nil
}

// Value returns the wrapped string.
func (s Str) Value() string { return s.v }

func (Str) Kind() BareKind { return KindString }
func (Str) isBareValue()   {}

// Token is a non-empty RFC 8941 token: first byte in [A-Za-z*], remaining
// bytes in the token character set.
type Token struct{ v string }

// NewToken validates and constructs a Token bare value.
func NewToken(s string) (Token, error) {
	if s == "" {
		return Token{}, fmt.Errorf("sfv: token must be non-empty")
	}
	if !isTokenStart(s[0]) {
		return Token{}, fmt.Errorf("sfv: token %q starts with invalid byte 0x%02x", s, s[0])
	}
	for i := 1; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return Token{}, fmt.Errorf("sfv: token %q contains invalid byte 0x%02x at offset %d", s, s[i], i)
		}
	}
	return Token{s}, nil
}

// Value returns the wrapped token text.
func (t Token) Value() string { return t.v }

func (Token) Kind() BareKind { return KindToken }
func (Token) isBareValue()   {}

// ByteSequence is an opaque byte string, serialized as base64 between colons.
type ByteSequence struct{ v []byte }

// NewByteSequence constructs a ByteSequence bare value. Any byte string is
// valid; the value is copied defensively.
func NewByteSequence(b []byte) ByteSequence {
	return ByteSequence{v: append([]byte(nil), b...)}
}

// Value returns a copy of the wrapped bytes.
func (b ByteSequence) Value() []byte { return append([]byte(nil), b.v...) }

func (ByteSequence) Kind() BareKind { return KindByteSequence }
func (ByteSequence) isBareValue()   {}

// Boolean is one of the two RFC 8941 boolean values.
type Boolean struct{ v bool }

// NewBoolean constructs a Boolean bare value.
func NewBoolean(b bool) Boolean { return Boolean{b} }

// Value returns the wrapped bool.
func (b Boolean) Value() bool { return b.v }

func (Boolean) Kind() BareKind { return KindBoolean }
func (Boolean) isBareValue()   {}

// Date is an RFC 9651 whole-second timestamp, serialized as "@" followed by
// an sf-integer, so it shares Integer's range.
type Date struct{ v int64 }

// NewDate validates and constructs a Date bare value.
func NewDate(seconds int64) (Date, error) {
	if seconds < -maxIntegerAbs || seconds > maxIntegerAbs {
		return Date{}, fmt.Errorf("sfv: date %d exceeds %d-digit range", seconds, maxIntegerDigits)
	}
	return Date{seconds}, nil
}

// Value returns the wrapped Unix seconds.
func (d Date) Value() int64 { return d.v }

func (Date) Kind() BareKind { return KindDate }
func (Date) isBareValue()   {}

// DisplayString is an RFC 9651 Unicode string, serialized percent-encoded
// between %" and ".
type DisplayString struct{ v string }

// NewDisplayString validates and constructs a DisplayString bare value.
func NewDisplayString(s string) (DisplayString, error) {
	if !utf8.ValidString(s) {
		return DisplayString{}, fmt.Errorf("sfv: display string is not valid UTF-8")
	}
	return DisplayString{s}, nil
}

// Value returns the wrapped Unicode string.
func (d DisplayString) Value() string { return d.v }

func (DisplayString) Kind() BareKind { return KindDisplayString }
func (DisplayString) isBareValue()   {}
