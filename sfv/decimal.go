package sfv

import (
	"fmt"
	"strconv"
	"strings"
)

// NewDecimal parses a decimal literal such as "-12.345" or "3" into a
// Decimal bare value. Up to 6 fractional digits are accepted (twice the
// wire grammar's 3-digit limit) so that callers constructing values
// programmatically can supply extra precision and let ToHTTPValue's
// banker's rounding collapse it to the canonical 3 digits, matching
// spec.md's "rounding is applied only on serialization" rule.
func NewDecimal(s string) (Decimal, error) {
	negative := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}

	intDigits, fracDigits, ok := splitDecimalLiteral(rest)
	if !ok {
		return Decimal{}, fmt.Errorf("sfv: %q is not a valid decimal literal", s)
	}
	if len(fracDigits) > 6 {
		return Decimal{}, fmt.Errorf("sfv: %q has more than 6 fractional digits", s)
	}

	intVal, err := strconv.ParseInt(intDigits, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("sfv: %q is not a valid decimal literal: %w", s, err)
	}

	fracPadded := fracDigits + strings.Repeat("0", 6-len(fracDigits))
	fracVal, err := strconv.ParseInt(fracPadded, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("sfv: %q is not a valid decimal literal: %w", s, err)
	}

	micros := intVal*decimalScale + fracVal
	if negative {
		micros = -micros
	}
	return NewDecimalMicros(micros)
}

// splitDecimalLiteral splits "123.456" into ("123", "456", true). A literal
// with no "." returns an empty fractional part. Anything not composed of
// ASCII digits around a single optional "." is rejected.
func splitDecimalLiteral(s string) (intDigits, fracDigits string, ok bool) {
	dot := strings.IndexByte(s, '.')
	intDigits, fracDigits = s, ""
	if dot >= 0 {
		intDigits, fracDigits = s[:dot], s[dot+1:]
	}
	if intDigits == "" || !isAllDigits(intDigits) {
		return "", "", false
	}
	if dot >= 0 && (fracDigits == "" || !isAllDigits(fracDigits)) {
		return "", "", false
	}
	return intDigits, fracDigits, true
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// roundMicrosToMilli rounds a value stored in micro-units (scale 1_000_000)
// down to milli-units (scale 1_000, i.e. 3 fractional digits) using
// round-half-to-even ("banker's rounding"), as spec.md §3/§8 requires for
// canonical decimal serialization.
func roundMicrosToMilli(micros int64) int64 {
	negative := micros < 0
	u := micros
	if negative {
		u = -u
	}
	q, r := u/1000, u%1000
	switch {
	case r > 500:
		q++
	case r == 500 && q%2 != 0:
		q++
	}
	if negative {
		q = -q
	}
	return q
}

// formatDecimalMilli renders a milli-scaled (3 fractional digit) decimal
// value in canonical form: no leading zeros on the integer part, trailing
// fractional zeros trimmed but at least one fractional digit always kept.
func formatDecimalMilli(milli int64) string {
	negative := milli < 0
	u := milli
	if negative {
		u = -u
	}
	intPart := u / 1000
	fracPart := u % 1000

	frac := fmt.Sprintf("%03d", fracPart)
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}

	sign := ""
	if negative && (intPart != 0 || fracPart != 0) {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%s", sign, intPart, frac)
}
