// Package units converts amounts between a base unit and its subunit, which
// is one billionth of the unit.
package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// SubunitsPerUnit is the number of subunits in one unit.
const SubunitsPerUnit = 1_000_000_000

// ErrNotANumber is returned when a string cannot be read as a number.
var ErrNotANumber = errors.New("not a number")

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)$`)
	prefixedInt    = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// ConvertUnitToSubunit multiplies value by SubunitsPerUnit using ordinary
// float64 arithmetic. Overflow yields an infinity and NaN stays NaN.
func ConvertUnitToSubunit(value float64) float64 {
	return value * SubunitsPerUnit
}

// ConvertStringToSubunit parses s and converts it. Unparseable input yields
// NaN.
func ConvertStringToSubunit(s string) float64 {
	v, _ := ParseNumber(s)
	return ConvertUnitToSubunit(v)
}

// ParseNumber reads s as a number. Surrounding whitespace is ignored and a
// blank string is zero. Decimal literals may carry a sign, a fraction and an
// exponent; "Infinity" may be signed. Hexadecimal, octal and binary integers
// need a 0x, 0o or 0b prefix and no sign. On failure the result is NaN and
// the error wraps ErrNotANumber.
func ParseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	switch {
	case t == "":
		return 0, nil
	case decimalLiteral.MatchString(t):
		v, err := strconv.ParseFloat(t, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN(), fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
		return v, nil
	case prefixedInt.MatchString(t):
		return parsePrefixed(t), nil
	}
	return math.NaN(), fmt.Errorf("%w: %q", ErrNotANumber, s)
}

// parsePrefixed converts a literal already matched by prefixedInt.
func parsePrefixed(t string) float64 {
	n, _ := new(big.Int).SetString(t[2:], prefixBase(t))
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func prefixBase(t string) int {
	switch t[1] {
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 16
}
