package units

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var subunitFactor = decimal.NewFromInt(SubunitsPerUnit)

// Amount is a unit-denominated quantity held with exact decimal precision.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from a float64.
func NewAmount(value float64) Amount {
	return Amount{decimal.NewFromFloat(value)}
}

// NewAmountFromDecimal wraps a decimal.Decimal.
func NewAmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// ParseAmount reads an exact amount using the ParseNumber grammar, except
// that infinities have no exact form and are rejected.
func ParseAmount(value string) (Amount, error) {
	t := strings.TrimSpace(value)
	switch {
	case t == "":
		return Amount{decimal.Zero}, nil
	case strings.HasSuffix(t, "Infinity"):
		return Amount{}, fmt.Errorf("%w: %q has no exact value", ErrNotANumber, value)
	case prefixedInt.MatchString(t):
		n, _ := new(big.Int).SetString(t[2:], prefixBase(t))
		return Amount{decimal.NewFromBigInt(n, 0)}, nil
	case decimalLiteral.MatchString(t):
		d, err := decimal.NewFromString(t)
		if err == nil {
			return Amount{d}, nil
		}
	}
	return Amount{}, fmt.Errorf("%w: %q", ErrNotANumber, value)
}

// FromSubunits converts a whole number of subunits into units.
func FromSubunits(subunits int64) Amount {
	return Amount{decimal.New(subunits, -9)}
}

// Subunits returns the amount expressed in subunits, without rounding.
func (a Amount) Subunits() decimal.Decimal {
	return a.Decimal.Mul(subunitFactor)
}

// IsWholeSubunits reports whether the amount is an integral number of
// subunits.
func (a Amount) IsWholeSubunits() bool {
	s := a.Subunits()
	return s.Equal(s.Truncate(0))
}

// String returns the amount without trailing zeros.
func (a Amount) String() string {
	return a.Decimal.String()
}
