package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatFloat renders a float without exponent or trailing zeros, e.g.
// 2000000000 or 0.5. Non-finite values print as NaN, +Inf and -Inf.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FormatDecimal renders an exact decimal without trailing zeros.
func FormatDecimal(d decimal.Decimal) string { return d.String() }
