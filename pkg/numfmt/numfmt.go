// Package numfmt renders numbers as grouped-digit strings that use a plain
// space between digit groups, whatever separator the locale prefers.
package numfmt

import (
	"math"
	"os"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// GroupSeparator replaces the locale's group separator in every result.
const GroupSeparator = " "

// zeroText is returned for absent and zero values.
const zeroText = "0"

// Formatter formats numbers with a grouping strategy and swaps the strategy's
// separator for GroupSeparator. The zero value uses PlainGrouper.
type Formatter struct {
	grouper Grouper
}

// NewFormatter creates a formatter around the given grouping strategy.
func NewFormatter(g Grouper) *Formatter {
	return &Formatter{grouper: g}
}

// Grouper returns the strategy in use.
func (f *Formatter) Grouper() Grouper {
	if f == nil || f.grouper == nil {
		return PlainGrouper{}
	}
	return f.grouper
}

// Format returns value grouped with single spaces. Zero and NaN yield "0".
func (f *Formatter) Format(value float64) string {
	if isFalsy(value) {
		return zeroText
	}
	g := f.Grouper()
	grouped := g.Group(value)
	sep := g.Separator()
	if sep == "" || sep == GroupSeparator {
		return grouped
	}
	return strings.ReplaceAll(grouped, sep, GroupSeparator)
}

// FormatOptional is Format for a value that may be absent.
func (f *Formatter) FormatOptional(value *float64) string {
	if value == nil {
		return zeroText
	}
	return f.Format(*value)
}

// FormatDecimal formats a decimal amount. Precision beyond float64 is lost.
func (f *Formatter) FormatDecimal(value decimal.Decimal) string {
	return f.Format(value.InexactFloat64())
}

func isFalsy(value float64) bool {
	return value == 0 || math.IsNaN(value)
}

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// Default returns the formatter for the ambient locale, built on first use.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = NewFormatter(NewLocaleGrouper(AmbientLocale()))
	})
	return defaultFormatter
}

// FormatGroupedNumber formats value for the ambient locale with single
// spaces between digit groups.
func FormatGroupedNumber(value float64) string {
	return Default().Format(value)
}

// FormatGroupedOptional is FormatGroupedNumber for a value that may be nil.
func FormatGroupedOptional(value *float64) string {
	return Default().FormatOptional(value)
}

// localeEnv lists the variables consulted for the ambient locale, in order.
var localeEnv = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// AmbientLocale resolves the process locale from the environment, falling
// back to American English.
func AmbientLocale() language.Tag {
	for _, key := range localeEnv {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}
	return language.AmericanEnglish
}

// ParseLocale accepts BCP 47 tags and POSIX locale names such as
// "de_DE.UTF-8". Unknown or empty names resolve to American English.
func ParseLocale(name string) language.Tag {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.AmericanEnglish
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
