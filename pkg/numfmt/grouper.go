package numfmt

import (
	"math"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits matches the default precision locales use when turning a
// number into display text.
const maxFractionDigits = 3

// probeValue is rendered once per locale to discover its group separator.
const probeValue = 1234567

// Grouper produces grouped-digit strings and reports the separator it places
// between digit groups.
type Grouper interface {
	Group(value float64) string
	Separator() string
}

// LocaleGrouper groups digits following the CLDR conventions of a locale.
// It is immutable after construction.
type LocaleGrouper struct {
	tag       language.Tag
	printer   *message.Printer
	separator string
}

// NewLocaleGrouper creates a grouper for the given locale.
func NewLocaleGrouper(tag language.Tag) *LocaleGrouper {
	p := message.NewPrinter(tag)
	g := &LocaleGrouper{tag: tag, printer: p}
	g.separator = detectSeparator(g.render(probeValue))
	return g
}

// Tag returns the locale the grouper renders for.
func (g *LocaleGrouper) Tag() language.Tag { return g.tag }

// Group renders value with the locale's grouping and decimal symbols.
func (g *LocaleGrouper) Group(value float64) string { return g.render(value) }

// Separator returns the locale's group separator, or "" if it does not group.
func (g *LocaleGrouper) Separator() string { return g.separator }

func (g *LocaleGrouper) render(value float64) string {
	if isFinite(value) {
		value = roundHalfAway(value, maxFractionDigits)
	}
	return g.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(maxFractionDigits)))
}

// detectSeparator returns the first run of non-digit runes following the
// leading digit of a rendered probe value.
func detectSeparator(rendered string) string {
	runes := []rune(rendered)
	start := -1
	for i, r := range runes {
		if unicode.IsDigit(r) {
			if start >= 0 {
				return string(runes[start:i])
			}
			continue
		}
		if start < 0 && i > 0 && unicode.IsDigit(runes[i-1]) {
			start = i
		}
	}
	return ""
}

// PlainGrouper groups digits in threes with commas and needs no locale data.
type PlainGrouper struct{}

func (PlainGrouper) Group(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "∞"
	case math.IsInf(value, -1):
		return "-∞"
	}
	return humanize.CommafWithDigits(roundHalfAway(value, maxFractionDigits), maxFractionDigits)
}

func (PlainGrouper) Separator() string { return "," }

func isFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// roundHalfAway rounds ties away from zero at the given fraction digit.
func roundHalfAway(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	scaled := value * scale
	if math.IsInf(scaled, 0) {
		return value
	}
	return math.Round(scaled) / scale
}
