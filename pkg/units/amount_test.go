package units

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_Subunits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000000"},
		{"0.000000001", "1"},
		{"2", "2000000000"},
		{"1.5", "1500000000"},
		{"-0.25", "-250000000"},
		{"0.0000000005", "0.5"},
	}
	for _, tt := range tests {
		a, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, a.Subunits().String(), "Subunits(%s)", tt.in)
	}
}

func TestAmount_IsWholeSubunits(t *testing.T) {
	a, err := ParseAmount("1.000000001")
	require.NoError(t, err)
	assert.True(t, a.IsWholeSubunits())

	b, err := ParseAmount("0.0000000005")
	require.NoError(t, err)
	assert.False(t, b.IsWholeSubunits())
}

func TestParseAmount_SameGrammarAsParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" 1 ", "1"},
		{"", "0"},
		{"0x10", "16"},
		{"0b101", "5"},
		{"0o17", "15"},
		{"+5", "5"},
		{"5.", "5"},
		{".5", "0.5"},
		{"1e3", "1000"},
	}
	for _, tt := range tests {
		a, err := ParseAmount(tt.in)
		require.NoError(t, err, "ParseAmount(%q)", tt.in)
		assert.Equal(t, tt.want, a.String(), "ParseAmount(%q)", tt.in)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"not-a-number", "Infinity", "-Infinity", "1_000", "-0x10", "NaN"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrNotANumber, in)
	}
}

func TestFromSubunits(t *testing.T) {
	assert.Equal(t, "1.5", FromSubunits(1500000000).String())
	assert.Equal(t, "0.000000001", FromSubunits(1).String())
	assert.True(t, FromSubunits(0).IsZero())
}

func TestAmount_Constructors(t *testing.T) {
	assert.Equal(t, "1000000000", NewAmount(1).Subunits().String())
	d := decimal.NewFromFloat(0.125)
	assert.True(t, NewAmountFromDecimal(d).Decimal.Equal(d))
}
