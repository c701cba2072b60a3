package money_test

import (
	"testing"

	"github.com/nordpeak/backoffice_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"5000", "5000", true},
		{"1234.56", "1234.56", true},
		{"  42.5 ", "42.5", true},
		{"-10", "-10", true},
		{"", "0", false},
		{"   ", "0", false},
		{"abc", "0", false},
		{"12,5", "0", false},
	}

	for _, tc := range testCases {
		got, ok := money.Parse(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "input %q: got %s", tc.input, got)
	}
}

func TestParseLenientDegradesToZero(t *testing.T) {
	assert.True(t, money.ParseLenient("garbage").IsZero())
	assert.True(t, money.ParseLenient("").IsZero())
	assert.Equal(t, "99.99", money.ParseLenient("99.99").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, money.IsValid("0.01"))
	assert.False(t, money.IsValid("one hundred"))
}
