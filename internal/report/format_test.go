package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndian(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
		{12345, "12,345.00"},
		{123456, "1,23,456.00"},
		{1234567.89, "12,34,567.89"},
		{123456789, "12,34,56,789.00"},
		{-1234567.5, "(12,34,567.50)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatIndian(tc.in), "input %v", tc.in)
	}
}

func TestFormatIndianWhole(t *testing.T) {
	assert.Equal(t, "10,00,000", FormatIndianWhole(1000000))
	assert.Equal(t, "(500)", FormatIndianWhole(-500))
}
