package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a number the way trial-balance exports print them:
// Indian-format comma grouping, parenthesized or Dr/Cr-suffixed values,
// currency prefixes. Anything unparseable normalizes to 0 rather than
// failing the import.
func parseAmount(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" || s == "-" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "CR"):
		negative = !negative
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "DR"):
		s = strings.TrimSpace(s[:len(s)-2])
	}

	s = strings.NewReplacer(",", "", " ", "", "₹", "", "Rs.", "", "Rs", "").Replace(s)
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if negative {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f
}
