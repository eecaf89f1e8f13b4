// Package price converts between the decimal price convention (a fraction in
// [0,1]) and the cents display string ("35¢"). Arithmetic goes through
// shopspring/decimal so Format and Parse are exact inverses on the cent grid.
package price

import (
	"strings"

	"github.com/shopspring/decimal"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CentGlyph is appended to formatted prices.
const CentGlyph = "¢"

// Format renders a decimal price as a whole-cent string, e.g. 0.35 -> "35¢".
// Prices outside [0,1] are a usage error.
func Format(p float64) (string, error) {
	if p < 0 || p > 1 {
		return "", clienterr.NewValidationError("price %v out of range [0,1]", p)
	}
	cents := decimal.NewFromFloat(p).Mul(hundred).Round(0)
	return cents.String() + CentGlyph, nil
}

// centSuffixes are checked longest first so "cents" is not mistaken for a
// trailing "c" plus garbage.
var centSuffixes = []string{"cents", "cent", CentGlyph, "c"}

// Parse normalizes a price string to a decimal in [0,1]. Accepted forms:
// "35c", "35¢", "35 cents", "0.35", ".35". A bare value greater than 1 is
// interpreted as cents.
func Parse(s string) (float64, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	inCents := false
	for _, suffix := range centSuffixes {
		if strings.HasSuffix(t, suffix) {
			t = strings.TrimSpace(strings.TrimSuffix(t, suffix))
			inCents = true
			break
		}
	}
	if t == "" {
		return 0, clienterr.NewValidationError("empty price string %q", s)
	}

	d, err := decimal.NewFromString(t)
	if err != nil {
		return 0, clienterr.NewValidationError("cannot parse price %q", s)
	}
	if inCents || d.GreaterThan(one) {
		d = d.Div(hundred)
	}
	if d.IsNegative() || d.GreaterThan(one) {
		return 0, clienterr.NewValidationError("price %q out of range [0,1]", s)
	}
	return d.InexactFloat64(), nil
}
