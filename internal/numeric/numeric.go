// Package numeric converts between user-facing decimal strings and the
// decimal values used by the pool engine.
package numeric

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// DisplayDecimals is the default number of fractional digits shown to users.
const DisplayDecimals = 4

// inputPattern accepts an optional sign, digits and a single '.' separator.
var inputPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// IsValidInput reports whether s is empty or a plain decimal number.
func IsValidInput(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || inputPattern.MatchString(s)
}

// Parse converts s into a decimal. Empty or malformed input yields zero.
func Parse(s string) decimal.Decimal {
	d, err := ParseStrict(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseStrict converts s into a decimal and rejects anything that is not
// empty or a plain decimal number. Empty input yields zero. Numbers finer
// than poolmath.Precision are rejected.
func ParseStrict(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if !inputPattern.MatchString(s) {
		return decimal.Zero, errors.Wrapf(apperrors.ErrInvalidArgument, "malformed amount %q", s)
	}

	sign := ""
	switch s[0] {
	case '-':
		sign, s = "-", s[1:]
	case '+':
		s = s[1:]
	}
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	d, err := decimal.NewFromString(sign + s)
	if err != nil {
		return decimal.Zero, errors.Wrap(apperrors.ErrInvalidArgument, err.Error())
	}
	if !poolmath.WithinPrecision(d) {
		return decimal.Zero, errors.Wrapf(apperrors.ErrInvalidArgument,
			"amount %q has more than %d fractional digits", s, poolmath.Precision)
	}
	return d, nil
}

// Format renders d with at most decimals fractional digits, trimming
// trailing zeros and a dangling separator.
func Format(d decimal.Decimal, decimals int32) string {
	if decimals < 0 {
		decimals = 0
	}
	s := d.StringFixed(decimals)
	if !strings.Contains(s, ".") {
		return normalizeZero(s)
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return normalizeZero(s)
}

// FormatDisplay renders d with DisplayDecimals fractional digits.
func FormatDisplay(d decimal.Decimal) string {
	return Format(d, DisplayDecimals)
}

func normalizeZero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}
