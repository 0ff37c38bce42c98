package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadAmount = errors.New("invalid amount")

// EuroMinorUnits converts a decimal euro amount such as "12.50" to integer
// cents (1250). The conversion is exact: no floating point is involved.
// Amounts with more than two decimals are rejected, which also means
// non-2-decimal currencies are unsupported.
func EuroMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, ErrBadAmount
	}

	whole, frac, _ := strings.Cut(s, ".")

	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}

	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac += "0"
	case 2:
	default:
		return 0, fmt.Errorf("%w: %q has more than two decimals", ErrBadAmount, s)
	}

	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}

	return euros*100 + cents, nil
}
