package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGrossAmount converts the gateway's decimal-string amount (e.g. "150000"
// or "150000.00") into minor units. The currency here has no sub-unit, so a
// non-zero fraction is rejected rather than rounded.
func ParseGrossAmount(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")

	amount, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gross_amount %q: %w", s, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("negative gross_amount %q", s)
	}

	if hasFrac {
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f != 0 {
			return 0, fmt.Errorf("fractional gross_amount %q not representable in minor units", s)
		}
	}

	return amount, nil
}
