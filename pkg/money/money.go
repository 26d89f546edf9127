package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCents converts a display price such as "₱ 44,385.00" into centavos.
// Everything that is not a digit or decimal point is stripped before parsing,
// which tolerates mis-encoded currency glyphs in catalog data.
func ParseCents(display string) (int64, error) {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("money: no numeric value in %q", display)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("money: parsing %q: %w", display, err)
	}
	return value.Shift(2).Round(0).IntPart(), nil
}

// FormatPHP renders centavos as a peso display string with thousands separators.
func FormatPHP(cents int64) string {
	value := decimal.New(cents, -2)
	fixed := value.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
	}
	return fmt.Sprintf("₱ %s%s.%s", sign, grouped.String(), fracPart)
}
