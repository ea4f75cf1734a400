// Package money renders listing prices for display.
package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	rupee        = "₹"
	rentalSuffix = "/month"
)

var printer = message.NewPrinter(language.MustParse("en-IN")) //nolint: gochecknoglobals

// Format renders a whole-rupee price with Indian digit grouping, e.g.
// ₹12,34,567. Rentals get a /month suffix.
func Format(price int64, rental bool) string {
	s := rupee + printer.Sprint(number.Decimal(price, number.MaxFractionDigits(0)))
	if rental {
		s += rentalSuffix
	}

	return s
}

// Compact renders the short label shown on map pins, e.g. ₹1.2M or
// ₹45K/month.
func Compact(price int64, rental bool) string {
	var s string
	switch {
	case price >= 1_000_000:
		s = fmt.Sprintf("%s%.1fM", rupee, float64(price)/1_000_000)
	case price >= 1_000:
		s = fmt.Sprintf("%s%.0fK", rupee, float64(price)/1_000)
	default:
		s = fmt.Sprintf("%s%d", rupee, price)
	}
	if rental {
		s += rentalSuffix
	}

	return s
}
