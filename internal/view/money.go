package view

import (
	"math"
	"strconv"
	"strings"

	"sweetbox/internal/model"
)

// ParsePrice extracts the unit price from a display string such as "450 ₴".
// Every character other than digits and '.' is dropped and the longest
// numeric prefix is used. A display string without a number yields 0.
func ParsePrice(display string) float64 {
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, display)

	if first := strings.IndexByte(digits, '.'); first >= 0 {
		if second := strings.IndexByte(digits[first+1:], '.'); second >= 0 {
			digits = digits[:first+1+second]
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(digits, "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// LineTotal is the unit price times quantity, rounded to a whole amount.
func LineTotal(e model.CartEntry) int {
	return int(math.Round(ParsePrice(e.Price) * float64(e.Quantity)))
}

// GrandTotal sums the unrounded line amounts and rounds once, so fractional
// unit prices do not accumulate rounding error across lines.
func GrandTotal(entries []model.CartEntry) int {
	var total float64
	for _, e := range entries {
		total += ParsePrice(e.Price) * float64(e.Quantity)
	}
	return int(math.Round(total))
}

// FormatPrice renders a catalogue price the way cart entries store it.
func FormatPrice(price float64, suffix string) string {
	amount := strconv.FormatFloat(price, 'f', -1, 64)
	if suffix == "" {
		return amount
	}
	return amount + " " + suffix
}
