package service

import "math"

// FancyRound snaps a price to a charm ending of 99. The price is rounded to
// the nearest hundred first; prices above that base land on base+99, anything
// at or below it drops to the 99 below. 1050 becomes 1099, 1000 becomes 999.
func FancyRound(price float64) float64 {
	base := math.Round(price/100) * 100

	if price > base {
		return base + 99
	}

	return (base - 100) + 99
}
