// Package finance holds the pure computation pipeline behind the report and
// strategy screens: currency normalization, billing aggregation, KPI derived
// fields, allocation availability and the multi-month staffing timeline.
// Every function here is stateless and works over snapshots the caller has
// already fetched; nothing in this package touches the database.
package finance

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ToVND converts a USD or USDT amount to its VND equivalent at the given
// exchange rate. The rate comes from an enumerated UI selector and is
// guaranteed positive by the caller; no rounding happens here.
func ToVND(amount, rate float64) float64 {
	return amount * rate
}

// RoundVND rounds a VND amount to a whole dong for display and export.
func RoundVND(v float64) float64 {
	return math.Round(v)
}

// Round2 rounds to 2 decimal places (headcount equivalents, percentages).
func Round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return 0
	}
	return r
}

// Round3 rounds to 3 decimal places (salary coefficients).
func Round3(v float64) float64 {
	r, err := stats.Round(v, 3)
	if err != nil {
		return 0
	}
	return r
}

// PercentLabel formats a percentage as a whole number with a trailing "%".
func PercentLabel(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}
