// Package pricing computes reservation money splits.
//
// Total charges the weekday rate for every night even though properties also
// carry weekend and holiday rates. That mirrors how the business currently
// quotes stays; keeping the rule behind one function lets a weighted-rate
// version replace it without touching call sites.
package pricing

import (
	"time"

	"lagovibes/shared/daterange"
)

// DefaultOwnerPercentage applies when a property has no revenue share
// configured.
const DefaultOwnerPercentage = 70

const percentBase = 100

// Total returns nights × weekdayRate for the stay. Same-day or inverted
// ranges price at zero, no error.
func Total(weekdayRate float64, checkIn, checkOut time.Time) float64 {
	return float64(daterange.Nights(checkIn, checkOut)) * weekdayRate
}

// OwnerShare returns the owner payout for a reservation total. A percentage
// of zero or less falls back to DefaultOwnerPercentage.
func OwnerShare(total, percentage float64) float64 {
	if percentage <= 0 {
		percentage = DefaultOwnerPercentage
	}

	return total * percentage / percentBase
}

// Margin is what the company keeps on an extra service: client total minus
// provider payout. Deliberately unclamped, a provider paid more than the
// client is charged shows up as a negative margin.
func Margin(total, providerTotal float64) float64 {
	return total - providerTotal
}
