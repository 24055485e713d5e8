// Package payment derives payment state from total/paid amounts. The same
// derivation backs reservations, the client side of extra services and the
// provider side of extra services, so it lives in one place.
package payment

// Status is the derived settlement state of a billable amount.
type Status string

const (
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// DeriveStatus classifies a total/paid pair: pending while nothing has been
// paid, paid once the total is covered (overpayment counts as paid), partial
// in between.
func DeriveStatus(total, paid float64) Status {
	switch {
	case paid == 0:
		return StatusPending
	case paid >= total:
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Remaining returns the outstanding balance, clamped at zero. Overpayment is
// absorbed, never reported as credit.
func Remaining(total, paid float64) float64 {
	if remaining := total - paid; remaining > 0 {
		return remaining
	}

	return 0
}

// Valid reports whether s is one of the known statuses. Used when statuses
// arrive from request filters rather than being derived.
func Valid(s Status) bool {
	switch s {
	case StatusPending, StatusPartial, StatusPaid:
		return true
	default:
		return false
	}
}
