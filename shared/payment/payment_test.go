package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lagovibes/shared/payment"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  payment.Status
	}{
		{"nothing paid", 1000, 0, payment.StatusPending},
		{"partially paid", 1000, 400, payment.StatusPartial},
		{"fully paid", 1000, 1000, payment.StatusPaid},
		{"overpaid still counts as paid", 1000, 1500, payment.StatusPaid},
		{"zero total with payment", 0, 50, payment.StatusPaid},
		{"zero total nothing paid", 0, 0, payment.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.DeriveStatus(tt.total, tt.paid))
		})
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  float64
	}{
		{"open balance", 1000, 400, 600},
		{"settled", 1000, 1000, 0},
		{"overpayment clamps to zero", 1000, 1500, 0},
		{"nothing paid", 800, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.Remaining(tt.total, tt.paid))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, payment.Valid(payment.StatusPending))
	assert.True(t, payment.Valid(payment.StatusPartial))
	assert.True(t, payment.Valid(payment.StatusPaid))
	assert.False(t, payment.Valid(payment.Status("refunded")))
	assert.False(t, payment.Valid(payment.Status("")))
}
