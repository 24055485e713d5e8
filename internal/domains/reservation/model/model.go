package model

import (
	"time"

	"lagovibes/shared/model"
	"lagovibes/shared/payment"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldPropertyID      = "property_id"
	FieldClientName      = "client_name"
	FieldClientTaxID     = "client_tax_id"
	FieldClientPhone     = "client_phone"
	FieldClientEmail     = "client_email"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldTotalValue      = "total_value"
	FieldPaidValue       = "paid_value"
	FieldOwnerTotalValue = "owner_total_value"
	FieldOwnerPaidValue  = "owner_paid_value"
	FieldPaymentStatus   = "payment_status"
)

// Reservation occupies every calendar day of [CheckIn, CheckOut], both
// boundaries inclusive.
type Reservation struct {
	ID              string         `db:"id"`
	PropertyID      string         `db:"property_id"`
	ClientName      string         `db:"client_name"`
	ClientTaxID     string         `db:"client_tax_id"`
	ClientPhone     string         `db:"client_phone"`
	ClientEmail     string         `db:"client_email"`
	CheckIn         time.Time      `db:"check_in"`
	CheckOut        time.Time      `db:"check_out"`
	Guests          int            `db:"guests"`
	TotalValue      float64        `db:"total_value"`
	PaidValue       float64        `db:"paid_value"`
	OwnerTotalValue float64        `db:"owner_total_value"`
	OwnerPaidValue  float64        `db:"owner_paid_value"`
	PaymentStatus   payment.Status `db:"payment_status"`
	model.Metadata
}
