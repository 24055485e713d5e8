package model

import (
	"time"

	"lagovibes/shared/model"
	"lagovibes/shared/payment"
)

const (
	TableName  = "extra_services"
	EntityName = "extra_service"

	FieldID                 = "id"
	FieldReservationID      = "reservation_id"
	FieldPropertyID         = "property_id"
	FieldClientName         = "client_name"
	FieldExtraType          = "extra_type"
	FieldServiceDate        = "service_date"
	FieldServiceTime        = "service_time"
	FieldTotalValue         = "total_value"
	FieldPaidValue          = "paid_value"
	FieldProviderTotalValue = "provider_total_value"
	FieldProviderPaidValue  = "provider_paid_value"
	FieldPaymentStatus      = "payment_status"
)

// ExtraService is an add-on (boat trip, jet ski, ice delivery...) billed
// apart from the stay, scheduled on a single day inside the reservation
// window. Client-side and provider-side amounts are tracked separately so
// the company margin can be derived.
type ExtraService struct {
	ID                 string         `db:"id"`
	ReservationID      string         `db:"reservation_id"`
	PropertyID         string         `db:"property_id"`
	ClientName         string         `db:"client_name"`
	ExtraType          string         `db:"extra_type"`
	ServiceDate        time.Time      `db:"service_date"`
	ServiceTime        string         `db:"service_time"`
	TotalValue         float64        `db:"total_value"`
	PaidValue          float64        `db:"paid_value"`
	ProviderTotalValue float64        `db:"provider_total_value"`
	ProviderPaidValue  float64        `db:"provider_paid_value"`
	PaymentStatus      payment.Status `db:"payment_status"`
	model.Metadata
}
