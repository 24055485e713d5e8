package dto

import (
	"time"

	"github.com/google/uuid"

	"lagovibes/internal/domains/reservation/model"
	"lagovibes/shared"
	"lagovibes/shared/constant"
	"lagovibes/shared/daterange"
	gDto "lagovibes/shared/dto"
	gModel "lagovibes/shared/model"
	"lagovibes/shared/payment"
	"lagovibes/shared/timezone"
)

type CreateReservationRequest struct {
	PropertyID  string  `json:"property_id"  validate:"required"`
	ClientName  string  `json:"client_name"  validate:"required,max=150"`
	ClientTaxID string  `json:"client_tax_id" validate:"omitempty,max=20"`
	ClientPhone string  `json:"client_phone" validate:"required,max=20"`
	ClientEmail string  `json:"client_email" validate:"omitempty,email,max=150"`
	CheckIn     string  `json:"check_in"     validate:"required"`
	CheckOut    string  `json:"check_out"    validate:"required"`
	Guests      int     `json:"guests"       validate:"required,min=1"`
	// TotalValue may be left at zero to have it priced from the property's
	// weekday rate; OwnerTotalValue may be left at zero to have it derived
	// from the owner percentage.
	TotalValue      float64 `json:"total_value"       validate:"omitempty,gte=0"`
	PaidValue       float64 `json:"paid_value"        validate:"omitempty,gte=0"`
	OwnerTotalValue float64 `json:"owner_total_value" validate:"omitempty,gte=0"`
	OwnerPaidValue  float64 `json:"owner_paid_value"  validate:"omitempty,gte=0"`
}

// Window parses the requested stay. Check-out before check-in is rejected
// here, the one hard date invariant enforced at every entry point.
func (c *CreateReservationRequest) Window() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.CalendarDateFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.CalendarDateFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateReservationRequest) ToModel(user string, checkIn, checkOut time.Time, totalValue, ownerTotalValue float64) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		PropertyID:      c.PropertyID,
		ClientName:      c.ClientName,
		ClientTaxID:     c.ClientTaxID,
		ClientPhone:     c.ClientPhone,
		ClientEmail:     c.ClientEmail,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		TotalValue:      totalValue,
		PaidValue:       c.PaidValue,
		OwnerTotalValue: ownerTotalValue,
		OwnerPaidValue:  c.OwnerPaidValue,
		PaymentStatus:   payment.DeriveStatus(totalValue, c.PaidValue),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	ClientName      string   `db:"client_name"       json:"client_name"       validate:"omitempty,max=150"`
	ClientTaxID     string   `db:"client_tax_id"     json:"client_tax_id"     validate:"omitempty,max=20"`
	ClientPhone     string   `db:"client_phone"      json:"client_phone"      validate:"omitempty,max=20"`
	ClientEmail     string   `db:"client_email"      json:"client_email"      validate:"omitempty,email,max=150"`
	CheckIn         string   `json:"check_in"        validate:"omitempty"`
	CheckOut        string   `json:"check_out"       validate:"omitempty"`
	Guests          *int     `db:"guests"            json:"guests"            validate:"omitempty,min=1"`
	TotalValue      *float64 `db:"total_value"       json:"total_value"       validate:"omitempty,gte=0"`
	PaidValue       *float64 `db:"paid_value"        json:"paid_value"        validate:"omitempty,gte=0"`
	OwnerTotalValue *float64 `db:"owner_total_value" json:"owner_total_value" validate:"omitempty,gte=0"`
	OwnerPaidValue  *float64 `db:"owner_paid_value"  json:"owner_paid_value"  validate:"omitempty,gte=0"`
}

type ReservationResponse struct {
	ID              string  `json:"id"`
	PropertyID      string  `json:"property_id"`
	ClientName      string  `json:"client_name"`
	ClientTaxID     string  `json:"client_tax_id"`
	ClientPhone     string  `json:"client_phone"`
	ClientEmail     string  `json:"client_email"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	TotalValue      float64 `json:"total_value"`
	PaidValue       float64 `json:"paid_value"`
	RemainingValue  float64 `json:"remaining_value"`
	OwnerTotalValue float64 `json:"owner_total_value"`
	OwnerPaidValue  float64 `json:"owner_paid_value"`
	OwnerRemaining  float64 `json:"owner_remaining_value"`
	PaymentStatus   string  `json:"payment_status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.ClientName = model.ClientName
	r.ClientTaxID = model.ClientTaxID
	r.ClientPhone = model.ClientPhone
	r.ClientEmail = model.ClientEmail
	r.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	r.Nights = daterange.Nights(model.CheckIn, model.CheckOut)
	r.Guests = model.Guests
	r.TotalValue = model.TotalValue
	r.PaidValue = model.PaidValue
	r.RemainingValue = payment.Remaining(model.TotalValue, model.PaidValue)
	r.OwnerTotalValue = model.OwnerTotalValue
	r.OwnerPaidValue = model.OwnerPaidValue
	r.OwnerRemaining = payment.Remaining(model.OwnerTotalValue, model.OwnerPaidValue)
	r.PaymentStatus = string(model.PaymentStatus)
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
