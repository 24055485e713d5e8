package dto

import (
	"time"

	"github.com/google/uuid"

	"lagovibes/internal/domains/extraservice/model"
	"lagovibes/internal/domains/reservation/pricing"
	"lagovibes/shared"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	gModel "lagovibes/shared/model"
	"lagovibes/shared/payment"
	"lagovibes/shared/timezone"
)

type CreateExtraServiceRequest struct {
	ReservationID      string  `json:"reservation_id"       validate:"required"`
	ExtraType          string  `json:"extra_type"           validate:"required,max=100"`
	ServiceDate        string  `json:"service_date"         validate:"required"`
	ServiceTime        string  `json:"service_time"         validate:"omitempty"`
	TotalValue         float64 `json:"total_value"          validate:"required,gte=0"`
	PaidValue          float64 `json:"paid_value"           validate:"omitempty,gte=0"`
	ProviderTotalValue float64 `json:"provider_total_value" validate:"omitempty,gte=0"`
	ProviderPaidValue  float64 `json:"provider_paid_value"  validate:"omitempty,gte=0"`
}

func (c *CreateExtraServiceRequest) Day() (time.Time, error) {
	return timezone.Parse(constant.CalendarDateFormat, c.ServiceDate)
}

// ToModel denormalizes the client name and property id from the parent
// reservation so service listings do not need a join.
func (c *CreateExtraServiceRequest) ToModel(user, propertyID, clientName string, serviceDate time.Time) model.ExtraService {
	return model.ExtraService{
		ID:                 uuid.NewString(),
		ReservationID:      c.ReservationID,
		PropertyID:         propertyID,
		ClientName:         clientName,
		ExtraType:          c.ExtraType,
		ServiceDate:        serviceDate,
		ServiceTime:        c.ServiceTime,
		TotalValue:         c.TotalValue,
		PaidValue:          c.PaidValue,
		ProviderTotalValue: c.ProviderTotalValue,
		ProviderPaidValue:  c.ProviderPaidValue,
		PaymentStatus:      payment.DeriveStatus(c.TotalValue, c.PaidValue),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateExtraServiceRequest struct {
	ExtraType          string   `db:"extra_type"           json:"extra_type"           validate:"omitempty,max=100"`
	ServiceDate        string   `json:"service_date"       validate:"omitempty"`
	ServiceTime        string   `db:"service_time"         json:"service_time"         validate:"omitempty"`
	TotalValue         *float64 `db:"total_value"          json:"total_value"          validate:"omitempty,gte=0"`
	PaidValue          *float64 `db:"paid_value"           json:"paid_value"           validate:"omitempty,gte=0"`
	ProviderTotalValue *float64 `db:"provider_total_value" json:"provider_total_value" validate:"omitempty,gte=0"`
	ProviderPaidValue  *float64 `db:"provider_paid_value"  json:"provider_paid_value"  validate:"omitempty,gte=0"`
}

type ExtraServiceResponse struct {
	ID                 string  `json:"id"`
	ReservationID      string  `json:"reservation_id"`
	PropertyID         string  `json:"property_id"`
	ClientName         string  `json:"client_name"`
	ExtraType          string  `json:"extra_type"`
	ServiceDate        string  `json:"service_date"`
	ServiceTime        string  `json:"service_time"`
	TotalValue         float64 `json:"total_value"`
	PaidValue          float64 `json:"paid_value"`
	RemainingValue     float64 `json:"remaining_value"`
	ProviderTotalValue float64 `json:"provider_total_value"`
	ProviderPaidValue  float64 `json:"provider_paid_value"`
	ProviderRemaining  float64 `json:"provider_remaining_value"`
	CompanyMargin      float64 `json:"company_margin"`
	PaymentStatus      string  `json:"payment_status"`
	gDto.Metadata
}

func (r *ExtraServiceResponse) FromModel(model model.ExtraService) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.PropertyID = model.PropertyID
	r.ClientName = model.ClientName
	r.ExtraType = model.ExtraType
	r.ServiceDate = model.ServiceDate.Format(constant.CalendarDateFormat)
	r.ServiceTime = model.ServiceTime
	r.TotalValue = model.TotalValue
	r.PaidValue = model.PaidValue
	r.RemainingValue = payment.Remaining(model.TotalValue, model.PaidValue)
	r.ProviderTotalValue = model.ProviderTotalValue
	r.ProviderPaidValue = model.ProviderPaidValue
	r.ProviderRemaining = payment.Remaining(model.ProviderTotalValue, model.ProviderPaidValue)
	r.CompanyMargin = pricing.Margin(model.TotalValue, model.ProviderTotalValue)
	r.PaymentStatus = string(model.PaymentStatus)
	r.Metadata.FromModel(model.Metadata)
}

type GetExtraServicesResponse struct {
	ExtraServices []ExtraServiceResponse `json:"extra_services"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetExtraServicesResponse) FromModels(models []model.ExtraService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ExtraServices = make([]ExtraServiceResponse, len(models))
	for i, mod := range models {
		r.ExtraServices[i].FromModel(mod)
	}
}
