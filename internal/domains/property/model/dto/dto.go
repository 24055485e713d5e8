package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lagovibes/internal/domains/property/model"
	"lagovibes/shared"
	gDto "lagovibes/shared/dto"
	gModel "lagovibes/shared/model"
	"lagovibes/shared/timezone"
)

type CreatePropertyRequest struct {
	Name            string                `json:"name"             validate:"required,max=150"`
	Description     string                `json:"description"      validate:"omitempty"`
	Location        string                `json:"location"         validate:"required,max=150"`
	Capacity        int                   `json:"capacity"         validate:"required,min=1"`
	Bedrooms        int                   `json:"bedrooms"         validate:"omitempty,min=0"`
	Bathrooms       int                   `json:"bathrooms"        validate:"omitempty,min=0"`
	Suites          int                   `json:"suites"           validate:"omitempty,min=0"`
	WeekdayPrice    float64               `json:"weekday_price"    validate:"required,gte=0"`
	WeekendPrice    float64               `json:"weekend_price"    validate:"omitempty,gte=0"`
	HolidayPrice    float64               `json:"holiday_price"    validate:"omitempty,gte=0"`
	BasePrice       float64               `json:"base_price"       validate:"required,gte=0"`
	WhatsappNumber  string                `json:"whatsapp_number"  validate:"omitempty,max=20"`
	Extras          []string              `json:"extras"           validate:"omitempty"`
	Status          string                `json:"status"           validate:"omitempty,oneof=available unavailable"`
	OwnerID         string                `json:"owner_id"         validate:"required"`
	OwnerPercentage float64               `json:"owner_percentage" validate:"omitempty,gte=0,lte=100"`
	Image           *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile       multipart.File        `json:"-"`
}

func (c *CreatePropertyRequest) ToModel(user string, imageURLs []string) model.Property {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Property{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Location:        c.Location,
		Capacity:        c.Capacity,
		Bedrooms:        c.Bedrooms,
		Bathrooms:       c.Bathrooms,
		Suites:          c.Suites,
		WeekdayPrice:    c.WeekdayPrice,
		WeekendPrice:    c.WeekendPrice,
		HolidayPrice:    c.HolidayPrice,
		BasePrice:       c.BasePrice,
		WhatsappNumber:  c.WhatsappNumber,
		Images:          pq.StringArray(imageURLs),
		Extras:          pq.StringArray(c.Extras),
		Status:          status,
		OwnerID:         c.OwnerID,
		OwnerPercentage: c.OwnerPercentage,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AddPropertyImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type UpdatePropertyRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty"`
	Location        string   `db:"location"         json:"location"         validate:"omitempty,max=150"`
	Capacity        *int     `db:"capacity"         json:"capacity"         validate:"omitempty,min=1"`
	Bedrooms        *int     `db:"bedrooms"         json:"bedrooms"         validate:"omitempty,min=0"`
	Bathrooms       *int     `db:"bathrooms"        json:"bathrooms"        validate:"omitempty,min=0"`
	Suites          *int     `db:"suites"           json:"suites"           validate:"omitempty,min=0"`
	WeekdayPrice    *float64 `db:"weekday_price"    json:"weekday_price"    validate:"omitempty,gte=0"`
	WeekendPrice    *float64 `db:"weekend_price"    json:"weekend_price"    validate:"omitempty,gte=0"`
	HolidayPrice    *float64 `db:"holiday_price"    json:"holiday_price"    validate:"omitempty,gte=0"`
	BasePrice       *float64 `db:"base_price"       json:"base_price"       validate:"omitempty,gte=0"`
	WhatsappNumber  string   `db:"whatsapp_number"  json:"whatsapp_number"  validate:"omitempty,max=20"`
	Status          string   `db:"status"           json:"status"           validate:"omitempty,oneof=available unavailable"`
	OwnerID         string   `db:"owner_id"         json:"owner_id"         validate:"omitempty"`
	OwnerPercentage *float64 `db:"owner_percentage" json:"owner_percentage" validate:"omitempty,gte=0,lte=100"`
}

type PropertyResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Capacity        int      `json:"capacity"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	Suites          int      `json:"suites"`
	WeekdayPrice    float64  `json:"weekday_price"`
	WeekendPrice    float64  `json:"weekend_price"`
	HolidayPrice    float64  `json:"holiday_price"`
	BasePrice       float64  `json:"base_price"`
	WhatsappNumber  string   `json:"whatsapp_number"`
	Images          []string `json:"images"`
	Extras          []string `json:"extras"`
	Status          string   `json:"status"`
	OwnerID         string   `json:"owner_id"`
	OwnerPercentage float64  `json:"owner_percentage"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.Suites = model.Suites
	r.WeekdayPrice = model.WeekdayPrice
	r.WeekendPrice = model.WeekendPrice
	r.HolidayPrice = model.HolidayPrice
	r.BasePrice = model.BasePrice
	r.WhatsappNumber = model.WhatsappNumber
	r.Images = []string(model.Images)
	r.Extras = []string(model.Extras)
	r.Status = model.Status
	r.OwnerID = model.OwnerID
	r.OwnerPercentage = model.OwnerPercentage
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
