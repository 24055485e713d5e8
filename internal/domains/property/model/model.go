package model

import (
	"github.com/lib/pq"

	"lagovibes/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldLocation        = "location"
	FieldCapacity        = "capacity"
	FieldBedrooms        = "bedrooms"
	FieldBathrooms       = "bathrooms"
	FieldSuites          = "suites"
	FieldWeekdayPrice    = "weekday_price"
	FieldWeekendPrice    = "weekend_price"
	FieldHolidayPrice    = "holiday_price"
	FieldBasePrice       = "base_price"
	FieldWhatsappNumber  = "whatsapp_number"
	FieldImages          = "images"
	FieldExtras          = "extras"
	FieldStatus          = "status"
	FieldOwnerID         = "owner_id"
	FieldOwnerPercentage = "owner_percentage"
)

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

type Property struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Location        string         `db:"location"`
	Capacity        int            `db:"capacity"`
	Bedrooms        int            `db:"bedrooms"`
	Bathrooms       int            `db:"bathrooms"`
	Suites          int            `db:"suites"`
	WeekdayPrice    float64        `db:"weekday_price"`
	WeekendPrice    float64        `db:"weekend_price"`
	HolidayPrice    float64        `db:"holiday_price"`
	BasePrice       float64        `db:"base_price"`
	WhatsappNumber  string         `db:"whatsapp_number"`
	Images          pq.StringArray `db:"images"`
	Extras          pq.StringArray `db:"extras"`
	Status          string         `db:"status"`
	OwnerID         string         `db:"owner_id"`
	OwnerPercentage float64        `db:"owner_percentage"`
	model.Metadata
}
