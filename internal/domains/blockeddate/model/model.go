package model

import (
	"time"

	"lagovibes/shared/model"
)

const (
	TableName  = "blocked_dates"
	EntityName = "blocked_date"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldDate       = "date"
	FieldType       = "type"
)

const (
	TypeOwnerBlock = "owner-block"
	TypeAdminBlock = "admin-block"
)

// BlockedDate marks a single calendar day of a property as manually
// unavailable, independent of any reservation.
type BlockedDate struct {
	ID         string    `db:"id"`
	PropertyID string    `db:"property_id"`
	Date       time.Time `db:"date"`
	Type       string    `db:"type"`
	model.Metadata
}
