package model

import "lagovibes/shared/model"

const (
	TableName  = "owners"
	EntityName = "owner"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldPercentage = "percentage"
	FieldCredential = "credential"
	FieldActive     = "active"
)

// Owner is the revenue-share beneficiary of one or more properties. The
// owned property list is not stored here; it is derived from
// properties.owner_id so the two can never drift apart.
type Owner struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Phone      string  `db:"phone"`
	Percentage float64 `db:"percentage"`
	Credential string  `db:"credential"`
	Active     bool    `db:"active"`
	model.Metadata
}
