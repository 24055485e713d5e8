package dto

import (
	"time"

	"lagovibes/shared/constant"
)

// DateStatus classifies one calendar day of one property.
type DateStatus string

const (
	StatusAvailable DateStatus = "available"
	StatusReserved  DateStatus = "reserved"
	StatusBlocked   DateStatus = "blocked"
)

// DateStatusResponse is the resolver verdict for a single day. The
// reservation id is set only for reserved days, the block type only for
// blocked days.
type DateStatusResponse struct {
	PropertyID    string     `json:"property_id"`
	Date          string     `json:"date"`
	Status        DateStatus `json:"status"`
	ReservationID string     `json:"reservation_id,omitempty"`
	BlockType     string     `json:"block_type,omitempty"`
}

func NewDateStatus(propertyID string, day time.Time, status DateStatus) DateStatusResponse {
	return DateStatusResponse{
		PropertyID: propertyID,
		Date:       day.Format(constant.CalendarDateFormat),
		Status:     status,
	}
}

// CalendarResponse carries a whole month of resolved days, in calendar
// order, for the booking calendar grid.
type CalendarResponse struct {
	PropertyID string               `json:"property_id"`
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Days       []DateStatusResponse `json:"days"`
}
