package dto

import (
	"time"

	"github.com/google/uuid"

	"lagovibes/internal/domains/blockeddate/model"
	"lagovibes/shared"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	gModel "lagovibes/shared/model"
	"lagovibes/shared/timezone"
)

type CreateBlockedDateRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	Date       string `json:"date"        validate:"required"`
	Type       string `json:"type"        validate:"omitempty,oneof=owner-block admin-block"`
}

func (c *CreateBlockedDateRequest) Day() (time.Time, error) {
	return timezone.Parse(constant.CalendarDateFormat, c.Date)
}

func (c *CreateBlockedDateRequest) ToModel(user string, day time.Time) model.BlockedDate {
	blockType := c.Type
	if blockType == "" {
		blockType = model.TypeOwnerBlock
	}

	return model.BlockedDate{
		ID:         uuid.NewString(),
		PropertyID: c.PropertyID,
		Date:       day,
		Type:       blockType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BlockedDateResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	gDto.Metadata
}

func (r *BlockedDateResponse) FromModel(model model.BlockedDate) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Date = model.Date.Format(constant.CalendarDateFormat)
	r.Type = model.Type
	r.Metadata.FromModel(model.Metadata)
}

type GetBlockedDatesResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetBlockedDatesResponse) FromModels(models []model.BlockedDate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BlockedDates = make([]BlockedDateResponse, len(models))
	for i, mod := range models {
		r.BlockedDates[i].FromModel(mod)
	}
}
