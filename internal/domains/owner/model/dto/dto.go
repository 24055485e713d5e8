package dto

import (
	"github.com/google/uuid"

	"lagovibes/internal/domains/owner/model"
	propertyModel "lagovibes/internal/domains/property/model"
	propertyDto "lagovibes/internal/domains/property/model/dto"
	"lagovibes/shared"
	gDto "lagovibes/shared/dto"
	gModel "lagovibes/shared/model"
	"lagovibes/shared/timezone"
)

type CreateOwnerRequest struct {
	Name       string  `json:"name"       validate:"required,max=150"`
	Email      string  `json:"email"      validate:"required,email,max=150"`
	Phone      string  `json:"phone"      validate:"omitempty,max=20"`
	Percentage float64 `json:"percentage" validate:"omitempty,gte=0,lte=100"`
	Credential string  `json:"credential" validate:"required,min=6"`
}

func (c *CreateOwnerRequest) ToModel(user, hashedCredential string) model.Owner {
	return model.Owner{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Percentage: c.Percentage,
		Credential: hashedCredential,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOwnerRequest struct {
	Name       string   `db:"name"       json:"name"       validate:"omitempty,max=150"`
	Email      string   `db:"email"      json:"email"      validate:"omitempty,email,max=150"`
	Phone      string   `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Percentage *float64 `db:"percentage" json:"percentage" validate:"omitempty,gte=0,lte=100"`
	Active     *bool    `db:"active"     json:"active"     validate:"omitempty"`
}

type OwnerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Percentage float64 `json:"percentage"`
	Active     bool    `json:"active"`
	gDto.Metadata
}

func (r *OwnerResponse) FromModel(model model.Owner) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Percentage = model.Percentage
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

// OwnerDetailResponse adds the owned properties, resolved from
// properties.owner_id at read time.
type OwnerDetailResponse struct {
	OwnerResponse
	Properties []propertyDto.PropertyResponse `json:"properties"`
}

func (r *OwnerDetailResponse) FromModels(owner model.Owner, properties []propertyModel.Property) {
	r.OwnerResponse.FromModel(owner)

	r.Properties = make([]propertyDto.PropertyResponse, len(properties))
	for i, prop := range properties {
		r.Properties[i].FromModel(prop)
	}
}

type GetOwnersResponse struct {
	Owners    []OwnerResponse `json:"owners"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOwnersResponse) FromModels(models []model.Owner, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Owners = make([]OwnerResponse, len(models))
	for i, mod := range models {
		r.Owners[i].FromModel(mod)
	}
}
