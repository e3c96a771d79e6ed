package dto

import (
	"barberia/internal/domains/service/model"
	"barberia/shared"
	gDto "barberia/shared/dto"
	gModel "barberia/shared/model"
	"barberia/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Description     string `json:"description"      validate:"omitempty,max=500"`
	PriceMinor      int64  `json:"price_minor"      validate:"required,min=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Active          *bool  `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		PriceMinor:      c.PriceMinor,
		DurationMinutes: c.DurationMinutes,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string `db:"description"      json:"description"      validate:"omitempty,max=500"`
	PriceMinor      *int64 `db:"price_minor"      json:"price_minor"      validate:"omitempty,min=0"`
	DurationMinutes *int   `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=1"`
	Active          *bool  `db:"active"           json:"active"           validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceMinor      int64  `json:"price_minor"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PriceMinor = model.PriceMinor
	r.DurationMinutes = model.DurationMinutes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
