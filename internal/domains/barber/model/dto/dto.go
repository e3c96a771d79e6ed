package dto

import (
	"barberia/internal/domains/barber/model"
	"barberia/shared"
	gDto "barberia/shared/dto"
	gModel "barberia/shared/model"
	"barberia/shared/timezone"

	"github.com/google/uuid"
)

type CreateBarberRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Photo     string `json:"photo"     validate:"omitempty,url,max=500"`
	Active    *bool  `json:"active"    validate:"omitempty"`
}

func (c *CreateBarberRequest) ToModel(user string) model.Barber {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Barber{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Specialty: c.Specialty,
		Photo:     c.Photo,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBarberRequest struct {
	Name      string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Specialty string `db:"specialty" json:"specialty" validate:"omitempty,max=100"`
	Photo     string `db:"photo"     json:"photo"     validate:"omitempty,url,max=500"`
	Active    *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type BarberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Photo     string `json:"photo"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *BarberResponse) FromModel(model model.Barber) {
	r.ID = model.ID
	r.Name = model.Name
	r.Specialty = model.Specialty
	r.Photo = model.Photo
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBarbersResponse struct {
	Barbers   []BarberResponse `json:"barbers"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetBarbersResponse) FromModels(models []model.Barber, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Barbers = make([]BarberResponse, len(models))
	for i, mod := range models {
		r.Barbers[i].FromModel(mod)
	}
}
