package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"barberia/internal/domains/catalogue/model"
	"barberia/shared"
	gDto "barberia/shared/dto"
	gModel "barberia/shared/model"
	"barberia/shared/timezone"
)

type CreateCatalogueItemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	PriceMinor  int64  `json:"price_minor" validate:"required,min=0"`
	Image       string `json:"image"       validate:"omitempty,url,max=500"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateCatalogueItemRequest) ToModel(user string) model.CatalogueItem {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.CatalogueItem{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		PriceMinor:  c.PriceMinor,
		Image:       c.Image,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCatalogueItemRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	PriceMinor  *int64 `db:"price_minor" json:"price_minor" validate:"omitempty,min=0"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url,max=500"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type CatalogueItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceMinor  int64  `json:"price_minor"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *CatalogueItemResponse) FromModel(model model.CatalogueItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PriceMinor = model.PriceMinor
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCatalogueResponse struct {
	Items     []CatalogueItemResponse `json:"items"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetCatalogueResponse) FromModels(models []model.CatalogueItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]CatalogueItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
