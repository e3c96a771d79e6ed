package model

import "barberia/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldPriceMinor      = "price_minor"
	FieldDurationMinutes = "duration_minutes"
	FieldActive          = "active"
)

// Service is a bookable catalog entry. Price is stored in minor currency
// units to keep arithmetic exact.
type Service struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	PriceMinor      int64  `db:"price_minor"`
	DurationMinutes int    `db:"duration_minutes"`
	Active          bool   `db:"active"`
	model.Metadata
}
