package model

import "barberia/shared/model"

const (
	TableName  = "catalogue_items"
	EntityName = "catalogue"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPriceMinor  = "price_minor"
	FieldImage       = "image"
	FieldActive      = "active"
)

// CatalogueItem is a retail product shown in the shop's showcase. It is
// not bookable; see the service domain for bookable entries.
type CatalogueItem struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	PriceMinor  int64  `db:"price_minor"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
