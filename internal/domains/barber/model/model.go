package model

import "barberia/shared/model"

const (
	TableName  = "barbers"
	EntityName = "barber"

	FieldID        = "id"
	FieldName      = "name"
	FieldSpecialty = "specialty"
	FieldPhoto     = "photo"
	FieldActive    = "active"
)

type Barber struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Specialty string `db:"specialty"`
	Photo     string `db:"photo"`
	Active    bool   `db:"active"`
	model.Metadata
}
