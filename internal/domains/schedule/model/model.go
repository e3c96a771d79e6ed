package model

import (
	"barberia/internal/availability"
	"barberia/shared/model"
)

const (
	TableName  = "business_hours"
	EntityName = "business_hours"

	FieldWeekday   = "weekday"
	FieldOpenTime  = "open_time"
	FieldCloseTime = "close_time"
)

// BusinessHours is one weekday's working window. Weekday follows
// time.Weekday numbering (0 = Sunday). Null open and close times mean the
// shop is closed that day.
type BusinessHours struct {
	Weekday   int     `db:"weekday"`
	OpenTime  *string `db:"open_time"`
	CloseTime *string `db:"close_time"`
	model.Metadata
}

// Closed reports whether the day has no working window.
func (h BusinessHours) Closed() bool {
	return h.OpenTime == nil || h.CloseTime == nil
}

// DayHours converts the row into the availability calculator's day window.
func (h BusinessHours) DayHours() (availability.DayHours, error) {
	if h.Closed() {
		return availability.DayHours{}, nil
	}

	open, err := availability.ParseTimeOfDay(*h.OpenTime)
	if err != nil {
		return availability.DayHours{}, err
	}

	close, err := availability.ParseTimeOfDay(*h.CloseTime)
	if err != nil {
		return availability.DayHours{}, err
	}

	return availability.Open(open, close), nil
}
