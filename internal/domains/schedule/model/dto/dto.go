package dto

import (
	"time"

	"barberia/internal/domains/schedule/model"
)

type UpdateHoursRequest struct {
	OpenTime  *string `json:"open_time"  validate:"omitempty,datetime=15:04"`
	CloseTime *string `json:"close_time" validate:"omitempty,datetime=15:04"`
}

// Closed reports whether the request switches the day off entirely.
func (r *UpdateHoursRequest) Closed() bool {
	return r.OpenTime == nil && r.CloseTime == nil
}

type HoursResponse struct {
	Weekday     int     `json:"weekday"`
	WeekdayName string  `json:"weekday_name"`
	OpenTime    *string `json:"open_time"`
	CloseTime   *string `json:"close_time"`
	Closed      bool    `json:"closed"`
}

func (r *HoursResponse) FromModel(model model.BusinessHours) {
	r.Weekday = model.Weekday
	r.WeekdayName = time.Weekday(model.Weekday).String()
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.Closed = model.Closed()
}

type GetHoursResponse struct {
	Hours []HoursResponse `json:"hours"`
}

func (r *GetHoursResponse) FromModels(models []model.BusinessHours) {
	r.Hours = make([]HoursResponse, len(models))
	for i, mod := range models {
		r.Hours[i].FromModel(mod)
	}
}

type SlotsResponse struct {
	Date                string   `json:"date"`
	BarberID            string   `json:"barber_id"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	Slots               []string `json:"slots"`
}
