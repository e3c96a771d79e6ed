package dto

import (
	"time"

	"github.com/google/uuid"

	"barberia/internal/domains/booking/model"
	"barberia/shared"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	gModel "barberia/shared/model"
	"barberia/shared/timezone"
)

type CreateBookingRequest struct {
	BarberID    string   `json:"barber_id"    validate:"required"`
	ServiceIDs  []string `json:"service_ids"  validate:"omitempty"`
	ClientName  string   `json:"client_name"  validate:"required,max=100"`
	ClientEmail string   `json:"client_email" validate:"omitempty,max=100"`
	ClientPhone string   `json:"client_phone" validate:"omitempty,max=20"`
	BookingDate string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	SlotTime    string   `json:"slot_time"    validate:"required,datetime=15:04"`
}

func (c *CreateBookingRequest) ToModel(user string, totalPrice int64) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.DayFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		BarberID:    c.BarberID,
		ServiceIDs:  c.ServiceIDs,
		ClientName:  c.ClientName,
		ClientEmail: c.ClientEmail,
		ClientPhone: c.ClientPhone,
		BookingDate: bookingDate,
		SlotTime:    c.SlotTime,
		TotalPrice:  totalPrice,
		Status:      model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID          string   `json:"id"`
	BarberID    string   `json:"barber_id"`
	ServiceIDs  []string `json:"service_ids"`
	ClientName  string   `json:"client_name"`
	ClientEmail string   `json:"client_email"`
	ClientPhone string   `json:"client_phone"`
	BookingDate string   `json:"booking_date"`
	SlotTime    string   `json:"slot_time"`
	TotalPrice  int64    `json:"total_price"`
	Status      string   `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BarberID = model.BarberID
	r.ServiceIDs = model.ServiceIDs
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.ClientPhone = model.ClientPhone
	r.BookingDate = model.BookingDate.Format(constant.DayFormat)
	r.SlotTime = model.SlotTime
	r.TotalPrice = model.TotalPrice
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
