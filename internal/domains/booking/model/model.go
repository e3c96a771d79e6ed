package model

import (
	"time"

	"github.com/lib/pq"

	"barberia/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldBarberID    = "barber_id"
	FieldServiceIDs  = "service_ids"
	FieldClientName  = "client_name"
	FieldClientEmail = "client_email"
	FieldClientPhone = "client_phone"
	FieldBookingDate = "booking_date"
	FieldSlotTime    = "slot_time"
	FieldTotalPrice  = "total_price"
	FieldStatus      = "status"
)

// Status is the lifecycle state of a booking. Bookings are created
// confirmed and are never deleted; a cancelled booking frees its slot.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists the allowed status changes. Completed and cancelled
// are terminal.
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status change from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}

	return false
}

type Booking struct {
	ID          string         `db:"id"`
	BarberID    string         `db:"barber_id"`
	ServiceIDs  pq.StringArray `db:"service_ids"`
	ClientName  string         `db:"client_name"`
	ClientEmail string         `db:"client_email"`
	ClientPhone string         `db:"client_phone"`
	BookingDate time.Time      `db:"booking_date"`
	SlotTime    string         `db:"slot_time"`
	TotalPrice  int64          `db:"total_price"`
	Status      Status         `db:"status"`
	model.Metadata
}
