// Package availability computes bookable time slots from a day's working
// hours. It is pure calendar arithmetic with no storage or transport
// concerns, so it can be exercised by the schedule service and tested in
// isolation.
package availability

import (
	"fmt"
	"slices"

	"barberia/shared/constant"
	"barberia/shared/failure"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	var hours, minutes int

	_, err := fmt.Sscanf(value, "%02d:%02d", &hours, &minutes)
	if err != nil {
		return 0, fmt.Errorf("failed to parse time of day %q: %w", value, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", value)
	}

	return TimeOfDay(hours*constant.MinutesPerHour + minutes), nil
}

// String renders the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/constant.MinutesPerHour, int(t)%constant.MinutesPerHour)
}

// DayHours describes a single day's working window. The zero value means
// the business is closed that day.
type DayHours struct {
	open   TimeOfDay
	close  TimeOfDay
	isOpen bool
}

// Open builds the working window for an open day.
func Open(open, close TimeOfDay) DayHours {
	return DayHours{open: open, close: close, isOpen: true}
}

// Closed reports whether the day has no working window.
func (d DayHours) Closed() bool {
	return !d.isOpen
}

// Window returns the day's opening and closing times.
func (d DayHours) Window() (open, close TimeOfDay) {
	return d.open, d.close
}

// ComputeSlots lists the bookable slot start times for a day. Slots start
// at opening time and step by slotMinutes; a slot is offered only while
// its start time is strictly before closing time, so the closing time
// itself is never offered. Times present in booked are excluded. A closed
// day yields no slots and no error.
func ComputeSlots(day DayHours, slotMinutes int, booked []TimeOfDay) ([]TimeOfDay, error) {
	if slotMinutes <= 0 {
		return nil, failure.InvalidSlotDuration
	}

	if day.Closed() {
		return []TimeOfDay{}, nil
	}

	slots := []TimeOfDay{}

	for at := day.open; at < day.close; at += TimeOfDay(slotMinutes) {
		if slices.Contains(booked, at) {
			continue
		}

		slots = append(slots, at)
	}

	return slots, nil
}
