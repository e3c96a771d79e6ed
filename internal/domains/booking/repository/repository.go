package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"barberia/infras/otel"
	"barberia/infras/postgres"
	"barberia/internal/domains/booking/model"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/failure"
	gRepo "barberia/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	BookedSlotTimes(ctx context.Context, barberID string, date time.Time) ([]string, error)
	IsSlotTaken(ctx context.Context, barberID string, date time.Time, slotTime string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a booking. The bookings table carries a partial unique
// index over (barber_id, booking_date, slot_time) for non-cancelled rows,
// so a concurrent insert into the same slot surfaces here as a unique
// violation and is mapped to the slot-taken rejection.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := repo.Repository.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.SlotAlreadyBooked // nolint:wrapcheck
		}

		return err
	}

	return nil
}

// occupiedFilter matches every booking that holds a slot: cancelled rows
// never count.
func occupiedFilter(barberID string, date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBarberID,
				Operator: gDto.FilterOperatorEq,
				Value:    barberID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date.Format(constant.DayFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    string(model.StatusCancelled),
				Table:    model.TableName,
			},
		},
	}
}

// BookedSlotTimes lists the occupied slot start times for a barber on a day.
func (repo *repositoryImpl) BookedSlotTimes(ctx context.Context, barberID string, date time.Time) ([]string, error) {
	bookings, err := repo.GetAll(ctx, gDto.QueryParams{}, occupiedFilter(barberID, date), model.FieldSlotTime)
	if err != nil {
		return nil, err
	}

	times := make([]string, len(bookings))
	for i, booking := range bookings {
		times[i] = booking.SlotTime
	}

	return times, nil
}

// IsSlotTaken reports whether a non-cancelled booking already holds the slot.
func (repo *repositoryImpl) IsSlotTaken(ctx context.Context, barberID string, date time.Time, slotTime string) (bool, error) {
	filter := occupiedFilter(barberID, date)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldSlotTime,
		Operator: gDto.FilterOperatorEq,
		Value:    slotTime,
		Table:    model.TableName,
	})

	return repo.Exist(ctx, filter)
}
