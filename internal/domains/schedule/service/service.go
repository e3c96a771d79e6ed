package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"barberia/config"
	"barberia/infras/otel"
	"barberia/internal/availability"
	barberModel "barberia/internal/domains/barber/model"
	barberRepo "barberia/internal/domains/barber/repository"
	bookingRepo "barberia/internal/domains/booking/repository"
	"barberia/internal/domains/schedule/model"
	"barberia/internal/domains/schedule/model/dto"
	"barberia/internal/domains/schedule/repository"
	"barberia/shared"
	"barberia/shared/cache"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/failure"
	"barberia/shared/timezone"
)

const (
	cacheGetHours = "schedule:hours"

	daysPerWeek = 7
)

type Schedule interface {
	GetHours(ctx context.Context) (dto.GetHoursResponse, error)
	UpdateHours(ctx context.Context, weekday int, req dto.UpdateHoursRequest) error
	AvailableSlots(ctx context.Context, date, barberID string) (dto.SlotsResponse, error)
}

type serviceImpl struct {
	repo        repository.Schedule
	bookingRepo bookingRepo.Booking
	barberRepo  barberRepo.Barber
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Schedule,
	bookingRepo bookingRepo.Booking,
	barberRepo barberRepo.Barber,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) GetHours(ctx context.Context) (res dto.GetHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHours, &res)
	if err == nil {
		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldWeekday, SortDir: gDto.SortDirAsc}

	hours, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return res, fmt.Errorf("failed to get business hours: %w", err)
	}

	res.FromModels(hours)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHours, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business hours to cache")
		}
	}()

	return res, nil
}

// UpdateHours sets one weekday's working window. Both times empty closes
// the day; otherwise opening must come strictly before closing.
func (s *serviceImpl) UpdateHours(ctx context.Context, weekday int, req dto.UpdateHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	if weekday < 0 || weekday >= daysPerWeek {
		return failure.BadRequestFromString("weekday must be between 0 (Sunday) and 6 (Saturday)") // nolint:wrapcheck
	}

	if !req.Closed() {
		if req.OpenTime == nil || req.CloseTime == nil {
			return failure.BadRequestFromString("opening and closing time must be set together") // nolint:wrapcheck
		}

		open, err := availability.ParseTimeOfDay(*req.OpenTime)
		if err != nil {
			return failure.BadRequestFromString("invalid opening time") // nolint:wrapcheck
		}

		close, err := availability.ParseTimeOfDay(*req.CloseTime)
		if err != nil {
			return failure.BadRequestFromString("invalid closing time") // nolint:wrapcheck
		}

		if open >= close {
			return failure.BadRequestFromString("opening time must be before closing time") // nolint:wrapcheck
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.WeekdayFilter(weekday)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business hours")

		return fmt.Errorf("failed to check business hours: %w", err)
	}

	if !exist {
		return failure.NotFound("business hours not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldOpenTime:      req.OpenTime,
		model.FieldCloseTime:     req.CloseTime,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update business hours")

		return fmt.Errorf("failed to update business hours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHours); err != nil {
			log.Error().Err(err).Msg("failed to delete business hours from cache")
		}
	}()

	return nil
}

// AvailableSlots lists the free slot start times for a barber on a date.
// The result is never cached: a stale answer here turns directly into
// double-booking attempts.
func (s *serviceImpl) AvailableSlots(ctx context.Context, date, barberID string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.ParseInLocation(constant.DayFormat, date, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if barberID == constant.Empty {
		return res, failure.BadRequestFromString("barber_id is required") // nolint:wrapcheck
	}

	exist, err := s.barberRepo.Exist(ctx, shared.FilterByID(barberID, barberModel.FieldID, barberModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if barber exists")

		return res, fmt.Errorf("failed to check if barber exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("barber not found") // nolint:wrapcheck
	}

	hours, err := s.repo.GetByWeekday(ctx, int(day.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return res, fmt.Errorf("failed to get business hours: %w", err)
	}

	dayHours, err := hours.DayHours()
	if err != nil {
		log.Error().Err(err).Int("weekday", hours.Weekday).Msg("business hours row is malformed")

		return res, fmt.Errorf("failed to read business hours: %w", err)
	}

	bookedTimes, err := s.bookingRepo.BookedSlotTimes(ctx, barberID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked slot times")

		return res, fmt.Errorf("failed to get booked slot times: %w", err)
	}

	booked := make([]availability.TimeOfDay, 0, len(bookedTimes))

	for _, value := range bookedTimes {
		at, err := availability.ParseTimeOfDay(value)
		if err != nil {
			log.Warn().Str("slotTime", value).Msg("skipping malformed booked slot time")

			continue
		}

		booked = append(booked, at)
	}

	slots, err := availability.ComputeSlots(dayHours, s.cfg.Booking.SlotDurationMinutes, booked)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.Date = date
	res.BarberID = barberID
	res.SlotDurationMinutes = s.cfg.Booking.SlotDurationMinutes
	res.Slots = make([]string, len(slots))

	for i, slot := range slots {
		res.Slots[i] = slot.String()
	}

	return res, nil
}
