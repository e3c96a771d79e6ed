package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"barberia/config"
	"barberia/infras/otel"
	barberModel "barberia/internal/domains/barber/model"
	barberRepo "barberia/internal/domains/barber/repository"
	"barberia/internal/domains/booking/model"
	"barberia/internal/domains/booking/model/dto"
	"barberia/internal/domains/booking/repository"
	svcRepo "barberia/internal/domains/service/repository"
	"barberia/internal/events"
	"barberia/shared"
	"barberia/shared/cache"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/failure"
	"barberia/shared/timezone"
	"barberia/shared/validator"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// emailRegexp is deliberately loose: one @, no whitespace, a dot in the
// domain. Deliverability is the mail server's problem.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	barberRepo barberRepo.Barber
	svcRepo    svcRepo.Service
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	barberRepo barberRepo.Barber,
	svcRepo svcRepo.Service,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		barberRepo: barberRepo,
		svcRepo:    svcRepo,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create admits a booking request. Rejections are checked in a fixed
// order and the first one wins: no service selected, bad email, bad
// phone, slot taken. The slot pre-check gives a friendly answer early;
// the real guarantee is the partial unique index, which the repository
// maps to the same slot-taken rejection when two requests race.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	if len(req.ServiceIDs) == 0 {
		return res, failure.NoServiceSelected // nolint:wrapcheck
	}

	if !emailRegexp.MatchString(req.ClientEmail) {
		return res, failure.InvalidEmail // nolint:wrapcheck
	}

	if !validator.IsMobileCO(req.ClientPhone) {
		return res, failure.InvalidPhone // nolint:wrapcheck
	}

	barber, err := s.barberRepo.Get(ctx, shared.FilterByID(req.BarberID, barberModel.FieldID, barberModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get barber")

		return res, fmt.Errorf("failed to get barber: %w", err)
	}

	if barber.ID == constant.Empty || !barber.Active {
		return res, failure.BadRequestFromString("barber does not exist") // nolint:wrapcheck
	}

	services, err := s.svcRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	if len(services) != len(req.ServiceIDs) {
		return res, failure.BadRequestFromString("one or more selected services do not exist") // nolint:wrapcheck
	}

	var totalPrice int64

	serviceNames := make([]string, len(services))

	for i, svc := range services {
		totalPrice += svc.PriceMinor
		serviceNames[i] = svc.Name
	}

	booking, err := req.ToModel(user, totalPrice)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking date: %v", err)) // nolint:wrapcheck
	}

	taken, err := s.repo.IsSlotTaken(ctx, booking.BarberID, booking.BookingDate, booking.SlotTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return res, failure.SlotAlreadyBooked // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:        events.TypeBookingConfirmed,
			BookingID:   booking.ID,
			BarberID:    booking.BarberID,
			BarberName:  barber.Name,
			ClientName:  booking.ClientName,
			ClientPhone: booking.ClientPhone,
			BookingDate: booking.BookingDate.Format(constant.DayFormat),
			SlotTime:    booking.SlotTime,
			Services:    serviceNames,
			TotalPrice:  booking.TotalPrice,
		}

		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel moves a confirmed booking to cancelled, which frees its slot.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.transition(ctx, id, model.StatusCancelled)
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:        events.TypeBookingCancelled,
			BookingID:   booking.ID,
			BarberID:    booking.BarberID,
			ClientName:  booking.ClientName,
			ClientPhone: booking.ClientPhone,
			BookingDate: booking.BookingDate.Format(constant.DayFormat),
			SlotTime:    booking.SlotTime,
			TotalPrice:  booking.TotalPrice,
		}

		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking cancelled event")
		}
	}()

	return nil
}

// Complete moves a confirmed booking to completed.
func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.transition(ctx, id, model.StatusCompleted)

	return err
}

func (s *serviceImpl) transition(ctx context.Context, id string, next model.Status) (booking model.Booking, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.Status.CanTransitionTo(next) {
		return booking, failure.InvalidTransition // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return booking, nil
}
