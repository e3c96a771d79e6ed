package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"barberia/config"
	"barberia/infras/otel/mocks"
	barberMocks "barberia/internal/domains/barber/mocks"
	barberModel "barberia/internal/domains/barber/model"
	bookingMocks "barberia/internal/domains/booking/mocks"
	"barberia/internal/domains/booking/model"
	"barberia/internal/domains/booking/model/dto"
	"barberia/internal/domains/booking/service"
	svcMocks "barberia/internal/domains/service/mocks"
	svcModel "barberia/internal/domains/service/model"
	eventMocks "barberia/internal/events/mocks"
	cacheMocks "barberia/shared/cache/mocks"
	"barberia/shared/constant"
	"barberia/shared/failure"
)

type fixture struct {
	repo       *bookingMocks.MockBooking
	barberRepo *barberMocks.MockBarber
	svcRepo    *svcMocks.MockService
	publisher  *eventMocks.MockPublisher
	cache      *cacheMocks.MockRedisCache
	svc        service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		barberRepo: barberMocks.NewMockBarber(ctrl),
		svcRepo:    svcMocks.NewMockService(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.barberRepo, f.svcRepo, f.publisher, cfg, f.cache, mocks.NewOtel())

	// Event publishing and cache invalidation run from detached goroutines,
	// so expectations on them cannot be strict.
	f.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		BarberID:    "barber-1",
		ServiceIDs:  []string{"svc-1", "svc-2"},
		ClientName:  "Juan Pérez",
		ClientEmail: "juan@example.com",
		ClientPhone: "3001234567",
		BookingDate: "2026-09-01",
		SlotTime:    "10:00",
	}
}

func activeBarber() barberModel.Barber {
	return barberModel.Barber{ID: "barber-1", Name: "Carlos", Active: true}
}

func catalogServices() []svcModel.Service {
	return []svcModel.Service{
		{ID: "svc-1", Name: "Corte de cabello", PriceMinor: 2500000},
		{ID: "svc-2", Name: "Arreglo de barba", PriceMinor: 1500000},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("successful admission", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBarber(), nil)
		f.svcRepo.EXPECT().GetByIDs(gomock.Any(), req.ServiceIDs).Return(catalogServices(), nil)
		f.repo.EXPECT().IsSlotTaken(gomock.Any(), "barber-1", gomock.Any(), "10:00").Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, string(model.StatusConfirmed), res.Status)
		assert.Equal(t, int64(4000000), res.TotalPrice)
		assert.Equal(t, "2026-09-01", res.BookingDate)
		assert.Equal(t, "10:00", res.SlotTime)
	})

	t.Run("no service selected wins over bad email", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ServiceIDs = nil
		req.ClientEmail = "not-an-email"

		_, err := f.svc.Create(ctx, req)

		assert.ErrorIs(t, err, failure.NoServiceSelected)
	})

	t.Run("bad email wins over bad phone", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ClientEmail = "juan@@example"
		req.ClientPhone = "12345"

		_, err := f.svc.Create(ctx, req)

		assert.ErrorIs(t, err, failure.InvalidEmail)
	})

	t.Run("email with whitespace is rejected", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ClientEmail = "ju an@example.com"

		_, err := f.svc.Create(ctx, req)

		assert.ErrorIs(t, err, failure.InvalidEmail)
	})

	t.Run("phone must be ten digits starting with 3", func(t *testing.T) {
		for _, phone := range []string{"6001234567", "300123456", "30012345678", "300123456a"} {
			f := newFixture(t)
			req := validRequest()
			req.ClientPhone = phone

			_, err := f.svc.Create(ctx, req)

			assert.ErrorIs(t, err, failure.InvalidPhone, "phone %q", phone)
		}
	})

	t.Run("unknown barber is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barberModel.Barber{}, nil)

		_, err := f.svc.Create(ctx, validRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBarber(), nil)
		f.svcRepo.EXPECT().GetByIDs(gomock.Any(), req.ServiceIDs).Return(catalogServices()[:1], nil)

		_, err := f.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("occupied slot is rejected before insert", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBarber(), nil)
		f.svcRepo.EXPECT().GetByIDs(gomock.Any(), req.ServiceIDs).Return(catalogServices(), nil)
		f.repo.EXPECT().IsSlotTaken(gomock.Any(), "barber-1", gomock.Any(), "10:00").Return(true, nil)

		_, err := f.svc.Create(ctx, req)

		assert.ErrorIs(t, err, failure.SlotAlreadyBooked)
	})

	t.Run("losing an insert race surfaces as slot taken", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeBarber(), nil)
		f.svcRepo.EXPECT().GetByIDs(gomock.Any(), req.ServiceIDs).Return(catalogServices(), nil)
		f.repo.EXPECT().IsSlotTaken(gomock.Any(), "barber-1", gomock.Any(), "10:00").Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.SlotAlreadyBooked)

		_, err := f.svc.Create(ctx, req)

		assert.ErrorIs(t, err, failure.SlotAlreadyBooked)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		f := newFixture(t)

		f.barberRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barberModel.Barber{}, errors.New("database error"))

		_, err := f.svc.Create(ctx, validRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_Transitions(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")

	confirmed := model.Booking{
		ID:          "booking-1",
		BarberID:    "barber-1",
		ClientName:  "Juan Pérez",
		ClientPhone: "3001234567",
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		SlotTime:    "10:00",
		Status:      model.StatusConfirmed,
	}

	t.Run("cancel a confirmed booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])
				return nil
			})

		assert.NoError(t, f.svc.Cancel(ctx, "booking-1"))
	})

	t.Run("complete a confirmed booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusCompleted), fields[model.FieldStatus])
				return nil
			})

		assert.NoError(t, f.svc.Complete(ctx, "booking-1"))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		done := confirmed
		done.Status = model.StatusCompleted

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(done, nil)

		assert.ErrorIs(t, f.svc.Cancel(ctx, "booking-1"), failure.InvalidTransition)
	})

	t.Run("cancelled booking cannot be completed", func(t *testing.T) {
		f := newFixture(t)

		gone := confirmed
		gone.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(gone, nil)

		assert.ErrorIs(t, f.svc.Complete(ctx, "booking-1"), failure.InvalidTransition)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Cancel(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
