package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"barberia/config"
	"barberia/infras/otel/mocks"
	barberMocks "barberia/internal/domains/barber/mocks"
	bookingMocks "barberia/internal/domains/booking/mocks"
	scheduleMocks "barberia/internal/domains/schedule/mocks"
	"barberia/internal/domains/schedule/model"
	"barberia/internal/domains/schedule/model/dto"
	"barberia/internal/domains/schedule/service"
	cacheMocks "barberia/shared/cache/mocks"
	"barberia/shared/constant"
	"barberia/shared/failure"
)

func ptr(s string) *string { return &s }

type fixture struct {
	repo        *scheduleMocks.MockSchedule
	bookingRepo *bookingMocks.MockBooking
	barberRepo  *barberMocks.MockBarber
	cache       *cacheMocks.MockRedisCache
	svc         service.Schedule
}

func newFixture(t *testing.T, slotMinutes int) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        scheduleMocks.NewMockSchedule(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		barberRepo:  barberMocks.NewMockBarber(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.SlotDurationMinutes = slotMinutes

	f.svc = service.New(f.repo, f.bookingRepo, f.barberRepo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestScheduleService_AvailableSlots(t *testing.T) {
	ctx := context.Background()

	// 2026-09-01 is a Tuesday.
	const date = "2026-09-01"

	openDay := model.BusinessHours{Weekday: 2, OpenTime: ptr("09:00"), CloseTime: ptr("12:00")}

	t.Run("offers every free slot of an open day", func(t *testing.T) {
		f := newFixture(t, 30)

		f.barberRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetByWeekday(gomock.Any(), 2).Return(openDay, nil)
		f.bookingRepo.EXPECT().BookedSlotTimes(gomock.Any(), "barber-1", gomock.Any()).Return(nil, nil)

		res, err := f.svc.AvailableSlots(ctx, date, "barber-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, res.Slots)
		assert.Equal(t, 30, res.SlotDurationMinutes)
	})

	t.Run("booked slots are excluded", func(t *testing.T) {
		f := newFixture(t, 30)

		f.barberRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetByWeekday(gomock.Any(), 2).Return(openDay, nil)
		f.bookingRepo.EXPECT().BookedSlotTimes(gomock.Any(), "barber-1", gomock.Any()).Return([]string{"10:00", "11:30"}, nil)

		res, err := f.svc.AvailableSlots(ctx, date, "barber-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00"}, res.Slots)
	})

	t.Run("closed day yields an empty list", func(t *testing.T) {
		f := newFixture(t, 30)

		f.barberRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetByWeekday(gomock.Any(), 2).Return(model.BusinessHours{Weekday: 2}, nil)
		f.bookingRepo.EXPECT().BookedSlotTimes(gomock.Any(), "barber-1", gomock.Any()).Return(nil, nil)

		res, err := f.svc.AvailableSlots(ctx, date, "barber-1")

		require.NoError(t, err)
		assert.Empty(t, res.Slots)
	})

	t.Run("misconfigured slot duration is an error", func(t *testing.T) {
		f := newFixture(t, 0)

		f.barberRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetByWeekday(gomock.Any(), 2).Return(openDay, nil)
		f.bookingRepo.EXPECT().BookedSlotTimes(gomock.Any(), "barber-1", gomock.Any()).Return(nil, nil)

		_, err := f.svc.AvailableSlots(ctx, date, "barber-1")

		assert.ErrorIs(t, err, failure.InvalidSlotDuration)
	})

	t.Run("unknown barber is not found", func(t *testing.T) {
		f := newFixture(t, 30)

		f.barberRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.AvailableSlots(ctx, date, "barber-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		f := newFixture(t, 30)

		_, err := f.svc.AvailableSlots(ctx, "01/09/2026", "barber-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing barber id is rejected", func(t *testing.T) {
		f := newFixture(t, 30)

		_, err := f.svc.AvailableSlots(ctx, date, "")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestScheduleService_UpdateHours(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")

	t.Run("updates an open window", func(t *testing.T) {
		f := newFixture(t, 30)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, ptr("08:00"), fields[model.FieldOpenTime])
				assert.Equal(t, ptr("18:00"), fields[model.FieldCloseTime])
				return nil
			})

		err := f.svc.UpdateHours(ctx, 1, dto.UpdateHoursRequest{OpenTime: ptr("08:00"), CloseTime: ptr("18:00")})

		assert.NoError(t, err)
	})

	t.Run("closing a day clears both times", func(t *testing.T) {
		f := newFixture(t, 30)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.UpdateHours(ctx, 0, dto.UpdateHoursRequest{}))
	})

	t.Run("opening must precede closing", func(t *testing.T) {
		f := newFixture(t, 30)

		err := f.svc.UpdateHours(ctx, 1, dto.UpdateHoursRequest{OpenTime: ptr("18:00"), CloseTime: ptr("08:00")})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("equal open and close is rejected", func(t *testing.T) {
		f := newFixture(t, 30)

		err := f.svc.UpdateHours(ctx, 1, dto.UpdateHoursRequest{OpenTime: ptr("08:00"), CloseTime: ptr("08:00")})

		assert.Error(t, err)
	})

	t.Run("half-set window is rejected", func(t *testing.T) {
		f := newFixture(t, 30)

		err := f.svc.UpdateHours(ctx, 1, dto.UpdateHoursRequest{OpenTime: ptr("08:00")})

		assert.Error(t, err)
	})

	t.Run("weekday out of range is rejected", func(t *testing.T) {
		f := newFixture(t, 30)

		assert.Error(t, f.svc.UpdateHours(ctx, 7, dto.UpdateHoursRequest{}))
		assert.Error(t, f.svc.UpdateHours(ctx, -1, dto.UpdateHoursRequest{}))
	})
}

func TestScheduleService_GetHours(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newFixture(t, 30)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BusinessHours{
			{Weekday: 0},
			{Weekday: 1, OpenTime: ptr("09:00"), CloseTime: ptr("19:00")},
		}, nil)

		res, err := f.svc.GetHours(context.Background())

		require.NoError(t, err)
		require.Len(t, res.Hours, 2)
		assert.True(t, res.Hours[0].Closed)
		assert.Equal(t, "Sunday", res.Hours[0].WeekdayName)
		assert.False(t, res.Hours[1].Closed)
	})
}
