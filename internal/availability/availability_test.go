package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberia/internal/availability"
	"barberia/shared/failure"
)

func mustTime(t *testing.T, value string) availability.TimeOfDay {
	t.Helper()

	parsed, err := availability.ParseTimeOfDay(value)
	require.NoError(t, err)

	return parsed
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("parses a valid clock time", func(t *testing.T) {
		parsed, err := availability.ParseTimeOfDay("09:30")

		require.NoError(t, err)
		assert.Equal(t, availability.TimeOfDay(570), parsed)
		assert.Equal(t, "09:30", parsed.String())
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		_, err := availability.ParseTimeOfDay("24:00")

		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := availability.ParseTimeOfDay("soon")

		assert.Error(t, err)
	})
}

func TestComputeSlots(t *testing.T) {
	t.Run("steps from opening to closing time", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "12:00"))

		slots, err := availability.ComputeSlots(day, 30, nil)

		require.NoError(t, err)

		want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
		require.Len(t, slots, len(want))

		for i, slot := range slots {
			assert.Equal(t, want[i], slot.String())
		}
	})

	t.Run("never offers the closing time itself", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "10:00"))

		slots, err := availability.ComputeSlots(day, 30, nil)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:30", slots[1].String())
	})

	t.Run("excludes booked slots", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "12:00"))
		booked := []availability.TimeOfDay{mustTime(t, "10:00")}

		slots, err := availability.ComputeSlots(day, 30, booked)

		require.NoError(t, err)
		assert.Len(t, slots, 5)
		assert.NotContains(t, slots, mustTime(t, "10:00"))
	})

	t.Run("a freed slot is offered again", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "12:00"))

		slots, err := availability.ComputeSlots(day, 30, []availability.TimeOfDay{})

		require.NoError(t, err)
		assert.Contains(t, slots, mustTime(t, "10:00"))
	})

	t.Run("closed day yields no slots and no error", func(t *testing.T) {
		slots, err := availability.ComputeSlots(availability.DayHours{}, 30, nil)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("zero-width window yields no slots", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "09:00"))

		slots, err := availability.ComputeSlots(day, 30, nil)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("rejects a non-positive slot duration", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "12:00"))

		_, err := availability.ComputeSlots(day, 0, nil)
		assert.ErrorIs(t, err, failure.InvalidSlotDuration)

		_, err = availability.ComputeSlots(day, -15, nil)
		assert.ErrorIs(t, err, failure.InvalidSlotDuration)
	})

	t.Run("uneven duration still stops before close", func(t *testing.T) {
		day := availability.Open(mustTime(t, "09:00"), mustTime(t, "10:00"))

		slots, err := availability.ComputeSlots(day, 45, nil)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:45", slots[1].String())
	})
}
