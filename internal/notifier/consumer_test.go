package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barberia/config"
	"barberia/internal/events"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notifier.WhatsApp.ShopName = "La Barbería"
	cfg.Notifier.WhatsApp.CurrencyCode = "COP"

	return cfg
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{name: "zero", minor: 0, want: "$0"},
		{name: "under a thousand", minor: 50000, want: "$500"},
		{name: "thousands", minor: 4000000, want: "$40.000"},
		{name: "millions", minor: 250000000, want: "$2.500.000"},
		{name: "negative", minor: -4000000, want: "-$40.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.minor))
		})
	}
}

func TestConfirmationText(t *testing.T) {
	consumer := NewConsumer(testConfig(), nil, nil)

	event := events.BookingEvent{
		Type:        events.TypeBookingConfirmed,
		BookingID:   "booking-1",
		BarberName:  "Carlos",
		ClientName:  "Andrés",
		ClientPhone: "3001234567",
		BookingDate: "2026-09-01",
		SlotTime:    "10:00",
		Services:    []string{"Corte clásico", "Arreglo de barba"},
		TotalPrice:  4000000,
	}

	text := consumer.confirmationText(event)

	assert.Contains(t, text, "Andrés")
	assert.Contains(t, text, "La Barbería")
	assert.Contains(t, text, "01/09/2026")
	assert.Contains(t, text, "10:00")
	assert.Contains(t, text, "Carlos")
	assert.Contains(t, text, "Corte clásico, Arreglo de barba")
	assert.Contains(t, text, "$40.000 COP")
}

func TestConfirmationText_NoBarberNoServices(t *testing.T) {
	consumer := NewConsumer(testConfig(), nil, nil)

	event := events.BookingEvent{
		Type:        events.TypeBookingConfirmed,
		ClientName:  "Andrés",
		BookingDate: "2026-09-01",
		SlotTime:    "10:00",
	}

	text := consumer.confirmationText(event)

	assert.NotContains(t, text, "Barbero:")
	assert.NotContains(t, text, "Servicios:")
}

func TestCancellationText(t *testing.T) {
	consumer := NewConsumer(testConfig(), nil, nil)

	event := events.BookingEvent{
		Type:        events.TypeBookingCancelled,
		ClientName:  "Andrés",
		BookingDate: "2026-09-01",
		SlotTime:    "10:00",
	}

	text := consumer.cancellationText(event)

	assert.Contains(t, text, "Andrés")
	assert.Contains(t, text, "01/09/2026")
	assert.Contains(t, text, "10:00")
	assert.Contains(t, text, "cancelada")
}
