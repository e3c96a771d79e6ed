package notifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"barberia/config"
	"barberia/infras/kafka"
	"barberia/internal/events"
	"barberia/shared/constant"
	"barberia/shared/timezone"
)

// Consumer reads booking events off Kafka and sends the matching
// WhatsApp message to the client.
type Consumer struct {
	cfg      *config.Config
	client   kafka.Client
	notifier Notifier
}

func NewConsumer(cfg *config.Config, client kafka.Client, notifier Notifier) *Consumer {
	return &Consumer{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
	}
}

// Run blocks consuming booking events until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().Str("topic", c.cfg.Kafka.BookingTopic).Msg("booking notification consumer started")

	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.BookingTopic, c.handle)
}

func (c *Consumer) handle(msg kafkaGo.Message) {
	event, err := kafka.DecodeKafkaMessage[events.BookingEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode booking event")

		return
	}

	var text string

	switch event.Type {
	case events.TypeBookingConfirmed:
		text = c.confirmationText(event)
	case events.TypeBookingCancelled:
		text = c.cancellationText(event)
	default:
		log.Warn().Str("type", event.Type).Str("booking_id", event.BookingID).Msg("unknown booking event type")

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.cfg.Notifier.WhatsApp.TimeoutSec)*time.Second)
	defer cancel()

	if err := c.notifier.Send(ctx, event.ClientPhone, text); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to notify client")
	}
}

func (c *Consumer) confirmationText(event events.BookingEvent) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "¡Hola %s! Tu cita en %s está confirmada.\n", event.ClientName, c.cfg.Notifier.WhatsApp.ShopName)
	fmt.Fprintf(&sb, "Fecha: %s\n", formatDate(event.BookingDate))
	fmt.Fprintf(&sb, "Hora: %s\n", event.SlotTime)

	if event.BarberName != constant.Empty {
		fmt.Fprintf(&sb, "Barbero: %s\n", event.BarberName)
	}

	if len(event.Services) > 0 {
		fmt.Fprintf(&sb, "Servicios: %s\n", strings.Join(event.Services, ", "))
	}

	fmt.Fprintf(&sb, "Total: %s %s", FormatPrice(event.TotalPrice), c.cfg.Notifier.WhatsApp.CurrencyCode)

	return sb.String()
}

func (c *Consumer) cancellationText(event events.BookingEvent) string {
	return fmt.Sprintf(
		"Hola %s, tu cita en %s del %s a las %s ha sido cancelada. El horario queda disponible nuevamente.",
		event.ClientName,
		c.cfg.Notifier.WhatsApp.ShopName,
		formatDate(event.BookingDate),
		event.SlotTime,
	)
}

func formatDate(date string) string {
	parsed, err := time.ParseInLocation(constant.DayFormat, date, timezone.GetLocation())
	if err != nil {
		return date
	}

	return parsed.Format("02/01/2006")
}

// FormatPrice renders a minor-unit amount as a display price with
// thousands separators, e.g. 4000000 -> "$40.000".
func FormatPrice(minor int64) string {
	units := minor / 100

	digits := strconv.FormatInt(units, 10)

	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var sb strings.Builder

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(d)
	}

	price := "$" + sb.String()
	if negative {
		price = "-" + price
	}

	return price
}
