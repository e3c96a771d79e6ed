// Package notifier delivers booking notifications to clients over
// WhatsApp using the CallMeBot gateway.
package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"barberia/config"
	"barberia/infras/otel"
	"barberia/shared/constant"
)

type Notifier interface {
	Send(ctx context.Context, phone, text string) error
}

type whatsAppImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func NewWhatsApp(cfg *config.Config, otel otel.Otel) Notifier {
	return &whatsAppImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Notifier.WhatsApp.TimeoutSec) * time.Second,
		},
		otel: otel,
	}
}

func (w *whatsAppImpl) Send(ctx context.Context, phone, text string) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendWhatsApp")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !w.cfg.Notifier.WhatsApp.Enable {
		log.Info().Str("phone", phone).Msg("whatsapp notifications disabled, skipping")

		return nil
	}

	query := url.Values{}
	query.Set("phone", "+"+w.cfg.Notifier.WhatsApp.CountryCode+phone)
	query.Set("text", text)
	query.Set("apikey", w.cfg.Notifier.WhatsApp.APIKey)

	endpoint := w.cfg.Notifier.WhatsApp.BaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("phone", phone).Msg("failed to send whatsapp message")

		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("body", strings.TrimSpace(string(body))).Msg("whatsapp gateway rejected message")

		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	log.Info().Str("phone", phone).Msg("whatsapp message sent")

	return nil
}
