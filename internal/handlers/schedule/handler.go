package schedule

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"barberia/infras/otel"
	bookingModel "barberia/internal/domains/booking/model"
	"barberia/internal/domains/schedule/model/dto"
	"barberia/internal/domains/schedule/service"
	"barberia/shared/constant"
	"barberia/shared/failure"
	"barberia/shared/validator"
	"barberia/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/slots", handler.GetAvailableSlots)
		routerGroup.Get("/hours", handler.GetHours)
		routerGroup.Put("/hours/{weekday}", handler.UpdateHours)
	})
}

// GetAvailableSlots returns the bookable slots for a barber on a date.
// @Summary Get available slots
// @Description List the open time slots for a barber on a given date. Booked slots are excluded.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param barber_id query string true "Barber ID"
// @Success 200 {object} response.Data[dto.SlotsResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/slots [get]
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	barberID := r.URL.Query().Get(bookingModel.FieldBarberID)

	slots, err := handler.service.AvailableSlots(ctx, date, barberID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Str("barber_id", barberID).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// GetHours returns the weekly business hours.
// @Summary Get business hours
// @Description Retrieve the shop's opening and closing times for each weekday.
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetHoursResponse] "Business hours"
// @Failure 500 {object} response.Error
// @Router /v1/schedule/hours [get]
func (handler *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHours")
	defer scope.End()

	hours, err := handler.service.GetHours(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business hours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business hours retrieved successfully")

	response.WithJSON(w, http.StatusOK, hours)
}

// UpdateHours updates the business hours for a weekday.
// @Summary Update business hours
// @Description Set the opening and closing times for a weekday, or mark it closed by omitting both.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param weekday path int true "Weekday (0=Sunday .. 6=Saturday)"
// @Param request body dto.UpdateHoursRequest true "Update Hours Request"
// @Success 200 {object} response.Message "Business hours updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/hours/{weekday} [put]
// @Security BearerAuth
func (handler *Handler) UpdateHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHours")
	defer scope.End()

	weekday, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamWeekday))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid weekday parameter")

		response.WithError(w, failure.BadRequestFromString("weekday must be a number between 0 and 6"))

		return
	}

	req := dto.UpdateHoursRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateHours(ctx, weekday, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("weekday", weekday).Msg("failed to update business hours")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Business hours updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Business hours updated successfully")
}
