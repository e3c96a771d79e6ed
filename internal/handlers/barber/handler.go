package barber

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"barberia/infras/otel"
	"barberia/internal/domains/barber/model"
	"barberia/internal/domains/barber/model/dto"
	"barberia/internal/domains/barber/service"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/validator"
	"barberia/transport/http/response"
)

type Handler struct {
	service service.Barber
	otel    otel.Otel
}

func New(service service.Barber, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/barbers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBarber)
		routerGroup.Get("/", handler.GetBarbers)
		routerGroup.Get("/{id}", handler.GetBarberByID)
		routerGroup.Patch("/{id}", handler.UpdateBarber)
		routerGroup.Delete("/{id}", handler.DeactivateBarber)
	})
}

// CreateBarber handles the creation of a new barber.
// @Summary Create a new barber
// @Description Add a barber to the shop's roster.
// @Tags Barber
// @Accept json
// @Produce json
// @Param request body dto.CreateBarberRequest true "Create Barber Request"
// @Success 201 {object} response.Message "Barber created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barbers [post]
// @Security BearerAuth
func (handler *Handler) CreateBarber(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBarber")
	defer scope.End()

	req := dto.CreateBarberRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create barber")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Barber created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Barber created successfully")
}

// GetBarbers retrieves all barbers based on query parameters.
// @Summary Get all barbers
// @Description Retrieve all barbers with optional filtering and pagination.
// @Tags Barber
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetBarbersResponse] "List of barbers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barbers [get]
func (handler *Handler) GetBarbers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBarbers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	barbers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get barbers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Barbers retrieved successfully")

	response.WithJSON(w, http.StatusOK, barbers)
}

// GetBarberByID retrieves a barber by their ID.
// @Summary Get a barber by ID
// @Description Retrieve a barber by their unique identifier.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {object} response.Data[dto.BarberResponse] "Barber details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barbers/{id} [get]
func (handler *Handler) GetBarberByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBarberByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	barber, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get barber by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Barber retrieved successfully")

	response.WithJSON(w, http.StatusOK, barber)
}

// UpdateBarber updates an existing barber by their ID.
// @Summary Update a barber by ID
// @Description Update the details of an existing barber.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Param request body dto.UpdateBarberRequest true "Update Barber Request"
// @Success 200 {object} response.Message "Barber updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barbers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBarber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBarber")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBarberRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update barber")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Barber updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Barber updated successfully")
}

// DeactivateBarber switches a barber off without removing their history.
// @Summary Deactivate a barber
// @Description Deactivate a barber so they no longer accept bookings. Historical bookings are kept.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {object} response.Message "Barber deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barbers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateBarber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateBarber")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate barber")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Barber deactivated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Barber deactivated successfully")
}
