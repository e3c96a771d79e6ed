package catalogue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"barberia/infras/otel"
	"barberia/internal/domains/catalogue/model"
	"barberia/internal/domains/catalogue/model/dto"
	"barberia/internal/domains/catalogue/service"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/validator"
	"barberia/transport/http/response"
)

type Handler struct {
	service service.Catalogue
	otel    otel.Otel
}

func New(service service.Catalogue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalogue", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
		routerGroup.Post("/image", handler.UploadImage)
	})
}

// CreateItem handles the creation of a new catalogue item.
// @Summary Create a catalogue item
// @Description Add a retail product to the shop's showcase.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param request body dto.CreateCatalogueItemRequest true "Create Catalogue Item Request"
// @Success 201 {object} response.Message "Catalogue item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateCatalogueItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create catalogue item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalogue item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Catalogue item created successfully")
}

// GetItems retrieves all catalogue items based on query parameters.
// @Summary Get all catalogue items
// @Description Retrieve all catalogue items with optional filtering and pagination.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetCatalogueResponse] "List of catalogue items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
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

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalogue items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalogue items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves a catalogue item by its ID.
// @Summary Get a catalogue item by ID
// @Description Retrieve a catalogue item by its unique identifier.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue Item ID"
// @Success 200 {object} response.Data[dto.CatalogueItemResponse] "Catalogue item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalogue item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalogue item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem updates an existing catalogue item by its ID.
// @Summary Update a catalogue item by ID
// @Description Update the details of an existing catalogue item.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue Item ID"
// @Param request body dto.UpdateCatalogueItemRequest true "Update Catalogue Item Request"
// @Success 200 {object} response.Message "Catalogue item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCatalogueItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update catalogue item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalogue item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Catalogue item updated successfully")
}

// DeleteItem deletes a catalogue item by its ID.
// @Summary Delete a catalogue item by ID
// @Description Remove a catalogue item and its stored image.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue Item ID"
// @Success 200 {object} response.Message "Catalogue item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete catalogue item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Catalogue item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Catalogue item deleted successfully")
}

// UploadImage handles image upload to S3.
// @Summary Upload a catalogue image
// @Description Upload a product image to S3 and return the URL.
// @Tags Catalogue
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalogue/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid image upload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
