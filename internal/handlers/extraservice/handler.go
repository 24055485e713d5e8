package extraservice

import (
	"net/http"

	"lagovibes/infras/otel"
	"lagovibes/internal/domains/extraservice/model"
	"lagovibes/internal/domains/extraservice/model/dto"
	"lagovibes/internal/domains/extraservice/service"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/validator"
	"lagovibes/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ExtraService
	otel    otel.Otel
}

func New(service service.ExtraService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/extra-services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExtraService)
		routerGroup.Get("/", handler.GetExtraServices)
		routerGroup.Get("/{id}", handler.GetExtraServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateExtraService)
		routerGroup.Delete("/{id}", handler.DeleteExtraService)
	})
}

// CreateExtraService handles the creation of a new extra service.
// @Summary Create a new extra service
// @Description Create an add-on service tied to a reservation. The service date must fall inside the stay.
// @Tags ExtraService
// @Accept json
// @Produce json
// @Param request body dto.CreateExtraServiceRequest true "Create Extra Service Request"
// @Success 201 {object} response.Message "Extra service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extra-services [post]
// @Security BearerAuth
func (handler *Handler) CreateExtraService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExtraService")
	defer scope.End()

	req := dto.CreateExtraServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create extra service")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Extra service created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Extra service created successfully")
}

// GetExtraServices retrieves extra services based on query parameters.
// @Summary Get all extra services
// @Description Retrieve all extra services with optional filtering and pagination.
// @Tags ExtraService
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation ID"
// @Param property_id query string false "Filter by property ID"
// @Param extra_type query string false "Filter by service type"
// @Param payment_status query string false "Filter by payment status (pending, partial, paid)"
// @Success 200 {object} response.Data[dto.ExtraServiceResponse] "List of extra services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extra-services [get]
// @Security BearerAuth
func (handler *Handler) GetExtraServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExtraServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldReservationID, model.FieldPropertyID, model.FieldPaymentStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if extraType := r.URL.Query().Get(model.FieldExtraType); extraType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldExtraType,
			Operator: gDto.FilterOperatorLike,
			Value:    extraType,
			Table:    model.TableName,
		})
	}

	extraServices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get extra services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra services retrieved successfully")

	response.WithJSON(w, http.StatusOK, extraServices)
}

// GetExtraServiceByID retrieves an extra service by its ID.
// @Summary Get an extra service by ID
// @Description Retrieve an extra service by its unique identifier.
// @Tags ExtraService
// @Accept json
// @Produce json
// @Param id path string true "Extra Service ID"
// @Success 200 {object} response.Data[dto.ExtraServiceResponse] "Extra service details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extra-services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetExtraServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExtraServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	extraService, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get extra service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra service retrieved successfully")

	response.WithJSON(w, http.StatusOK, extraService)
}

// UpdateExtraService updates an existing extra service by its ID.
// @Summary Update an extra service by ID
// @Description Update the details of an existing extra service. Payment status is recomputed.
// @Tags ExtraService
// @Accept json
// @Produce json
// @Param id path string true "Extra Service ID"
// @Param request body dto.UpdateExtraServiceRequest true "Update Extra Service Request"
// @Success 200 {object} response.Message "Extra service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extra-services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateExtraService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExtraService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateExtraServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update extra service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Extra service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Extra service updated successfully")
}

// DeleteExtraService deletes an extra service by its ID.
// @Summary Delete an extra service by ID
// @Description Delete an extra service using its unique identifier.
// @Tags ExtraService
// @Accept json
// @Produce json
// @Param id path string true "Extra Service ID"
// @Success 200 {object} response.Message "Extra service deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extra-services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteExtraService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExtraService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete extra service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra service deleted successfully")

	response.WithMessage(w, http.StatusOK, "Extra service deleted successfully")
}
