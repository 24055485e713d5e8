package blockeddate

import (
	"net/http"

	"lagovibes/infras/otel"
	"lagovibes/internal/domains/blockeddate/model"
	"lagovibes/internal/domains/blockeddate/model/dto"
	"lagovibes/internal/domains/blockeddate/service"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/failure"
	"lagovibes/shared/timezone"
	"lagovibes/shared/validator"
	"lagovibes/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BlockedDate
	otel    otel.Otel
}

func New(service service.BlockedDate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blocked-dates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBlockedDate)
		routerGroup.Get("/", handler.GetBlockedDates)
		routerGroup.Delete("/{id}", handler.DeleteBlockedDate)
		routerGroup.Delete("/", handler.DeleteBlockedDay)
	})
}

// CreateBlockedDate blocks a single calendar day of a property.
// @Summary Block a calendar day
// @Description Mark a single day of a property as unavailable. Rejects days already taken by a reservation.
// @Tags BlockedDate
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedDateRequest true "Create Blocked Date Request"
// @Success 201 {object} response.Message "Blocked date created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocked-dates [post]
// @Security BearerAuth
func (handler *Handler) CreateBlockedDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlockedDate")
	defer scope.End()

	req := dto.CreateBlockedDateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blocked date")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blocked date created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Blocked date created successfully")
}

// GetBlockedDates retrieves blocked dates based on query parameters.
// @Summary Get blocked dates
// @Description Retrieve blocked dates with optional filtering and pagination.
// @Tags BlockedDate
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property ID"
// @Param type query string false "Filter by block type (owner-block, admin-block)"
// @Success 200 {object} response.Data[dto.BlockedDateResponse] "List of blocked dates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocked-dates [get]
// @Security BearerAuth
func (handler *Handler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedDates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if propertyID := r.URL.Query().Get(model.FieldPropertyID); propertyID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if blockType := r.URL.Query().Get(model.FieldType); blockType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    blockType,
			Table:    model.TableName,
		})
	}

	blockedDates, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, blockedDates)
}

// DeleteBlockedDate deletes a blocked date by its ID.
// @Summary Delete a blocked date by ID
// @Description Delete a blocked date using its unique identifier.
// @Tags BlockedDate
// @Accept json
// @Produce json
// @Param id path string true "Blocked Date ID"
// @Success 200 {object} response.Message "Blocked date deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocked-dates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockedDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked date deleted successfully")

	response.WithMessage(w, http.StatusOK, "Blocked date deleted successfully")
}

// DeleteBlockedDay unblocks one calendar day of a property.
// @Summary Unblock a calendar day
// @Description Delete the block on one day of a property by property id and date.
// @Tags BlockedDate
// @Accept json
// @Produce json
// @Param property_id query string true "Property ID"
// @Param date query string true "Blocked day (YYYY-MM-DD)"
// @Success 200 {object} response.Message "Blocked date deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocked-dates [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlockedDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockedDay")
	defer scope.End()

	propertyID := r.URL.Query().Get(model.FieldPropertyID)
	rawDate := r.URL.Query().Get(model.FieldDate)

	if propertyID == "" || rawDate == "" {
		response.WithError(w, failure.BadRequestFromString("property_id and date are required"))

		return
	}

	day, err := timezone.Parse(constant.CalendarDateFormat, rawDate)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD"))

		return
	}

	if err := handler.service.DeleteByDay(ctx, propertyID, day); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked date deleted successfully")

	response.WithMessage(w, http.StatusOK, "Blocked date deleted successfully")
}
