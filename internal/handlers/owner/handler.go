package owner

import (
	"net/http"

	"lagovibes/infras/otel"
	"lagovibes/internal/domains/owner/model"
	"lagovibes/internal/domains/owner/model/dto"
	"lagovibes/internal/domains/owner/service"
	"lagovibes/shared"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/validator"
	"lagovibes/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Owner
	otel    otel.Otel
}

func New(service service.Owner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/owners", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOwner)
		routerGroup.Get("/", handler.GetOwners)
		routerGroup.Get("/{id}", handler.GetOwnerByID)
		routerGroup.Patch("/{id}", handler.UpdateOwner)
		routerGroup.Delete("/{id}", handler.DeleteOwner)
	})
}

// CreateOwner handles the creation of a new owner.
// @Summary Create a new owner
// @Description Create a new property owner with a login credential.
// @Tags Owner
// @Accept json
// @Produce json
// @Param request body dto.CreateOwnerRequest true "Create Owner Request"
// @Success 201 {object} response.Message "Owner created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners [post]
// @Security BearerAuth
func (handler *Handler) CreateOwner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOwner")
	defer scope.End()

	req := dto.CreateOwnerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create owner")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Owner created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Owner created successfully")
}

// GetOwners retrieves all owners based on query parameters.
// @Summary Get all owners
// @Description Retrieve all owners with optional filtering and pagination.
// @Tags Owner
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.OwnerResponse] "List of owners"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners [get]
// @Security BearerAuth
func (handler *Handler) GetOwners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwners")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	owners, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owners")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owners retrieved successfully")

	response.WithJSON(w, http.StatusOK, owners)
}

// GetOwnerByID retrieves an owner by its ID, including the owned properties.
// @Summary Get an owner by ID
// @Description Retrieve an owner with the list of properties resolved from the properties table.
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} response.Data[dto.OwnerDetailResponse] "Owner details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOwnerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	owner, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner retrieved successfully")

	response.WithJSON(w, http.StatusOK, owner)
}

// UpdateOwner updates an existing owner by its ID.
// @Summary Update an owner by ID
// @Description Update the details of an existing owner.
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param request body dto.UpdateOwnerRequest true "Update Owner Request"
// @Success 200 {object} response.Message "Owner updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOwner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOwnerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update owner")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Owner updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Owner updated successfully")
}

// DeleteOwner deletes an owner by its ID.
// @Summary Delete an owner by ID
// @Description Delete an owner that has no properties assigned.
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} response.Message "Owner deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/owners/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOwner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner deleted successfully")

	response.WithMessage(w, http.StatusOK, "Owner deleted successfully")
}
