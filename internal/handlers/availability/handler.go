package availability

import (
	"net/http"

	"lagovibes/infras/otel"
	"lagovibes/internal/domains/availability/service"
	"lagovibes/shared"
	"lagovibes/shared/constant"
	"lagovibes/shared/failure"
	"lagovibes/shared/timezone"
	"lagovibes/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/{propertyId}/date", handler.GetDateStatus)
		routerGroup.Get("/{propertyId}/calendar", handler.GetCalendar)
	})
}

// GetDateStatus resolves the status of one calendar day for a property.
// @Summary Resolve one calendar day
// @Description Classify a day of a property as available, reserved or blocked. Reservations win over blocks.
// @Tags Availability
// @Accept json
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param date query string true "Day to resolve (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DateStatusResponse] "Day status"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{propertyId}/date [get]
func (handler *Handler) GetDateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateStatus")
	defer scope.End()

	propertyID := chi.URLParam(r, "propertyId")

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		response.WithError(w, failure.BadRequestFromString("date is required"))

		return
	}

	day, err := timezone.Parse(constant.CalendarDateFormat, rawDate)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD"))

		return
	}

	status, err := handler.service.ResolveDate(ctx, propertyID, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve date status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Date status resolved successfully")

	response.WithJSON(w, http.StatusOK, status)
}

// GetCalendar resolves the status of every day of a month for a property.
// @Summary Resolve a month of availability
// @Description Classify every day of the requested month as available, reserved or blocked.
// @Tags Availability
// @Accept json
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param year query integer true "Calendar year"
// @Param month query integer true "Calendar month (1-12)"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Month of day statuses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{propertyId}/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	propertyID := chi.URLParam(r, "propertyId")

	year, err := shared.ConvertStringToInt(r.URL.Query().Get("year"))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("year must be a number"))

		return
	}

	month, err := shared.ConvertStringToInt(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.WithError(w, failure.BadRequestFromString("month must be a number between 1 and 12"))

		return
	}

	calendar, err := handler.service.Calendar(ctx, propertyID, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar resolved successfully")

	response.WithJSON(w, http.StatusOK, calendar)
}
