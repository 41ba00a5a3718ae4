package availability

import (
	"furever/infras/otel"
	"furever/internal/domains/availability/model/dto"
	"furever/internal/domains/availability/service"
	"furever/shared/constant"
	"furever/shared/failure"
	"furever/shared/validator"
	"furever/transport/http/response"
	"net/http"
	"strconv"

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

func (handler *Handler) Router(r chi.Router) {
	r.Get("/availability", handler.GetOpenSlots)

	r.Route("/cremation/availability", func(r chi.Router) {
		r.Post("/", handler.Publish)
	})
}

// GetOpenSlots handles the public open-slot lookup
// @Summary Get open time slots
// @Description Retrieve the unbooked time slots of a provider on a given date.
// @Tags Availability
// @Produce json
// @Param provider_id query int true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetSlotsResponse "Slots retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetOpenSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOpenSlots")
	defer scope.End()

	providerID, err := strconv.ParseInt(r.URL.Query().Get(constant.RequestParamProviderID), 10, 64)
	if err != nil {
		err = failure.BadRequestFromString("provider_id must be a number")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		err = failure.BadRequestFromString("date is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetOpenSlots(ctx, providerID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get open slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Publish handles a provider publishing a day's time slots
// @Summary Publish availability
// @Description Publish the time slots a provider offers on a date, marking the day available.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.PublishSlotsRequest true "Publish Slots Request"
// @Success 201 {object} response.Message "Availability published successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/availability [post]
func (handler *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishAvailability")
	defer scope.End()

	req := dto.PublishSlotsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Publish(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability published successfully")

	response.WithMessage(w, http.StatusCreated, "Availability published successfully")
}
