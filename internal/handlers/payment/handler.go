package payment

import (
	"furever/infras/otel"
	"furever/internal/domains/payment/model/dto"
	"furever/internal/domains/payment/service"
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
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/cremation/receipts", func(r chi.Router) {
		r.Put("/{id}", handler.ReviewReceipt)
	})
}

// ReviewReceipt handles a provider confirming or rejecting an uploaded receipt
// @Summary Review a payment receipt
// @Description Confirm or reject a receipt awaiting review, settling or rejecting the payment.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path int true "Receipt ID"
// @Param request body dto.ReviewReceiptRequest true "Review Receipt Request"
// @Success 200 {object} response.Message "Receipt reviewed successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/receipts/{id} [put]
func (handler *Handler) ReviewReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewReceipt")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		err = failure.BadRequestFromString("id must be a number")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.ReviewReceiptRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReviewReceipt(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Receipt reviewed successfully")

	response.WithMessage(w, http.StatusOK, "Receipt reviewed successfully")
}
