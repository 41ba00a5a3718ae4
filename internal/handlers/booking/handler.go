package booking

import (
	"furever/infras/otel"
	"furever/internal/domains/booking/model"
	"furever/internal/domains/booking/model/dto"
	"furever/internal/domains/booking/service"
	paymentDto "furever/internal/domains/payment/model/dto"
	paymentService "furever/internal/domains/payment/service"
	refundDto "furever/internal/domains/refund/model/dto"
	refundService "furever/internal/domains/refund/service"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	"furever/shared/validator"
	"furever/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Booking
	paymentService paymentService.Payment
	refundService  refundService.Refund
	otel           otel.Otel
}

func New(service service.Booking, paymentService paymentService.Payment, refundService refundService.Refund, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		paymentService: paymentService,
		refundService:  refundService,
		otel:           otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/mybookings", handler.GetMine)
		r.Get("/{id}", handler.Get)
		r.Post("/{id}/cancel", handler.Cancel)
		r.Post("/{id}/payments", handler.RecordPayment)
		r.Get("/{id}/refunds/eligibility", handler.CheckRefundEligibility)
		r.Post("/{id}/refunds", handler.RequestRefund)
	})

	r.Route("/cremation/bookings", func(r chi.Router) {
		r.Get("/", handler.GetForProvider)
		r.Post("/", handler.CreateForUser)
		r.Put("/{id}", handler.UpdateStatus)
	})
}

func bookingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be a number")
	}

	return id, nil
}

// Create handles booking creation by a fur parent
// @Summary Create a new booking
// @Description Book a cremation slot with a provider. Either pet_id or pet_name/pet_type must be provided.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAll handles listing all bookings for administrators
// @Summary Get all bookings
// @Description Retrieve every booking, optionally filtered by status and booking date.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Booking status filter"
// @Param booking_date query string false "Booking date filter (YYYY-MM-DD)"
// @Success 200 {object} dto.GetBookingsResponse "Bookings retrieved successfully"
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if bookingDate := r.URL.Query().Get(constant.RequestParamBookingDate); bookingDate != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldBookingDate,
			Value:    bookingDate,
			Operator: gDto.FilterOperatorEq,
		})
	}

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetMine handles listing the authenticated fur parent's bookings
// @Summary Get my bookings
// @Description Retrieve the bookings belonging to the authenticated user.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.GetBookingsResponse "Bookings retrieved successfully"
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/mybookings [get]
func (handler *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetMine(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Get handles fetching a single booking
// @Summary Get a booking
// @Description Retrieve a booking by its ID, including addons and the latest refund.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Cancel handles booking cancellation by its owner
// @Summary Cancel a booking
// @Description Cancel an owned booking that has not started, restoring the reserved slot.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// RecordPayment handles a fur parent reporting payment for a booking
// @Summary Record a payment
// @Description Record a payment attempt for a booking, optionally attaching a receipt for review.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body paymentDto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} paymentDto.TransactionResponse "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id}/payments [post]
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := paymentDto.RecordPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.paymentService.RecordPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment recorded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// CheckRefundEligibility handles the refund policy preview for a booking
// @Summary Check refund eligibility
// @Description Report whether the booking qualifies for a refund and at what percentage.
// @Tags Refund
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} refundDto.EligibilityResponse "Eligibility checked successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id}/refunds/eligibility [get]
func (handler *Handler) CheckRefundEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRefundEligibility")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.refundService.CheckEligibility(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check refund eligibility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Refund eligibility checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RequestRefund handles a refund request against a cancelled booking
// @Summary Request a refund
// @Description Request a refund for a paid, cancelled booking through the payment gateway.
// @Tags Refund
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body refundDto.RequestRefundRequest true "Request Refund Request"
// @Success 201 {object} refundDto.RefundResponse "Refund requested successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id}/refunds [post]
func (handler *Handler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestRefund")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := refundDto.RequestRefundRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.refundService.Request(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request refund")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Refund requested successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetForProvider handles listing bookings assigned to the authenticated provider
// @Summary Get provider bookings
// @Description Retrieve bookings for the authenticated provider, optionally filtered by status and booking date.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Booking status filter"
// @Param booking_date query string false "Booking date filter (YYYY-MM-DD)"
// @Success 200 {object} dto.GetBookingsResponse "Bookings retrieved successfully"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/bookings [get]
func (handler *Handler) GetForProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)
	bookingDate := r.URL.Query().Get(constant.RequestParamBookingDate)

	res, err := handler.service.GetForProvider(ctx, params, status, bookingDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateForUser handles booking creation by a provider on behalf of a fur parent
// @Summary Create a booking for a user
// @Description Create a walk-in booking on behalf of an existing fur parent.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateForUserRequest true "Create Booking For User Request"
// @Success 201 {object} dto.CreateBookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/bookings [post]
func (handler *Handler) CreateForUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBookingForUser")
	defer scope.End()

	req := dto.CreateForUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateForUser(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking for user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateStatus handles a provider moving a booking through its status machine
// @Summary Update booking status
// @Description Transition a booking between statuses. Cancelling restores the reserved slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/bookings/{id} [put]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id, err := bookingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}
