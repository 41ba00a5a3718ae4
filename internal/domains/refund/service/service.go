package service

import (
	"context"
	"fmt"
	"furever/config"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/infras/paymongo"
	bookingModel "furever/internal/domains/booking/model"
	bookingRepo "furever/internal/domains/booking/repository"
	outboxModel "furever/internal/domains/outbox/model"
	outboxRepo "furever/internal/domains/outbox/repository"
	paymentModel "furever/internal/domains/payment/model"
	paymentRepo "furever/internal/domains/payment/repository"
	"furever/internal/domains/refund/model"
	"furever/internal/domains/refund/model/dto"
	"furever/internal/domains/refund/repository"
	"furever/shared"
	"furever/shared/cache"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	fullRefundLead    = 24 * time.Hour
	partialRefundLead = 12 * time.Hour
	partialPercent    = 50
	fullPercent       = 100

	errNoGatewayTransaction = "no PayMongo transaction record exists for this booking"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Refund interface {
	CheckEligibility(ctx context.Context, bookingID int64) (dto.EligibilityResponse, error)
	Request(ctx context.Context, bookingID int64, req dto.RequestRefundRequest) (dto.RefundResponse, error)
	RetryFailed(ctx context.Context, validateOnly bool) (dto.RetrySummary, error)
}

type serviceImpl struct {
	repo        repository.Refund
	bookingRepo bookingRepo.Booking
	paymentRepo paymentRepo.Payment
	outboxRepo  outboxRepo.Outbox
	gateway     paymongo.Client
	txer        mysql.Txer
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Refund,
	bookingRepository bookingRepo.Booking,
	paymentRepository paymentRepo.Payment,
	outboxRepository outboxRepo.Outbox,
	gateway paymongo.Client,
	txer mysql.Txer,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otel otel.Otel,
) Refund {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepository,
		paymentRepo: paymentRepository,
		outboxRepo:  outboxRepository,
		gateway:     gateway,
		txer:        txer,
		cfg:         cfg,
		cache:       redisCache,
		otel:        otel,
	}
}

// CheckEligibility reports whether a refund may be requested: the booking
// must be paid and cancelled with no other refund still in flight.
func (s *serviceImpl) CheckEligibility(ctx context.Context, bookingID int64) (res dto.EligibilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRefundEligibility")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.Amount = booking.Price
	res.RefundPercent, res.HoursBefore = s.policyWindow(booking)

	eligible, reason, err := s.eligibility(ctx, booking)
	if err != nil {
		return res, err
	}

	res.Eligible = eligible
	res.Reason = reason

	return res, nil
}

// Request runs the whole saga: insert a pending refund, call the gateway,
// then finalize booking, transaction and refund together.
func (s *serviceImpl) Request(ctx context.Context, bookingID int64, req dto.RequestRefundRequest) (res dto.RefundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestRefund")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	eligible, reason, err := s.eligibility(ctx, booking)
	if err != nil {
		return res, err
	}

	if !eligible {
		return res, failure.BadRequestFromString(reason)
	}

	if booking.PaymentMethod == bookingModel.PaymentMethodCash {
		return res, failure.BadRequestFromString("cash bookings are refunded manually by the provider, not through the payment gateway")
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	amount := booking.Price
	if req.Amount != nil && *req.Amount > 0 && *req.Amount <= booking.Price {
		amount = *req.Amount
	}

	refund := model.Refund{
		BookingID: bookingID,
		Amount:    amount,
		Reason:    req.Reason,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	refund.ID, err = s.repo.InsertID(ctx, refund)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", bookingID).Msg("failed to insert refund")

		return res, fmt.Errorf("failed to insert refund: %w", err)
	}

	if err = s.process(ctx, &refund, booking); err != nil {
		return res, err
	}

	res.FromModel(refund)

	return res, nil
}

// process is the gateway step plus completion. The refund row already exists;
// this moves it to processing then processed, or parks it as failed.
func (s *serviceImpl) process(ctx context.Context, refund *model.Refund, booking bookingModel.Booking) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		userID = constant.ContextGuest
	}

	txn, err := s.paymentRepo.GetLatestTransaction(ctx, booking.ID, paymentModel.TransactionStatusSucceeded)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to get payment transaction")

		return fmt.Errorf("failed to get payment transaction: %w", err)
	}

	// A processing row that already carries a gateway id means the gateway
	// refunded but completion never landed; only completion is re-run.
	if txn.ID != 0 && refund.Status == model.StatusProcessing && refund.TransactionID != nil && *refund.TransactionID != "" {
		return s.complete(ctx, refund, booking, txn.ID, userID)
	}

	if txn.ID == 0 || txn.ProviderRef == nil || *txn.ProviderRef == "" {
		reason := errNoGatewayTransaction

		if markErr := s.markFailed(ctx, refund, reason, userID); markErr != nil {
			return markErr
		}

		return failure.BadRequestFromString(fmt.Sprintf("cannot refund booking %d: %s", booking.ID, reason))
	}

	reason := "requested_by_customer"
	if refund.Reason != nil && *refund.Reason != "" {
		reason = *refund.Reason
	}

	gatewayRefund, err := s.gateway.CreateRefund(ctx, paymongo.RefundRequest{
		PaymentID: *txn.ProviderRef,
		Amount:    paymongo.PhpToCentavos(refund.Amount),
		Reason:    reason,
	})

	if err != nil {
		log.Error().Err(err).Int64("refund_id", refund.ID).Msg("paymongo refund failed")

		if markErr := s.markFailed(ctx, refund, err.Error(), userID); markErr != nil {
			return markErr
		}

		return fmt.Errorf("refund gateway call failed: %w", err)
	}

	refund.TransactionID = &gatewayRefund.ID
	refund.Status = model.StatusProcessing

	err = s.repo.Update(ctx, map[string]any{
		model.FieldTransactionID: gatewayRefund.ID,
		model.FieldStatus:        model.StatusProcessing,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(refund.ID, model.FieldID, model.TableName))

	if err != nil {
		log.Error().Err(err).Int64("refund_id", refund.ID).Msg("failed to mark refund processing")

		return fmt.Errorf("failed to mark refund processing: %w", err)
	}

	return s.complete(ctx, refund, booking, txn.ID, userID)
}

// complete finalizes the saga in one transaction: booking refunded and
// cancelled, payment transaction refunded, refund processed, event enqueued.
func (s *serviceImpl) complete(ctx context.Context, refund *model.Refund, booking bookingModel.Booking, paymentTxnID int64, userID string) error {
	err := s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		txErr := s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldPaymentStatus: bookingModel.PaymentStatusRefunded,
			bookingModel.FieldStatus:        bookingModel.StatusCancelled,
			constant.FieldModifiedAt:        timezone.Now(),
			constant.FieldModifiedBy:        userID,
		}, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName))
		if txErr != nil {
			return txErr
		}

		txErr = s.paymentRepo.UpdateTransactionTx(ctx, tx, map[string]any{
			paymentModel.FieldStatus: paymentModel.TransactionStatusRefunded,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}, shared.FilterByID(paymentTxnID, paymentModel.FieldID, paymentModel.TransactionTableName))
		if txErr != nil {
			return txErr
		}

		txErr = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusProcessed,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}, shared.FilterByID(refund.ID, model.FieldID, model.TableName))
		if txErr != nil {
			return txErr
		}

		event, txErr := outboxModel.NewEvent(
			s.cfg.Kafka.NotificationTopic,
			fmt.Sprintf("booking-%d", booking.ID),
			outboxModel.EventRefundProcessed,
			map[string]any{
				"booking_id": booking.ID,
				"refund_id":  refund.ID,
				"user_id":    booking.UserID,
				"amount":     refund.Amount,
			},
			timezone.Now(),
			userID,
		)
		if txErr != nil {
			return txErr
		}

		return s.outboxRepo.InsertTx(ctx, tx, event)
	})

	if err != nil {
		log.Error().Err(err).Int64("refund_id", refund.ID).Msg("failed to complete refund")

		return fmt.Errorf("failed to complete refund: %w", err)
	}

	refund.Status = model.StatusProcessed

	s.invalidateBooking(ctx, booking.ID)

	log.Info().Int64("refund_id", refund.ID).Int64("booking_id", booking.ID).Float64("amount", refund.Amount).Msg("refund processed")

	return nil
}

// RetryFailed re-runs the saga for refunds a previous pass left behind:
// failed rows, processing rows that never reached the gateway, and
// processing rows the gateway refunded but whose completion did not land.
// With validateOnly the candidates are only counted.
func (s *serviceImpl) RetryFailed(ctx context.Context, validateOnly bool) (summary dto.RetrySummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RetryFailedRefunds")
	defer scope.End()
	defer scope.TraceIfError(err)

	refunds, err := s.repo.GetRetryable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan retryable refunds")

		return summary, fmt.Errorf("failed to scan retryable refunds: %w", err)
	}

	summary.Scanned = len(refunds)

	if validateOnly {
		for _, refund := range refunds {
			log.Info().Int64("refund_id", refund.ID).Int64("booking_id", refund.BookingID).Str("status", refund.Status).Msg("refund retry candidate")
		}

		return summary, nil
	}

	for i := range refunds {
		refund := refunds[i]

		booking, getErr := s.bookingRepo.Get(ctx, shared.FilterByID(refund.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if getErr != nil {
			log.Error().Err(getErr).Int64("refund_id", refund.ID).Msg("failed to load booking for retry")
			summary.Failed++

			continue
		}

		if booking.ID == 0 {
			log.Warn().Int64("refund_id", refund.ID).Int64("booking_id", refund.BookingID).Msg("booking missing, skipping refund retry")
			summary.Failed++

			continue
		}

		summary.Retried++

		if retryErr := s.process(ctx, &refund, booking); retryErr != nil {
			log.Error().Err(retryErr).Int64("refund_id", refund.ID).Msg("refund retry failed")
			summary.Failed++

			continue
		}

		summary.Succeeded++
	}

	log.Info().
		Int("scanned", summary.Scanned).
		Int("retried", summary.Retried).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("refund retry pass finished")

	return summary, nil
}

// eligibility applies the refund gate: paid, cancelled, no refund in flight.
func (s *serviceImpl) eligibility(ctx context.Context, booking bookingModel.Booking) (bool, string, error) {
	if booking.PaymentStatus != bookingModel.PaymentStatusPaid {
		return false, fmt.Sprintf("booking is not paid (payment status %s)", booking.PaymentStatus), nil
	}

	if booking.Status != bookingModel.StatusCancelled {
		return false, fmt.Sprintf("booking is not cancelled (status %s)", booking.Status), nil
	}

	inFlight, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.ID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusPending, model.StatusProcessing},
				Table:    model.TableName,
			},
		},
	})

	if err != nil {
		log.Error().Err(err).Msg("failed to check in-flight refunds")

		return false, "", fmt.Errorf("failed to check in-flight refunds: %w", err)
	}

	if inFlight {
		return false, "a refund is already in progress for this booking", nil
	}

	return true, "", nil
}

// policyWindow computes the informational refund tier against the scheduled
// slot: full at 24h out, half at 12h, nothing inside 2h.
func (s *serviceImpl) policyWindow(booking bookingModel.Booking) (percent int, hoursBefore float64) {
	scheduled := s.scheduledAt(booking)
	hoursBefore = time.Until(scheduled).Hours()

	lead := scheduled.Sub(timezone.Now())

	switch {
	case lead >= fullRefundLead:
		return fullPercent, hoursBefore
	case lead >= partialRefundLead:
		return partialPercent, hoursBefore
	default:
		return 0, hoursBefore
	}
}

func (s *serviceImpl) scheduledAt(booking bookingModel.Booking) time.Time {
	value := booking.BookingDate.Format(constant.DateOnlyFormat) + " " + booking.BookingTime

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if scheduled, err := timezone.Parse(layout, value); err == nil {
			return scheduled
		}
	}

	return booking.BookingDate
}

// markFailed appends the failure text to notes and parks the refund for the
// retry CLI.
func (s *serviceImpl) markFailed(ctx context.Context, refund *model.Refund, errText, userID string) error {
	notes := errText
	if refund.Notes != nil && *refund.Notes != "" {
		notes = *refund.Notes + "; " + errText
	}

	err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusFailed,
		"notes":                  notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(refund.ID, model.FieldID, model.TableName))

	if err != nil {
		log.Error().Err(err).Int64("refund_id", refund.ID).Msg("failed to mark refund failed")

		return fmt.Errorf("failed to mark refund failed: %w", err)
	}

	refund.Status = model.StatusFailed
	refund.Notes = &notes

	return nil
}

func (s *serviceImpl) ownedBooking(ctx context.Context, bookingID int64) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return bookingModel.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return bookingModel.Booking{}, failure.NotFound("booking not found")
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && booking.UserID != userID {
		return bookingModel.Booking{}, failure.ResourceRestrictedError()
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, bookingID int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, fmt.Sprintf("%d", bookingID))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}
