package service

import (
	"context"
	"fmt"
	"furever/config"
	"furever/infras/mysql"
	"furever/infras/otel"
	bookingModel "furever/internal/domains/booking/model"
	bookingRepo "furever/internal/domains/booking/repository"
	outboxModel "furever/internal/domains/outbox/model"
	outboxRepo "furever/internal/domains/outbox/repository"
	"furever/internal/domains/payment/model"
	"furever/internal/domains/payment/model/dto"
	"furever/internal/domains/payment/repository"
	providerModel "furever/internal/domains/provider/model"
	providerRepo "furever/internal/domains/provider/repository"
	"furever/shared"
	"furever/shared/cache"
	"furever/shared/constant"
	"furever/shared/failure"
	gModel "furever/shared/model"
	"furever/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const currencyPHP = "PHP"

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Payment interface {
	RecordPayment(ctx context.Context, bookingID int64, req dto.RecordPaymentRequest) (dto.TransactionResponse, error)
	ReviewReceipt(ctx context.Context, receiptID int64, req dto.ReviewReceiptRequest) error
}

type serviceImpl struct {
	repo         repository.Payment
	bookingRepo  bookingRepo.Booking
	providerRepo providerRepo.Provider
	outboxRepo   outboxRepo.Outbox
	txer         mysql.Txer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepository bookingRepo.Booking,
	providerRepository providerRepo.Provider,
	outboxRepository outboxRepo.Outbox,
	txer mysql.Txer,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepository,
		providerRepo: providerRepository,
		outboxRepo:   outboxRepository,
		txer:         txer,
		cfg:          cfg,
		cache:        redisCache,
		otel:         otel,
	}
}

// RecordPayment registers a GCash payment intent: a pending transaction row
// plus the booking moving to awaiting_payment_confirmation, in one
// transaction. An uploaded receipt path rides along as an awaiting receipt.
func (s *serviceImpl) RecordPayment(ctx context.Context, bookingID int64, req dto.RecordPaymentRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found")
	}

	if role != constant.RoleAdmin && booking.UserID != userID {
		return res, failure.ResourceRestrictedError()
	}

	if booking.PaymentStatus != bookingModel.PaymentStatusNotPaid && booking.PaymentStatus != bookingModel.PaymentStatusRejected {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot record a payment for a booking in payment status %s", booking.PaymentStatus))
	}

	txn := model.Transaction{
		BookingID:     bookingID,
		ProviderRef:   req.ProviderRef,
		Amount:        booking.Price,
		Currency:      currencyPHP,
		PaymentMethod: booking.PaymentMethod,
		Status:        model.TransactionStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		id, txErr := s.repo.InsertTransactionTxID(ctx, tx, txn)
		if txErr != nil {
			return txErr
		}

		txn.ID = id

		if req.ReceiptPath != nil && *req.ReceiptPath != "" {
			if _, txErr = s.insertReceiptTx(ctx, tx, bookingID, *req.ReceiptPath, userID); txErr != nil {
				return txErr
			}
		}

		return s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldPaymentStatus: bookingModel.PaymentStatusAwaiting,
			constant.FieldModifiedAt:        timezone.Now(),
			constant.FieldModifiedBy:        userID,
		}, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	})

	if err != nil {
		log.Error().Err(err).Int64("booking_id", bookingID).Msg("failed to record payment")

		if failure.GetCode(err) >= 500 {
			return res, fmt.Errorf("failed to record payment: %w", err)
		}

		return res, err
	}

	s.invalidateBooking(ctx, bookingID)

	res.FromModel(txn)

	log.Info().Int64("booking_id", bookingID).Int64("transaction_id", txn.ID).Msg("payment recorded")

	return res, nil
}

// ReviewReceipt lets the provider confirm or reject an awaiting receipt. The
// receipt, booking payment status, matching pending transaction and outbox
// event all move in one transaction.
func (s *serviceImpl) ReviewReceipt(ctx context.Context, receiptID int64, req dto.ReviewReceiptRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	receipt, err := s.repo.GetReceipt(ctx, shared.FilterByID(receiptID, model.FieldID, model.ReceiptTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get receipt")

		return fmt.Errorf("failed to get receipt: %w", err)
	}

	if receipt.ID == 0 {
		return failure.NotFound("receipt not found")
	}

	if receipt.Status != model.ReceiptStatusAwaiting {
		return failure.BadRequestFromString(fmt.Sprintf("receipt already reviewed (%s)", receipt.Status))
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(receipt.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found")
	}

	if role != constant.RoleAdmin {
		provider, err := s.providerRepo.Get(ctx, shared.FilterByID(userID, providerModel.FieldUserID, providerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get provider profile")

			return fmt.Errorf("failed to get provider profile: %w", err)
		}

		if provider.ID == 0 || booking.ProviderID != provider.ID {
			return failure.ResourceRestrictedError()
		}
	}

	paymentStatus := bookingModel.PaymentStatusPaid
	eventName := outboxModel.EventPaymentConfirmed

	if req.Status == model.ReceiptStatusRejected {
		paymentStatus = bookingModel.PaymentStatusRejected
		eventName = outboxModel.EventPaymentRejected
	}

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		txErr := s.repo.UpdateReceiptTx(ctx, tx, map[string]any{
			model.FieldStatus:        req.Status,
			"notes":                  req.Notes,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}, shared.FilterByID(receiptID, model.FieldID, model.ReceiptTableName))
		if txErr != nil {
			return txErr
		}

		txErr = s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
			bookingModel.FieldPaymentStatus: paymentStatus,
			constant.FieldModifiedAt:        timezone.Now(),
			constant.FieldModifiedBy:        userID,
		}, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName))
		if txErr != nil {
			return txErr
		}

		if req.Status == model.ReceiptStatusConfirmed {
			pending, txErr := s.repo.GetLatestTransaction(ctx, booking.ID, model.TransactionStatusPending)
			if txErr != nil {
				return txErr
			}

			if pending.ID != 0 {
				txErr = s.repo.UpdateTransactionTx(ctx, tx, map[string]any{
					model.FieldStatus:        model.TransactionStatusSucceeded,
					constant.FieldModifiedAt: timezone.Now(),
					constant.FieldModifiedBy: userID,
				}, shared.FilterByID(pending.ID, model.FieldID, model.TransactionTableName))
				if txErr != nil {
					return txErr
				}
			}
		}

		event, txErr := outboxModel.NewEvent(
			s.cfg.Kafka.NotificationTopic,
			fmt.Sprintf("booking-%d", booking.ID),
			eventName,
			map[string]any{
				"booking_id": booking.ID,
				"user_id":    booking.UserID,
				"receipt_id": receiptID,
				"status":     req.Status,
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
		log.Error().Err(err).Int64("receipt_id", receiptID).Msg("failed to review receipt")

		if failure.GetCode(err) >= 500 {
			return fmt.Errorf("failed to review receipt: %w", err)
		}

		return err
	}

	s.invalidateBooking(ctx, booking.ID)

	log.Info().Int64("receipt_id", receiptID).Int64("booking_id", booking.ID).Str("status", req.Status).Msg("receipt reviewed")

	return nil
}

func (s *serviceImpl) insertReceiptTx(ctx context.Context, tx *sqlx.Tx, bookingID int64, path, userID string) (int64, error) {
	return s.repo.InsertReceiptTxID(ctx, tx, model.Receipt{
		BookingID: bookingID,
		Path:      path,
		Status:    model.ReceiptStatusAwaiting,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	})
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
