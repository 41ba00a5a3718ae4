package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"furever/config"
	mysqlMocks "furever/infras/mysql/mocks"
	"furever/infras/otel/mocks"
	"furever/infras/paymongo"
	paymongoMocks "furever/infras/paymongo/mocks"
	bookingMocks "furever/internal/domains/booking/mocks"
	bookingModel "furever/internal/domains/booking/model"
	outboxMocks "furever/internal/domains/outbox/mocks"
	paymentMocks "furever/internal/domains/payment/mocks"
	paymentModel "furever/internal/domains/payment/model"
	refundMocks "furever/internal/domains/refund/mocks"
	"furever/internal/domains/refund/model"
	"furever/internal/domains/refund/model/dto"
	"furever/internal/domains/refund/service"
	cacheMocks "furever/shared/cache/mocks"
	"furever/shared/constant"
	"furever/shared/failure"
	"furever/shared/timezone"
)

type refundMockSet struct {
	repo        *refundMocks.MockRefund
	bookingRepo *bookingMocks.MockBooking
	paymentRepo *paymentMocks.MockPayment
	outboxRepo  *outboxMocks.MockOutbox
	gateway     *paymongoMocks.MockClient
	txer        *mysqlMocks.MockTxer
	cache       *cacheMocks.MockRedisCache
}

func newRefundService(t *testing.T) (service.Refund, refundMockSet) {
	ctrl := gomock.NewController(t)

	m := refundMockSet{
		repo:        refundMocks.NewMockRefund(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		outboxRepo:  outboxMocks.NewMockOutbox(ctrl),
		gateway:     paymongoMocks.NewMockClient(ctrl),
		txer:        mysqlMocks.NewMockTxer(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		m.repo, m.bookingRepo, m.paymentRepo, m.outboxRepo,
		m.gateway, m.txer, &config.Config{}, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func ownerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleParent)
}

// refundableBooking is paid, cancelled and scheduled leadHours from now.
func refundableBooking(paymentMethod string, leadHours float64) bookingModel.Booking {
	scheduled := timezone.Now().Add(time.Duration(leadHours * float64(time.Hour)))

	return bookingModel.Booking{
		ID:            1,
		UserID:        "user-1",
		ProviderID:    7,
		Status:        bookingModel.StatusCancelled,
		PaymentStatus: bookingModel.PaymentStatusPaid,
		PaymentMethod: paymentMethod,
		Price:         4500,
		BookingDate:   scheduled,
		BookingTime:   scheduled.Format(constant.TimeOnlyFormat),
	}
}

func TestRefundService_CheckEligibility(t *testing.T) {
	tests := []struct {
		name         string
		booking      bookingModel.Booking
		inFlight     bool
		checkInRepo  bool
		wantEligible bool
		wantReason   string
		wantPercent  int
	}{
		{
			name:         "paid and cancelled far ahead is fully refundable",
			booking:      refundableBooking(bookingModel.PaymentMethodGcash, 48),
			checkInRepo:  true,
			wantEligible: true,
			wantPercent:  100,
		},
		{
			name:         "inside 24h gets the partial tier",
			booking:      refundableBooking(bookingModel.PaymentMethodGcash, 18),
			checkInRepo:  true,
			wantEligible: true,
			wantPercent:  50,
		},
		{
			name:         "too close to the slot gets nothing",
			booking:      refundableBooking(bookingModel.PaymentMethodGcash, 1),
			checkInRepo:  true,
			wantEligible: true,
			wantPercent:  0,
		},
		{
			name: "unpaid booking",
			booking: func() bookingModel.Booking {
				b := refundableBooking(bookingModel.PaymentMethodGcash, 48)
				b.PaymentStatus = bookingModel.PaymentStatusNotPaid

				return b
			}(),
			wantEligible: false,
			wantReason:   "booking is not paid",
			wantPercent:  100,
		},
		{
			name: "booking not cancelled",
			booking: func() bookingModel.Booking {
				b := refundableBooking(bookingModel.PaymentMethodGcash, 48)
				b.Status = bookingModel.StatusConfirmed

				return b
			}(),
			wantEligible: false,
			wantReason:   "booking is not cancelled",
			wantPercent:  100,
		},
		{
			name:         "refund already in flight",
			booking:      refundableBooking(bookingModel.PaymentMethodGcash, 48),
			inFlight:     true,
			checkInRepo:  true,
			wantEligible: false,
			wantReason:   "already in progress",
			wantPercent:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRefundService(t)

			m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			if tt.checkInRepo {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.inFlight, nil)
			}

			res, err := svc.CheckEligibility(ownerCtx(), 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantEligible, res.Eligible)
			assert.Equal(t, tt.wantPercent, res.RefundPercent)
			assert.Equal(t, float64(4500), res.Amount)

			if tt.wantReason != "" {
				assert.Contains(t, res.Reason, tt.wantReason)
			}
		})
	}
}

func TestRefundService_CheckEligibilityNotOwner(t *testing.T) {
	svc, m := newRefundService(t)

	m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
		ID: 1, UserID: "someone-else",
	}, nil)

	_, err := svc.CheckEligibility(ownerCtx(), 1)

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestRefundService_Request(t *testing.T) {
	providerRef := "pay_abc123"

	tests := []struct {
		name       string
		booking    bookingModel.Booking
		setupMock  func(m refundMockSet)
		wantErr    bool
		wantCode   int
		wantInMsg  string
		wantStatus string
	}{
		{
			name:    "full saga succeeds",
			booking: refundableBooking(bookingModel.PaymentMethodGcash, 48),
			setupMock: func(m refundMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertID(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
					Return(paymentModel.Transaction{ID: 33, BookingID: 1, ProviderRef: &providerRef}, nil)
				m.gateway.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req paymongo.RefundRequest) (paymongo.Refund, error) {
						assert.Equal(t, "pay_abc123", req.PaymentID)
						assert.Equal(t, int64(450000), req.Amount)
						assert.Equal(t, "requested_by_customer", req.Reason)

						return paymongo.Refund{ID: "ref_xyz", Status: "pending"}, nil
					})
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.paymentRepo.EXPECT().UpdateTransactionTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusProcessed,
		},
		{
			name:    "cash bookings are refunded manually",
			booking: refundableBooking(bookingModel.PaymentMethodCash, 48),
			setupMock: func(m refundMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "refunded manually",
		},
		{
			name:    "no gateway transaction parks the refund as failed",
			booking: refundableBooking(bookingModel.PaymentMethodGcash, 48),
			setupMock: func(m refundMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertID(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
					Return(paymentModel.Transaction{}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "no PayMongo transaction record exists",
		},
		{
			name:    "gateway failure parks the refund for retry",
			booking: refundableBooking(bookingModel.PaymentMethodGcash, 48),
			setupMock: func(m refundMockSet) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().InsertID(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
					Return(paymentModel.Transaction{ID: 33, BookingID: 1, ProviderRef: &providerRef}, nil)
				m.gateway.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
					Return(paymongo.Refund{}, &paymongo.Error{StatusCode: 502, Detail: "gateway timeout"})
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "ineligible booking is rejected before any write",
			booking: func() bookingModel.Booking {
				b := refundableBooking(bookingModel.PaymentMethodGcash, 48)
				b.PaymentStatus = bookingModel.PaymentStatusNotPaid

				return b
			}(),
			setupMock: func(m refundMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "not paid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRefundService(t)

			m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(m)

			res, err := svc.Request(ownerCtx(), 1, dto.RequestRefundRequest{})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantInMsg != "" {
					assert.Contains(t, err.Error(), tt.wantInMsg)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, float64(4500), res.Amount)
			assert.NotNil(t, res.TransactionID)
			assert.Equal(t, "ref_xyz", *res.TransactionID)
		})
	}
}

func TestRefundService_RequestAmountOverride(t *testing.T) {
	svc, m := newRefundService(t)

	providerRef := "pay_abc123"
	amount := 2000.0

	m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refundableBooking(bookingModel.PaymentMethodGcash, 48), nil)
	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	m.repo.EXPECT().InsertID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, refund model.Refund) (int64, error) {
			assert.Equal(t, 2000.0, refund.Amount)

			return 5, nil
		})
	m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
		Return(paymentModel.Transaction{ID: 33, BookingID: 1, ProviderRef: &providerRef}, nil)
	m.gateway.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req paymongo.RefundRequest) (paymongo.Refund, error) {
			assert.Equal(t, int64(200000), req.Amount)

			return paymongo.Refund{ID: "ref_xyz"}, nil
		})
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
	m.paymentRepo.EXPECT().UpdateTransactionTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
	m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

	res, err := svc.Request(ownerCtx(), 1, dto.RequestRefundRequest{Amount: &amount})

	assert.NoError(t, err)
	assert.Equal(t, 2000.0, res.Amount)
}

func TestRefundService_RetryFailed(t *testing.T) {
	providerRef := "pay_abc123"

	retryable := []model.Refund{
		{ID: 5, BookingID: 1, Amount: 4500, Status: model.StatusFailed},
		{ID: 6, BookingID: 2, Amount: 3000, Status: model.StatusFailed},
	}

	t.Run("validate only counts candidates", func(t *testing.T) {
		svc, m := newRefundService(t)

		m.repo.EXPECT().GetRetryable(gomock.Any()).Return(retryable, nil)

		summary, err := svc.RetryFailed(context.Background(), true)

		assert.NoError(t, err)
		assert.Equal(t, dto.RetrySummary{Scanned: 2}, summary)
	})

	t.Run("retries each candidate and tallies outcomes", func(t *testing.T) {
		svc, m := newRefundService(t)

		m.repo.EXPECT().GetRetryable(gomock.Any()).Return(retryable, nil)

		// First refund: booking loads and the saga completes.
		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refundableBooking(bookingModel.PaymentMethodGcash, 48), nil)
		m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
			Return(paymentModel.Transaction{ID: 33, BookingID: 1, ProviderRef: &providerRef}, nil)
		m.gateway.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(paymongo.Refund{ID: "ref_xyz"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.paymentRepo.EXPECT().UpdateTransactionTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

		// Second refund: its booking row is gone.
		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		summary, err := svc.RetryFailed(context.Background(), false)

		assert.NoError(t, err)
		assert.Equal(t, dto.RetrySummary{Scanned: 2, Retried: 1, Succeeded: 1, Failed: 1}, summary)
	})

	t.Run("scan failure surfaces", func(t *testing.T) {
		svc, m := newRefundService(t)

		m.repo.EXPECT().GetRetryable(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.RetryFailed(context.Background(), false)

		assert.Error(t, err)
	})

	t.Run("processing row with gateway id only re-runs completion", func(t *testing.T) {
		svc, m := newRefundService(t)

		gatewayID := "ref_xyz"

		m.repo.EXPECT().GetRetryable(gomock.Any()).Return([]model.Refund{
			{ID: 5, BookingID: 1, Amount: 4500, Status: model.StatusProcessing, TransactionID: &gatewayID},
		}, nil)
		m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refundableBooking(bookingModel.PaymentMethodGcash, 48), nil)
		m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
			Return(paymentModel.Transaction{ID: 33, BookingID: 1, ProviderRef: &providerRef}, nil)

		// The gateway already refunded this one; a second CreateRefund would
		// double-refund, so only the local completion transaction runs.
		m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.paymentRepo.EXPECT().UpdateTransactionTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
		m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

		summary, err := svc.RetryFailed(context.Background(), false)

		assert.NoError(t, err)
		assert.Equal(t, dto.RetrySummary{Scanned: 1, Retried: 1, Succeeded: 1}, summary)
	})
}

func TestRefundService_MarkFailedAppendsNotes(t *testing.T) {
	svc, m := newRefundService(t)

	existing := "first failure"

	m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refundableBooking(bookingModel.PaymentMethodGcash, 48), nil)
	m.repo.EXPECT().GetRetryable(gomock.Any()).Return([]model.Refund{
		{ID: 5, BookingID: 1, Amount: 4500, Status: model.StatusFailed, Notes: &existing},
	}, nil)
	m.paymentRepo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), paymentModel.TransactionStatusSucceeded).
		Return(paymentModel.Transaction{}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, "first failure; no PayMongo transaction record exists for this booking", fields["notes"])

			return nil
		})

	summary, err := svc.RetryFailed(context.Background(), false)

	assert.NoError(t, err)
	assert.Equal(t, dto.RetrySummary{Scanned: 1, Retried: 1, Failed: 1}, summary)
}
