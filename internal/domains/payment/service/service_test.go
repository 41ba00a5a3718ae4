package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"furever/config"
	mysqlMocks "furever/infras/mysql/mocks"
	"furever/infras/otel/mocks"
	bookingMocks "furever/internal/domains/booking/mocks"
	bookingModel "furever/internal/domains/booking/model"
	outboxMocks "furever/internal/domains/outbox/mocks"
	paymentMocks "furever/internal/domains/payment/mocks"
	"furever/internal/domains/payment/model"
	"furever/internal/domains/payment/model/dto"
	"furever/internal/domains/payment/service"
	providerMocks "furever/internal/domains/provider/mocks"
	providerModel "furever/internal/domains/provider/model"
	cacheMocks "furever/shared/cache/mocks"
	"furever/shared/constant"
	"furever/shared/failure"
)

type paymentMockSet struct {
	repo         *paymentMocks.MockPayment
	bookingRepo  *bookingMocks.MockBooking
	providerRepo *providerMocks.MockProvider
	outboxRepo   *outboxMocks.MockOutbox
	txer         *mysqlMocks.MockTxer
	cache        *cacheMocks.MockRedisCache
}

func newPaymentService(t *testing.T) (service.Payment, paymentMockSet) {
	ctrl := gomock.NewController(t)

	m := paymentMockSet{
		repo:         paymentMocks.NewMockPayment(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		providerRepo: providerMocks.NewMockProvider(ctrl),
		outboxRepo:   outboxMocks.NewMockOutbox(ctrl),
		txer:         mysqlMocks.NewMockTxer(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a detached goroutine.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		m.repo, m.bookingRepo, m.providerRepo, m.outboxRepo,
		m.txer, &config.Config{}, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func stringPtr(v string) *string {
	return &v
}

func roleCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestPaymentService_RecordPayment(t *testing.T) {
	receiptPath := "/uploads/receipts/abc.jpg"
	providerRef := "pay_abc123"

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.RecordPaymentRequest
		setupMock func(m paymentMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "records a pending transaction and moves the booking to awaiting",
			ctx:  roleCtx("user-1", constant.RoleParent),
			req:  dto.RecordPaymentRequest{ProviderRef: &providerRef},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
					ID:            1,
					UserID:        "user-1",
					PaymentMethod: bookingModel.PaymentMethodGcash,
					PaymentStatus: bookingModel.PaymentStatusNotPaid,
					Price:         4500,
				}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertTransactionTxID(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, txn model.Transaction) (int64, error) {
						assert.Equal(t, model.TransactionStatusPending, txn.Status)
						assert.Equal(t, "PHP", txn.Currency)
						assert.Equal(t, float64(4500), txn.Amount)

						return 33, nil
					})
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, bookingModel.PaymentStatusAwaiting, fields[bookingModel.FieldPaymentStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "receipt path rides along as an awaiting receipt",
			ctx:  roleCtx("user-1", constant.RoleParent),
			req:  dto.RecordPaymentRequest{ReceiptPath: &receiptPath},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
					ID:            1,
					UserID:        "user-1",
					PaymentMethod: bookingModel.PaymentMethodGcash,
					PaymentStatus: bookingModel.PaymentStatusNotPaid,
					Price:         4500,
				}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertTransactionTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(33), nil)
				m.repo.EXPECT().InsertReceiptTxID(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, receipt model.Receipt) (int64, error) {
						assert.Equal(t, model.ReceiptStatusAwaiting, receipt.Status)
						assert.Equal(t, receiptPath, receipt.Path)

						return 44, nil
					})
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "retry after rejection is allowed",
			ctx:  roleCtx("user-1", constant.RoleParent),
			req:  dto.RecordPaymentRequest{},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
					ID:            1,
					UserID:        "user-1",
					PaymentMethod: bookingModel.PaymentMethodGcash,
					PaymentStatus: bookingModel.PaymentStatusRejected,
					Price:         4500,
				}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertTransactionTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(34), nil)
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already paid booking is rejected",
			ctx:  roleCtx("user-1", constant.RoleParent),
			req:  dto.RecordPaymentRequest{},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
					ID:            1,
					UserID:        "user-1",
					PaymentStatus: bookingModel.PaymentStatusPaid,
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "someone else's booking",
			ctx:  roleCtx("user-2", constant.RoleParent),
			req:  dto.RecordPaymentRequest{},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
					ID:            1,
					UserID:        "user-1",
					PaymentStatus: bookingModel.PaymentStatusNotPaid,
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not found",
			ctx:  roleCtx("user-1", constant.RoleParent),
			req:  dto.RecordPaymentRequest{},
			setupMock: func(m paymentMockSet) {
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPaymentService(t)
			tt.setupMock(m)

			res, err := svc.RecordPayment(tt.ctx, 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, res.ID)
			assert.Equal(t, model.TransactionStatusPending, res.Status)
		})
	}
}

func TestPaymentService_ReviewReceipt(t *testing.T) {
	awaitingReceipt := model.Receipt{
		ID:        44,
		BookingID: 1,
		Path:      "/uploads/receipts/abc.jpg",
		Status:    model.ReceiptStatusAwaiting,
	}

	booking := bookingModel.Booking{
		ID:            1,
		UserID:        "user-1",
		ProviderID:    7,
		PaymentStatus: bookingModel.PaymentStatusAwaiting,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ReviewReceiptRequest
		setupMock func(m paymentMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "provider confirms: booking paid and transaction succeeded",
			ctx:  roleCtx("prov-user", constant.RoleProvider),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusConfirmed},
			setupMock: func(m paymentMockSet) {
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(awaitingReceipt, nil)
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateReceiptTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, bookingModel.PaymentStatusPaid, fields[bookingModel.FieldPaymentStatus])

						return nil
					})
				m.repo.EXPECT().GetLatestTransaction(gomock.Any(), int64(1), model.TransactionStatusPending).
					Return(model.Transaction{ID: 33, BookingID: 1}, nil)
				m.repo.EXPECT().UpdateTransactionTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, model.TransactionStatusSucceeded, fields[model.FieldStatus])

						return nil
					})
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "provider rejects: booking payment_rejected, transaction untouched",
			ctx:  roleCtx("prov-user", constant.RoleProvider),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusRejected, Notes: stringPtr("unreadable screenshot")},
			setupMock: func(m paymentMockSet) {
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(awaitingReceipt, nil)
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateReceiptTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, bookingModel.PaymentStatusRejected, fields[bookingModel.FieldPaymentStatus])

						return nil
					})
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already reviewed receipt",
			ctx:  roleCtx("prov-user", constant.RoleProvider),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusConfirmed},
			setupMock: func(m paymentMockSet) {
				reviewed := awaitingReceipt
				reviewed.Status = model.ReceiptStatusConfirmed
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(reviewed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "another provider's booking",
			ctx:  roleCtx("other-prov", constant.RoleProvider),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusConfirmed},
			setupMock: func(m paymentMockSet) {
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(awaitingReceipt, nil)
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 8, UserID: "other-prov"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "receipt not found",
			ctx:  roleCtx("prov-user", constant.RoleProvider),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusConfirmed},
			setupMock: func(m paymentMockSet) {
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(model.Receipt{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "admin may review without a provider profile",
			ctx:  roleCtx("admin-user", constant.RoleAdmin),
			req:  dto.ReviewReceiptRequest{Status: model.ReceiptStatusRejected},
			setupMock: func(m paymentMockSet) {
				m.repo.EXPECT().GetReceipt(gomock.Any(), gomock.Any()).Return(awaitingReceipt, nil)
				m.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateReceiptTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPaymentService(t)
			tt.setupMock(m)

			err := svc.ReviewReceipt(tt.ctx, 44, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
