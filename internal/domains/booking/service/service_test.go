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
	availMocks "furever/internal/domains/availability/mocks"
	availRepo "furever/internal/domains/availability/repository"
	bookingMocks "furever/internal/domains/booking/mocks"
	"furever/internal/domains/booking/model"
	"furever/internal/domains/booking/model/dto"
	"furever/internal/domains/booking/service"
	outboxMocks "furever/internal/domains/outbox/mocks"
	petMocks "furever/internal/domains/pet/mocks"
	petModel "furever/internal/domains/pet/model"
	providerMocks "furever/internal/domains/provider/mocks"
	providerModel "furever/internal/domains/provider/model"
	refundMocks "furever/internal/domains/refund/mocks"
	refundModel "furever/internal/domains/refund/model"
	packageMocks "furever/internal/domains/servicepackage/mocks"
	packageModel "furever/internal/domains/servicepackage/model"
	userMocks "furever/internal/domains/user/mocks"
	cacheMocks "furever/shared/cache/mocks"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	petRepo      *petMocks.MockPet
	providerRepo *providerMocks.MockProvider
	packageRepo  *packageMocks.MockServicePackage
	userRepo     *userMocks.MockUser
	availRepo    *availMocks.MockAvailability
	refundRepo   *refundMocks.MockRefund
	outboxRepo   *outboxMocks.MockOutbox
	txer         *mysqlMocks.MockTxer
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	ctrl := gomock.NewController(t)

	m := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		petRepo:      petMocks.NewMockPet(ctrl),
		providerRepo: providerMocks.NewMockProvider(ctrl),
		packageRepo:  packageMocks.NewMockServicePackage(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		availRepo:    availMocks.NewMockAvailability(ctrl),
		refundRepo:   refundMocks.NewMockRefund(ctrl),
		outboxRepo:   outboxMocks.NewMockOutbox(ctrl),
		txer:         mysqlMocks.NewMockTxer(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes and invalidations run on detached goroutines, so the tests
	// never pin down how many of them land before the assertion.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		m.repo, m.petRepo, m.providerRepo, m.packageRepo, m.userRepo,
		m.availRepo, m.refundRepo, m.outboxRepo, m.txer,
		&config.Config{}, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func parentCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleParent)
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ProviderID:     7,
		PackageID:      3,
		PetName:        "Mochi",
		PetType:        "cat",
		BookingDate:    "2026-10-01",
		BookingTime:    "10:00",
		PaymentMethod:  model.PaymentMethodCash,
		DeliveryOption: model.DeliveryOptionPickup,
	}
}

func expectValidReferences(m bookingMockSet) {
	m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.providerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.packageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(packageModel.ServicePackage{
		ID:         3,
		ProviderID: 7,
		Price:      4500,
	}, nil)
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "creates booking with new pet, consumes slot and enqueues events",
			ctx:  parentCtx("user-1"),
			req:  validCreateRequest(),
			setupMock: func(m bookingMockSet) {
				expectValidReferences(m)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.petRepo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(11), nil)
				m.repo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) (int64, error) {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, model.PaymentStatusNotPaid, booking.PaymentStatus)
						assert.Equal(t, int64(11), booking.PetID)
						assert.Equal(t, float64(4500), booking.Price)

						return 101, nil
					})
				m.availRepo.EXPECT().ConsumeSlotTx(gomock.Any(), gomock.Nil(), int64(7), "2026-10-01", "10:00").Return(nil)
				m.availRepo.EXPECT().CountSlotsTx(gomock.Any(), gomock.Nil(), int64(7), "2026-10-01").Return(2, nil)
				m.availRepo.EXPECT().UpsertDayTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil).Times(2)
			},
			wantErr: false,
		},
		{
			name: "reuses an owned pet",
			ctx:  parentCtx("user-1"),
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.PetID = int64Ptr(11)
				req.PetName = ""
				req.PetType = ""

				return req
			}(),
			setupMock: func(m bookingMockSet) {
				expectValidReferences(m)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.petRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(petModel.Pet{ID: 11, UserID: "user-1"}, nil)
				m.repo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(102), nil)
				m.availRepo.EXPECT().ConsumeSlotTx(gomock.Any(), gomock.Nil(), int64(7), "2026-10-01", "10:00").Return(nil)
				m.availRepo.EXPECT().CountSlotsTx(gomock.Any(), gomock.Nil(), int64(7), "2026-10-01").Return(0, nil)
				m.availRepo.EXPECT().UpsertDayTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil).Times(2)
			},
			wantErr: false,
		},
		{
			name: "pet owned by someone else",
			ctx:  parentCtx("user-1"),
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.PetID = int64Ptr(11)

				return req
			}(),
			setupMock: func(m bookingMockSet) {
				expectValidReferences(m)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.petRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(petModel.Pet{ID: 11, UserID: "someone-else"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing fields itemized",
			ctx:  parentCtx("user-1"),
			req: dto.CreateBookingRequest{
				ProviderID:     7,
				PackageID:      3,
				PaymentMethod:  model.PaymentMethodCash,
				DeliveryOption: model.DeliveryOptionDelivery,
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid booking date",
			ctx:  parentCtx("user-1"),
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.BookingDate = "01-10-2026"

				return req
			}(),
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "package belongs to another provider",
			ctx:  parentCtx("user-1"),
			req:  validCreateRequest(),
			setupMock: func(m bookingMockSet) {
				m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.providerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.packageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(packageModel.ServicePackage{
					ID:         3,
					ProviderID: 99,
					Price:      4500,
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slot already taken surfaces a conflict",
			ctx:  parentCtx("user-1"),
			req:  validCreateRequest(),
			setupMock: func(m bookingMockSet) {
				expectValidReferences(m)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.petRepo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(11), nil)
				m.repo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(103), nil)
				m.availRepo.EXPECT().ConsumeSlotTx(gomock.Any(), gomock.Nil(), int64(7), "2026-10-01", "10:00").Return(availRepo.ErrSlotTaken)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, res.ID)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, "2026-10-01", res.BookingDate)
		})
	}
}

func TestBookingService_CreateMissingFieldsExact(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(parentCtx("user-1"), dto.CreateBookingRequest{
		ProviderID:     7,
		PackageID:      3,
		PaymentMethod:  model.PaymentMethodCash,
		DeliveryOption: model.DeliveryOptionDelivery,
	})

	assert.Error(t, err)
	assert.Equal(t,
		[]string{"booking_date", "booking_time", "pet_name", "pet_type", "delivery_address"},
		failure.GetMissingFields(err),
	)
}

func TestBookingService_GetAllDegradesOnRepositoryFailure(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("query timeout"))

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Empty(t, res.Bookings)
	assert.Equal(t, constant.WarningBookingsUnavailable, res.Warning)
}

func TestBookingService_GetAllServesFromCache(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res := value.(*dto.GetBookingsResponse)
			res.TotalData = 3

			return nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
}

func TestBookingService_GetAllAssemblesAddonsAndRefunds(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []model.Booking{
		{ID: 1, UserID: "user-1", BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, UserID: "user-1", BookingDate: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
	}

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().GetAddons(gomock.Any(), []int64{1, 2}).Return([]model.Addon{
		{ID: 5, BookingID: 1, Name: "paw print", Price: 300},
	}, nil)
	m.refundRepo.EXPECT().GetLatestForBookings(gomock.Any(), []int64{1, 2}).Return(map[int64]refundModel.Refund{
		2: {ID: 9, BookingID: 2, Status: refundModel.StatusProcessed, Amount: 4500},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Len(t, res.Bookings[0].Addons, 1)
	assert.Nil(t, res.Bookings[0].Refund)
	assert.NotNil(t, res.Bookings[1].Refund)
	assert.Equal(t, refundModel.StatusProcessed, res.Bookings[1].Refund.Status)
	assert.Equal(t, 2, res.TotalData)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	providerCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, "prov-user")
	providerCtx = context.WithValue(providerCtx, constant.ContextKeyUserRole, constant.RoleProvider)

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending to confirmed",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(m bookingMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 1, ProviderID: 7, Status: model.StatusPending}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completed cannot move",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(m bookingMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 1, ProviderID: 7, Status: model.StatusCompleted}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "another provider's booking",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(m bookingMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 1, ProviderID: 8, Status: model.StatusPending}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking not found",
			req:  dto.UpdateStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(m bookingMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancellation restores the slot",
			req:  dto.UpdateStatusRequest{Status: model.StatusCancelled},
			setupMock: func(m bookingMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
					ID:          1,
					ProviderID:  7,
					Status:      model.StatusConfirmed,
					BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					BookingTime: "10:00",
				}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.availRepo.EXPECT().RestoreSlotTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.availRepo.EXPECT().UpsertDayTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			err := svc.UpdateStatus(providerCtx, 1, tt.req)

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

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner cancels a pending booking",
			ctx:  parentCtx("user-1"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
					ID:          1,
					UserID:      "user-1",
					ProviderID:  7,
					Status:      model.StatusPending,
					BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					BookingTime: "10:00",
				}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil)
				m.availRepo.EXPECT().RestoreSlotTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.availRepo.EXPECT().UpsertDayTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.outboxRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "not the owner",
			ctx:  parentCtx("user-2"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
					ID: 1, UserID: "user-1", Status: model.StatusPending,
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "in progress cannot be cancelled",
			ctx:  parentCtx("user-1"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
					ID: 1, UserID: "user-1", Status: model.StatusInProgress,
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			err := svc.Cancel(tt.ctx, 1)

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

func TestBookingService_Get(t *testing.T) {
	svc, m := newBookingService(t)

	petName := "Mochi"

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
		ID:          1,
		UserID:      "user-1",
		PetName:     &petName,
		BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	m.repo.EXPECT().GetAddons(gomock.Any(), []int64{1}).Return([]model.Addon{}, nil)
	m.refundRepo.EXPECT().GetLatestForBookings(gomock.Any(), []int64{1}).Return(map[int64]refundModel.Refund{}, nil)

	res, err := svc.Get(parentCtx("user-1"), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Mochi", res.PetName)
	assert.Equal(t, "2026-10-01", res.BookingDate)
	assert.Nil(t, res.Refund)
}

func TestBookingService_GetServesFromCache(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), "booking:get:1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res := value.(*dto.BookingResponse)
			res.ID = 1
			res.UserID = "user-1"
			res.PetName = "Mochi"

			return nil
		})

	res, err := svc.Get(parentCtx("user-1"), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Mochi", res.PetName)
}

func TestBookingService_GetCacheHitStillChecksOwnership(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), "booking:get:1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res := value.(*dto.BookingResponse)
			res.ID = 1
			res.UserID = "someone-else"

			return nil
		})

	_, err := svc.Get(parentCtx("user-1"), 1)

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_GetPlaceholdersForMissingJoins(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
		ID:          1,
		UserID:      "user-1",
		BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	m.repo.EXPECT().GetAddons(gomock.Any(), []int64{1}).Return(nil, nil)
	m.refundRepo.EXPECT().GetLatestForBookings(gomock.Any(), []int64{1}).Return(map[int64]refundModel.Refund{}, nil)

	res, err := svc.Get(parentCtx("user-1"), 1)

	assert.NoError(t, err)
	assert.Equal(t, constant.PlaceholderPetName, res.PetName)
	assert.Equal(t, constant.PlaceholderProviderName, res.ProviderName)
	assert.Equal(t, constant.PlaceholderPackageName, res.PackageName)
}

func int64Ptr(v int64) *int64 {
	return &v
}
