package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"furever/config"
	"furever/infras/mysql"
	mysqlMocks "furever/infras/mysql/mocks"
	"furever/infras/otel/mocks"
	availMocks "furever/internal/domains/availability/mocks"
	"furever/internal/domains/availability/model"
	"furever/internal/domains/availability/model/dto"
	"furever/internal/domains/availability/service"
	providerMocks "furever/internal/domains/provider/mocks"
	providerModel "furever/internal/domains/provider/model"
	"furever/shared/constant"
	"furever/shared/failure"
)

type availabilityMockSet struct {
	repo         *availMocks.MockAvailability
	providerRepo *providerMocks.MockProvider
	txer         *mysqlMocks.MockTxer
}

func newAvailabilityService(t *testing.T) (service.Availability, availabilityMockSet) {
	ctrl := gomock.NewController(t)

	m := availabilityMockSet{
		repo:         availMocks.NewMockAvailability(ctrl),
		providerRepo: providerMocks.NewMockProvider(ctrl),
		txer:         mysqlMocks.NewMockTxer(ctrl),
	}

	svc := service.New(m.repo, m.providerRepo, m.txer, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func providerCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "prov-user")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleProvider)
}

func TestAvailabilityService_Publish(t *testing.T) {
	req := dto.PublishSlotsRequest{
		Date: "2026-10-01",
		Slots: []dto.SlotRequest{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:00", EndTime: "11:00"},
		},
	}

	tests := []struct {
		name      string
		setupMock func(m availabilityMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "inserts every slot and flips the day flag on",
			setupMock: func(m availabilityMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertSlotTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, slot model.TimeSlot) error {
						assert.Equal(t, int64(7), slot.ProviderID)
						assert.Equal(t, "2026-10-01", slot.SlotDate.Format(constant.DateOnlyFormat))

						return nil
					}).Times(2)
				m.repo.EXPECT().UpsertDayTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, day model.DayAvailability) error {
						assert.True(t, day.IsAvailable)
						assert.Equal(t, int64(7), day.ProviderID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "no provider profile",
			setupMock: func(m availabilityMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "duplicate slot rolls the batch back",
			setupMock: func(m availabilityMockSet) {
				m.providerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{ID: 7, UserID: "prov-user"}, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertSlotTx(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(mysql.Classify(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}))
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAvailabilityService(t)
			tt.setupMock(m)

			err := svc.Publish(providerCtx(), req)

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

func TestAvailabilityService_GetOpenSlots(t *testing.T) {
	svc, m := newAvailabilityService(t)

	m.repo.EXPECT().GetAllSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TimeSlot{
		{ID: 1, ProviderID: 7, SlotDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, ProviderID: 7, SlotDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "11:00"},
	}, nil)

	res, err := svc.GetOpenSlots(context.Background(), 7, "2026-10-01")

	assert.NoError(t, err)
	assert.Len(t, res.Slots, 2)
	assert.Equal(t, "2026-10-01", res.Slots[0].Date)
	assert.Equal(t, "09:00", res.Slots[0].StartTime)
}
