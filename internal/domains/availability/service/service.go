package service

import (
	"context"
	"fmt"
	"furever/config"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/availability/model"
	"furever/internal/domains/availability/model/dto"
	"furever/internal/domains/availability/repository"
	providerModel "furever/internal/domains/provider/model"
	providerRepo "furever/internal/domains/provider/repository"
	"furever/shared"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	gModel "furever/shared/model"
	"furever/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Availability interface {
	Publish(ctx context.Context, req dto.PublishSlotsRequest) error
	GetOpenSlots(ctx context.Context, providerID int64, date string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	repo         repository.Availability
	providerRepo providerRepo.Provider
	txer         mysql.Txer
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Availability, providerRepo providerRepo.Provider, txer mysql.Txer, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:         repo,
		providerRepo: providerRepo,
		txer:         txer,
		cfg:          cfg,
		otel:         otel,
	}
}

// Publish inserts a provider's slots for one day and flips the day flag on.
// The unique slot key turns a republish of an existing slot into a conflict.
func (s *serviceImpl) Publish(ctx context.Context, req dto.PublishSlotsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublishSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.providerRepo.Get(ctx, shared.FilterByID(userID, providerModel.FieldUserID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider profile")

		return fmt.Errorf("failed to get provider profile: %w", err)
	}

	if provider.ID == 0 {
		return failure.Forbidden("no provider profile for this account")
	}

	slots := req.ToModels(provider.ID, userID)

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, slot := range slots {
			if err := s.repo.InsertSlotTx(ctx, tx, slot); err != nil {
				return err
			}
		}

		return s.repo.UpsertDayTx(ctx, tx, model.DayAvailability{
			ProviderID:    provider.ID,
			AvailableDate: slots[0].SlotDate,
			IsAvailable:   true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		})
	})

	if err != nil {
		log.Error().Err(err).Int64("provider_id", provider.ID).Str("date", req.Date).Msg("failed to publish time slots")

		return fmt.Errorf("failed to publish time slots: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetOpenSlots(ctx context.Context, providerID int64, date string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOpenSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.SlotTableName,
			},
			gDto.Filter{
				Field:    model.FieldSlotDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.SlotTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	slots, err := s.repo.GetAllSlots(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open time slots")

		return res, fmt.Errorf("failed to get open time slots: %w", err)
	}

	res.FromModels(slots)

	return res, nil
}
