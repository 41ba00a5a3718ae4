package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/availability/model"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	"furever/shared/logger"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ErrSlotTaken is returned when a consume matched no slot row: another
// booking already claimed it.
var ErrSlotTaken = failure.Conflict("time slot is no longer available")

type Availability interface {
	InsertSlotTx(ctx context.Context, tx *sqlx.Tx, slot model.TimeSlot) error
	GetAllSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeSlot, error)
	CountSlots(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ConsumeSlotTx(ctx context.Context, tx *sqlx.Tx, providerID int64, slotDate, startTime string) error
	RestoreSlotTx(ctx context.Context, tx *sqlx.Tx, slot model.TimeSlot) error
	CountSlotsTx(ctx context.Context, tx *sqlx.Tx, providerID int64, slotDate string) (int, error)
	UpsertDayTx(ctx context.Context, tx *sqlx.Tx, day model.DayAvailability) error
	GetDays(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DayAvailability, error)
}

type repositoryImpl struct {
	slots gRepo.Repository[model.TimeSlot]
	days  gRepo.Repository[model.DayAvailability]
	db    *mysql.Connection
	otel  otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		slots: gRepo.NewRepository[model.TimeSlot](model.SlotEntityName, model.SlotTableName, model.FieldID, db, otel),
		days:  gRepo.NewRepository[model.DayAvailability](model.DayEntityName, model.DayTableName, model.FieldID, db, otel),
		db:    db,
		otel:  otel,
	}
}

func (repo *repositoryImpl) InsertSlotTx(ctx context.Context, tx *sqlx.Tx, slot model.TimeSlot) error {
	return repo.slots.InsertTx(ctx, tx, slot)
}

func (repo *repositoryImpl) GetAllSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeSlot, error) {
	return repo.slots.GetAll(ctx, params, filter, columns...)
}

func (repo *repositoryImpl) CountSlots(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.slots.Count(ctx, filter)
}

func (repo *repositoryImpl) GetDays(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DayAvailability, error) {
	return repo.days.GetAll(ctx, params, filter, columns...)
}

// ConsumeSlotTx removes the exact slot row a booking claims. A delete that
// touches zero rows means someone else already took it.
func (repo *repositoryImpl) ConsumeSlotTx(ctx context.Context, tx *sqlx.Tx, providerID int64, slotDate, startTime string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".time_slot.ConsumeSlotTx")
	defer scope.End()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = :provider_id AND %s = :slot_date AND %s = :start_time",
		model.SlotTableName, model.FieldProviderID, model.FieldSlotDate, model.FieldStartTime,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"provider_id": providerID,
		"slot_date":   slotDate,
		"start_time":  startTime,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to consume time slot: %w", mysql.Classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read consumed slot count: %w", err)
	}

	if affected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// RestoreSlotTx puts a consumed slot back, tolerating a slot that was never
// removed (cancel raced with a republish).
func (repo *repositoryImpl) RestoreSlotTx(ctx context.Context, tx *sqlx.Tx, slot model.TimeSlot) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".time_slot.RestoreSlotTx")
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (provider_id, slot_date, start_time, end_time, created_at, modified_at, created_by, modified_by)
		 VALUES (:provider_id, :slot_date, :start_time, :end_time, :created_at, :modified_at, :created_by, :modified_by)
		 ON DUPLICATE KEY UPDATE end_time = VALUES(end_time)`,
		model.SlotTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.NamedExecContext(ctx, query, slot); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to restore time slot: %w", mysql.Classify(err))
	}

	return nil
}

func (repo *repositoryImpl) CountSlotsTx(ctx context.Context, tx *sqlx.Tx, providerID int64, slotDate string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".time_slot.CountSlotsTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = ? AND %s = ?",
		model.FieldID, model.SlotTableName, model.FieldProviderID, model.FieldSlotDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.GetContext(ctx, &count, query, providerID, slotDate); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count remaining time slots: %w", mysql.Classify(err))
	}

	return count, nil
}

// UpsertDayTx keeps the per-day availability flag in step with the slot table.
func (repo *repositoryImpl) UpsertDayTx(ctx context.Context, tx *sqlx.Tx, day model.DayAvailability) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".day_availability.UpsertDayTx")
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (provider_id, available_date, is_available, created_at, modified_at, created_by, modified_by)
		 VALUES (:provider_id, :available_date, :is_available, :created_at, :modified_at, :created_by, :modified_by)
		 ON DUPLICATE KEY UPDATE is_available = VALUES(is_available), modified_at = VALUES(modified_at), modified_by = VALUES(modified_by)`,
		model.DayTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.NamedExecContext(ctx, query, day); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert day availability: %w", mysql.Classify(err))
	}

	return nil
}
