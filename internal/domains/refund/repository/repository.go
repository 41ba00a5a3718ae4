package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/refund/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Refund interface {
	InsertID(ctx context.Context, refund model.Refund) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Refund, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Refund, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	GetLatestForBookings(ctx context.Context, bookingIDs []int64) (map[int64]model.Refund, error)
	GetRetryable(ctx context.Context) ([]model.Refund, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Refund]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Refund {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Refund](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetLatestForBookings maps each booking id to its newest refund row.
func (repo *repositoryImpl) GetLatestForBookings(ctx context.Context, bookingIDs []int64) (map[int64]model.Refund, error) {
	latest := map[int64]model.Refund{}

	if len(bookingIDs) == 0 {
		return latest, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingIDs,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirDesc}

	refunds, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	// Rows come newest first, so the first row seen per booking wins.
	for _, refund := range refunds {
		if _, ok := latest[refund.BookingID]; !ok {
			latest[refund.BookingID] = refund
		}
	}

	return latest, nil
}

// GetRetryable returns refunds the CLI may re-run: failed ones, plus
// processing rows stuck mid-saga. A processing row without a gateway
// transaction id never reached the gateway; one with an id got refunded
// there but local completion never landed. Both need another pass.
func (repo *repositoryImpl) GetRetryable(ctx context.Context) ([]model.Refund, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusFailed, model.StatusProcessing},
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	return repo.GetAll(ctx, params, filter)
}
