package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/booking/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTxID(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (int64, error)
	InsertAddonTx(ctx context.Context, tx *sqlx.Tx, addon model.Addon) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	GetAddons(ctx context.Context, bookingIDs []int64) ([]model.Addon, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	addons gRepo.Repository[model.Addon]
	db     *mysql.Connection
	otel   otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		addons:     gRepo.NewRepository[model.Addon](model.AddonEntityName, model.AddonTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertAddonTx(ctx context.Context, tx *sqlx.Tx, addon model.Addon) error {
	return repo.addons.InsertTx(ctx, tx, addon)
}

// GetAddons returns the add-on rows for a set of bookings in one query.
func (repo *repositoryImpl) GetAddons(ctx context.Context, bookingIDs []int64) ([]model.Addon, error) {
	if len(bookingIDs) == 0 {
		return []model.Addon{}, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingIDs,
				Table:    model.AddonTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	return repo.addons.GetAll(ctx, params, filter)
}
