package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/provider/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Provider interface {
	InsertID(ctx context.Context, model model.Provider) (int64, error)
	InsertTxID(ctx context.Context, tx *sqlx.Tx, model model.Provider) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Provider, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Provider, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Provider]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Provider {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Provider](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
