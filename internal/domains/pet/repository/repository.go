package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/pet/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Pet interface {
	InsertID(ctx context.Context, model model.Pet) (int64, error)
	InsertTxID(ctx context.Context, tx *sqlx.Tx, model model.Pet) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Pet, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pet, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Pet]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Pet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pet](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
