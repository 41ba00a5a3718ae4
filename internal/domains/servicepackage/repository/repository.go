package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/servicepackage/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"
)

type ServicePackage interface {
	InsertID(ctx context.Context, model model.ServicePackage) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServicePackage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServicePackage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServicePackage]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) ServicePackage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServicePackage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
