package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/outbox/model"
	"furever/shared"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"
	"furever/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	retryBackoffBase = 30 * time.Second
	retryBackoffCap  = 15 * time.Minute
)

type Outbox interface {
	Insert(ctx context.Context, event model.Event) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, event model.Event) error
	GetDue(ctx context.Context, limit int) ([]model.Event, error)
	MarkPublished(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, event model.Event, publishErr error, maxAttempts int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Outbox {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetDue returns pending events whose publish_after has passed, oldest first.
func (repo *repositoryImpl) GetDue(ctx context.Context, limit int) ([]model.Event, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPublishAfter,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.Now(),
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{Limit: limit, SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	return repo.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) MarkPublished(ctx context.Context, id int64) error {
	return repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusPublished,
		constant.FieldModifiedAt: timezone.Now(),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}

// MarkFailed bumps the attempt counter and parks the event as failed once the
// attempt budget is spent; until then it stays pending with publish_after
// pushed out so the next sweep does not hammer a broken broker.
func (repo *repositoryImpl) MarkFailed(ctx context.Context, event model.Event, publishErr error, maxAttempts int) error {
	attempts := event.Attempts + 1
	status := model.StatusPending

	if attempts >= maxAttempts {
		status = model.StatusFailed
	}

	fields := map[string]any{
		"attempts":               attempts,
		"last_error":             publishErr.Error(),
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if status == model.StatusPending {
		fields[model.FieldPublishAfter] = timezone.Now().Add(Backoff(attempts))
	}

	return repo.Update(ctx, fields, shared.FilterByID(event.ID, model.FieldID, model.TableName))
}

// Backoff returns the republish delay after the given failed attempt
// (1-based): min(30s * 2^(attempt-1), 15m).
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	wait := retryBackoffBase << (attempt - 1)
	if wait > retryBackoffCap || wait <= 0 {
		wait = retryBackoffCap
	}

	return wait
}
