package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/internal/domains/payment/model"
	gDto "furever/shared/dto"
	gRepo "furever/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	InsertTransactionID(ctx context.Context, txn model.Transaction) (int64, error)
	InsertTransactionTxID(ctx context.Context, tx *sqlx.Tx, txn model.Transaction) (int64, error)
	GetLatestTransaction(ctx context.Context, bookingID int64, status string) (model.Transaction, error)
	UpdateTransactionTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	InsertReceiptID(ctx context.Context, receipt model.Receipt) (int64, error)
	InsertReceiptTxID(ctx context.Context, tx *sqlx.Tx, receipt model.Receipt) (int64, error)
	GetReceipt(ctx context.Context, filter gDto.FilterGroup) (model.Receipt, error)
	UpdateReceiptTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	transactions gRepo.Repository[model.Transaction]
	receipts     gRepo.Repository[model.Receipt]
	db           *mysql.Connection
	otel         otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		transactions: gRepo.NewRepository[model.Transaction](model.TransactionEntityName, model.TransactionTableName, model.FieldID, db, otel),
		receipts:     gRepo.NewRepository[model.Receipt](model.ReceiptEntityName, model.ReceiptTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func (repo *repositoryImpl) InsertTransactionID(ctx context.Context, txn model.Transaction) (int64, error) {
	return repo.transactions.InsertID(ctx, txn)
}

func (repo *repositoryImpl) InsertTransactionTxID(ctx context.Context, tx *sqlx.Tx, txn model.Transaction) (int64, error) {
	return repo.transactions.InsertTxID(ctx, tx, txn)
}

// GetLatestTransaction returns the newest transaction on a booking in the
// given status, or the zero value when there is none.
func (repo *repositoryImpl) GetLatestTransaction(ctx context.Context, bookingID int64, status string) (model.Transaction, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TransactionTableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TransactionTableName,
			},
		},
	}

	params := gDto.QueryParams{Limit: 1, SortBy: model.FieldID, SortDir: gDto.SortDirDesc}

	txns, err := repo.transactions.GetAll(ctx, params, filter)
	if err != nil {
		return model.Transaction{}, err
	}

	if len(txns) == 0 {
		return model.Transaction{}, nil
	}

	return txns[0], nil
}

func (repo *repositoryImpl) UpdateTransactionTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
	return repo.transactions.UpdateTx(ctx, tx, fields, filter)
}

func (repo *repositoryImpl) InsertReceiptID(ctx context.Context, receipt model.Receipt) (int64, error) {
	return repo.receipts.InsertID(ctx, receipt)
}

func (repo *repositoryImpl) InsertReceiptTxID(ctx context.Context, tx *sqlx.Tx, receipt model.Receipt) (int64, error) {
	return repo.receipts.InsertTxID(ctx, tx, receipt)
}

func (repo *repositoryImpl) GetReceipt(ctx context.Context, filter gDto.FilterGroup) (model.Receipt, error) {
	return repo.receipts.Get(ctx, filter)
}

func (repo *repositoryImpl) UpdateReceiptTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
	return repo.receipts.UpdateTx(ctx, tx, fields, filter)
}
