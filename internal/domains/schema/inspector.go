package schema

//go:generate go run go.uber.org/mock/mockgen -source=./inspector.go -destination=./mocks/inspector_mock.go -package=mocks

import (
	"context"
	"fmt"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/shared/constant"
	"furever/shared/logger"

	"github.com/rs/zerolog/log"
)

// requiredColumns is the compile-time-known schema the write paths depend on.
// VerifyRequired checks it once at startup so a drifted database fails fast
// instead of failing per request.
var requiredColumns = map[string][]string{
	"users":                   {"id", "email", "password", "level", "active"},
	"service_providers":       {"id", "user_id", "name", "active"},
	"pets":                    {"id", "user_id", "name", "species"},
	"service_packages":        {"id", "provider_id", "name", "price", "active"},
	"bookings":                {"id", "user_id", "provider_id", "package_id", "pet_id", "booking_date", "booking_time", "status", "payment_method", "payment_status", "price", "delivery_option"},
	"booking_addons":          {"id", "booking_id", "name", "price"},
	"payment_transactions":    {"id", "booking_id", "provider_ref", "amount", "status"},
	"payment_receipts":        {"id", "booking_id", "path", "status"},
	"refunds":                 {"id", "booking_id", "amount", "status", "transaction_id"},
	"availability_time_slots": {"id", "provider_id", "slot_date", "start_time", "end_time"},
	"provider_availability":   {"id", "provider_id", "available_date", "is_available"},
	"notification_outbox":     {"id", "topic", "event_key", "payload", "status", "attempts", "publish_after"},
}

type Inspector interface {
	TableExists(ctx context.Context, table string) (bool, error)
	ColumnExists(ctx context.Context, table, column string) (bool, error)
	VerifyRequired(ctx context.Context) error
}

type inspectorImpl struct {
	db   *mysql.Connection
	otel otel.Otel
}

func New(db *mysql.Connection, otel otel.Otel) Inspector {
	return &inspectorImpl{
		db:   db,
		otel: otel,
	}
}

func (i *inspectorImpl) TableExists(ctx context.Context, table string) (exists bool, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schema.TableExists")
	defer scope.End()

	query := `SELECT EXISTS(
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?
	)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = i.db.Retry(ctx, "schema.table_exists", func(ctx context.Context) error {
		return i.db.Read.GetContext(ctx, &exists, query, table)
	})

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check table %q: %w", table, mysql.Classify(err))
	}

	return exists, nil
}

func (i *inspectorImpl) ColumnExists(ctx context.Context, table, column string) (exists bool, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schema.ColumnExists")
	defer scope.End()

	query := `SELECT EXISTS(
		SELECT 1 FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?
	)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = i.db.Retry(ctx, "schema.column_exists", func(ctx context.Context) error {
		return i.db.Read.GetContext(ctx, &exists, query, table, column)
	})

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check column %s.%s: %w", table, column, mysql.Classify(err))
	}

	return exists, nil
}

// VerifyRequired walks the required table/column set and errors on the first
// missing piece.
func (i *inspectorImpl) VerifyRequired(ctx context.Context) error {
	for table, columns := range requiredColumns {
		tableOK, err := i.TableExists(ctx, table)
		if err != nil {
			return err
		}

		if !tableOK {
			return fmt.Errorf("required table %q is missing, run migrations", table)
		}

		for _, column := range columns {
			columnOK, err := i.ColumnExists(ctx, table, column)
			if err != nil {
				return err
			}

			if !columnOK {
				return fmt.Errorf("required column %s.%s is missing, run migrations", table, column)
			}
		}
	}

	log.Info().Int("tables", len(requiredColumns)).Msg("database schema verified")

	return nil
}
