package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"furever/config"
	"furever/shared/failure"
	"net"
	"strings"
	"time"

	goMySQL "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	mysqlMaxIdleConnection = 10
	mysqlMaxOpenConnection = 20

	defaultQueryTimeoutSeconds = 15
	defaultQueryMaxAttempts    = 3

	backoffBase = time.Second
	backoffCap  = 5 * time.Second
)

// MySQL server error numbers this layer cares about.
const (
	ErrNumDuplicateEntry  = 1062
	ErrNumNoReferencedRow = 1452
	ErrNumNoSuchTable     = 1146
	ErrNumBadField        = 1054
	ErrNumAccessDenied    = 1045
	ErrNumLockWaitTimeout = 1205
	ErrNumLockDeadlock    = 1213
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB

	queryTimeout time.Duration
	maxAttempts  int
}

func New(config *config.Config) *Connection {
	timeout := config.DB.MySQL.QueryTimeoutSeconds
	if timeout <= 0 {
		timeout = defaultQueryTimeoutSeconds
	}

	attempts := config.DB.MySQL.QueryMaxAttempts
	if attempts <= 0 {
		attempts = defaultQueryMaxAttempts
	}

	return &Connection{
		Read:         CreateMySQLReadConn(*config),
		Write:        CreateMySQLWriteConn(*config),
		queryTimeout: time.Duration(timeout) * time.Second,
		maxAttempts:  attempts,
	}
}

// CreateMySQLWriteConn creates a database connection for write access.
func CreateMySQLWriteConn(config config.Config) *sqlx.DB {
	return CreateMySQLConnection(
		"write",
		config.DB.MySQL.Write.Username,
		config.DB.MySQL.Write.Password,
		config.DB.MySQL.Write.Host,
		config.DB.MySQL.Write.Port,
		config.DB.MySQL.Write.Name,
		config.DB.MySQL.MaxRetry,
		config.DB.MySQL.RetryWaitTime,
	)
}

// CreateMySQLReadConn creates a database connection for read access.
func CreateMySQLReadConn(config config.Config) *sqlx.DB {
	return CreateMySQLConnection(
		"read",
		config.DB.MySQL.Read.Username,
		config.DB.MySQL.Read.Password,
		config.DB.MySQL.Read.Host,
		config.DB.MySQL.Read.Port,
		config.DB.MySQL.Read.Name,
		config.DB.MySQL.MaxRetry,
		config.DB.MySQL.RetryWaitTime,
	)
}

// CreateMySQLConnection creates a database connection.
func CreateMySQLConnection(name, username, password, host, port, dbName string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("mysql", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(mysqlMaxIdleConnection)
			sqlDB.SetMaxOpenConns(mysqlMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// WithTimeout derives the per-query context used by every repository call.
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.queryTimeout)
}

// Backoff returns the wait before the given retry attempt (1-based):
// min(1s * 2^(attempt-1), 5s).
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	wait := backoffBase << (attempt - 1)
	if wait > backoffCap {
		wait = backoffCap
	}

	return wait
}

// IsTransient reports whether an error is worth retrying: lock wait timeouts,
// deadlocks, dropped connections and timeout-flavored network errors.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *goMySQL.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == ErrNumLockWaitTimeout || mysqlErr.Number == ErrNumLockDeadlock
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, goMySQL.ErrInvalidConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "timeout")
}

// IsConnectivity reports whether an error means the database itself is
// unreachable, as opposed to a statement-level failure.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *goMySQL.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == ErrNumAccessDenied
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, goMySQL.ErrInvalidConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection lost")
}

// Classify maps driver errors onto the failure taxonomy surfaced to callers.
// Unrecognized errors pass through untouched so upper layers can wrap them.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *goMySQL.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case ErrNumDuplicateEntry:
			return failure.Conflict("duplicate record")
		case ErrNumNoReferencedRow:
			return failure.BadRequestFromString("referenced record does not exist")
		case ErrNumNoSuchTable, ErrNumBadField:
			return failure.InternalError(fmt.Errorf("schema out of date: %s", mysqlErr.Message))
		case ErrNumAccessDenied:
			return failure.InternalError(errors.New("database access denied"))
		}
	}

	if IsConnectivity(err) {
		return failure.InternalError(errors.New("database connection unavailable"))
	}

	return err
}

// Retry runs fn up to the configured number of attempts, backing off between
// attempts, but only for transient errors; anything else propagates at once.
func (c *Connection) Retry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		attemptCtx, cancel := c.WithTimeout(ctx)
		err = fn(attemptCtx)

		cancel()

		if err == nil || !IsTransient(err) {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		wait := Backoff(attempt)

		log.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return err
}

// Txer is the transaction boundary consumed by services.
type Txer interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// WithTransaction runs fn inside a single transaction on the write connection.
// Rollback always runs when fn fails, and a rollback failure is logged rather
// than returned so the original error is never masked.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", Classify(err))
	}

	defer func() {
		if rec := recover(); rec != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback after panic")
			}

			panic(rec)
		}
	}()

	if err = fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", Classify(err))
	}

	return nil
}
