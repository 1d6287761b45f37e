// Package txmanager выполняет функции в сериализуемых транзакциях с повтором
// при serialization failure. Транзакция прокидывается в репозитории через context.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/premiermedia/AdBookingService/pkg/dbmetrics"
)

// serializationFailure код ошибки PostgreSQL 40001
const serializationFailure = "40001"

// maxRetries количество попыток при конфликте сериализации
const maxRetries = 3

// ErrTxFailed возвращается, когда транзакция не удалась после всех повторов
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TxBeginner источник транзакций (обычно *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер сериализуемых транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// При serialization failure транзакция повторяется до maxRetries раз.
// Бизнес-ошибки из fn не повторяются и возвращаются как есть.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: serialization conflict after %d attempts: %v", ErrTxFailed, maxRetries, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	if err := fn(dbmetrics.WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTxFailed, err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure
	}
	return false
}
