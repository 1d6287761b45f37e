// Package dbmetrics объединяет две инфраструктурные задачи работы с БД:
// прокидывание активной транзакции через context и сбор метрик запросов.
package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс исполнителя запросов.
// Реализуется *sql.DB, *sql.Tx и обёртками этого пакета.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor исполнитель запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTransaction кладет активную транзакцию в context.
// Репозитории достают её через GetExecutor и выполняют запросы в рамках транзакции.
func WithTransaction(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из context, если она есть, иначе fallback.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
