// Package simpletxmanager вариант менеджера транзакций поверх чистого *sql.DB,
// без обёртки метрик. Используется, когда метрики выключены конфигурацией.
package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/premiermedia/AdBookingService/pkg/dbmetrics"
	"github.com/premiermedia/AdBookingService/pkg/txmanager"
)

type beginner struct {
	db *sql.DB
}

func (b *beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает менеджер сериализуемых транзакций для *sql.DB
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&beginner{db: db})
}
