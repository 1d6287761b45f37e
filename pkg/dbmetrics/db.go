package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/premiermedia/AdBookingService/pkg/metrics"
)

// DB обёртка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
	service   string
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, collector *metrics.Metrics, service string) *DB {
	return &DB{db: db, collector: collector, service: service}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор статистики
// connection pool. Сбор останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, service)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.DBOpenConns.WithLabelValues("open").Set(float64(stats.OpenConnections))
				collector.DBOpenConns.WithLabelValues("in_use").Set(float64(stats.InUse))
				collector.DBIdleConns.WithLabelValues("idle").Set(float64(stats.Idle))
			}
		}
	}()

	return wrapped
}

// operationFromQuery возвращает первый глагол SQL-запроса для лейбла метрики
func operationFromQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) observe(query string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.collector.ObserveDBQuery(operationFromQuery(query), status, time.Since(start))
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// ExecContext выполняет запрос без результата с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// BeginTx начинает транзакцию; запросы внутри неё также попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, db: d}, nil
}

// metricTx транзакция, проксирующая запросы через сборщик метрик
type metricTx struct {
	tx *sql.Tx
	db *DB
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, nil)
	return row
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return res, err
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }
