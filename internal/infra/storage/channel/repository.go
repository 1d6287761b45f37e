package channel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/dbmetrics"
	"github.com/premiermedia/AdBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var channelColumns = []string{
	"id",
	"name",
	"type",
	"total_capacity",
	"unit",
	"cadence",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога инвентаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каналов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает каналы каталога, опционально отфильтрованные по типу
func (r *Repository) List(ctx context.Context, typeFilter *domain.ChannelType) ([]*domain.Channel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(channelColumns...).
		From("channels").
		OrderBy("id ASC")

	if typeFilter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *typeFilter})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	channels := make([]*domain.Channel, 0)
	for rows.Next() {
		ch, err := scanChannel(rows.Scan)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return channels, nil
}

// GetByID получает канал по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Channel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(channelColumns...).
		From("channels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	ch, err := scanChannel(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// Create создает новый канал
func (r *Repository) Create(ctx context.Context, ch *domain.Channel) (*domain.Channel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("channels").
		Columns("id", "name", "type", "total_capacity", "unit", "cadence").
		Values(ch.ID, ch.Name, ch.Type, ch.TotalCapacity, ch.Unit, ch.Cadence.String()).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrChannelExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return ch, nil
}

// Update обновляет канал. Изменение емкости действует немедленно для всех
// последующих запросов доступности - емкость нигде не кешируется.
func (r *Repository) Update(ctx context.Context, ch *domain.Channel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("channels").
		Set("name", ch.Name).
		Set("type", ch.Type).
		Set("total_capacity", ch.TotalCapacity).
		Set("unit", ch.Unit).
		Set("cadence", ch.Cadence.String()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ch.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrChannelNotFound
	}

	return nil
}

// Delete удаляет канал. Проверка ссылающихся бронирований выполняется
// сервисным слоем до вызова.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("channels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrChannelNotFound
	}

	return nil
}

// scanChannel сканирует строку результата в доменную модель канала
func scanChannel(scan func(dest ...interface{}) error) (*domain.Channel, error) {
	var ch domain.Channel
	var cadenceRaw string
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&ch.ID,
		&ch.Name,
		&ch.Type,
		&ch.TotalCapacity,
		&ch.Unit,
		&cadenceRaw,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanChannel - scan row: %v", ErrScanRow, err)
	}

	ch.Cadence = domain.ParseCadence(cadenceRaw)
	ch.CreatedAt = createdAt.Time
	ch.UpdatedAt = updatedAt.Time

	return &ch, nil
}
