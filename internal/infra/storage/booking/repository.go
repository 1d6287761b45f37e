package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/dbmetrics"
	"github.com/premiermedia/AdBookingService/pkg/psqlbuilder"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"client_name",
	"campaign_name",
	"start_date",
	"end_date",
	"booking_type",
	"department",
	"status",
	"audio_target_id",
	"audio_spots",
	"display_impressions",
	"email_dates",
	"target_channel_id",
	"target_list_ids",
	"additional_details",
	"contract_number",
	"booker_name",
	"geo_target",
	"is_blocked",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - создание
// с проверкой правил выполняется в сериализуемой транзакции, чтобы сузить
// гонку "две валидации прошли до первой записи".
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	emailDates, listIDs, details, err := marshalJSONFields(b)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"client_name",
			"campaign_name",
			"start_date",
			"end_date",
			"booking_type",
			"department",
			"status",
			"audio_target_id",
			"audio_spots",
			"display_impressions",
			"email_dates",
			"target_channel_id",
			"target_list_ids",
			"additional_details",
			"contract_number",
			"booker_name",
			"geo_target",
			"is_blocked",
		).
		Values(
			b.ID,
			b.ClientName,
			b.CampaignName,
			b.StartDate.String(),
			b.EndDate.String(),
			b.BookingType,
			b.Department,
			b.Status,
			b.AudioTargetID,
			b.AudioSpots,
			b.DisplayImpressions,
			emailDates,
			b.TargetChannelID,
			listIDs,
			details,
			b.ContractNumber,
			b.BookerName,
			b.GeoTarget,
			b.IsBlocked,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List получает бронирования с гибкой фильтрацией.
//
// Примеры использования:
//
//  1. Подтвержденные bespoke-рассылки (для валидатора правил):
//     status := domain.StatusConfirmed
//     t := domain.TypeBespokeESend
//     filter := domain.BookingsFilter{Status: &status, Type: &t}
//
//  2. Бронирования, пересекающие окно запроса (для расчета доступности):
//     filter := domain.BookingsFilter{Status: &status, OverlapStart: &start, OverlapEnd: &end}
//
//  3. Ревалидация при редактировании - исключаем само бронирование:
//     filter := domain.BookingsFilter{Status: &status, Type: &t, ExcludeID: &id}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_type": *filter.Type})
	}
	if filter.Department != nil {
		// legacy-строки без департамента считаются SALES
		if *filter.Department == domain.DefaultDepartment {
			selectBuilder = selectBuilder.Where(squirrel.Or{
				squirrel.Eq{"department": *filter.Department},
				squirrel.Eq{"department": nil},
			})
		} else {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"department": *filter.Department})
		}
	}
	// Стандартный интервальный тест пересечения:
	// booking.start <= query.end AND booking.end >= query.start
	if filter.OverlapEnd != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": filter.OverlapEnd.String()})
	}
	if filter.OverlapStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": filter.OverlapStart.String()})
	}
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	// В сериализуемой транзакции создания блокируем прочитанные строки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Update перезаписывает изменяемые поля бронирования.
// Слияние частичных полей выполняет usecase; сюда приходит полная запись.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	emailDates, listIDs, details, err := marshalJSONFields(b)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("client_name", b.ClientName).
		Set("campaign_name", b.CampaignName).
		Set("start_date", b.StartDate.String()).
		Set("end_date", b.EndDate.String()).
		Set("booking_type", b.BookingType).
		Set("department", b.Department).
		Set("status", b.Status).
		Set("audio_target_id", b.AudioTargetID).
		Set("audio_spots", b.AudioSpots).
		Set("display_impressions", b.DisplayImpressions).
		Set("email_dates", emailDates).
		Set("target_channel_id", b.TargetChannelID).
		Set("target_list_ids", listIDs).
		Set("additional_details", details).
		Set("contract_number", b.ContractNumber).
		Set("booker_name", b.BookerName).
		Set("geo_target", b.GeoTarget).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
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
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование. Занятая им емкость освобождается для
// последующих запросов доступности сама собой - usage всегда считается
// по живому набору бронирований, а не по накопительному счетчику.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// CountByChannel возвращает число бронирований, ссылающихся на канал.
// Используется сервисом каталога для запрета удаления занятого канала.
func (r *Repository) CountByChannel(ctx context.Context, channelID string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Or{
			squirrel.Eq{"audio_target_id": channelID},
			squirrel.Eq{"target_channel_id": channelID},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByChannel - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByChannel - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// marshalJSONFields сериализует JSON-поля бронирования для записи
func marshalJSONFields(b *domain.Booking) (emailDates, listIDs, details []byte, err error) {
	if len(b.EmailDates) > 0 {
		emailDates, err = json.Marshal(b.EmailDates)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: marshal email_dates: %v", ErrExecQuery, err)
		}
	}
	if len(b.TargetListIDs) > 0 {
		listIDs, err = json.Marshal(b.TargetListIDs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: marshal target_list_ids: %v", ErrExecQuery, err)
		}
	}
	if len(b.AdditionalDetails) > 0 {
		details, err = json.Marshal(b.AdditionalDetails)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: marshal additional_details: %v", ErrExecQuery, err)
		}
	}
	return emailDates, listIDs, details, nil
}

// scanBooking сканирует строку результата в доменную модель бронирования
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var startDate, endDate time.Time
	var department sql.NullString
	var emailDatesRaw, listIDsRaw, detailsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.ClientName,
		&b.CampaignName,
		&startDate,
		&endDate,
		&b.BookingType,
		&department,
		&b.Status,
		&b.AudioTargetID,
		&b.AudioSpots,
		&b.DisplayImpressions,
		&emailDatesRaw,
		&b.TargetChannelID,
		&listIDsRaw,
		&detailsRaw,
		&b.ContractNumber,
		&b.BookerName,
		&b.GeoTarget,
		&b.IsBlocked,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	b.StartDate = types.NewDateString(startDate)
	b.EndDate = types.NewDateString(endDate)

	// Явное правило обратной совместимости: записи без департамента - SALES
	if department.Valid && department.String != "" {
		b.Department = domain.Department(department.String)
	} else {
		b.Department = domain.DefaultDepartment
	}

	if len(emailDatesRaw) > 0 {
		if err := json.Unmarshal(emailDatesRaw, &b.EmailDates); err != nil {
			return nil, fmt.Errorf("%w: booking %s - malformed email_dates: %v", ErrDataIntegrity, b.ID, err)
		}
	}
	if len(listIDsRaw) > 0 {
		if err := json.Unmarshal(listIDsRaw, &b.TargetListIDs); err != nil {
			return nil, fmt.Errorf("%w: booking %s - malformed target_list_ids: %v", ErrDataIntegrity, b.ID, err)
		}
	}
	if len(detailsRaw) > 0 {
		if err := json.Unmarshal(detailsRaw, &b.AdditionalDetails); err != nil {
			return nil, fmt.Errorf("%w: booking %s - malformed additional_details: %v", ErrDataIntegrity, b.ID, err)
		}
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
