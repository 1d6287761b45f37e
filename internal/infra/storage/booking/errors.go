package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrDataIntegrity возвращается при нечитаемом JSON-поле в хранилище
	// (email_dates, target_list_ids, additional_details). Ошибка данных,
	// а не пользователя: роняет только это чтение и громко логируется выше.
	ErrDataIntegrity = errors.New("booking.repository: data integrity fault")
)
