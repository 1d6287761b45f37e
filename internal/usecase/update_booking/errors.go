package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не существует
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrRuleViolation возвращается, когда измененное бронирование нарушает
	// правила bespoke-рассылок. Текст нарушения добавляется к ошибке.
	ErrRuleViolation = errors.New("update_booking: booking rule violated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
