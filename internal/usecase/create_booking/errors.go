package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRuleViolation возвращается, когда бронирование нарушает правила
	// bespoke-рассылок. Текст нарушения добавляется к ошибке.
	ErrRuleViolation = errors.New("create_booking: booking rule violated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
