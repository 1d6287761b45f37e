package inventory

import "errors"

var (
	// ErrChannelNotFound возвращается, когда канал не найден
	ErrChannelNotFound = errors.New("channel not found")

	// ErrChannelExists возвращается при попытке создать канал с занятым ID
	ErrChannelExists = errors.New("channel already exists")

	// ErrChannelInUse возвращается при попытке удалить канал, на который
	// ссылаются бронирования
	ErrChannelInUse = errors.New("channel is referenced by bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
