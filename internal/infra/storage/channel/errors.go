package channel

import "errors"

var (
	// ErrChannelNotFound возвращается, когда канал не найден
	ErrChannelNotFound = errors.New("channel.repository: channel not found")

	// ErrChannelExists возвращается при создании канала с занятым id
	ErrChannelExists = errors.New("channel.repository: channel already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("channel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("channel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("channel.repository: failed to scan row")

	// ErrDataIntegrity возвращается при некорректных данных в хранилище
	ErrDataIntegrity = errors.New("channel.repository: data integrity fault")
)
