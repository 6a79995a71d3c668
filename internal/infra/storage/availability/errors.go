package availability

import "errors"

var (
	// ErrDayNotFound возвращается, когда день недели не найден
	// (таблица всегда содержит семь строк, поэтому это признак поломанных данных)
	ErrDayNotFound = errors.New("availability.repository: day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
