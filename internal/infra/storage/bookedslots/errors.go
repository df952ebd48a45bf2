package bookedslots

import "errors"

var (
	// ErrSlotTaken возвращается, когда на (врач, дата, время) уже есть активная бронь
	ErrSlotTaken = errors.New("bookedslots.repository: slot already taken")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("bookedslots.repository: reservation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookedslots.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookedslots.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookedslots.repository: failed to scan row")
)
