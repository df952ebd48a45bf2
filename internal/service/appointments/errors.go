package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidStatus возвращается при недопустимом статусе
	ErrInvalidStatus = errors.New("appointments: invalid status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrUnauthenticated бэкенд не принял токен сессии
	ErrUnauthenticated = errors.New("appointments: unauthenticated")

	// ErrForbidden действие недоступно для роли
	ErrForbidden = errors.New("appointments: forbidden")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
