package doctors

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctors: doctor not found")

	// ErrUnavailable бэкенд недоступен и демо-данные выключены
	ErrUnavailable = errors.New("doctors: directory unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("doctors: internal error")
)
