package list_doctors

import "errors"

var (
	// ErrUnavailable справочник врачей недоступен
	ErrUnavailable = errors.New("list_doctors: doctors unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_doctors: internal error")
)
