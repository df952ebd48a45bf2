package medicareapi

import "errors"

var (
	// ErrUnauthorized возвращается при 401/403 от бэкенда
	ErrUnauthorized = errors.New("medicareapi: unauthorized")

	// ErrNotFound возвращается при 404
	ErrNotFound = errors.New("medicareapi: not found")

	// ErrBadRequest возвращается при 400, текст содержит detail бэкенда
	ErrBadRequest = errors.New("medicareapi: bad request")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("medicareapi: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента и недоступности бэкенда
	ErrInternal = errors.New("medicareapi: internal error")
)

// IsUnavailable returns true if err means the backend could not serve the request at all
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrInternal) || errors.Is(err, ErrInvalidResponse)
}
