package auth

import "errors"

var (
	// ErrInvalidInput возвращается при пустых логине или пароле
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInvalidCredentials бэкенд отклонил логин
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnsupportedRole роль пользователя не patient, doctor или admin
	ErrUnsupportedRole = errors.New("auth: unsupported role")

	// ErrUnauthenticated сессия отсутствует или истекла
	ErrUnauthenticated = errors.New("auth: unauthenticated")

	// ErrUnavailable бэкенд недоступен
	ErrUnavailable = errors.New("auth: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
