package slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном наборе слотов
	ErrInvalidInput = errors.New("slots: invalid input")
)
