package select_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном наборе слотов или дате
	ErrInvalidInput = errors.New("select_slots: invalid input data")
)
