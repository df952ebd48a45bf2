package booking

import (
	"errors"
	"fmt"
)

// ErrInvalidBookingRequest возвращается, когда запрос на запись не прошёл валидацию
var ErrInvalidBookingRequest = errors.New("booking: invalid booking request")

// Поля запроса на запись
const (
	FieldDoctorID  = "doctorId"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldPatientID = "patientId"
)

// InvalidBookingRequestError указывает, какое поле не прошло валидацию
type InvalidBookingRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidBookingRequestError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidBookingRequest.Error(), e.Field, e.Reason)
}

// Is позволяет сравнивать через errors.Is(err, ErrInvalidBookingRequest)
func (e *InvalidBookingRequestError) Is(target error) bool {
	return target == ErrInvalidBookingRequest
}

func invalid(field, reason string) error {
	return &InvalidBookingRequestError{Field: field, Reason: reason}
}
