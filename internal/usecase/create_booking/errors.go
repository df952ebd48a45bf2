package create_booking

import (
	"errors"

	"github.com/m04kA/MediCare-Gateway/internal/booking"
)

var (
	// ErrUnauthenticated возвращается, когда нет сессии или бэкенд отклонил токен
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrForbidden возвращается, когда сессия не принадлежит пациенту
	ErrForbidden = errors.New("create_booking: only patients can book")

	// ErrInvalidBookingRequest запрос не прошёл валидацию (локально или в бэкенде)
	ErrInvalidBookingRequest = booking.ErrInvalidBookingRequest

	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_booking: doctor not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
