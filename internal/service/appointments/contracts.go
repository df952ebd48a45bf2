package appointments

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// MedicareClient интерфейс клиента бэкенда MediCare
type MedicareClient interface {
	ListAppointments(ctx context.Context, accessToken string) ([]medicareapi.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, accessToken, id, status string) (*medicareapi.Appointment, error)
}

// ReservationReleaser освобождает бронь слота при отмене (опционально)
type ReservationReleaser interface {
	ReleaseByAppointment(ctx context.Context, appointmentID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
