package update_appointment_status

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, sess *domain.Session, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
