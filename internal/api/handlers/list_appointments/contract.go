package list_appointments

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, sess *domain.Session) ([]domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
