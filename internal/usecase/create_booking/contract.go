package create_booking

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// DoctorDirectory интерфейс справочника врачей
type DoctorDirectory interface {
	Get(ctx context.Context, id string) (*domain.Doctor, error)
}

// MedicareClient интерфейс клиента бэкенда MediCare
type MedicareClient interface {
	CreateAppointment(ctx context.Context, accessToken string, req medicareapi.CreateAppointmentRequest) (*medicareapi.Appointment, error)
}

// BookedSlotsRepository интерфейс хранилища броней (опционально)
type BookedSlotsRepository interface {
	Reserve(ctx context.Context, slot *domain.BookedSlot) (*domain.BookedSlot, error)
	AttachAppointment(ctx context.Context, id int64, appointmentID string) error
	Release(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingMetrics интерфейс метрик записей
type BookingMetrics interface {
	IncBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
