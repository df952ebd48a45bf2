package list_doctors

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
)

// DoctorDirectory интерфейс справочника врачей
type DoctorDirectory interface {
	List(ctx context.Context) ([]domain.Doctor, error)
}

// SlotViewer интерфейс use case получения слотов
type SlotViewer interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
