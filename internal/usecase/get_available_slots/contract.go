package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// DoctorDirectory интерфейс справочника врачей
type DoctorDirectory interface {
	Get(ctx context.Context, id string) (*domain.Doctor, error)
}

// BookedSlotsRepository интерфейс хранилища броней (опционально)
type BookedSlotsRepository interface {
	ListActiveByDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]*domain.BookedSlot, error)
}

// RandomSource источник значений в [0, 1)
type RandomSource interface {
	Float64() float64
}

// SlotsMetrics интерфейс метрик генерации
type SlotsMetrics interface {
	AddSlotsGenerated(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе клиники
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
