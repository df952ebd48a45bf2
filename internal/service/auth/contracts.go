package auth

import (
	"context"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// MedicareClient интерфейс клиента бэкенда MediCare
type MedicareClient interface {
	Login(ctx context.Context, username, password string) (*medicareapi.TokenPair, error)
	GetProfile(ctx context.Context, accessToken string) (*medicareapi.User, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
