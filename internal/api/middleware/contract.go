package middleware

import (
	"context"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// SessionResolver находит сессию по id из заголовка Authorization
type SessionResolver interface {
	Current(ctx context.Context, id string) (*domain.Session, error)
}

// HTTPObserver принимает метрики завершённых запросов
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, elapsed time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
