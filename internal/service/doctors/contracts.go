package doctors

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// MedicareClient интерфейс клиента бэкенда MediCare
type MedicareClient interface {
	ListDoctors(ctx context.Context) ([]medicareapi.User, error)
	GetUser(ctx context.Context, id string) (*medicareapi.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
