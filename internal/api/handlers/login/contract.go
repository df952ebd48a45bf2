package login

import (
	"context"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
