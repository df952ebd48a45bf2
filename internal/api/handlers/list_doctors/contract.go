package list_doctors

import (
	"context"

	listDoctors "github.com/m04kA/MediCare-Gateway/internal/usecase/list_doctors"
)

type ListDoctorsUseCase interface {
	Execute(ctx context.Context) (*listDoctors.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
