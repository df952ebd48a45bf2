package select_slots

import (
	"context"

	selectSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/select_slots"
)

type SelectSlotsUseCase interface {
	Execute(ctx context.Context, req *selectSlots.Request) (*selectSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
