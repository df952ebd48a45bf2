package select_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/slots"
)

// UseCase use case выбора даты по переданному набору слотов
type UseCase struct {
	logger Logger
}

func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет use case выбора слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	// 1. Доступные даты
	dates, err := slots.AvailableDates(req.Slots)
	if err != nil {
		uc.logger.Warn("SelectSlots: invalid slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Выбранная дата: запрошенная или первая доступная
	selected := strings.TrimSpace(req.Date)
	if selected == "" && len(dates) > 0 {
		selected = dates[0]
	}

	resp := &Response{
		Dates:        dates,
		SelectedDate: selected,
		Slots:        []domain.TimeSlot{},
		NoSlots:      true,
	}
	if selected == "" {
		return resp, nil
	}

	// 3. Слоты выбранной даты
	daySlots, err := slots.SlotsForDate(req.Slots, selected)
	if err != nil {
		uc.logger.Warn("SelectSlots: invalid date %q: %v", selected, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp.Slots = daySlots
	resp.NoSlots = len(daySlots) == 0
	return resp, nil
}
