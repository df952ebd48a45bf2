package list_doctors

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/doctors"
	"github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
)

// UseCase use case для списка карточек врачей
type UseCase struct {
	doctors DoctorDirectory
	slots   SlotViewer
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(doctorDirectory DoctorDirectory, slotViewer SlotViewer, logger Logger) *UseCase {
	return &UseCase{
		doctors: doctorDirectory,
		slots:   slotViewer,
		logger:  logger,
	}
}

// Execute строит карточку для каждого врача справочника
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Получаем справочник
	list, err := uc.doctors.List(ctx)
	if err != nil {
		if errors.Is(err, doctors.ErrUnavailable) {
			return nil, ErrUnavailable
		}
		uc.logger.Error("ListDoctors: failed to list doctors: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Для каждого врача генерируем окно слотов и выбираем первую доступную дату
	cards := make([]Card, 0, len(list))
	for _, d := range list {
		card := Card{
			Doctor:   d,
			Initials: d.Initials(),
			Dates:    []string{},
			Slots:    []domain.TimeSlot{},
			AllSlots: []domain.TimeSlot{},
			NoSlots:  true,
		}

		doctor := d
		view, err := uc.slots.Execute(ctx, &get_available_slots.Request{DoctorID: d.ID, Doctor: &doctor})
		if err != nil {
			// карточка без слотов лучше пустой страницы
			uc.logger.Warn("ListDoctors: no slots for doctor id=%s: %v", d.ID, err)
			cards = append(cards, card)
			continue
		}

		card.AvailableCount = view.AvailableCount
		card.Dates = view.Dates
		card.SelectedDate = view.SelectedDate
		card.Slots = view.Slots
		card.AllSlots = view.AllSlots
		card.NoSlots = view.NoSlots
		cards = append(cards, card)
	}

	uc.logger.Info("ListDoctors: built %d cards", len(cards))
	return &Response{Cards: cards}, nil
}
