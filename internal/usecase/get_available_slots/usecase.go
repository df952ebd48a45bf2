package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/doctors"
	"github.com/m04kA/MediCare-Gateway/internal/slots"
)

// UseCase use case для получения доступных слотов врача
type UseCase struct {
	doctors      DoctorDirectory
	bookedSlots  BookedSlotsRepository
	rnd          RandomSource
	timeProvider TimeProvider
	metrics      SlotsMetrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// bookedSlots и metrics могут быть nil.
func NewUseCase(
	doctorDirectory DoctorDirectory,
	bookedSlots BookedSlotsRepository,
	rnd RandomSource,
	timeProvider TimeProvider,
	metrics SlotsMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctors:      doctorDirectory,
		bookedSlots:  bookedSlots,
		rnd:          rnd,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем врача
	doctor, err := uc.resolveDoctor(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Генерируем слоты окна
	now := uc.timeProvider.Now()
	generated := slots.Generate(now, uc.rnd)
	if uc.metrics != nil {
		uc.metrics.AddSlotsGenerated(len(generated))
	}

	// 4. Снимаем доступность с уже забронированных слотов
	if uc.bookedSlots != nil {
		window := slots.WindowDates(now)
		booked, err := uc.bookedSlots.ListActiveByDoctor(ctx, doctor.ID, window[0], window[len(window)-1])
		if err != nil {
			// без хранилища броней работаем как до его появления
			uc.logger.Error("GetAvailableSlots: failed to list booked slots for doctor id=%s: %v", doctor.ID, err)
		} else {
			generated = slots.MarkUnavailable(generated, takenKeys(booked))
		}
	}

	// 5. Выбираем даты и слоты
	dates, err := slots.AvailableDates(generated)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	selected := req.Date
	if selected == "" && len(dates) > 0 {
		selected = dates[0]
	}

	daySlots := make([]domain.TimeSlot, 0)
	if selected != "" {
		daySlots, err = slots.SlotsForDate(generated, selected)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	resp := &Response{
		Doctor:         *doctor,
		Dates:          dates,
		SelectedDate:   selected,
		Slots:          daySlots,
		AllSlots:       generated,
		AvailableCount: slots.CountAvailable(generated),
		NoSlots:        len(daySlots) == 0,
	}

	uc.logger.Info("GetAvailableSlots: doctor id=%s, date=%s, %d slots, %d available in window",
		doctor.ID, selected, len(daySlots), resp.AvailableCount)

	return resp, nil
}

func (uc *UseCase) resolveDoctor(ctx context.Context, req *Request) (*domain.Doctor, error) {
	if req.Doctor != nil {
		return req.Doctor, nil
	}

	doctor, err := uc.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}
	return doctor, nil
}
