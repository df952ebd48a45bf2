package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Gateway/internal/booking"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/infra/storage/bookedslots"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Gateway/internal/service/doctors"
)

// Результаты для метрики bookings_submitted_total
const (
	resultCreated  = "created"
	resultRejected = "rejected"
	resultConflict = "conflict"
	resultFailed   = "failed"
)

// UseCase use case для записи пациента к врачу
type UseCase struct {
	doctors     DoctorDirectory
	client      MedicareClient
	bookedSlots BookedSlotsRepository
	txManager   TransactionManager
	metrics     BookingMetrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// bookedSlots, txManager и metrics могут быть nil: без хранилища слот не резервируется.
func NewUseCase(
	doctorDirectory DoctorDirectory,
	client MedicareClient,
	bookedSlots BookedSlotsRepository,
	txManager TransactionManager,
	metrics BookingMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctors:     doctorDirectory,
		client:      client,
		bookedSlots: bookedSlots,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case записи. Повторных попыток не делает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Сессия из контекста
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	// 2. Записываться может только пациент
	patientID, ok := sess.PatientID()
	if !ok {
		uc.logger.Warn("CreateBooking: user=%s with role=%s tried to book", sess.UserID, sess.Role)
		return nil, ErrForbidden
	}

	uc.logger.Info("CreateBooking: patient=%s, doctor=%s, date=%s, time=%s",
		patientID, req.DoctorID, req.Date, req.Time)

	// 3. Собираем намерение записи
	intent, err := booking.BuildIntent(req.DoctorID, req.Date, req.Time, patientID)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	notes, err := normalizeNotes(req.Notes)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем врача
	doctor, err := uc.doctors.Get(ctx, intent.DoctorID)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			uc.logger.Warn("CreateBooking: doctor id=%s not found", intent.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get doctor id=%s: %v", intent.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 5. Резервируем слот в сериализуемой транзакции
	reservation, err := uc.reserve(ctx, intent)
	if err != nil {
		return nil, err
	}

	// 6. Отправляем запись в бэкенд
	created, err := uc.client.CreateAppointment(ctx, sess.AccessToken, medicareapi.CreateAppointmentRequest{
		Doctor:  medicareapi.ID(intent.DoctorID),
		Patient: medicareapi.ID(intent.PatientID),
		Date:    intent.Date,
		Time:    intent.Time.String(),
		Notes:   notes,
	})
	if err != nil {
		uc.release(ctx, reservation)
		return nil, uc.submitError(intent, err)
	}

	// 7. Связываем бронь с записью
	if reservation != nil {
		if err := uc.bookedSlots.AttachAppointment(ctx, reservation.ID, created.ID.String()); err != nil {
			uc.logger.Error("CreateBooking: failed to attach appointment id=%s to reservation id=%d: %v",
				created.ID, reservation.ID, err)
		}
	}

	uc.observe(resultCreated)
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", created.ID)

	appointment := created.ToDomain()
	if appointment.Time == "" {
		appointment.Time = intent.Time
	}
	return &Response{
		ID:         appointment.ID,
		DoctorID:   intent.DoctorID,
		DoctorName: doctor.Name,
		PatientID:  intent.PatientID,
		Date:       intent.Date,
		Time:       appointment.Time,
		Status:     string(appointment.Status),
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
	}, nil
}

func (uc *UseCase) reserve(ctx context.Context, intent domain.BookingIntent) (*domain.BookedSlot, error) {
	if uc.bookedSlots == nil || uc.txManager == nil {
		return nil, nil
	}

	var reservation *domain.BookedSlot
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		reservation, err = uc.bookedSlots.Reserve(txCtx, reservationFor(intent))
		return err
	})
	if err != nil {
		if errors.Is(err, bookedslots.ErrSlotTaken) || bookedslots.IsConflict(err) {
			uc.observe(resultConflict)
			uc.logger.Warn("CreateBooking: slot %s %s of doctor id=%s already taken", intent.Date, intent.Time, intent.DoctorID)
			return nil, ErrSlotNotAvailable
		}
		uc.observe(resultFailed)
		uc.logger.Error("CreateBooking: failed to reserve slot: %v", err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}
	return reservation, nil
}

func (uc *UseCase) release(ctx context.Context, reservation *domain.BookedSlot) {
	if reservation == nil {
		return
	}
	if err := uc.bookedSlots.Release(ctx, reservation.ID); err != nil {
		uc.logger.Error("CreateBooking: failed to release reservation id=%d: %v", reservation.ID, err)
	}
}

func (uc *UseCase) submitError(intent domain.BookingIntent, err error) error {
	switch {
	case errors.Is(err, medicareapi.ErrBadRequest):
		uc.observe(resultRejected)
		uc.logger.Warn("CreateBooking: backend rejected booking for doctor id=%s: %v", intent.DoctorID, err)
		return fmt.Errorf("%w: %v", ErrInvalidBookingRequest, err)
	case errors.Is(err, medicareapi.ErrUnauthorized):
		uc.observe(resultRejected)
		uc.logger.Warn("CreateBooking: backend rejected session token: %v", err)
		return ErrUnauthenticated
	default:
		uc.observe(resultFailed)
		uc.logger.Error("CreateBooking: failed to submit booking: %v", err)
		return fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
	}
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBooking(result)
	}
}
