package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// Service сервис для работы с записями на приём
type Service struct {
	client   MedicareClient
	releaser ReservationReleaser
	logger   Logger
}

// NewService создает новый экземпляр сервиса; releaser может быть nil
func NewService(client MedicareClient, releaser ReservationReleaser, logger Logger) *Service {
	return &Service{
		client:   client,
		releaser: releaser,
		logger:   logger,
	}
}

// List возвращает записи, видимые сессии: пациенту только свои
func (s *Service) List(ctx context.Context, sess *domain.Session) ([]domain.Appointment, error) {
	if sess.Role == domain.RolePatient {
		return s.ListForPatient(ctx, sess)
	}
	return s.listFiltered(ctx, sess, "")
}

// ListForPatient возвращает записи пациента сессии
func (s *Service) ListForPatient(ctx context.Context, sess *domain.Session) ([]domain.Appointment, error) {
	patientID, ok := sess.PatientID()
	if !ok {
		return nil, ErrForbidden
	}
	return s.listFiltered(ctx, sess, patientID)
}

func (s *Service) listFiltered(ctx context.Context, sess *domain.Session, patientID string) ([]domain.Appointment, error) {
	items, err := s.client.ListAppointments(ctx, sess.AccessToken)
	if err != nil {
		s.logger.Error("List: failed to list appointments for user=%s: %v", sess.UserID, err)
		return nil, translate(err)
	}

	result := make([]domain.Appointment, 0, len(items))
	for i := range items {
		a := items[i].ToDomain()
		// бэкенд отдаёт все записи, фильтруем на стороне шлюза
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		result = append(result, a)
	}

	s.logger.Info("List: %d appointments for user=%s role=%s", len(result), sess.UserID, sess.Role)
	return result, nil
}

// UpdateStatus меняет статус записи. Пациент может только отменить запись.
func (s *Service) UpdateStatus(ctx context.Context, sess *domain.Session, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if sess.Role == domain.RolePatient && status != domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: patient=%s tried to set status %s on appointment id=%s", sess.UserID, status, id)
		return nil, ErrForbidden
	}

	updated, err := s.client.UpdateAppointmentStatus(ctx, sess.AccessToken, id, string(status))
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%s: %v", id, err)
		return nil, translate(err)
	}

	result := updated.ToDomain()

	// Освобождаем слот, если бэкенд подтвердил отмену
	if result.IsCancelled() && s.releaser != nil {
		if err := s.releaser.ReleaseByAppointment(ctx, id); err != nil {
			s.logger.Error("UpdateStatus: failed to release slot for appointment id=%s: %v", id, err)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, result.Status)
	return &result, nil
}

// Cancel отменяет запись
func (s *Service) Cancel(ctx context.Context, sess *domain.Session, id string) (*domain.Appointment, error) {
	return s.UpdateStatus(ctx, sess, id, domain.StatusCancelled)
}

func translate(err error) error {
	switch {
	case errors.Is(err, medicareapi.ErrNotFound):
		return ErrAppointmentNotFound
	case errors.Is(err, medicareapi.ErrUnauthorized):
		return ErrUnauthenticated
	case errors.Is(err, medicareapi.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
