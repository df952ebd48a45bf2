package doctors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

const listKey = "all"

// Service справочник врачей поверх бэкенда с кэшем
type Service struct {
	client       MedicareClient
	list         *expirable.LRU[string, []domain.Doctor]
	byID         *expirable.LRU[string, domain.Doctor]
	demoFallback bool
	logger       Logger
}

// NewService ttl <= 0 отключает кэш
func NewService(client MedicareClient, cacheSize int, ttl time.Duration, demoFallback bool, logger Logger) *Service {
	s := &Service{
		client:       client,
		demoFallback: demoFallback,
		logger:       logger,
	}
	if ttl > 0 {
		s.list = expirable.NewLRU[string, []domain.Doctor](1, nil, ttl)
		s.byID = expirable.NewLRU[string, domain.Doctor](cacheSize, nil, ttl)
	}
	return s
}

// List возвращает врачей с подставленными значениями по умолчанию
func (s *Service) List(ctx context.Context) ([]domain.Doctor, error) {
	if s.list != nil {
		if cached, ok := s.list.Get(listKey); ok {
			return cloneDoctors(cached), nil
		}
	}

	users, err := s.client.ListDoctors(ctx)
	if err != nil {
		if medicareapi.IsUnavailable(err) && s.demoFallback {
			s.logger.Warn("List: backend unavailable, serving demo doctors: %v", err)
			return demoDirectory(), nil
		}
		if medicareapi.IsUnavailable(err) {
			s.logger.Error("List: backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.logger.Error("List: failed to list doctors: %v", err)
		return nil, fmt.Errorf("%w: failed to list doctors: %v", ErrInternal, err)
	}

	doctors := make([]domain.Doctor, 0, len(users))
	for i := range users {
		doctors = append(doctors, users[i].ToDoctor().WithDefaults())
	}

	if s.list != nil {
		s.list.Add(listKey, cloneDoctors(doctors))
		for _, d := range doctors {
			s.byID.Add(d.ID, d)
		}
	}

	s.logger.Info("List: fetched %d doctors", len(doctors))
	return doctors, nil
}

// Get возвращает врача по id: сначала из справочника, затем напрямую из /users/{id}/
func (s *Service) Get(ctx context.Context, id string) (*domain.Doctor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrDoctorNotFound
	}

	if s.byID != nil {
		if d, ok := s.byID.Get(id); ok {
			return &d, nil
		}
	}

	doctors, err := s.List(ctx)
	if err != nil && !errors.Is(err, ErrUnavailable) {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}

	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, medicareapi.ErrNotFound) {
			s.logger.Warn("Get: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		if medicareapi.IsUnavailable(err) {
			if s.demoFallback {
				// демо-справочник уже проверен выше
				return nil, ErrDoctorNotFound
			}
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.logger.Error("Get: failed to get user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	if domain.Role(user.Role) != domain.RoleDoctor {
		s.logger.Warn("Get: user id=%s is not a doctor (role=%s)", id, user.Role)
		return nil, ErrDoctorNotFound
	}

	doctor := user.ToDoctor().WithDefaults()
	if s.byID != nil {
		s.byID.Add(doctor.ID, doctor)
	}
	return &doctor, nil
}

func cloneDoctors(in []domain.Doctor) []domain.Doctor {
	out := make([]domain.Doctor, len(in))
	copy(out, in)
	return out
}
