package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/infra/session"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
)

// Service сервис аутентификации: логин через бэкенд и сессии шлюза
type Service struct {
	client       MedicareClient
	store        SessionStore
	ttl          time.Duration
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса; ttl используется, если в токене нет exp
func NewService(client MedicareClient, store SessionStore, ttl time.Duration, logger Logger) *Service {
	return &Service{
		client:       client,
		store:        store,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Login аутентифицирует пользователя в бэкенде и создаёт сессию
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)

	// 1. Валидация входных данных
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	// 2. Получаем токены
	tokens, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login: backend rejected login for %s: %v", username, err)
		return nil, translate(err)
	}

	// 3. Получаем профиль
	user, err := s.client.GetProfile(ctx, tokens.Access)
	if err != nil {
		s.logger.Error("Login: failed to get profile for %s: %v", username, err)
		return nil, translate(err)
	}

	role := domain.Role(user.Role)
	switch role {
	case domain.RolePatient, domain.RoleDoctor, domain.RoleAdmin:
	default:
		s.logger.Warn("Login: user id=%s has unsupported role %q", user.ID, user.Role)
		return nil, ErrUnsupportedRole
	}

	// 4. Срок жизни сессии
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	if exp, ok := tokenExpiry(tokens.Access); ok && exp.After(now) {
		expiresAt = exp
	}

	sess := &domain.Session{
		ID:           s.newID(),
		UserID:       user.ID.String(),
		Role:         role,
		Name:         user.FullName(),
		Email:        user.Email,
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	}

	// 5. Сохраняем
	if err := s.store.Save(ctx, sess, expiresAt.Sub(now)); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s role=%s logged in, session expires at %s",
		sess.UserID, sess.Role, sess.ExpiresAt.Format(time.RFC3339))
	return sess, nil
}

// Current возвращает текущую сессию по id
func (s *Service) Current(ctx context.Context, id string) (*domain.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrUnauthenticated
	}

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		s.logger.Error("Current: failed to get session: %v", err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if sess.IsExpired(s.timeProvider.Now()) {
		_ = s.store.Delete(ctx, id)
		return nil, ErrUnauthenticated
	}

	return sess, nil
}

// Logout удаляет сессию
func (s *Service) Logout(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, medicareapi.ErrUnauthorized), errors.Is(err, medicareapi.ErrBadRequest):
		return ErrInvalidCredentials
	case medicareapi.IsUnavailable(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
