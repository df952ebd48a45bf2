package domain

import "time"

// Role of an authenticated user
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Session is the authenticated identity for one browser context
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// PatientID returns the user id when the session belongs to a patient
func (s *Session) PatientID() (string, bool) {
	if s == nil || s.Role != RolePatient || s.UserID == "" {
		return "", false
	}
	return s.UserID, true
}

// HasRole returns true if the session role is one of roles (any role when empty)
func (s *Session) HasRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// IsExpired returns true if the session expiry is at or before now
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
