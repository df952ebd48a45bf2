package medicareapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// ID идентификатор Django: приходит числом или строкой
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON пишет числовые id числом, остальные строкой
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Number число, которое DRF может отдать строкой ("150.00") или null
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("number: %w", err)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*n = Number(f)
	return nil
}

// LoginRequest тело POST /auth/login/ (username может быть email)
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair ответ simplejwt
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// User пользователь бэкенда (пациент, врач или админ)
type User struct {
	ID              ID     `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Specialization  string `json:"specialization"`
	Experience      Number `json:"experience"`
	Rating          Number `json:"rating"`
	ConsultationFee Number `json:"consultation_fee"`
	Bio             string `json:"bio"`
}

// FullName "first last", иначе name или username
func (u *User) FullName() string {
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// ToDoctor конвертирует пользователя-врача в доменную модель (без значений по умолчанию)
func (u *User) ToDoctor() domain.Doctor {
	return domain.Doctor{
		ID:              u.ID.String(),
		Name:            u.FullName(),
		Email:           u.Email,
		Specialization:  u.Specialization,
		Experience:      int(u.Experience),
		Rating:          float64(u.Rating),
		ConsultationFee: float64(u.ConsultationFee),
		Bio:             u.Bio,
	}
}

// Appointment запись о приёме в бэкенде
type Appointment struct {
	ID        ID      `json:"id"`
	Patient   ID      `json:"patient"`
	Doctor    ID      `json:"doctor"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// ToDomain конвертирует запись бэкенда в доменную модель
func (a *Appointment) ToDomain() domain.Appointment {
	out := domain.Appointment{
		ID:        a.ID.String(),
		PatientID: a.Patient.String(),
		DoctorID:  a.Doctor.String(),
		Date:      a.Date,
		Time:      types.TimeLabel(a.Time),
		Status:    domain.AppointmentStatus(a.Status),
		Notes:     a.Notes,
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, a.CreatedAt); err == nil {
			out.CreatedAt = &t
			break
		}
	}
	return out
}

// CreateAppointmentRequest тело POST /appointments/
type CreateAppointmentRequest struct {
	Doctor  ID      `json:"doctor"`
	Patient ID      `json:"patient"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Notes   *string `json:"notes,omitempty"`
}

// UpdateStatusRequest тело POST /appointments/{id}/update_status/
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// pagedResponse обёртка DRF-пагинации
type pagedResponse[T any] struct {
	Results []T `json:"results"`
}
