package handlers

import (
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// TimeSlot JSON-представление слота
type TimeSlot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Doctor JSON-представление врача
type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email,omitempty"`
	Specialization  string  `json:"specialization"`
	Experience      int     `json:"experience"`
	Rating          float64 `json:"rating"`
	ConsultationFee float64 `json:"consultation_fee"`
	Bio             string  `json:"bio"`
}

// Appointment JSON-представление записи на приём
type Appointment struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patientId"`
	DoctorID  string  `json:"doctorId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

// Session JSON-представление сессии без токенов бэкенда
type Session struct {
	SessionID string `json:"sessionId"`
	ExpiresAt string `json:"expiresAt"`
	User      User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

func FromDomainSession(s *domain.Session) Session {
	return Session{
		SessionID: s.ID,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		User: User{
			ID:    s.UserID,
			Name:  s.Name,
			Email: s.Email,
			Role:  string(s.Role),
		},
	}
}

func FromDomainSlots(slots []domain.TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlot{Date: s.Date, Time: s.Time.String(), Available: s.Available})
	}
	return out
}

// ToDomainSlots конвертирует слоты из тела запроса; формат проверяет селектор
func ToDomainSlots(slots []TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.TimeSlot{Date: s.Date, Time: types.TimeLabel(s.Time), Available: s.Available})
	}
	return out
}

func FromDomainDoctor(d domain.Doctor) Doctor {
	return Doctor{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Specialization:  d.Specialization,
		Experience:      d.Experience,
		Rating:          d.Rating,
		ConsultationFee: d.ConsultationFee,
		Bio:             d.Bio,
	}
}

func FromDomainAppointment(a domain.Appointment) Appointment {
	out := Appointment{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Time:      a.Time.String(),
		Status:    string(a.Status),
		Notes:     a.Notes,
	}
	if a.CreatedAt != nil {
		created := a.CreatedAt.Format(time.RFC3339)
		out.CreatedAt = &created
	}
	return out
}

// NonNilStrings пустой список вместо null в JSON
func NonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
