package create_booking

import (
	"time"

	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// Request модель запроса на запись к врачу
type Request struct {
	DoctorID string
	Date     string // YYYY-MM-DD
	Time     string // "09:00 AM"
	Notes    *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID         string
	DoctorID   string
	DoctorName string
	PatientID  string
	Date       string
	Time       types.TimeLabel
	Status     string
	Notes      *string
	CreatedAt  *time.Time
}
