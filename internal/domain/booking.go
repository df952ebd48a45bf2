package domain

import (
	"time"

	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// AppointmentStatus represents the status of an appointment in the backend
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses список допустимых статусов
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid returns true if the status is one the backend accepts
func (s AppointmentStatus) IsValid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// BookingIntent is a validated, not yet submitted appointment request
type BookingIntent struct {
	DoctorID  string
	Date      string
	Time      types.TimeLabel
	PatientID string
}

// Appointment represents an appointment stored by the backend
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Date      string
	Time      types.TimeLabel
	Status    AppointmentStatus
	Notes     *string
	CreatedAt *time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
