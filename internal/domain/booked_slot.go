package domain

import (
	"time"

	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// ReservationStatus status of a slot reservation made through the gateway
type ReservationStatus string

const (
	ReservationHeld     ReservationStatus = "held"
	ReservationBooked   ReservationStatus = "booked"
	ReservationReleased ReservationStatus = "released"
)

// BookedSlot is a reservation of a (doctor, date, time) triple
type BookedSlot struct {
	ID            int64
	DoctorID      string
	SlotDate      time.Time
	SlotTime      types.TimeLabel
	PatientID     string
	AppointmentID *string
	Status        ReservationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive returns true if the reservation still blocks the slot
func (b *BookedSlot) IsActive() bool {
	return b.Status != ReservationReleased
}

// Key returns the slot identity of the reservation
func (b *BookedSlot) Key() SlotKey {
	return SlotKey{Date: b.SlotDate.Format(DateFormat), Time: b.SlotTime}
}
