package create_booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/MediCare-Gateway/internal/booking"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

const (
	fieldNotes   = "notes"
	maxNotesSize = 1000
)

// normalizeNotes обрезает пробелы, пустые заметки превращает в nil
func normalizeNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxNotesSize {
		return nil, &booking.InvalidBookingRequestError{Field: fieldNotes, Reason: "must be at most 1000 characters"}
	}
	return &trimmed, nil
}

// reservationFor строит бронь слота для намерения записи
func reservationFor(intent domain.BookingIntent) *domain.BookedSlot {
	// дата уже проверена BuildIntent
	date, _ := time.Parse(domain.DateFormat, intent.Date)
	return &domain.BookedSlot{
		DoctorID:  intent.DoctorID,
		SlotDate:  date,
		SlotTime:  intent.Time,
		PatientID: intent.PatientID,
	}
}
