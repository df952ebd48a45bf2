package booking

import (
	"strings"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

// BuildIntent собирает нормализованный запрос на запись к врачу.
// Сетевых вызовов не делает; patientID обязан прийти из установленной сессии.
func BuildIntent(doctorID, date, timeLabel, patientID string) (domain.BookingIntent, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return domain.BookingIntent{}, invalid(FieldDoctorID, "must not be empty")
	}

	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil || parsed.Format(domain.DateFormat) != date {
		return domain.BookingIntent{}, invalid(FieldDate, "must be YYYY-MM-DD")
	}

	label := types.TimeLabel(timeLabel)
	if err := label.Validate(); err != nil {
		return domain.BookingIntent{}, invalid(FieldTime, "must be HH:MM AM|PM")
	}
	if !domain.IsSlotTimeLabel(label) {
		return domain.BookingIntent{}, invalid(FieldTime, "must be one of the fixed slot times")
	}

	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return domain.BookingIntent{}, invalid(FieldPatientID, "must be present")
	}

	return domain.BookingIntent{
		DoctorID:  doctorID,
		Date:      date,
		Time:      label,
		PatientID: patientID,
	}, nil
}
