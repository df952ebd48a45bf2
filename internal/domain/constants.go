package domain

import "github.com/m04kA/MediCare-Gateway/pkg/types"

// Slot window configuration
const (
	// WindowDays количество дней вперёд, на которые генерируются слоты (начиная с завтра)
	WindowDays = 5

	// MaxDisplayDates ограничение на количество дат в выборе
	MaxDisplayDates = 5

	// AvailabilityThreshold слот доступен, если случайное значение строго больше порога (P = 0.7)
	AvailabilityThreshold = 0.3
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Display defaults for doctor cards when the backend omits a value
const (
	DefaultDoctorRating     = 4.5
	DefaultDoctorExperience = 5
	DefaultConsultationFee  = 100.0
	DefaultDoctorBio        = "Experienced medical professional"
)

// SlotTimeLabels фиксированный упорядоченный набор времени приёма
var SlotTimeLabels = []types.TimeLabel{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// IsSlotTimeLabel проверяет, что метка входит в фиксированный набор
func IsSlotTimeLabel(label types.TimeLabel) bool {
	for _, l := range SlotTimeLabels {
		if l == label {
			return true
		}
	}
	return false
}
