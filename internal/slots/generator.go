package slots

import (
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// Generate генерирует кандидатные слоты на WindowDays дней, начиная со дня после reference.
// Порядок: по дням, внутри дня по фиксированному набору меток времени.
// Доступность каждого слота определяется независимым значением из rnd.
func Generate(reference time.Time, rnd RandomSource) []domain.TimeSlot {
	y, m, d := reference.Date()
	loc := reference.Location()

	result := make([]domain.TimeSlot, 0, domain.WindowDays*len(domain.SlotTimeLabels))

	for offset := 1; offset <= domain.WindowDays; offset++ {
		date := time.Date(y, m, d+offset, 0, 0, 0, 0, loc).Format(domain.DateFormat)

		for _, label := range domain.SlotTimeLabels {
			result = append(result, domain.TimeSlot{
				Date:      date,
				Time:      label,
				Available: rnd.Float64() > domain.AvailabilityThreshold,
			})
		}
	}

	return result
}

// WindowDates возвращает даты окна генерации для reference
func WindowDates(reference time.Time) []time.Time {
	y, m, d := reference.Date()
	loc := reference.Location()

	dates := make([]time.Time, 0, domain.WindowDays)
	for offset := 1; offset <= domain.WindowDays; offset++ {
		dates = append(dates, time.Date(y, m, d+offset, 0, 0, 0, 0, loc))
	}
	return dates
}

// MarkUnavailable снимает доступность со слотов из taken, возвращает новый слайс
func MarkUnavailable(slots []domain.TimeSlot, taken map[domain.SlotKey]struct{}) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))
	for i, s := range slots {
		if _, ok := taken[s.Key()]; ok {
			s.Available = false
		}
		result[i] = s
	}
	return result
}
