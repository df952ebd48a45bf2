package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// AvailableDates возвращает различные даты, у которых есть хотя бы один доступный слот.
// Порядок первого появления сохраняется, результат ограничен MaxDisplayDates.
func AvailableDates(slots []domain.TimeSlot) ([]string, error) {
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	dates := make([]string, 0, domain.MaxDisplayDates)

	for _, s := range slots {
		if !s.Available {
			continue
		}
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		dates = append(dates, s.Date)
	}

	if len(dates) > domain.MaxDisplayDates {
		dates = dates[:domain.MaxDisplayDates]
	}

	return dates, nil
}

// SlotsForDate возвращает доступные слоты ровно на date в исходном порядке
func SlotsForDate(slots []domain.TimeSlot, date string) ([]domain.TimeSlot, error) {
	if err := validateSlots(slots); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	result := make([]domain.TimeSlot, 0)
	for _, s := range slots {
		if s.Date == date && s.Available {
			result = append(result, s)
		}
	}

	return result, nil
}

// CountAvailable возвращает количество доступных слотов
func CountAvailable(slots []domain.TimeSlot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}

func validateSlots(slots []domain.TimeSlot) error {
	for i, s := range slots {
		if err := validateDate(s.Date); err != nil {
			return fmt.Errorf("%w: slot %d: %v", ErrInvalidInput, i, err)
		}
		if !domain.IsSlotTimeLabel(s.Time) {
			return fmt.Errorf("%w: slot %d: unknown time %q", ErrInvalidInput, i, s.Time)
		}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	return nil
}
