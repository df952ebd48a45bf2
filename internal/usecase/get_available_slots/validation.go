package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// validateRequest валидирует и нормализует запрос
func validateRequest(req *Request) error {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	req.Date = strings.TrimSpace(req.Date)

	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorId is required", ErrInvalidInput)
	}

	if req.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil || parsed.Format(domain.DateFormat) != req.Date {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	return nil
}

// takenKeys собирает ключи активных броней
func takenKeys(booked []*domain.BookedSlot) map[domain.SlotKey]struct{} {
	taken := make(map[domain.SlotKey]struct{}, len(booked))
	for _, b := range booked {
		if b.IsActive() {
			taken[b.Key()] = struct{}{}
		}
	}
	return taken
}
