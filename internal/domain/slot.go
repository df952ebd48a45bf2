package domain

import "github.com/m04kA/MediCare-Gateway/pkg/types"

// TimeSlot represents a bookable (date, time) pair for one doctor card render
type TimeSlot struct {
	Date      string // YYYY-MM-DD
	Time      types.TimeLabel
	Available bool
}

// Key returns the (date, time) identity of the slot
func (s TimeSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}

// SlotKey identifies a slot independent of its availability
type SlotKey struct {
	Date string
	Time types.TimeLabel
}
