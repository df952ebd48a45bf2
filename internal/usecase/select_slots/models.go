package select_slots

import "github.com/m04kA/MediCare-Gateway/internal/domain"

// Request набор слотов, полученный клиентом ранее, и выбранная дата
type Request struct {
	Slots []domain.TimeSlot
	Date  string // пусто = первая доступная дата
}

// Response даты и слоты выбранной даты
type Response struct {
	Dates        []string
	SelectedDate string
	Slots        []domain.TimeSlot
	NoSlots      bool
}
