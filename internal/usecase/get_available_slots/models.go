package get_available_slots

import "github.com/m04kA/MediCare-Gateway/internal/domain"

// NoSlotsMessage текст пустого состояния для выбранной даты
const NoSlotsMessage = "No slots available for this date"

// Request модель запроса слотов врача
type Request struct {
	DoctorID string
	Date     string // YYYY-MM-DD, пусто = первая доступная дата

	// Doctor уже найденный врач; если задан, справочник не запрашивается
	Doctor *domain.Doctor
}

// Response модель ответа со слотами
type Response struct {
	Doctor         domain.Doctor
	Dates          []string          // доступные даты, не более 5
	SelectedDate   string            // пусто, если доступных дат нет
	Slots          []domain.TimeSlot // доступные слоты выбранной даты
	AllSlots       []domain.TimeSlot // все сгенерированные слоты окна
	AvailableCount int               // доступных слотов во всём окне
	NoSlots        bool
}
