package list_doctors

import "github.com/m04kA/MediCare-Gateway/internal/domain"

// Card карточка врача со слотами на первую доступную дату
type Card struct {
	Doctor         domain.Doctor
	Initials       string
	AvailableCount int
	Dates          []string
	SelectedDate   string
	Slots          []domain.TimeSlot
	AllSlots       []domain.TimeSlot // всё окно этой отрисовки, для выбора другой даты
	NoSlots        bool
}

// Response модель ответа со списком карточек
type Response struct {
	Cards []Card
}
