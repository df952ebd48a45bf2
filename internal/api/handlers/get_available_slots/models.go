package get_available_slots

import (
	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Doctor         handlers.Doctor     `json:"doctor"`
	Dates          []string            `json:"dates"`
	SelectedDate   string              `json:"selectedDate,omitempty"`
	Slots          []handlers.TimeSlot `json:"slots"`
	AllSlots       []handlers.TimeSlot `json:"allSlots"`
	AvailableCount int                 `json:"availableCount"`
	NoSlots        bool                `json:"noSlots"`
	Message        string              `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Doctor:         handlers.FromDomainDoctor(resp.Doctor),
		Dates:          handlers.NonNilStrings(resp.Dates),
		SelectedDate:   resp.SelectedDate,
		Slots:          handlers.FromDomainSlots(resp.Slots),
		AllSlots:       handlers.FromDomainSlots(resp.AllSlots),
		AvailableCount: resp.AvailableCount,
		NoSlots:        resp.NoSlots,
	}
	if resp.NoSlots {
		out.Message = getAvailableSlots.NoSlotsMessage
	}
	return out
}
