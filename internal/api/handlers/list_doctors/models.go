package list_doctors

import (
	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
	listDoctors "github.com/m04kA/MediCare-Gateway/internal/usecase/list_doctors"
)

// DoctorCard HTTP response model
type DoctorCard struct {
	handlers.Doctor
	Initials       string              `json:"initials"`
	AvailableCount int                 `json:"availableCount"`
	Dates          []string            `json:"dates"`
	SelectedDate   string              `json:"selectedDate,omitempty"`
	Slots          []handlers.TimeSlot `json:"slots"`
	AllSlots       []handlers.TimeSlot `json:"allSlots"`
	NoSlots        bool                `json:"noSlots"`
	Message        string              `json:"message,omitempty"`
}

type DoctorsResponse struct {
	Doctors []DoctorCard `json:"doctors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listDoctors.Response) *DoctorsResponse {
	cards := make([]DoctorCard, 0, len(resp.Cards))
	for _, c := range resp.Cards {
		card := DoctorCard{
			Doctor:         handlers.FromDomainDoctor(c.Doctor),
			Initials:       c.Initials,
			AvailableCount: c.AvailableCount,
			Dates:          handlers.NonNilStrings(c.Dates),
			SelectedDate:   c.SelectedDate,
			Slots:          handlers.FromDomainSlots(c.Slots),
			AllSlots:       handlers.FromDomainSlots(c.AllSlots),
			NoSlots:        c.NoSlots,
		}
		if c.NoSlots {
			card.Message = get_available_slots.NoSlotsMessage
		}
		cards = append(cards, card)
	}
	return &DoctorsResponse{Doctors: cards}
}
