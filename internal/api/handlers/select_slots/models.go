package select_slots

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
	selectSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/select_slots"
)

var errSlotsNotList = errors.New("slots must be a list")

// SelectSlotsRequest HTTP request model
type SelectSlotsRequest struct {
	Slots json.RawMessage `json:"slots"`
	Date  string          `json:"date,omitempty"`
}

// SelectSlotsResponse HTTP response model
type SelectSlotsResponse struct {
	Dates        []string            `json:"dates"`
	SelectedDate string              `json:"selectedDate,omitempty"`
	Slots        []handlers.TimeSlot `json:"slots"`
	NoSlots      bool                `json:"noSlots"`
	Message      string              `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotsRequest) ToUseCaseRequest() (*selectSlots.Request, error) {
	raw := bytes.TrimSpace(r.Slots)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errSlotsNotList
	}

	var items []handlers.TimeSlot
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	return &selectSlots.Request{
		Slots: handlers.ToDomainSlots(items),
		Date:  r.Date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectSlots.Response) *SelectSlotsResponse {
	out := &SelectSlotsResponse{
		Dates:        handlers.NonNilStrings(resp.Dates),
		SelectedDate: resp.SelectedDate,
		Slots:        handlers.FromDomainSlots(resp.Slots),
		NoSlots:      resp.NoSlots,
	}
	if resp.NoSlots {
		out.Message = getAvailableSlots.NoSlotsMessage
	}
	return out
}
