package create_booking

import (
	"time"

	createBooking "github.com/m04kA/MediCare-Gateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DoctorID string  `json:"doctorId"`
	Date     string  `json:"date"` // "2024-01-02"
	Time     string  `json:"time"` // "09:00 AM"
	Notes    *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	DoctorID   string  `json:"doctorId"`
	DoctorName string  `json:"doctorName"`
	PatientID  string  `json:"patientId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  *string `json:"createdAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case; валидация в use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		DoctorID: r.DoctorID,
		Date:     r.Date,
		Time:     r.Time,
		Notes:    r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:         resp.ID,
		DoctorID:   resp.DoctorID,
		DoctorName: resp.DoctorName,
		PatientID:  resp.PatientID,
		Date:       resp.Date,
		Time:       resp.Time.String(),
		Status:     resp.Status,
		Notes:      resp.Notes,
	}
	if resp.CreatedAt != nil {
		created := resp.CreatedAt.Format(time.RFC3339)
		out.CreatedAt = &created
	}
	return out
}
