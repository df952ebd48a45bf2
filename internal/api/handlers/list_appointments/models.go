package list_appointments

import (
	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Appointments []handlers.Appointment `json:"appointments"`
}

func FromDomain(items []domain.Appointment) *AppointmentsResponse {
	out := make([]handlers.Appointment, 0, len(items))
	for _, a := range items {
		out = append(out, handlers.FromDomainAppointment(a))
	}
	return &AppointmentsResponse{Appointments: out}
}
