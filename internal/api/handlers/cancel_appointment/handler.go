package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/appointments"
)

const (
	msgInvalidInput        = "invalid appointment id"
	msgForbidden           = "you are not allowed to cancel this appointment"
	msgAppointmentNotFound = "appointment not found"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	id := mux.Vars(r)["id"]

	result, err := h.service.Cancel(r.Context(), sess, id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, appointments.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, appointments.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%s/cancel - Appointment not found: user_id=%s", id, sess.UserID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("POST /appointments/%s/cancel - Failed to cancel appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%s/cancel - Appointment cancelled: user_id=%s", id, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(*result))
}
