package update_appointment_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidStatus       = "invalid status, expected one of pending, confirmed, completed, cancelled"
	msgInvalidInput        = "invalid appointment update"
	msgForbidden           = "you are not allowed to set this status"
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

// Handle POST /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/%s/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	result, err := h.service.UpdateStatus(r.Context(), sess, id, status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%s/status - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, appointments.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, appointments.ErrForbidden):
			h.logger.Warn("POST /appointments/%s/status - Forbidden: user_id=%s, status=%s", id, sess.UserID, status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("POST /appointments/%s/status - Failed to update status: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%s/status - Status updated: status=%s, user_id=%s", id, result.Status, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(*result))
}
