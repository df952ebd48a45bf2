package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/service/appointments"
)

const msgForbidden = "session has no patient identity"

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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	items, err := h.service.List(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, appointments.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments: user_id=%s", len(items), sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(items))
}
