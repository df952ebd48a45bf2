package logout

import (
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	if err := h.service.Logout(r.Context(), sess.ID); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Logged out: user_id=%s", sess.UserID)
	w.WriteHeader(http.StatusNoContent)
}
