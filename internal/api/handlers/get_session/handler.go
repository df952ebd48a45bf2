package get_session

import (
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSession(sess))
}
