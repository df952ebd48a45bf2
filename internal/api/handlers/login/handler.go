package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/service/auth"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgCredentialsRequired = "username and password are required"
	msgInvalidCredentials  = "invalid username or password"
	msgUnsupportedRole     = "this account role is not supported"
	msgBackendUnavailable  = "authentication service is unavailable, try again later"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCredentialsRequired)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, auth.ErrUnsupportedRole):
			h.logger.Warn("POST /auth/login - Unsupported role: username=%s", req.Username)
			handlers.RespondForbidden(w, msgUnsupportedRole)

		case errors.Is(err, auth.ErrUnavailable):
			h.logger.Warn("POST /auth/login - Backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBackendUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: user_id=%s, role=%s", sess.UserID, sess.Role)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSession(sess))
}
