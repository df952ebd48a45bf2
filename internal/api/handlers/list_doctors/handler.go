package list_doctors

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	listDoctors "github.com/m04kA/MediCare-Gateway/internal/usecase/list_doctors"
)

const (
	msgDoctorsUnavailable = "doctors directory is unavailable, try again later"
)

type Handler struct {
	useCase ListDoctorsUseCase
	logger  Logger
}

func NewHandler(useCase ListDoctorsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, listDoctors.ErrUnavailable):
			h.logger.Warn("GET /doctors - Doctors unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDoctorsUnavailable)

		default:
			h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors - Returned %d doctors", len(result.Cards))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
