package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/get_available_slots"
)

const (
	msgInvalidInput   = "invalid doctor id or date, expected date in YYYY-MM-DD format"
	msgDoctorNotFound = "doctor not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		DoctorID: doctorID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/%s/available-slots - Invalid input: date=%s, error=%v", doctorID, date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/%s/available-slots - Doctor not found", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("GET /doctors/%s/available-slots - Failed to get slots: %v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/%s/available-slots - Returned %d slots for date=%s",
		doctorID, len(result.Slots), result.SelectedDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
