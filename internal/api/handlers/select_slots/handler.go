package select_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	selectSlots "github.com/m04kA/MediCare-Gateway/internal/usecase/select_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotsNotList       = "slots must be a list of {date, time, available}"
	msgInvalidInput       = "invalid slots or date, expected date in YYYY-MM-DD format"
)

type Handler struct {
	useCase SelectSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots/select - Failed to parse slots: %v", err)
		handlers.RespondBadRequest(w, msgSlotsNotList)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/select - Failed to select slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
