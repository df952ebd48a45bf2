package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/booking"
	createBooking "github.com/m04kA/MediCare-Gateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidBookingRequest = "invalid booking request"
	msgOnlyPatients          = "only patients can book appointments"
	msgDoctorNotFound        = "doctor not found"
	msgSlotNotAvailable      = "the selected time slot is no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var invalid *booking.InvalidBookingRequestError
		switch {
		case errors.As(err, &invalid):
			h.logger.Warn("POST /bookings - Invalid booking request: field=%s, reason=%s", invalid.Field, invalid.Reason)
			handlers.RespondFieldError(w, msgInvalidBookingRequest, invalid.Field)

		case errors.Is(err, createBooking.ErrInvalidBookingRequest):
			h.logger.Warn("POST /bookings - Backend rejected booking: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingRequest)

		case errors.Is(err, createBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createBooking.ErrForbidden):
			handlers.RespondForbidden(w, msgOnlyPatients)

		case errors.Is(err, createBooking.ErrDoctorNotFound):
			h.logger.Warn("POST /bookings - Doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: doctor_id=%s, date=%s, time=%s", req.DoctorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%s, patient_id=%s, doctor_id=%s",
		result.ID, result.PatientID, result.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
