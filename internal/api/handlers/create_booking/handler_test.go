package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
	"github.com/m04kA/MediCare-Gateway/internal/booking"
	createBooking "github.com/m04kA/MediCare-Gateway/internal/usecase/create_booking"
	"github.com/m04kA/MediCare-Gateway/pkg/logger"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

func post(uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return w
}

func TestHandle_Created(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         "101",
		DoctorID:   "1",
		DoctorName: "Dr. Sarah Johnson",
		PatientID:  "7",
		Date:       "2024-01-02",
		Time:       "09:00 AM",
		Status:     "pending",
		CreatedAt:  &created,
	}}

	w := post(uc, `{"doctorId":"1","date":"2024-01-02","time":"09:00 AM","notes":"first visit"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", uc.req.DoctorID)
	assert.Equal(t, "09:00 AM", uc.req.Time)
	require.NotNil(t, uc.req.Notes)
	assert.Equal(t, "first visit", *uc.req.Notes)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "101", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.CreatedAt)
	assert.Equal(t, "2024-01-01T09:30:00Z", *resp.CreatedAt)
}

func TestHandle_InvalidFieldReported(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &booking.InvalidBookingRequestError{Field: booking.FieldTime, Reason: "unknown slot time"})

	w := post(&fakeUseCase{err: err}, `{"doctorId":"1","date":"2024-01-02","time":"09:30"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "time", resp.Field)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad body", body: `not json`, status: http.StatusBadRequest},
		{name: "backend rejected", err: fmt.Errorf("%w: doctor busy", createBooking.ErrInvalidBookingRequest), status: http.StatusBadRequest},
		{name: "unauthenticated", err: createBooking.ErrUnauthenticated, status: http.StatusUnauthorized},
		{name: "forbidden", err: createBooking.ErrForbidden, status: http.StatusForbidden},
		{name: "doctor not found", err: createBooking.ErrDoctorNotFound, status: http.StatusNotFound},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if body == "" {
				body = `{"doctorId":"1","date":"2024-01-02","time":"09:00 AM"}`
			}

			assert.Equal(t, tt.status, post(&fakeUseCase{err: tt.err}, body).Code)
		})
	}
}
