package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

func TestRespondFieldError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondFieldError(w, "invalid booking request", "time")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid booking request","field":"time"}`, w.Body.String())
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2]`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestSlotsRoundTrip(t *testing.T) {
	in := []domain.TimeSlot{{Date: "2024-01-02", Time: "09:00 AM", Available: true}}

	assert.Equal(t, in, ToDomainSlots(FromDomainSlots(in)))
	assert.NotNil(t, FromDomainSlots(nil))
}

func TestFromDomainAppointment(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	a := FromDomainAppointment(domain.Appointment{ID: "42", Time: "09:00 AM", Status: domain.StatusPending, CreatedAt: &created})

	assert.Equal(t, "09:00 AM", a.Time)
	assert.Equal(t, "pending", a.Status)
	require.NotNil(t, a.CreatedAt)
	assert.Equal(t, "2024-01-01T10:00:00Z", *a.CreatedAt)
}
