package medicareapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/pkg/logger"
)

type observed struct {
	endpoint string
	outcome  string
}

type fakeMetrics struct {
	calls []observed
}

func (f *fakeMetrics) ObserveBackend(endpoint, outcome string, _ time.Duration) {
	f.calls = append(f.calls, observed{endpoint, outcome})
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	m := &fakeMetrics{}
	return NewClient(srv.URL+"/api/", time.Second, logger.NewNop(), m), m
}

func TestClient_Login(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login/", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@medicare.com", req.Username)

		_, _ = w.Write([]byte(`{"access":"a.b.c","refresh":"r"}`))
	})

	tokens, err := client.Login(context.Background(), "jane@medicare.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tokens.Access)
	assert.Equal(t, "r", tokens.Refresh)
	assert.Equal(t, []observed{{"login", "ok"}}, m.calls)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
	})

	_, err := client.Login(context.Background(), "jane", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "No active account")
	assert.Equal(t, "unauthorized", m.calls[0].outcome)
}

func TestClient_GetProfileSendsBearer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":7,"first_name":"Jane","last_name":"Doe","email":"jane@medicare.com","role":"patient"}`))
	})

	user, err := client.GetProfile(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, ID("7"), user.ID)
	assert.Equal(t, "Jane Doe", user.FullName())
	assert.Equal(t, "patient", user.Role)
}

func TestClient_ListDoctors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"plain list", `[{"id":1,"first_name":"Sarah","last_name":"Johnson","specialization":"Cardiologist","consultation_fee":"150.00","rating":4.9,"experience":12}]`},
		{"paginated", `{"count":1,"results":[{"id":"1","first_name":"Sarah","last_name":"Johnson","specialization":"Cardiologist","consultation_fee":150,"rating":"4.9","experience":12}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/users/doctors/", r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(c.body))
			})

			doctors, err := client.ListDoctors(context.Background())

			require.NoError(t, err)
			require.Len(t, doctors, 1)
			d := doctors[0].ToDoctor()
			assert.Equal(t, "1", d.ID)
			assert.Equal(t, "Sarah Johnson", d.Name)
			assert.Equal(t, 150.0, d.ConsultationFee)
			assert.Equal(t, 4.9, d.Rating)
			assert.Equal(t, 12, d.Experience)
		})
	}
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status  int
		body    string
		want    error
		outcome string
	}{
		{http.StatusBadRequest, `{"time":["This slot is already booked."]}`, ErrBadRequest, "bad_request"},
		{http.StatusUnauthorized, `{"detail":"Token is invalid or expired"}`, ErrUnauthorized, "unauthorized"},
		{http.StatusForbidden, `{"detail":"forbidden"}`, ErrUnauthorized, "unauthorized"},
		{http.StatusNotFound, `{"detail":"Not found."}`, ErrNotFound, "not_found"},
		{http.StatusInternalServerError, `oops`, ErrInvalidResponse, "error"},
	}

	for _, c := range cases {
		t.Run(http.StatusText(c.status), func(t *testing.T) {
			client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			})

			_, err := client.CreateAppointment(context.Background(), "tok", CreateAppointmentRequest{
				Doctor: "1", Patient: "7", Date: "2024-01-02", Time: "09:00 AM",
			})

			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, c.outcome, m.calls[0].outcome)
		})
	}
}

func TestClient_BadRequestDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"time":["This slot is already booked."],"date":["Invalid."]}`))
	})

	_, err := client.CreateAppointment(context.Background(), "tok", CreateAppointmentRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "date: Invalid.; time: This slot is already booked.")
}

func TestClient_CreateAppointmentPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		// числовые id уходят числом
		assert.Equal(t, 1.0, raw["doctor"])
		assert.Equal(t, 7.0, raw["patient"])
		assert.Equal(t, "09:00 AM", raw["time"])
		assert.NotContains(t, raw, "notes")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"patient":7,"doctor":1,"date":"2024-01-02","time":"09:00 AM","status":"pending","created_at":"2024-01-01T10:00:00.123456Z"}`))
	})

	appointment, err := client.CreateAppointment(context.Background(), "tok", CreateAppointmentRequest{
		Doctor: "1", Patient: "7", Date: "2024-01-02", Time: "09:00 AM",
	})

	require.NoError(t, err)
	a := appointment.ToDomain()
	assert.Equal(t, "42", a.ID)
	assert.Equal(t, "7", a.PatientID)
	assert.Equal(t, "pending", string(a.Status))
	require.NotNil(t, a.CreatedAt)
	assert.Equal(t, 2024, a.CreatedAt.Year())
}

func TestClient_UpdateAppointmentStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/42/update_status/", r.URL.Path)
		var req UpdateStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cancelled", req.Status)
		_, _ = w.Write([]byte(`{"id":42,"patient":7,"doctor":1,"date":"2024-01-02","time":"09:00 AM","status":"cancelled"}`))
	})

	appointment, err := client.UpdateAppointmentStatus(context.Background(), "tok", "42", "cancelled")

	require.NoError(t, err)
	assert.Equal(t, "cancelled", appointment.Status)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, 100*time.Millisecond, logger.NewNop(), nil)

	_, err := client.ListDoctors(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, IsUnavailable(err))
}

func TestID_JSON(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"uuid-x","c":null}`), &v))
	assert.Equal(t, ID("12"), v.A)
	assert.Equal(t, ID("uuid-x"), v.B)
	assert.Equal(t, ID(""), v.C)

	out, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{"12", "uuid-x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":"uuid-x"}`, string(out))
}
