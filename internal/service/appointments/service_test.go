package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Gateway/pkg/logger"
)

type fakeClient struct {
	items     []medicareapi.Appointment
	err       error
	updated   []string
	lastToken string
	listCalls int
	// status подменяет статус в ответе бэкенда
	status string
}

func (f *fakeClient) ListAppointments(_ context.Context, token string) ([]medicareapi.Appointment, error) {
	f.lastToken = token
	f.listCalls++
	return f.items, f.err
}

func (f *fakeClient) UpdateAppointmentStatus(_ context.Context, token, id, status string) (*medicareapi.Appointment, error) {
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, id+"="+status)
	if f.status != "" {
		status = f.status
	}
	return &medicareapi.Appointment{ID: medicareapi.ID(id), Status: status}, nil
}

type fakeReleaser struct {
	released []string
	err      error
}

func (f *fakeReleaser) ReleaseByAppointment(_ context.Context, id string) error {
	f.released = append(f.released, id)
	return f.err
}

func patientSession() *domain.Session {
	return &domain.Session{ID: "s", UserID: "7", Role: domain.RolePatient, AccessToken: "tok"}
}

func doctorSession() *domain.Session {
	return &domain.Session{ID: "s", UserID: "1", Role: domain.RoleDoctor, AccessToken: "dtok"}
}

func backendItems() []medicareapi.Appointment {
	return []medicareapi.Appointment{
		{ID: "1", Patient: "7", Doctor: "1", Date: "2024-01-02", Time: "09:00 AM", Status: "pending"},
		{ID: "2", Patient: "8", Doctor: "1", Date: "2024-01-02", Time: "10:00 AM", Status: "confirmed"},
		{ID: "3", Patient: "7", Doctor: "2", Date: "2024-01-03", Time: "02:00 PM", Status: "cancelled"},
	}
}

func TestList_PatientSeesOwn(t *testing.T) {
	client := &fakeClient{items: backendItems()}
	s := NewService(client, nil, logger.NewNop())

	items, err := s.List(context.Background(), patientSession())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
	assert.True(t, items[1].IsCancelled())
	assert.Equal(t, "tok", client.lastToken)
}

func TestList_DoctorSeesAll(t *testing.T) {
	s := NewService(&fakeClient{items: backendItems()}, nil, logger.NewNop())

	items, err := s.List(context.Background(), doctorSession())

	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestListForPatient(t *testing.T) {
	s := NewService(&fakeClient{items: backendItems()}, nil, logger.NewNop())

	items, err := s.ListForPatient(context.Background(), patientSession())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = s.ListForPatient(context.Background(), doctorSession())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestList_PatientWithoutIdentity(t *testing.T) {
	client := &fakeClient{items: backendItems()}
	s := NewService(client, nil, logger.NewNop())

	_, err := s.List(context.Background(), &domain.Session{ID: "s", Role: domain.RolePatient, AccessToken: "tok"})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, client.listCalls)
}

func TestList_BackendErrors(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{medicareapi.ErrUnauthorized, ErrUnauthenticated},
		{fmt.Errorf("%w: refused", medicareapi.ErrInternal), ErrInternal},
	}
	for _, c := range cases {
		s := NewService(&fakeClient{err: c.err}, nil, logger.NewNop())
		_, err := s.List(context.Background(), patientSession())
		assert.ErrorIs(t, err, c.want)
	}
}

func TestCancel_ReleasesReservation(t *testing.T) {
	client := &fakeClient{}
	releaser := &fakeReleaser{}
	s := NewService(client, releaser, logger.NewNop())

	a, err := s.Cancel(context.Background(), patientSession(), "42")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, a.Status)
	assert.Equal(t, []string{"42=cancelled"}, client.updated)
	assert.Equal(t, []string{"42"}, releaser.released)
}

func TestCancel_KeepsReservationWhenBackendDidNotCancel(t *testing.T) {
	releaser := &fakeReleaser{}
	s := NewService(&fakeClient{status: "confirmed"}, releaser, logger.NewNop())

	a, err := s.Cancel(context.Background(), patientSession(), "42")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, a.Status)
	assert.Empty(t, releaser.released)
}

func TestCancel_ReleaseFailureDoesNotFail(t *testing.T) {
	s := NewService(&fakeClient{}, &fakeReleaser{err: errors.New("db down")}, logger.NewNop())

	_, err := s.Cancel(context.Background(), patientSession(), "42")

	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("doctor confirms", func(t *testing.T) {
		client := &fakeClient{}
		releaser := &fakeReleaser{}
		s := NewService(client, releaser, logger.NewNop())

		a, err := s.UpdateStatus(context.Background(), doctorSession(), "42", domain.StatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, a.Status)
		assert.Equal(t, "dtok", client.lastToken)
		assert.Empty(t, releaser.released)
	})

	t.Run("patient cannot confirm", func(t *testing.T) {
		client := &fakeClient{}
		s := NewService(client, nil, logger.NewNop())

		_, err := s.UpdateStatus(context.Background(), patientSession(), "42", domain.StatusConfirmed)

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, client.updated)
	})

	t.Run("invalid status", func(t *testing.T) {
		s := NewService(&fakeClient{}, nil, logger.NewNop())
		_, err := s.UpdateStatus(context.Background(), doctorSession(), "42", "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty id", func(t *testing.T) {
		s := NewService(&fakeClient{}, nil, logger.NewNop())
		_, err := s.UpdateStatus(context.Background(), doctorSession(), " ", domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		s := NewService(&fakeClient{err: medicareapi.ErrNotFound}, nil, logger.NewNop())
		_, err := s.UpdateStatus(context.Background(), doctorSession(), "404", domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
