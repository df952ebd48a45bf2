package doctors

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Gateway/pkg/logger"
)

type fakeClient struct {
	doctors   []medicareapi.User
	users     map[string]medicareapi.User
	listErr   error
	getErr    error
	listCalls int
	getCalls  int
}

func (f *fakeClient) ListDoctors(_ context.Context) ([]medicareapi.User, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.doctors, nil
}

func (f *fakeClient) GetUser(_ context.Context, id string) (*medicareapi.User, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, medicareapi.ErrNotFound
	}
	return &u, nil
}

var unreachable = fmt.Errorf("%w: connection refused", medicareapi.ErrInternal)

func backendDoctors() []medicareapi.User {
	return []medicareapi.User{
		{ID: "3", FirstName: "Gregory", LastName: "House", Role: "doctor", Specialization: "Diagnostics", Rating: 4.2, Experience: 20, ConsultationFee: 300, Bio: "Diagnostician"},
		{ID: "4", FirstName: "Lisa", LastName: "Cuddy", Role: "doctor", Specialization: "Endocrinology"},
	}
}

func TestList_AppliesDefaults(t *testing.T) {
	client := &fakeClient{doctors: backendDoctors()}
	s := NewService(client, 16, time.Minute, false, logger.NewNop())

	doctors, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Gregory House", doctors[0].Name)
	assert.Equal(t, 4.2, doctors[0].Rating)

	cuddy := doctors[1]
	assert.Equal(t, domain.DefaultDoctorRating, cuddy.Rating)
	assert.Equal(t, domain.DefaultDoctorExperience, cuddy.Experience)
	assert.Equal(t, domain.DefaultConsultationFee, cuddy.ConsultationFee)
	assert.Equal(t, domain.DefaultDoctorBio, cuddy.Bio)
}

func TestList_Cached(t *testing.T) {
	client := &fakeClient{doctors: backendDoctors()}
	s := NewService(client, 16, time.Minute, false, logger.NewNop())

	first, err := s.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := s.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, client.listCalls)
	assert.Equal(t, "Gregory House", second[0].Name)
}

func TestList_NoCacheWhenTTLZero(t *testing.T) {
	client := &fakeClient{doctors: backendDoctors()}
	s := NewService(client, 16, 0, false, logger.NewNop())

	_, _ = s.List(context.Background())
	_, _ = s.List(context.Background())

	assert.Equal(t, 2, client.listCalls)
}

func TestList_DemoFallback(t *testing.T) {
	client := &fakeClient{listErr: unreachable}

	t.Run("enabled", func(t *testing.T) {
		s := NewService(client, 16, time.Minute, true, logger.NewNop())
		doctors, err := s.List(context.Background())
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
		assert.Equal(t, "Cardiologist", doctors[0].Specialization)
	})

	t.Run("disabled", func(t *testing.T) {
		s := NewService(client, 16, time.Minute, false, logger.NewNop())
		_, err := s.List(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("not for auth errors", func(t *testing.T) {
		s := NewService(&fakeClient{listErr: medicareapi.ErrUnauthorized}, 16, time.Minute, true, logger.NewNop())
		_, err := s.List(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGet(t *testing.T) {
	client := &fakeClient{
		doctors: backendDoctors(),
		users: map[string]medicareapi.User{
			"9":  {ID: "9", FirstName: "John", LastName: "Dorian", Role: "doctor"},
			"10": {ID: "10", FirstName: "Jane", LastName: "Doe", Role: "patient"},
		},
	}
	s := NewService(client, 16, time.Minute, false, logger.NewNop())
	ctx := context.Background()

	d, err := s.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Gregory House", d.Name)

	// вне справочника, но есть в /users/{id}/
	d, err = s.Get(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, "John Dorian", d.Name)
	assert.Equal(t, domain.DefaultDoctorBio, d.Bio)

	_, err = s.Get(ctx, "10")
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = s.Get(ctx, "404")
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = s.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGet_FromDemoDirectory(t *testing.T) {
	client := &fakeClient{listErr: unreachable, getErr: unreachable}
	s := NewService(client, 16, time.Minute, true, logger.NewNop())

	d, err := s.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", d.Name)

	_, err = s.Get(context.Background(), "2")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGet_Unavailable(t *testing.T) {
	client := &fakeClient{listErr: unreachable, getErr: unreachable}
	s := NewService(client, 16, time.Minute, false, logger.NewNop())

	_, err := s.Get(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
