package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpf/agenda2/internal/domain"
	appointmentRepo "github.com/geekpf/agenda2/internal/infra/storage/appointment"
	"github.com/geekpf/agenda2/internal/service/appointments/models"
	"github.com/geekpf/agenda2/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	byID map[string]*domain.Appointment
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(r.byID))
	for _, appt := range r.byID {
		out = append(out, appt)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	appt, ok := r.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

type fakeServiceRepo struct{ services []*domain.Service }

func (r *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	return r.services, nil
}

type fakeProfessionalRepo struct{ professionals []*domain.Professional }

func (r *fakeProfessionalRepo) List(_ context.Context) ([]*domain.Professional, error) {
	return r.professionals, nil
}

func newService(appts map[string]*domain.Appointment) *Service {
	return NewService(
		&fakeAppointmentRepo{byID: appts},
		&fakeServiceRepo{services: []*domain.Service{
			{ID: "svc-1", Name: "Corte de cabelo", DurationMinutes: 30},
		}},
		&fakeProfessionalRepo{professionals: []*domain.Professional{
			{ID: "prof-1", Name: "Ana"},
		}},
		nopLogger{},
	)
}

func pendingAppointment(id string) *domain.Appointment {
	return &domain.Appointment{
		ID:             id,
		ClientName:     "Maria",
		ClientContact:  "maria@example.com",
		ServiceID:      "svc-1",
		ProfessionalID: "prof-1",
		Date:           time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:30",
		Status:         domain.StatusPending,
		Price:          50,
	}
}

func TestDecide_ConfirmPending(t *testing.T) {
	svc := newService(map[string]*domain.Appointment{"a1": pendingAppointment("a1")})

	resp, err := svc.Decide(context.Background(), "a1", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestDecide_RejectPending(t *testing.T) {
	svc := newService(map[string]*domain.Appointment{"a1": pendingAppointment("a1")})

	resp, err := svc.Decide(context.Background(), "a1", domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, resp.Status)
}

func TestDecide_DecidedStatusIsFinal(t *testing.T) {
	confirmed := pendingAppointment("a1")
	confirmed.Status = domain.StatusConfirmed
	rejected := pendingAppointment("a2")
	rejected.Status = domain.StatusRejected

	svc := newService(map[string]*domain.Appointment{"a1": confirmed, "a2": rejected})

	_, err := svc.Decide(context.Background(), "a1", domain.StatusRejected)
	assert.ErrorIs(t, err, ErrStatusFinal)

	_, err = svc.Decide(context.Background(), "a2", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusFinal)
}

func TestDecide_InvalidTargetStatus(t *testing.T) {
	svc := newService(map[string]*domain.Appointment{"a1": pendingAppointment("a1")})

	_, err := svc.Decide(context.Background(), "a1", domain.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Decide(context.Background(), "a1", "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDecide_NotFound(t *testing.T) {
	svc := newService(map[string]*domain.Appointment{})

	_, err := svc.Decide(context.Background(), "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_PlaceholdersForDeletedEntities(t *testing.T) {
	orphan := pendingAppointment("a1")
	orphan.ServiceID = "svc-deleted"
	orphan.ProfessionalID = "prof-deleted"

	svc := newService(map[string]*domain.Appointment{"a1": orphan})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	got := resp.Appointments[0]
	assert.Equal(t, models.MissingServiceName, got.ServiceName)
	assert.Equal(t, models.MissingProfessionalName, got.ProfessionalName)
	assert.Nil(t, got.EndTime)
}

func TestList_ResolvesNames(t *testing.T) {
	svc := newService(map[string]*domain.Appointment{"a1": pendingAppointment("a1")})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	got := resp.Appointments[0]
	assert.Equal(t, "Corte de cabelo", got.ServiceName)
	assert.Equal(t, "Ana", got.ProfessionalName)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, types.TimeString("10:00"), *got.EndTime)
}
