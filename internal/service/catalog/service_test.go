package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpf/agenda2/internal/domain"
	professionalRepo "github.com/geekpf/agenda2/internal/infra/storage/professional"
	serviceRepo "github.com/geekpf/agenda2/internal/infra/storage/service"
	"github.com/geekpf/agenda2/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	byID map[string]*domain.Service
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	copied := *svc
	r.byID[svc.ID] = &copied
	return &copied, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := r.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(r.byID))
	for _, svc := range r.byID {
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.byID[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	r.byID[svc.ID] = &copied
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeProfessionalRepo struct {
	byID map[string]*domain.Professional
}

func (r *fakeProfessionalRepo) Create(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	copied := *prof
	r.byID[prof.ID] = &copied
	return &copied, nil
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id string) (*domain.Professional, error) {
	prof, ok := r.byID[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return prof, nil
}

func (r *fakeProfessionalRepo) List(_ context.Context) ([]*domain.Professional, error) {
	out := make([]*domain.Professional, 0, len(r.byID))
	for _, prof := range r.byID {
		out = append(out, prof)
	}
	return out, nil
}

func (r *fakeProfessionalRepo) Update(_ context.Context, prof *domain.Professional) error {
	if _, ok := r.byID[prof.ID]; !ok {
		return professionalRepo.ErrProfessionalNotFound
	}
	copied := *prof
	r.byID[prof.ID] = &copied
	return nil
}

func (r *fakeProfessionalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return professionalRepo.ErrProfessionalNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeAppointmentRepo struct {
	holdingServices      map[string]bool
	holdingProfessionals map[string]bool
}

func (r *fakeAppointmentRepo) ExistsHoldingForService(_ context.Context, id string) (bool, error) {
	return r.holdingServices[id], nil
}

func (r *fakeAppointmentRepo) ExistsHoldingForProfessional(_ context.Context, id string) (bool, error) {
	return r.holdingProfessionals[id], nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc           *Service
	services      *fakeServiceRepo
	professionals *fakeProfessionalRepo
	appointments  *fakeAppointmentRepo
}

func newFixture() *fixture {
	services := &fakeServiceRepo{byID: map[string]*domain.Service{}}
	professionals := &fakeProfessionalRepo{byID: map[string]*domain.Professional{}}
	appointments := &fakeAppointmentRepo{
		holdingServices:      map[string]bool{},
		holdingProfessionals: map[string]bool{},
	}
	return &fixture{
		svc:           NewService(services, professionals, appointments, fakeTxManager{}, nopLogger{}),
		services:      services,
		professionals: professionals,
		appointments:  appointments,
	}
}

func TestCreateService(t *testing.T) {
	f := newFixture()

	pixKey := "pix@salon.example"
	resp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "  Corte de cabelo  ",
		Price:           50,
		DurationMinutes: 30,
		PixKey:          &pixKey,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Corte de cabelo", resp.Name)
	require.NotNil(t, resp.PixKey)
	assert.Equal(t, pixKey, *resp.PixKey)
}

func TestCreateService_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		req  *models.CreateServiceRequest
	}{
		{name: "empty name", req: &models.CreateServiceRequest{Name: "  ", Price: 50, DurationMinutes: 30}},
		{name: "negative price", req: &models.CreateServiceRequest{Name: "Corte", Price: -1, DurationMinutes: 30}},
		{name: "zero duration", req: &models.CreateServiceRequest{Name: "Corte", Price: 50, DurationMinutes: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateService(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateService_ZeroPriceAllowed(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "Avaliação",
		Price:           0,
		DurationMinutes: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Price)
}

func TestDeleteService_BlockedWhileReferenced(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Price: 50, DurationMinutes: 30,
	})
	require.NoError(t, err)

	f.appointments.holdingServices[resp.ID] = true
	err = f.svc.DeleteService(context.Background(), resp.ID)
	assert.ErrorIs(t, err, ErrServiceInUse)

	// Отклонение всех записей снимает блокировку
	f.appointments.holdingServices[resp.ID] = false
	require.NoError(t, f.svc.DeleteService(context.Background(), resp.ID))

	_, err = f.svc.GetService(context.Background(), resp.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateProfessional(t *testing.T) {
	f := newFixture()

	svcResp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Price: 50, DurationMinutes: 30,
	})
	require.NoError(t, err)

	resp, err := f.svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name:       "Ana",
		ServiceIDs: []string{svcResp.ID, svcResp.ID},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	// Дубликаты услуг в запросе схлопываются
	assert.Equal(t, []string{svcResp.ID}, resp.ServiceIDs)
}

func TestCreateProfessional_UnknownService(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name:       "Ana",
		ServiceIDs: []string{"missing"},
	})
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestDeleteProfessional_BlockedWhileReferenced(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name: "Ana",
	})
	require.NoError(t, err)

	f.appointments.holdingProfessionals[resp.ID] = true
	err = f.svc.DeleteProfessional(context.Background(), resp.ID)
	assert.ErrorIs(t, err, ErrProfessionalInUse)

	f.appointments.holdingProfessionals[resp.ID] = false
	assert.NoError(t, f.svc.DeleteProfessional(context.Background(), resp.ID))
}

func TestListProfessionals_FilterByService(t *testing.T) {
	f := newFixture()

	corte, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Price: 50, DurationMinutes: 30,
	})
	require.NoError(t, err)
	manicure, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Manicure", Price: 35, DurationMinutes: 45,
	})
	require.NoError(t, err)

	_, err = f.svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name: "Ana", ServiceIDs: []string{corte.ID, manicure.ID},
	})
	require.NoError(t, err)
	_, err = f.svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name: "Bruno", ServiceIDs: []string{manicure.ID},
	})
	require.NoError(t, err)

	all, err := f.svc.ListProfessionals(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Professionals, 2)

	filtered, err := f.svc.ListProfessionals(context.Background(), &corte.ID)
	require.NoError(t, err)
	require.Len(t, filtered.Professionals, 1)
	assert.Equal(t, "Ana", filtered.Professionals[0].Name)
}

func TestUpdateService(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Price: 50, DurationMinutes: 30,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateService(context.Background(), &models.UpdateServiceRequest{
		ID: created.ID, Name: "Corte premium", Price: 80, DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "Corte premium", updated.Name)
	assert.Equal(t, 80.0, updated.Price)

	_, err = f.svc.UpdateService(context.Background(), &models.UpdateServiceRequest{
		ID: "missing", Name: "Corte", Price: 50, DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
