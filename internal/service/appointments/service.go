package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/geekpf/agenda2/internal/domain"
	appointmentRepo "github.com/geekpf/agenda2/internal/infra/storage/appointment"
	"github.com/geekpf/agenda2/internal/service/appointments/models"
)

// Service сервис для просмотра и модерации записей
type Service struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// List возвращает все записи, отсортированные по дате и времени начала
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	appts, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, models.FromDomainAppointment(appt, catalog.serviceNames, catalog.serviceDurations, catalog.professionalNames))
	}
	return &models.AppointmentListResponse{Appointments: out}, nil
}

// GetByID возвращает одну запись
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appt, catalog.serviceNames, catalog.serviceDurations, catalog.professionalNames), nil
}

// Decide применяет решение модерации к ожидающей записи.
// Разрешены только переходы pending -> confirmed и pending -> rejected;
// принятое решение окончательно.
func (s *Service) Decide(ctx context.Context, id string, status domain.AppointmentStatus) (*models.AppointmentResponse, error) {
	if status != domain.StatusConfirmed && status != domain.StatusRejected {
		s.logger.Warn("Decide: invalid target status %q for id=%s", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("Decide: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(status) {
		s.logger.Warn("Decide: appointment %s already %s", id, appt.Status)
		return nil, fmt.Errorf("%w: %s is %s", ErrStatusFinal, id, appt.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("Decide: failed to update status for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Decide - update status: %v", ErrInternal, err)
	}

	s.logger.Info("Decide: appointment %s moved to %s", id, status)
	return s.GetByID(ctx, id)
}

// catalogIndex справочники услуг и мастеров для обогащения записей
type catalogIndex struct {
	serviceNames      map[string]string
	serviceDurations  map[string]int
	professionalNames map[string]string
}

func (s *Service) loadCatalog(ctx context.Context) (*catalogIndex, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("loadCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}
	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("loadCatalog: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: list professionals: %v", ErrInternal, err)
	}

	idx := &catalogIndex{
		serviceNames:      make(map[string]string, len(services)),
		serviceDurations:  make(map[string]int, len(services)),
		professionalNames: make(map[string]string, len(professionals)),
	}
	for _, svc := range services {
		idx.serviceNames[svc.ID] = svc.Name
		idx.serviceDurations[svc.ID] = svc.DurationMinutes
	}
	for _, prof := range professionals {
		idx.professionalNames[prof.ID] = prof.Name
	}
	return idx, nil
}
