package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/geekpf/agenda2/internal/domain"
	professionalRepo "github.com/geekpf/agenda2/internal/infra/storage/professional"
	serviceRepo "github.com/geekpf/agenda2/internal/infra/storage/service"
	"github.com/geekpf/agenda2/internal/service/catalog/models"
	"github.com/geekpf/agenda2/pkg/ptr"
)

// Service сервис для управления каталогом услуг и мастеров
type Service struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// CreateService создает новую услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	svc := &domain.Service{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		PixKey:          normalizeOptional(req.PixKey),
		PixQRCode:       normalizeOptional(req.PixQRCode),
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service %s created", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id string) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		s.logger.Error("GetService: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(svc), nil
}

// ListServices возвращает все услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// UpdateService полностью обновляет услугу
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	svc := &domain.Service{
		ID:              req.ID,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		PixKey:          normalizeOptional(req.PixKey),
		PixQRCode:       normalizeOptional(req.PixQRCode),
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ID)
		}
		s.logger.Error("UpdateService: repository error for id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service %s updated", req.ID)
	return s.GetService(ctx, req.ID)
}

// DeleteService удаляет услугу.
// Удаление запрещено, пока на услугу ссылаются активные записи.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	inUse, err := s.appointmentRepo.ExistsHoldingForService(ctx, id)
	if err != nil {
		s.logger.Error("DeleteService: failed to check appointments for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - check appointments: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("DeleteService: service %s has active appointments", id)
		return fmt.Errorf("%w: %s", ErrServiceInUse, id)
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		s.logger.Error("DeleteService: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: service %s deleted", id)
	return nil
}

// CreateProfessional создает нового мастера
func (s *Service) CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	serviceIDs, err := s.validateProfessionalFields(ctx, req.Name, req.ServiceIDs)
	if err != nil {
		s.logger.Warn("CreateProfessional: validation failed: %v", err)
		return nil, err
	}

	prof := &domain.Professional{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		ServiceIDs: serviceIDs,
		PhotoURL:   normalizeOptional(req.PhotoURL),
	}

	var created *domain.Professional
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.professionalRepo.Create(txCtx, prof)
		return err
	})
	if txErr != nil {
		s.logger.Error("CreateProfessional: repository error: %v", txErr)
		return nil, fmt.Errorf("%w: CreateProfessional - repository error: %v", ErrInternal, txErr)
	}

	s.logger.Info("CreateProfessional: professional %s created", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetProfessional получает мастера по ID
func (s *Service) GetProfessional(ctx context.Context, id string) (*models.ProfessionalResponse, error) {
	prof, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfessionalNotFound, id)
		}
		s.logger.Error("GetProfessional: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetProfessional - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessional(prof), nil
}

// ListProfessionals возвращает всех мастеров.
// Опционально фильтрует по услуге, которую мастер оказывает.
func (s *Service) ListProfessionals(ctx context.Context, serviceID *string) (*models.ProfessionalListResponse, error) {
	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	if serviceID != nil {
		filtered := make([]*domain.Professional, 0, len(professionals))
		for _, prof := range professionals {
			if prof.Offers(*serviceID) {
				filtered = append(filtered, prof)
			}
		}
		professionals = filtered
	}

	return models.FromDomainProfessionals(professionals), nil
}

// UpdateProfessional полностью обновляет мастера
func (s *Service) UpdateProfessional(ctx context.Context, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	serviceIDs, err := s.validateProfessionalFields(ctx, req.Name, req.ServiceIDs)
	if err != nil {
		s.logger.Warn("UpdateProfessional: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	prof := &domain.Professional{
		ID:         req.ID,
		Name:       strings.TrimSpace(req.Name),
		ServiceIDs: serviceIDs,
		PhotoURL:   normalizeOptional(req.PhotoURL),
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.professionalRepo.Update(txCtx, prof)
	})
	if txErr != nil {
		if errors.Is(txErr, professionalRepo.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfessionalNotFound, req.ID)
		}
		s.logger.Error("UpdateProfessional: repository error for id=%s: %v", req.ID, txErr)
		return nil, fmt.Errorf("%w: UpdateProfessional - repository error: %v", ErrInternal, txErr)
	}

	s.logger.Info("UpdateProfessional: professional %s updated", req.ID)
	return s.GetProfessional(ctx, req.ID)
}

// DeleteProfessional удаляет мастера.
// Удаление запрещено, пока на мастера ссылаются активные записи.
func (s *Service) DeleteProfessional(ctx context.Context, id string) error {
	inUse, err := s.appointmentRepo.ExistsHoldingForProfessional(ctx, id)
	if err != nil {
		s.logger.Error("DeleteProfessional: failed to check appointments for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteProfessional - check appointments: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("DeleteProfessional: professional %s has active appointments", id)
		return fmt.Errorf("%w: %s", ErrProfessionalInUse, id)
	}

	if err := s.professionalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return fmt.Errorf("%w: %s", ErrProfessionalNotFound, id)
		}
		s.logger.Error("DeleteProfessional: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteProfessional: professional %s deleted", id)
	return nil
}

func validateServiceFields(name string, price float64, durationMinutes int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

// validateProfessionalFields проверяет поля мастера и что все услуги существуют.
// Возвращает отсортированный список идентификаторов услуг без дубликатов.
func (s *Service) validateProfessionalFields(ctx context.Context, name string, serviceIDs []string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	seen := make(map[string]struct{}, len(serviceIDs))
	unique := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: empty service id", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Strings(unique)

	for _, id := range unique {
		if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownService, id)
			}
			return nil, fmt.Errorf("%w: check service %s: %v", ErrInternal, id, err)
		}
	}

	return unique, nil
}

func normalizeOptional(v *string) *string {
	trimmed := strings.TrimSpace(ptr.Deref(v))
	if trimmed == "" {
		return nil
	}
	return ptr.Ptr(trimmed)
}
