package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/geekpf/agenda2/internal/domain"
	professionalRepo "github.com/geekpf/agenda2/internal/infra/storage/professional"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Чтение без побочных эффектов; вырожденные случаи (выключенный день,
// все слоты заняты) дают пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: professional=%s, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ProfessionalID == "" {
		uc.logger.Warn("GetFreeSlots: empty professional id")
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetFreeSlots: zero date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем существование мастера
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetFreeSlots: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Загружаем недельное расписание
	availability, err := uc.availabilityRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Загружаем записи мастера на эту дату, удерживающие слоты
	appointments, err := uc.appointmentRepo.ListByProfessionalAndDate(ctx, req.ProfessionalID, req.Date, true)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Чистое вычисление свободных слотов
	slots := FreeSlots(req.ProfessionalID, req.Date, availability, appointments)

	uc.logger.Info("GetFreeSlots: %d free slots for professional=%s on %s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          slots,
	}, nil
}
