package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	professionalRepo "github.com/geekpf/agenda2/internal/infra/storage/professional"
)

// UseCase use case для получения дат, открытых для бронирования
type UseCase struct {
	availabilityRepo AvailabilityRepository
	professionalRepo ProfessionalRepository
	horizonDays      int
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	professionalRepo ProfessionalRepository,
	horizonDays int,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		professionalRepo: professionalRepo,
		horizonDays:      horizonDays,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: professional=%s, horizon=%d", req.ProfessionalID, uc.horizonDays)

	// 1. Валидация входных данных
	if req.ProfessionalID == "" {
		uc.logger.Warn("GetAvailableDates: empty professional id")
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	// 2. Проверяем существование мастера
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableDates: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Загружаем недельное расписание
	availability, err := uc.availabilityRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. "Сегодня" в фиксированном локальном смещении
	referenceDate := uc.timeProvider.Now().In(uc.location)

	// 5. Чистое вычисление окна
	dates := BookableDates(availability, uc.horizonDays, referenceDate)

	uc.logger.Info("GetAvailableDates: %d bookable dates for professional=%s from %s",
		len(dates), req.ProfessionalID, referenceDate.Format(domain.DateFormat))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		ReferenceDate:  referenceDate,
		HorizonDays:    uc.horizonDays,
		Dates:          dates,
	}, nil
}
