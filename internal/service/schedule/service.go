package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

// Service сервис для управления недельным расписанием салона
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetWeek возвращает шаблон расписания на все семь дней недели
func (s *Service) GetWeek(ctx context.Context) ([]domain.DayAvailability, error) {
	week, err := s.availabilityRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return week, nil
}

// UpdateDay обновляет шаблон одного дня недели.
// Слоты нормализуются: дубликаты удаляются, порядок сортируется по возрастанию.
func (s *Service) UpdateDay(ctx context.Context, dayOfWeek int, enabled bool, slots []types.TimeString) (*domain.DayAvailability, error) {
	if dayOfWeek < 0 || dayOfWeek >= domain.DaysPerWeek {
		s.logger.Warn("UpdateDay: invalid day of week %d", dayOfWeek)
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, dayOfWeek)
	}

	normalized, err := normalizeSlots(slots)
	if err != nil {
		s.logger.Warn("UpdateDay: invalid slots for day %d: %v", dayOfWeek, err)
		return nil, err
	}

	day := domain.DayAvailability{
		DayOfWeek: dayOfWeek,
		Enabled:   enabled,
		Slots:     normalized,
	}

	if err := s.availabilityRepo.UpdateDay(ctx, day); err != nil {
		s.logger.Error("UpdateDay: repository error for day %d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDay: day %d updated, enabled=%t, slots=%d", dayOfWeek, enabled, len(normalized))
	return &day, nil
}

// normalizeSlots валидирует метки слотов, удаляет дубликаты и сортирует.
// Метки "HH:MM" с нулевым дополнением сортируются лексикографически.
func normalizeSlots(slots []types.TimeString) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{}, len(slots))
	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].IsAfter(out[i]) })
	return out, nil
}
