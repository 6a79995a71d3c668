package get_free_slots

import (
	"time"

	"github.com/geekpf/agenda2/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ProfessionalID string    // ID мастера
	Date           time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProfessionalID string             // ID мастера
	Date           time.Time          // Дата, на которую запрашивались слоты
	Slots          []types.TimeString // Свободные слоты по возрастанию
}
