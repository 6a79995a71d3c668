package get_free_slots

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	getFreeSlots "github.com/geekpf/agenda2/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return &FreeSlotsResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(professionalID, dateStr string) (*getFreeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getFreeSlots.Request{
		ProfessionalID: professionalID,
		Date:           date,
	}, nil
}
