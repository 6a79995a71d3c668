package get_available_dates

import (
	"github.com/geekpf/agenda2/internal/domain"
	getAvailableDates "github.com/geekpf/agenda2/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ProfessionalID string   `json:"professionalId"`
	ReferenceDate  string   `json:"referenceDate"`
	HorizonDays    int      `json:"horizonDays"`
	Dates          []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}
	return &AvailableDatesResponse{
		ProfessionalID: resp.ProfessionalID,
		ReferenceDate:  resp.ReferenceDate.Format(domain.DateFormat),
		HorizonDays:    resp.HorizonDays,
		Dates:          dates,
	}
}
