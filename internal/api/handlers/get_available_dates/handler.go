package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	getAvailableDates "github.com/geekpf/agenda2/internal/usecase/get_available_dates"
)

const (
	msgMissingProfessionalID = "identificador do profissional é obrigatório"
	msgProfessionalNotFound  = "profissional não encontrado"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ProfessionalID: professionalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingProfessionalID)

		case errors.Is(err, getAvailableDates.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-dates - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/available-dates - Failed: id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
