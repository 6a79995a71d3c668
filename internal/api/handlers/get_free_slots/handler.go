package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	getFreeSlots "github.com/geekpf/agenda2/internal/usecase/get_free_slots"
)

const (
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingDate          = "o parâmetro date é obrigatório"
	msgProfessionalNotFound = "profissional não encontrado"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/free-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/free-slots - Missing date: id=%s", professionalID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req, err := ToUseCaseRequest(professionalID, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/free-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/free-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFreeSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/free-slots - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/free-slots - Failed: id=%s, date=%s, error=%v", professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
