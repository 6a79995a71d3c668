package appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	"github.com/geekpf/agenda2/internal/domain"
	appointmentsService "github.com/geekpf/agenda2/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidStatus       = "status deve ser confirmed ou rejected"
	msgAppointmentNotFound = "agendamento não encontrado"
	msgStatusFinal         = "agendamento já foi decidido"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/appointments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromServiceListResponse(result))
}

// UpdateStatus PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: id=%s, error=%v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Decide(r.Context(), appointmentID, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status %q: id=%s", req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrStatusFinal):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Already decided: id=%s", appointmentID)
			handlers.RespondConflict(w, msgStatusFinal)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
