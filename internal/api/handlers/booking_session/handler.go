package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	"github.com/geekpf/agenda2/internal/domain"
	bookingFlow "github.com/geekpf/agenda2/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidDate         = "formato de data inválido, esperado YYYY-MM-DD"
	msgSessionNotFound     = "sessão de agendamento não encontrada"
	msgInvalidState        = "operação não permitida na etapa atual"
	msgServiceNotFound     = "serviço não encontrado"
	msgProfessionalNotFnd  = "profissional não encontrado"
	msgProfessionalNotElig = "profissional não oferece o serviço selecionado"
	msgDateNotAvailable    = "data indisponível para agendamento"
	msgSlotNotAvailable    = "horário indisponível na data selecionada"
	msgSlotTaken           = "horário acabou de ser reservado, escolha outro"
	msgMissingClientInfo   = "nome e contato são obrigatórios"
	msgInvalidInput        = "dados da requisição inválidos"
)

type Handler struct {
	useCase BookingFlowUseCase
	logger  Logger
}

func NewHandler(useCase BookingFlowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/booking-sessions
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.useCase.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /booking-sessions - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, FromSessionView(view))
}

// Get GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.useCase.Get(r.Context(), sessionID)
	if err != nil {
		h.respondFlowError(w, "GET /booking-sessions/{id}", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// SelectService POST /api/v1/booking-sessions/{sessionId}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SelectService(r.Context(), &bookingFlow.SelectServiceRequest{
		SessionID: sessionID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/service", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// SelectProfessional POST /api/v1/booking-sessions/{sessionId}/professional
func (h *Handler) SelectProfessional(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/professional - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SelectProfessional(r.Context(), &bookingFlow.SelectProfessionalRequest{
		SessionID:      sessionID,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/professional", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// SelectDateTime POST /api/v1/booking-sessions/{sessionId}/datetime
func (h *Handler) SelectDateTime(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.useCase.SelectDateTime(r.Context(), &bookingFlow.SelectDateTimeRequest{
		SessionID: sessionID,
		Date:      date,
		Slot:      req.ToSlot(),
	})
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/datetime", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// Confirm POST /api/v1/booking-sessions/{sessionId}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.Confirm(r.Context(), &bookingFlow.ConfirmRequest{
		SessionID:     sessionID,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
	})
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/confirm", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, FromSessionView(view))
}

// Back POST /api/v1/booking-sessions/{sessionId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.useCase.Back(r.Context(), sessionID)
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/back", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// Restart POST /api/v1/booking-sessions/{sessionId}/restart
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.useCase.Restart(r.Context(), sessionID)
	if err != nil {
		h.respondFlowError(w, "POST /booking-sessions/{id}/restart", sessionID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSessionView(view))
}

// respondFlowError единая конвертация ошибок use case в HTTP статусы
func (h *Handler) respondFlowError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, bookingFlow.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, bookingFlow.ErrInvalidState):
		h.logger.Warn("%s - Invalid state: id=%s, error=%v", op, sessionID, err)
		handlers.RespondConflict(w, msgInvalidState)

	case errors.Is(err, bookingFlow.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, bookingFlow.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found: id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgProfessionalNotFnd)

	case errors.Is(err, bookingFlow.ErrProfessionalNotEligible):
		h.logger.Warn("%s - Professional not eligible: id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgProfessionalNotElig)

	case errors.Is(err, bookingFlow.ErrDateNotAvailable):
		h.logger.Warn("%s - Date not available: id=%s, error=%v", op, sessionID, err)
		handlers.RespondBadRequest(w, msgDateNotAvailable)

	case errors.Is(err, bookingFlow.ErrSlotNotAvailable):
		h.logger.Warn("%s - Slot not available: id=%s, error=%v", op, sessionID, err)
		handlers.RespondBadRequest(w, msgSlotNotAvailable)

	case errors.Is(err, bookingFlow.ErrSlotTaken):
		h.logger.Warn("%s - Slot taken: id=%s", op, sessionID)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, bookingFlow.ErrMissingClientInfo):
		h.logger.Warn("%s - Missing client info: id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgMissingClientInfo)

	case errors.Is(err, bookingFlow.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: id=%s, error=%v", op, sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
