package professionals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	"github.com/geekpf/agenda2/internal/service/catalog"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidFields        = "dados da requisição inválidos"
	msgUnknownService       = "lista de serviços contém serviço inexistente"
	msgProfessionalNotFound = "profissional não encontrado"
	msgProfessionalInUse    = "profissional possui agendamentos ativos"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// List GET /api/v1/professionals?serviceId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var serviceID *string
	if v := r.URL.Query().Get("serviceId"); v != "" {
		serviceID = &v
	}

	result, err := h.catalog.ListProfessionals(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /professionals - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromProfessionalListResponse(result))
}

// Create POST /api/v1/admin/professionals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.CreateProfessional(r.Context(), req.ToCreateRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownService):
			h.logger.Warn("POST /admin/professionals - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/professionals - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /admin/professionals - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromProfessionalResponse(result))
}

// Update PUT /api/v1/admin/professionals/{professionalId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/professionals/{id} - Invalid request body: id=%s, error=%v", professionalID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.UpdateProfessional(r.Context(), req.ToUpdateRequest(professionalID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownService):
			h.logger.Warn("PUT /admin/professionals/{id} - Unknown service: id=%s, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/professionals/{id} - Validation failed: id=%s, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, catalog.ErrProfessionalNotFound):
			h.logger.Warn("PUT /admin/professionals/{id} - Not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("PUT /admin/professionals/{id} - Failed: id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromProfessionalResponse(result))
}

// Delete DELETE /api/v1/admin/professionals/{professionalId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["professionalId"]

	if err := h.catalog.DeleteProfessional(r.Context(), professionalID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /admin/professionals/{id} - Not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, catalog.ErrProfessionalInUse):
			h.logger.Warn("DELETE /admin/professionals/{id} - In use: id=%s", professionalID)
			handlers.RespondConflict(w, msgProfessionalInUse)

		default:
			h.logger.Error("DELETE /admin/professionals/{id} - Failed: id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
