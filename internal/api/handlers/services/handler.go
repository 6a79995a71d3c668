package services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/geekpf/agenda2/internal/api/handlers"
	"github.com/geekpf/agenda2/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "dados da requisição inválidos"
	msgServiceNotFound    = "serviço não encontrado"
	msgServiceInUse       = "serviço possui agendamentos ativos"
	msgNoPaymentInfo      = "serviço não possui chave pix configurada"
)

const pixQRSize = 256

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

// List GET /api/v1/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromServiceListResponse(result))
}

// PixQR GET /api/v1/services/{serviceId}/pix-qr
// Отдает PNG с QR-кодом, сгенерированным из chave pix услуги.
func (h *Handler) PixQR(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	svc, err := h.catalog.GetService(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id}/pix-qr - Failed: id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}
	if svc.PixKey == nil {
		handlers.RespondNotFound(w, msgNoPaymentInfo)
		return
	}

	png, err := qrcode.Encode(*svc.PixKey, qrcode.Medium, pixQRSize)
	if err != nil {
		h.logger.Error("GET /services/{id}/pix-qr - Failed to encode QR: id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Create POST /api/v1/admin/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.CreateService(r.Context(), req.ToCreateRequest())
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)
			return
		}
		h.logger.Error("POST /admin/services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

// Update PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: id=%s, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.UpdateService(r.Context(), req.ToUpdateRequest(serviceID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/services/{id} - Validation failed: id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id} - Not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /admin/services/{id} - Failed: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// Delete DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.catalog.DeleteService(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/{id} - Not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /admin/services/{id} - In use: id=%s", serviceID)
			handlers.RespondConflict(w, msgServiceInUse)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
