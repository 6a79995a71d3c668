package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/geekpf/agenda2/internal/api/handlers"
	"github.com/geekpf/agenda2/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDayOfWeek   = "dia da semana deve estar entre 0 e 6"
	msgInvalidSlot        = "horário inválido, esperado HH:MM"
)

type Handler struct {
	schedule ScheduleService
	logger   Logger
}

func NewHandler(schedule ScheduleService, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// GetWeek GET /api/v1/admin/availability
func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.schedule.GetWeek(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainWeek(week))
}

// UpdateDay PUT /api/v1/admin/availability/{dayOfWeek}
func (h *Handler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	dayStr := mux.Vars(r)["dayOfWeek"]
	dayOfWeek, err := strconv.Atoi(dayStr)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/{day} - Invalid day %q", dayStr)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/{day} - Invalid request body: day=%d, error=%v", dayOfWeek, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := h.schedule.UpdateDay(r.Context(), dayOfWeek, req.Enabled, req.ToSlots())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /admin/availability/{day} - Invalid day of week: %d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidSlot):
			h.logger.Warn("PUT /admin/availability/{day} - Invalid slot: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("PUT /admin/availability/{day} - Failed: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDay(day))
}
