package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "erro interno do servidor"

// ErrorResponse стандартное тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в переданную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON отправляет успешный ответ с JSON телом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondNoContent отправляет пустой ответ 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError отправляет ответ с ошибкой и заданным статусом
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondBadRequest отправляет ответ 400
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondUnauthorized отправляет ответ 401
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusUnauthorized, msg)
}

// RespondNotFound отправляет ответ 404
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondConflict отправляет ответ 409
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusConflict, msg)
}

// RespondInternalError отправляет ответ 500 со стандартным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
