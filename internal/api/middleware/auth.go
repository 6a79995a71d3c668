package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/geekpf/agenda2/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "token de administrador ausente ou inválido"

// AdminAuth проверяет заголовок X-Admin-Token на административных маршрутах
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
