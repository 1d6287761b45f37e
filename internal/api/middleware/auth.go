package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/premiermedia/AdBookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном административного доступа
const adminTokenHeader = "X-Admin-Token"

// Auth проверяет токен административных операций. Запись бронирований,
// управление инвентарем и блокировки доступны только с валидным токеном.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, "missing "+adminTokenHeader+" header")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
