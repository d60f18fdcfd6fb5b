package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/salonmobile/booking-engine/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "accès réservé à l'administrateur"

// AdminAuth проверяет токен администратора на защищённых маршрутах.
// Пустой настроенный токен отключает проверку (локальная разработка)
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				got := r.Header.Get(AdminTokenHeader)
				if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
