package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

const bearerPrefix = "Bearer "

// Auth защищает админские маршруты статическим токеном.
// Сравнение за константное время.
func Auth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			got := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				utils.WriteError(w, "invalid token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
