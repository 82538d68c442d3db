// internal/middleware/user_context.go
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftsync/shiftsync_backend/config"
)

// GetUserID возвращает uid текущего пользователя из контекста.
func GetUserID(ctx context.Context) (string, bool) {
	if val := ctx.Value(config.UserIDKey); val != nil {
		if uid, ok := val.(string); ok && uid != "" {
			return uid, true
		}
	}
	return "", false
}

// AddUserIDToContext извлекает user_id из JWT и кладёт в контекст.
func AddUserIDToContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, _ := jwtauth.FromContext(r.Context())
			if claims == nil {
				next.ServeHTTP(w, r)
				return
			}

			if uid, ok := claims["user_id"].(string); ok && uid != "" {
				ctx := context.WithValue(r.Context(), config.UserIDKey, uid)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
