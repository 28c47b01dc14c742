package rest

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"net/http"
)

// RequireSession пропускает запрос только при непустом токене в хранилище сессии.
// Сам токен не проверяется, это делает бэкенд.
func RequireSession(session port.SessionStorePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := session.Get(r.Context())
			if err != nil {
				contextkeys.LoggerFromContext(r.Context()).Error("Failed to read admin session", err, nil)
				WriteJSONError(w, http.StatusInternalServerError, "Failed to read session")
				return
			}
			if token == "" {
				WriteJSONError(w, http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
