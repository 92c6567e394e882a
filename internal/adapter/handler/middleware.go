package handler

import (
	"net/http"

	"go.uber.org/zap"

	"concert-ticketing/internal/core/ports"
)

// Admission rejects requests whose Authorization header does not carry an
// active queue token. The check runs before any seat or payment work.
func Admission(tokens ports.TokenStore, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenID := r.Header.Get("Authorization")
			if tokenID == "" {
				writeError(w, http.StatusUnauthorized, "missing token")
				return
			}

			active, err := tokens.IsActive(r.Context(), tokenID)
			if err != nil {
				log.Error("admission check failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !active {
				writeError(w, http.StatusUnauthorized, "token not active")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
