package middleware

import (
	"log/slog"
	"net/http"

	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/httpx"
)

// Recover converts a handler panic into a 500 JSON error instead of a
// dropped connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec)
				httpx.WriteJSON(w, http.StatusInternalServerError, api.Error{Error: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
