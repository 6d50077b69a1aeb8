package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shelterkin/alertkit/components"
)

// Recover turns a panic into a 500 response carrying an error alert.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(r.Context())
				slog.Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
				)

				alert := components.NewAlert("server-error", components.Text("Something went wrong. Please try again."), components.Text("Internal Server Error")).
					SetSeverity(components.SeverityError).
					SetCloseButtonVisible(false)
				alert.Prepare(r.Context(), nil)

				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				if err := alert.Render(r.Context(), w); err != nil {
					slog.Error("rendering panic response", "path", r.URL.Path, "request_id", requestID, "error", err)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
