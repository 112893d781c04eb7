package middleware

import (
	"net/http"

	"oficina/internal/platform/logger"
	pnet "oficina/internal/platform/net"
)

// RequestLogContext copies the request id set by RequestID into the logger
// context so logger.C picks it up downstream. Mount after RequestID
func RequestLogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := pnet.RequestID(r.Context()); id != "" {
			r = r.WithContext(logger.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
