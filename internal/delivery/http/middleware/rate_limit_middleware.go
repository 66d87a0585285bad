package middleware

import (
	"net/http"
	"time"

	"turnos-web/pkg/response"

	"github.com/go-chi/httprate"
)

// NewRateLimiter limits each client IP to requestsPerMinute requests.
// A non-positive limit disables limiting.
func NewRateLimiter(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.TooManyRequests(w, "Demasiadas peticiones, intenta más tarde")
		}),
	)
}
