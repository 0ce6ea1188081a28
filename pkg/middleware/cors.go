package middleware

import (
	"net/http"
	"strings"
)

// DefaultAllowedOrigins vale quando a configuração não define origens
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:4001",
	"https://sales-achievement-web.vercel.app",
}

// Cors libera as origens informadas. Lista vazia usa DefaultAllowedOrigins.
func Cors(origins ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(strings.TrimSpace(o), "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
				h.Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With")
				h.Set("Access-Control-Expose-Headers", CorrelationIDHeader)
				h.Set("Access-Control-Max-Age", "86400")
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
