package server

import (
	"net/http"
)

// apiHeadersMiddleware marks every API response as uncacheable JSON and caps
// the request body.
func (s *Server) apiHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// quotes are computed per request
		w.Header().Set("Cache-Control", "no-store")

		// Prevent MIME-sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		next.ServeHTTP(w, r)
	})
}
