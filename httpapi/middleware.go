package httpapi

import (
	"net/http"
	"slices"
)

// authHeader is the shared-secret header checked on API routes.
const authHeader = "X-Auth-Token"

// withAuth rejects requests whose shared-secret header does not match the
// configured token. An empty configured token disables the check.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.HTTP.AuthToken != "" && r.Header.Get(authHeader) != s.cfg.HTTP.AuthToken {
			s.logger.Warn("rejected request with bad auth token", "path", r.URL.Path)
			s.writeError(w, http.StatusUnauthorized, "unauthorized")

			return
		}
		next.ServeHTTP(w, r)
	})
}

// withCORS answers preflight requests and sets CORS headers for allowed
// origins.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(s.cfg.HTTP.AllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+authHeader)
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
