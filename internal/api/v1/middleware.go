package v1

import "net/http"

// adminHeader carries the shared admin secret. One static value for all
// administrators; no sessions, no expiry.
const adminHeader = "x-admin-password"

// requireAdmin gates a handler behind the shared-secret header: 401 when the
// header is absent, 403 when it doesn't match.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get(adminHeader)
		if password == "" {
			writeError(w, http.StatusUnauthorized, "Access Denied: No password provided.")
			return
		}
		if password != s.cfg.AdminPassword {
			writeError(w, http.StatusForbidden, "Access Denied: Incorrect password.")
			return
		}
		next(w, r)
	}
}

// requireUploader wraps a handler and returns 503 if no image host is configured.
func (s *Server) requireUploader(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.uploader == nil {
			writeError(w, http.StatusServiceUnavailable, "Image host not configured")
			return
		}
		next(w, r)
	}
}

// CORS restricts browser access to the configured frontend origin and
// answers preflight requests before they reach the mux.
func CORS(next http.Handler, origin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+adminHeader)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
