// Package v1 implements the catalog REST API.
package v1

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vmunix/reelcat/internal/catalog"
)

// Config holds API server configuration.
type Config struct {
	AdminPassword  string
	PosterFolder   string
	PreviewsFolder string
}

// Server is the catalog API server.
type Server struct {
	store    *catalog.Store
	uploader Uploader
	cfg      Config
	log      *slog.Logger
}

// New creates a new API server.
func New(db *sql.DB, cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store: catalog.NewStore(db),
		cfg:   cfg,
		log:   log,
	}
}

// SetUploader configures the image-host uploader (nil disables uploads).
func (s *Server) SetUploader(u Uploader) {
	s.uploader = u
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Public catalog
	mux.HandleFunc("GET /api/movies", s.listMovies)
	mux.HandleFunc("GET /api/movies/{id}", s.getMovie)
	mux.HandleFunc("GET /api/series", s.listSeries)
	mux.HandleFunc("GET /api/series/{id}", s.getSeries)

	// Admin
	mux.HandleFunc("POST /api/admin/check-auth", s.requireAdmin(s.checkAuth))
	mux.HandleFunc("POST /api/admin/movies", s.requireAdmin(s.createMovie))
	mux.HandleFunc("PUT /api/admin/movies/{id}", s.requireAdmin(s.updateMovie))
	mux.HandleFunc("DELETE /api/admin/movies/{id}", s.requireAdmin(s.deleteMovie))
	mux.HandleFunc("POST /api/admin/series", s.requireAdmin(s.createSeries))
	mux.HandleFunc("PUT /api/admin/series/{id}", s.requireAdmin(s.updateSeries))
	mux.HandleFunc("DELETE /api/admin/series/{id}", s.requireAdmin(s.deleteSeries))
	mux.HandleFunc("POST /api/admin/series/{seriesId}/episodes", s.requireAdmin(s.createEpisode))
	mux.HandleFunc("PUT /api/admin/episodes/{id}", s.requireAdmin(s.updateEpisode))
	mux.HandleFunc("DELETE /api/admin/episodes/{id}", s.requireAdmin(s.deleteEpisode))

	// Asset uploads (admin-gated, delegated to the external image host)
	mux.HandleFunc("POST /api/upload/poster", s.requireAdmin(s.requireUploader(s.uploadPoster)))
	mux.HandleFunc("POST /api/upload/previews", s.requireAdmin(s.requireUploader(s.uploadPreviews)))
}

// Error response: every error body is {"message": "..."}.
type errorResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeStoreError translates catalog errors into HTTP responses. Unexpected
// store failures are logged with detail and surfaced as a generic 500.
func (s *Server) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage(op))
	default:
		s.log.Error("store error", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func notFoundMessage(op string) string {
	switch op {
	case "movie":
		return "Movie not found"
	case "series":
		return "Series not found"
	case "episode":
		return "Episode not found"
	}
	return "not found"
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// decodeStrict decodes a JSON request body, rejecting unknown fields so a
// typo'd or unsupported field fails loudly instead of being dropped.
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) checkAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Admin authenticated.",
	})
}
