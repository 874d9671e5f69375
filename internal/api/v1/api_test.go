// internal/api/v1/api_test.go
package v1

import (
	"bytes"
	"database/sql"
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/reelcat/internal/catalog"
)

//go:embed testdata/schema.sql
var testSchema string

const testPassword = "letmein"

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err, "apply schema")
	return db
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db := setupTestDB(t)
	cfg := Config{
		AdminPassword:  testPassword,
		PosterFolder:   "movie_posters",
		PreviewsFolder: "preview_images",
	}
	return New(db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// doRequest routes a request through the full mux so method patterns and
// middleware are exercised, not just the bare handler.
func doRequest(t *testing.T, srv *Server, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "marshal body")
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if admin {
		req.Header.Set(adminHeader, testPassword)
	}

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "decode response: %s", w.Body.String())
	return v
}

func testMovie() *catalog.Movie {
	return &catalog.Movie{
		Title:       "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Genre:       "Sci-Fi",
		Year:        1982,
		Language:    "English",
		Quality:     "1080p",
		Rating:      8.1,
		Status:      "Released",
		Poster:      "https://img.example/blade-runner.jpg",
		Previews:    []string{"https://img.example/br-1.jpg"},
		DownloadLinks: catalog.DownloadLinks{
			P720:  "https://dl.example/br-720",
			P1080: "https://dl.example/br-1080",
		},
	}
}

func testSeries() *catalog.Series {
	return &catalog.Series{
		Title:       "Severance",
		Description: "Employees undergo a procedure that splits their memories.",
		Genre:       "Thriller",
		Year:        2022,
		Rating:      8.7,
		Poster:      "https://img.example/severance.jpg",
	}
}

func TestNew(t *testing.T) {
	srv := newTestServer(t)
	require.NotNil(t, srv)
	assert.NotNil(t, srv.store, "store not initialized")
	assert.Nil(t, srv.uploader, "uploader should be unset until configured")
}

func TestRequireAdmin_NoPassword(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/api/admin/check-auth", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "Access Denied: No password provided.", resp.Message)
}

func TestRequireAdmin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/check-auth", nil)
	req.Header.Set(adminHeader, "not-the-password")
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "Access Denied: Incorrect password.", resp.Message)
}

func TestCheckAuth(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/api/admin/check-auth", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Admin authenticated.", resp["message"])
}

func TestPublicRoutes_NoPasswordRequired(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/movies", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutes_Gated(t *testing.T) {
	srv := newTestServer(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/admin/movies"},
		{http.MethodPut, "/api/admin/movies/1"},
		{http.MethodDelete, "/api/admin/movies/1"},
		{http.MethodPost, "/api/admin/series"},
		{http.MethodPut, "/api/admin/series/1"},
		{http.MethodDelete, "/api/admin/series/1"},
		{http.MethodPost, "/api/admin/series/1/episodes"},
		{http.MethodPut, "/api/admin/episodes/1"},
		{http.MethodDelete, "/api/admin/episodes/1"},
		{http.MethodPost, "/api/upload/poster"},
		{http.MethodPost, "/api/upload/previews"},
	}
	for _, p := range paths {
		w := doRequest(t, srv, p.method, p.path, nil, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should be gated", p.method, p.path)
	}
}

func TestUpload_NoUploaderConfigured(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/api/upload/poster", nil, true)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeBody[errorResponse](t, w)
	assert.Equal(t, "Image host not configured", resp.Message)
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	handler := CORS(mux, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodOptions, "/api/movies", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), adminHeader)
}

func TestCORS_PassThrough(t *testing.T) {
	srv := newTestServer(t)
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	handler := CORS(mux, "http://localhost:3000")

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
