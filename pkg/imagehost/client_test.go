package imagehost

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeHost records the last upload request and answers like the real API.
type fakeHost struct {
	t *testing.T

	status    int
	secureURL string

	gotPath     string
	gotAPIKey   string
	gotFolder   string
	gotPublicID string
	gotFilename string
	gotContent  string
}

func (f *fakeHost) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.gotPath = r.URL.Path

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			f.t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.gotAPIKey = r.FormValue("api_key")
		f.gotFolder = r.FormValue("folder")
		f.gotPublicID = r.FormValue("public_id")

		file, header, err := r.FormFile("file")
		if err != nil {
			f.t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()
		f.gotFilename = header.Filename
		if data, err := io.ReadAll(file); err == nil {
			f.gotContent = string(data)
		}

		w.WriteHeader(f.status)
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": f.secureURL})
	}
}

func TestClient_Upload(t *testing.T) {
	fake := &fakeHost{t: t, status: http.StatusOK, secureURL: "https://img.example.com/movie_posters/poster-1.jpg"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("demo", "key123", WithBaseURL(srv.URL))

	url, err := c.Upload(context.Background(), "movie_posters", "poster-1", "Amélie Poster.JPG", strings.NewReader("imagebytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if url != fake.secureURL {
		t.Errorf("url = %q, want %q", url, fake.secureURL)
	}
	if fake.gotPath != "/v1_1/demo/image/upload" {
		t.Errorf("path = %q", fake.gotPath)
	}
	if fake.gotAPIKey != "key123" {
		t.Errorf("api_key = %q", fake.gotAPIKey)
	}
	if fake.gotFolder != "movie_posters" {
		t.Errorf("folder = %q", fake.gotFolder)
	}
	if fake.gotPublicID != "poster-1" {
		t.Errorf("public_id = %q", fake.gotPublicID)
	}
	if fake.gotFilename != "amelie-poster.jpg" {
		t.Errorf("filename = %q, want sanitized", fake.gotFilename)
	}
	if fake.gotContent != "imagebytes" {
		t.Errorf("content = %q", fake.gotContent)
	}
}

func TestClient_Upload_HostError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("demo", "bad", WithBaseURL(srv.URL))

	_, err := c.Upload(context.Background(), "movie_posters", "poster-1", "a.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("Upload should fail on a non-200 response")
	}
}

func TestClient_Upload_NoURLInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewClient("demo", "key", WithBaseURL(srv.URL))

	_, err := c.Upload(context.Background(), "f", "p", "a.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("Upload should fail when the host returns no URL")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amélie Poster.JPG", "amelie-poster.jpg"},
		{"Léon: The Professional.png", "leon-the-professional.png"},
		{"already-safe.jpg", "already-safe.jpg"},
		{"***", "upload"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPublicID(t *testing.T) {
	id := PublicID("poster")
	if !strings.HasPrefix(id, "poster-") {
		t.Errorf("PublicID = %q, want poster- prefix", id)
	}
}
