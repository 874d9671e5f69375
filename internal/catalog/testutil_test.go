package catalog

import (
	"database/sql"
	_ "embed"
	"testing"

	_ "modernc.org/sqlite"
)

//go:embed testdata/schema.sql
var testSchema string

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

func newTestMovie() *Movie {
	return &Movie{
		Title:       "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Genre:       "Sci-Fi",
		Year:        1982,
		Language:    "English",
		Quality:     "1080p",
		Rating:      8.1,
		Status:      "Released",
		Poster:      "https://img.example.com/posters/blade-runner.jpg",
		Previews: []string{
			"https://img.example.com/previews/br-1.jpg",
			"https://img.example.com/previews/br-2.jpg",
		},
		DownloadLinks: DownloadLinks{P720: "https://dl.example.com/br-720.mkv"},
	}
}

func newTestSeries() *Series {
	return &Series{
		Title:       "Severance",
		Description: "Employees undergo a procedure that splits their memories.",
		Genre:       "Thriller",
		Year:        2022,
		Poster:      "https://img.example.com/posters/severance.jpg",
	}
}

func addTestSeries(t *testing.T, store *Store) *Series {
	t.Helper()
	sr := newTestSeries()
	if err := store.AddSeries(sr); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	return sr
}

func addTestEpisode(t *testing.T, store *Store, seriesID int64, number int, title string) *Episode {
	t.Helper()
	e := &Episode{Title: title, EpisodeNumber: number}
	if err := store.AddEpisode(seriesID, e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}
	return e
}
