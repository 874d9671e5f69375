package catalog

import (
	"errors"
	"testing"
)

func TestStore_AddEpisode_LinksBothDirections(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)

	e := &Episode{Title: "Pilot", EpisodeNumber: 1,
		DownloadLinks: DownloadLinks{P1080: "https://dl.example.com/s01e01-1080.mkv"}}
	if err := store.AddEpisode(sr.ID, e); err != nil {
		t.Fatalf("AddEpisode: %v", err)
	}

	if e.ID == 0 {
		t.Error("ID should be set after AddEpisode")
	}
	if e.SeriesID == nil || *e.SeriesID != sr.ID {
		t.Errorf("SeriesID = %v, want back-reference to %d", e.SeriesID, sr.ID)
	}

	got, err := store.GetSeries(sr.ID)
	if err != nil {
		t.Fatalf("GetSeries: %v", err)
	}
	if len(got.EpisodeIDs) != 1 || got.EpisodeIDs[0] != e.ID {
		t.Errorf("EpisodeIDs = %v, want [%d]", got.EpisodeIDs, e.ID)
	}
}

func TestStore_AddEpisode_SeriesNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	e := &Episode{Title: "Pilot", EpisodeNumber: 1}
	err := store.AddEpisode(9999, e)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddEpisode: got %v, want ErrNotFound", err)
	}

	// the failed create must not leave an orphan row behind
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM episodes").Scan(&count); err != nil {
		t.Fatalf("count episodes: %v", err)
	}
	if count != 0 {
		t.Errorf("episodes table has %d rows after failed create, want 0", count)
	}
}

func TestStore_AddEpisode_Validation(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)

	tests := []struct {
		name string
		ep   *Episode
	}{
		{"missing title", &Episode{EpisodeNumber: 1}},
		{"zero number", &Episode{Title: "Pilot"}},
		{"negative number", &Episode{Title: "Pilot", EpisodeNumber: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.AddEpisode(sr.ID, tt.ep); !errors.Is(err, ErrValidation) {
				t.Errorf("AddEpisode: got %v, want ErrValidation", err)
			}
		})
	}
}

func TestStore_AddEpisode_AppendsInOrder(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e1 := addTestEpisode(t, store, sr.ID, 1, "Pilot")
	e2 := addTestEpisode(t, store, sr.ID, 2, "Half Loop")
	e3 := addTestEpisode(t, store, sr.ID, 3, "In Perpetuity")

	got, err := store.GetSeries(sr.ID)
	if err != nil {
		t.Fatalf("GetSeries: %v", err)
	}
	want := []int64{e1.ID, e2.ID, e3.ID}
	if len(got.EpisodeIDs) != 3 {
		t.Fatalf("EpisodeIDs = %v, want 3 entries", got.EpisodeIDs)
	}
	for i, id := range want {
		if got.EpisodeIDs[i] != id {
			t.Errorf("EpisodeIDs[%d] = %d, want %d", i, got.EpisodeIDs[i], id)
		}
	}
}

func TestStore_UpdateEpisode(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e := addTestEpisode(t, store, sr.ID, 1, "Pilot")

	updated, err := store.UpdateEpisode(e.ID, EpisodePatch{
		Title:         ptr("Good News About Hell"),
		DownloadLinks: &DownloadLinks{P480: "https://dl.example.com/s01e01-480.mkv"},
	})
	if err != nil {
		t.Fatalf("UpdateEpisode: %v", err)
	}

	if updated.Title != "Good News About Hell" {
		t.Errorf("Title = %q, want updated title", updated.Title)
	}
	if updated.EpisodeNumber != 1 {
		t.Errorf("EpisodeNumber = %d, want 1 unchanged", updated.EpisodeNumber)
	}
	if updated.DownloadLinks.P480 == "" {
		t.Error("DownloadLinks.P480 should be set")
	}
	if updated.SeriesID == nil || *updated.SeriesID != sr.ID {
		t.Errorf("SeriesID = %v, want %d unchanged", updated.SeriesID, sr.ID)
	}
}

func TestStore_UpdateEpisode_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, err := store.UpdateEpisode(9999, EpisodePatch{Title: ptr("Renamed")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEpisode: got %v, want ErrNotFound", err)
	}
}

func TestStore_UpdateEpisode_InvalidPatch(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e := addTestEpisode(t, store, sr.ID, 1, "Pilot")

	_, err := store.UpdateEpisode(e.ID, EpisodePatch{EpisodeNumber: ptr(0)})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateEpisode: got %v, want ErrValidation", err)
	}
}

func TestStore_DeleteEpisode_PullsFromMembership(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e1 := addTestEpisode(t, store, sr.ID, 1, "Pilot")
	e2 := addTestEpisode(t, store, sr.ID, 2, "Half Loop")

	if err := store.DeleteEpisode(e1.ID); err != nil {
		t.Fatalf("DeleteEpisode: %v", err)
	}

	if _, err := store.GetEpisode(e1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEpisode after delete: got %v, want ErrNotFound", err)
	}

	got, err := store.GetSeries(sr.ID)
	if err != nil {
		t.Fatalf("GetSeries: %v", err)
	}
	if len(got.EpisodeIDs) != 1 || got.EpisodeIDs[0] != e2.ID {
		t.Errorf("EpisodeIDs = %v, want [%d]", got.EpisodeIDs, e2.ID)
	}
}

func TestStore_DeleteEpisode_StaleSeriesReference(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e := addTestEpisode(t, store, sr.ID, 1, "Pilot")

	// point the back-reference at a series that no longer exists
	if _, err := db.Exec("UPDATE episodes SET series_id = 9999 WHERE id = ?", e.ID); err != nil {
		t.Fatalf("raw update: %v", err)
	}

	// pull step degrades to a no-op, the delete itself succeeds
	if err := store.DeleteEpisode(e.ID); err != nil {
		t.Fatalf("DeleteEpisode with stale reference: %v", err)
	}
}

func TestStore_DeleteEpisode_NullSeriesReference(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	sr := addTestSeries(t, store)
	e := addTestEpisode(t, store, sr.ID, 1, "Pilot")

	if _, err := db.Exec("UPDATE episodes SET series_id = NULL WHERE id = ?", e.ID); err != nil {
		t.Fatalf("raw update: %v", err)
	}

	if err := store.DeleteEpisode(e.ID); err != nil {
		t.Fatalf("DeleteEpisode with null reference: %v", err)
	}
}

func TestStore_DeleteEpisode_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	err := store.DeleteEpisode(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEpisode: got %v, want ErrNotFound", err)
	}
}
