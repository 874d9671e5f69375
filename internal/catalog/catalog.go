// Package catalog manages the media catalog (movies, series, episodes).
package catalog

import (
	"fmt"
	"time"
)

// DownloadLinks holds per-resolution download URLs. All fields are optional.
type DownloadLinks struct {
	P480  string
	P720  string
	P1080 string
}

// Movie is a standalone catalog entry.
type Movie struct {
	ID            int64
	Title         string
	Description   string
	Genre         string
	Year          int
	Language      string
	Quality       string
	Rating        float64
	Status        string
	Poster        string // URL on the external image host
	Previews      []string
	DownloadLinks DownloadLinks
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Series is a catalog entry that owns an ordered list of episode ids.
// EpisodeIDs is the membership list; episodes are independently addressable
// documents that back-reference the series via Episode.SeriesID.
type Series struct {
	ID          int64
	Title       string
	Description string
	Genre       string
	Year        int
	Language    string
	Quality     string
	Rating      float64
	Seasons     int
	Status      string
	Poster      string
	Previews    []string
	EpisodeIDs  []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Episode belongs to exactly one series. SeriesID is nil only transiently
// while an episode is being created.
type Episode struct {
	ID            int64
	Title         string
	EpisodeNumber int
	DownloadLinks DownloadLinks
	SeriesID      *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Series field defaults, applied on creation when the field is zero.
const (
	DefaultSeriesStatus   = "Ongoing"
	DefaultSeriesQuality  = "1080p"
	DefaultSeriesLanguage = "English"
	DefaultSeriesSeasons  = 1
)

// Validate checks the fields required at creation time.
func (m *Movie) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if m.Description == "" {
		return fmt.Errorf("description is required: %w", ErrValidation)
	}
	if m.Poster == "" {
		return fmt.Errorf("poster is required: %w", ErrValidation)
	}
	return nil
}

// Validate checks the fields required at creation time.
func (s *Series) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if s.Description == "" {
		return fmt.Errorf("description is required: %w", ErrValidation)
	}
	if s.Poster == "" {
		return fmt.Errorf("poster is required: %w", ErrValidation)
	}
	return nil
}

// Validate checks the fields required at creation time.
func (e *Episode) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if e.EpisodeNumber < 1 {
		return fmt.Errorf("episodeNumber must be >= 1: %w", ErrValidation)
	}
	return nil
}

// applyDefaults fills zero-valued series fields with their catalog defaults.
func (s *Series) applyDefaults() {
	if s.Status == "" {
		s.Status = DefaultSeriesStatus
	}
	if s.Quality == "" {
		s.Quality = DefaultSeriesQuality
	}
	if s.Language == "" {
		s.Language = DefaultSeriesLanguage
	}
	if s.Seasons == 0 {
		s.Seasons = DefaultSeriesSeasons
	}
}
