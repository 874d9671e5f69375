// internal/api/v1/types.go
package v1

import (
	"time"

	"github.com/vmunix/reelcat/internal/catalog"
)

// Wire format is camelCase JSON, matching what the browser frontend expects.

type downloadLinks struct {
	P480  string `json:"p480,omitempty"`
	P720  string `json:"p720,omitempty"`
	P1080 string `json:"p1080,omitempty"`
}

func (d downloadLinks) toCatalog() catalog.DownloadLinks {
	return catalog.DownloadLinks{P480: d.P480, P720: d.P720, P1080: d.P1080}
}

func linksFromCatalog(d catalog.DownloadLinks) downloadLinks {
	return downloadLinks{P480: d.P480, P720: d.P720, P1080: d.P1080}
}

// movieResponse is the API representation of a movie.
type movieResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Genre         string        `json:"genre,omitempty"`
	Year          int           `json:"year,omitempty"`
	Language      string        `json:"language,omitempty"`
	Quality       string        `json:"quality,omitempty"`
	Rating        float64       `json:"rating"`
	Status        string        `json:"status,omitempty"`
	Poster        string        `json:"poster"`
	Previews      []string      `json:"previews"`
	DownloadLinks downloadLinks `json:"downloadLinks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func movieToResponse(m *catalog.Movie) movieResponse {
	return movieResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Genre:         m.Genre,
		Year:          m.Year,
		Language:      m.Language,
		Quality:       m.Quality,
		Rating:        m.Rating,
		Status:        m.Status,
		Poster:        m.Poster,
		Previews:      m.Previews,
		DownloadLinks: linksFromCatalog(m.DownloadLinks),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// seriesResponse carries the raw membership list (episode ids).
type seriesResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre,omitempty"`
	Year        int       `json:"year,omitempty"`
	Language    string    `json:"language"`
	Quality     string    `json:"quality"`
	Rating      float64   `json:"rating"`
	Seasons     int       `json:"seasons"`
	Status      string    `json:"status"`
	Poster      string    `json:"poster"`
	Previews    []string  `json:"previews"`
	Episodes    []int64   `json:"episodes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func seriesToResponse(s *catalog.Series) seriesResponse {
	return seriesResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Genre:       s.Genre,
		Year:        s.Year,
		Language:    s.Language,
		Quality:     s.Quality,
		Rating:      s.Rating,
		Seasons:     s.Seasons,
		Status:      s.Status,
		Poster:      s.Poster,
		Previews:    s.Previews,
		Episodes:    s.EpisodeIDs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// seriesDetailResponse is the populated read: membership ids resolved to
// full episode documents in display order.
type seriesDetailResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Genre       string            `json:"genre,omitempty"`
	Year        int               `json:"year,omitempty"`
	Language    string            `json:"language"`
	Quality     string            `json:"quality"`
	Rating      float64           `json:"rating"`
	Seasons     int               `json:"seasons"`
	Status      string            `json:"status"`
	Poster      string            `json:"poster"`
	Previews    []string          `json:"previews"`
	Episodes    []episodeResponse `json:"episodes"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func seriesToDetailResponse(s *catalog.Series, episodes []*catalog.Episode) seriesDetailResponse {
	resp := seriesDetailResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Genre:       s.Genre,
		Year:        s.Year,
		Language:    s.Language,
		Quality:     s.Quality,
		Rating:      s.Rating,
		Seasons:     s.Seasons,
		Status:      s.Status,
		Poster:      s.Poster,
		Previews:    s.Previews,
		Episodes:    make([]episodeResponse, len(episodes)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for i, e := range episodes {
		resp.Episodes[i] = episodeToResponse(e)
	}
	return resp
}

// episodeResponse is the API representation of an episode.
type episodeResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	EpisodeNumber int           `json:"episodeNumber"`
	DownloadLinks downloadLinks `json:"downloadLinks"`
	Series        *int64        `json:"series"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func episodeToResponse(e *catalog.Episode) episodeResponse {
	return episodeResponse{
		ID:            e.ID,
		Title:         e.Title,
		EpisodeNumber: e.EpisodeNumber,
		DownloadLinks: linksFromCatalog(e.DownloadLinks),
		Series:        e.SeriesID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// Create requests

type createMovieRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Genre         string        `json:"genre"`
	Year          int           `json:"year"`
	Language      string        `json:"language"`
	Quality       string        `json:"quality"`
	Rating        float64       `json:"rating"`
	Status        string        `json:"status"`
	Poster        string        `json:"poster"`
	Previews      []string      `json:"previews"`
	DownloadLinks downloadLinks `json:"downloadLinks"`
}

func (r createMovieRequest) toCatalog() *catalog.Movie {
	return &catalog.Movie{
		Title:         r.Title,
		Description:   r.Description,
		Genre:         r.Genre,
		Year:          r.Year,
		Language:      r.Language,
		Quality:       r.Quality,
		Rating:        r.Rating,
		Status:        r.Status,
		Poster:        r.Poster,
		Previews:      r.Previews,
		DownloadLinks: r.DownloadLinks.toCatalog(),
	}
}

type createSeriesRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Year        int      `json:"year"`
	Language    string   `json:"language"`
	Quality     string   `json:"quality"`
	Rating      float64  `json:"rating"`
	Seasons     int      `json:"seasons"`
	Status      string   `json:"status"`
	Poster      string   `json:"poster"`
	Previews    []string `json:"previews"`
}

func (r createSeriesRequest) toCatalog() *catalog.Series {
	return &catalog.Series{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
		Year:        r.Year,
		Language:    r.Language,
		Quality:     r.Quality,
		Rating:      r.Rating,
		Seasons:     r.Seasons,
		Status:      r.Status,
		Poster:      r.Poster,
		Previews:    r.Previews,
	}
}

type createEpisodeRequest struct {
	Title         string        `json:"title"`
	EpisodeNumber int           `json:"episodeNumber"`
	DownloadLinks downloadLinks `json:"downloadLinks"`
}

func (r createEpisodeRequest) toCatalog() *catalog.Episode {
	return &catalog.Episode{
		Title:         r.Title,
		EpisodeNumber: r.EpisodeNumber,
		DownloadLinks: r.DownloadLinks.toCatalog(),
	}
}

// Patch requests: nil means "leave unchanged". Unknown fields are rejected
// at decode time rather than silently persisted.

type moviePatchRequest struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Genre         *string        `json:"genre"`
	Year          *int           `json:"year"`
	Language      *string        `json:"language"`
	Quality       *string        `json:"quality"`
	Rating        *float64       `json:"rating"`
	Status        *string        `json:"status"`
	Poster        *string        `json:"poster"`
	Previews      *[]string      `json:"previews"`
	DownloadLinks *downloadLinks `json:"downloadLinks"`
}

func (r moviePatchRequest) toPatch() catalog.MoviePatch {
	p := catalog.MoviePatch{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
		Year:        r.Year,
		Language:    r.Language,
		Quality:     r.Quality,
		Rating:      r.Rating,
		Status:      r.Status,
		Poster:      r.Poster,
		Previews:    r.Previews,
	}
	if r.DownloadLinks != nil {
		links := r.DownloadLinks.toCatalog()
		p.DownloadLinks = &links
	}
	return p
}

type seriesPatchRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Genre       *string   `json:"genre"`
	Year        *int      `json:"year"`
	Language    *string   `json:"language"`
	Quality     *string   `json:"quality"`
	Rating      *float64  `json:"rating"`
	Seasons     *int      `json:"seasons"`
	Status      *string   `json:"status"`
	Poster      *string   `json:"poster"`
	Previews    *[]string `json:"previews"`
}

func (r seriesPatchRequest) toPatch() catalog.SeriesPatch {
	return catalog.SeriesPatch{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
		Year:        r.Year,
		Language:    r.Language,
		Quality:     r.Quality,
		Rating:      r.Rating,
		Seasons:     r.Seasons,
		Status:      r.Status,
		Poster:      r.Poster,
		Previews:    r.Previews,
	}
}

type episodePatchRequest struct {
	Title         *string        `json:"title"`
	EpisodeNumber *int           `json:"episodeNumber"`
	DownloadLinks *downloadLinks `json:"downloadLinks"`
}

func (r episodePatchRequest) toPatch() catalog.EpisodePatch {
	p := catalog.EpisodePatch{
		Title:         r.Title,
		EpisodeNumber: r.EpisodeNumber,
	}
	if r.DownloadLinks != nil {
		links := r.DownloadLinks.toCatalog()
		p.DownloadLinks = &links
	}
	return p
}
