package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP calls to the reelcat server.
type Client struct {
	baseURL    string
	password   string
	httpClient *http.Client
}

// NewClient creates a new reelcat API client. password may be empty for
// read-only use.
func NewClient(serverURL, password string) *Client {
	return &Client{
		baseURL:  serverURL,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(method, path string, body, result any) error {
	var rd io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		rd = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.password != "" {
		req.Header.Set("x-admin-password", c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return serverError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// serverError extracts the {"message": ...} body the server sends for errors.
func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, errResp.Message)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
}

func (c *Client) get(path string, result any) error {
	return c.do(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body, result any) error {
	return c.do(http.MethodPost, path, body, result)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}

// API response types (mirror server types)

type DownloadLinks struct {
	P480  string `json:"p480,omitempty"`
	P720  string `json:"p720,omitempty"`
	P1080 string `json:"p1080,omitempty"`
}

type MovieResponse struct {
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
	DownloadLinks DownloadLinks `json:"downloadLinks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type SeriesResponse struct {
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

type EpisodeResponse struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	EpisodeNumber int           `json:"episodeNumber"`
	DownloadLinks DownloadLinks `json:"downloadLinks"`
	Series        *int64        `json:"series"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SeriesDetailResponse is the populated read with full episode documents.
type SeriesDetailResponse struct {
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
	Episodes    []EpisodeResponse `json:"episodes"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type CheckAuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// API methods

func (c *Client) Movies() ([]MovieResponse, error) {
	var movies []MovieResponse
	if err := c.get("/api/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) Movie(id int64) (*MovieResponse, error) {
	var m MovieResponse
	if err := c.get(fmt.Sprintf("/api/movies/%d", id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Series() ([]SeriesResponse, error) {
	var series []SeriesResponse
	if err := c.get("/api/series", &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (c *Client) SeriesDetail(id int64) (*SeriesDetailResponse, error) {
	var s SeriesDetailResponse
	if err := c.get(fmt.Sprintf("/api/series/%d", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CheckAuth() (*CheckAuthResponse, error) {
	var resp CheckAuthResponse
	if err := c.post("/api/admin/check-auth", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateMovie(body any) (*MovieResponse, error) {
	var m MovieResponse
	if err := c.post("/api/admin/movies", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateSeries(body any) (*SeriesResponse, error) {
	var s SeriesResponse
	if err := c.post("/api/admin/series", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateEpisode(seriesID int64, body any) (*EpisodeResponse, error) {
	var e EpisodeResponse
	if err := c.post(fmt.Sprintf("/api/admin/series/%d/episodes", seriesID), body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteMovie(id int64) error {
	return c.delete(fmt.Sprintf("/api/admin/movies/%d", id))
}

func (c *Client) DeleteSeries(id int64) error {
	return c.delete(fmt.Sprintf("/api/admin/series/%d", id))
}
