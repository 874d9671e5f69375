package catalog

import (
	"fmt"
	"time"
)

// SeriesPatch is a partial update for a series. The episode membership list
// is not patchable here; it is maintained only by the episode operations.
type SeriesPatch struct {
	Title       *string
	Description *string
	Genre       *string
	Year        *int
	Language    *string
	Quality     *string
	Rating      *float64
	Seasons     *int
	Status      *string
	Poster      *string
	Previews    *[]string
}

// Validate rejects patches that would break creation invariants.
func (p SeriesPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title cannot be empty: %w", ErrValidation)
	}
	if p.Description != nil && *p.Description == "" {
		return fmt.Errorf("description cannot be empty: %w", ErrValidation)
	}
	if p.Poster != nil && *p.Poster == "" {
		return fmt.Errorf("poster cannot be empty: %w", ErrValidation)
	}
	if p.Seasons != nil && *p.Seasons < 1 {
		return fmt.Errorf("seasons must be >= 1: %w", ErrValidation)
	}
	return nil
}

func addSeries(q querier, s *Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.applyDefaults()
	// A series is always created without episodes; the membership list is
	// populated through AddEpisode only.
	s.EpisodeIDs = []int64{}

	previews, err := encodeStrings(s.Previews)
	if err != nil {
		return err
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO series (title, description, genre, year, language, quality, rating, seasons, status, poster, previews, episode_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Title, s.Description, s.Genre, s.Year, s.Language, s.Quality, s.Rating, s.Seasons, s.Status, s.Poster, previews, "[]", now, now,
	)
	if err != nil {
		return fmt.Errorf("insert series: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	s.ID = id
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Previews == nil {
		s.Previews = []string{}
	}
	return nil
}

// AddSeries validates and inserts a new series with an empty episode list.
// Zero-valued optional fields receive catalog defaults.
// Sets ID, CreatedAt, and UpdatedAt on the struct.
func (s *Store) AddSeries(sr *Series) error { return addSeries(s.db, sr) }

// AddSeries validates and inserts a new series within a transaction.
func (t *Tx) AddSeries(sr *Series) error { return addSeries(t.tx, sr) }

const seriesColumns = "id, title, description, genre, year, language, quality, rating, seasons, status, poster, previews, episode_ids, created_at, updated_at"

func scanSeries(row interface{ Scan(...any) error }) (*Series, error) {
	s := &Series{}
	var previews, episodeIDs string
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Genre, &s.Year, &s.Language, &s.Quality, &s.Rating,
		&s.Seasons, &s.Status, &s.Poster, &previews, &episodeIDs, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if s.Previews, err = decodeStrings(previews); err != nil {
		return nil, err
	}
	if s.EpisodeIDs, err = decodeIDs(episodeIDs); err != nil {
		return nil, err
	}
	return s, nil
}

func getSeries(q querier, id int64) (*Series, error) {
	s, err := scanSeries(q.QueryRow("SELECT "+seriesColumns+" FROM series WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, mapSQLiteError(err))
	}
	return s, nil
}

// GetSeries retrieves a series by ID.
// Returns ErrNotFound if the series does not exist.
func (s *Store) GetSeries(id int64) (*Series, error) { return getSeries(s.db, id) }

// GetSeries retrieves a series by ID within a transaction.
func (t *Tx) GetSeries(id int64) (*Series, error) { return getSeries(t.tx, id) }

func listSeries(q querier) ([]*Series, error) {
	rows, err := q.Query("SELECT " + seriesColumns + " FROM series ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Series
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series: %w", err)
	}
	return results, nil
}

// ListSeries returns all series, newest first.
func (s *Store) ListSeries() ([]*Series, error) { return listSeries(s.db) }

// ListSeries returns all series within a transaction.
func (t *Tx) ListSeries() ([]*Series, error) { return listSeries(t.tx) }

func updateSeries(q querier, id int64, p SeriesPatch) (*Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var sets []string
	var args []any

	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Genre != nil {
		sets = append(sets, "genre = ?")
		args = append(args, *p.Genre)
	}
	if p.Year != nil {
		sets = append(sets, "year = ?")
		args = append(args, *p.Year)
	}
	if p.Language != nil {
		sets = append(sets, "language = ?")
		args = append(args, *p.Language)
	}
	if p.Quality != nil {
		sets = append(sets, "quality = ?")
		args = append(args, *p.Quality)
	}
	if p.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *p.Rating)
	}
	if p.Seasons != nil {
		sets = append(sets, "seasons = ?")
		args = append(args, *p.Seasons)
	}
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *p.Status)
	}
	if p.Poster != nil {
		sets = append(sets, "poster = ?")
		args = append(args, *p.Poster)
	}
	if p.Previews != nil {
		previews, err := encodeStrings(*p.Previews)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "previews = ?")
		args = append(args, previews)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id)

	result, err := q.Exec("UPDATE series SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update series %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("update series %d: %w", id, ErrNotFound)
	}
	return getSeries(q, id)
}

// UpdateSeries applies a partial update and returns the updated series.
// Returns ErrNotFound if the series does not exist.
func (s *Store) UpdateSeries(id int64, p SeriesPatch) (*Series, error) {
	return updateSeries(s.db, id, p)
}

// UpdateSeries applies a partial update within a transaction.
func (t *Tx) UpdateSeries(id int64, p SeriesPatch) (*Series, error) {
	return updateSeries(t.tx, id, p)
}

// setEpisodeIDs replaces the stored membership list.
func setEpisodeIDs(q querier, seriesID int64, ids []int64) error {
	encoded, err := encodeIDs(ids)
	if err != nil {
		return err
	}
	result, err := q.Exec("UPDATE series SET episode_ids = ?, updated_at = ? WHERE id = ?",
		encoded, time.Now(), seriesID)
	if err != nil {
		return fmt.Errorf("update series %d episodes: %w", seriesID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update series %d episodes: %w", seriesID, ErrNotFound)
	}
	return nil
}

func deleteSeriesRow(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM series WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete series %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete series %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteSeries removes a series and every episode in its membership list.
// Episodes are removed first, then the series row; both run in a single
// transaction so a partial cascade is never visible.
// Returns ErrNotFound if the series does not exist.
func (s *Store) DeleteSeries(id int64) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	sr, err := tx.GetSeries(id)
	if err != nil {
		return err
	}
	if err := deleteEpisodes(tx.tx, sr.EpisodeIDs); err != nil {
		return err
	}
	if err := deleteSeriesRow(tx.tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// GetSeriesWithEpisodes retrieves a series and resolves its membership list
// into full episode documents, ordered by ascending episode number.
// Membership ids that no longer resolve are skipped rather than failing the
// read; they indicate an interrupted earlier mutation, not a bad request.
func (s *Store) GetSeriesWithEpisodes(id int64) (*Series, []*Episode, error) {
	sr, err := s.GetSeries(id)
	if err != nil {
		return nil, nil, err
	}
	episodes, err := getEpisodesByIDs(s.db, sr.EpisodeIDs)
	if err != nil {
		return nil, nil, err
	}
	sortEpisodesByNumber(episodes)
	return sr, episodes, nil
}
