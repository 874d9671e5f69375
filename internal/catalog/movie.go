package catalog

import (
	"fmt"
	"time"
)

// MoviePatch is a partial update. Nil fields are left untouched; set fields
// replace the stored value wholesale (last write wins, no per-field CAS).
type MoviePatch struct {
	Title         *string
	Description   *string
	Genre         *string
	Year          *int
	Language      *string
	Quality       *string
	Rating        *float64
	Status        *string
	Poster        *string
	Previews      *[]string
	DownloadLinks *DownloadLinks
}

// Validate rejects patches that would break creation invariants.
func (p MoviePatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title cannot be empty: %w", ErrValidation)
	}
	if p.Description != nil && *p.Description == "" {
		return fmt.Errorf("description cannot be empty: %w", ErrValidation)
	}
	if p.Poster != nil && *p.Poster == "" {
		return fmt.Errorf("poster cannot be empty: %w", ErrValidation)
	}
	return nil
}

func addMovie(q querier, m *Movie) error {
	if err := m.Validate(); err != nil {
		return err
	}
	previews, err := encodeStrings(m.Previews)
	if err != nil {
		return err
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO movies (title, description, genre, year, language, quality, rating, status, poster, previews, link_480, link_720, link_1080, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Title, m.Description, m.Genre, m.Year, m.Language, m.Quality, m.Rating, m.Status, m.Poster, previews,
		nullable(m.DownloadLinks.P480), nullable(m.DownloadLinks.P720), nullable(m.DownloadLinks.P1080), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Previews == nil {
		m.Previews = []string{}
	}
	return nil
}

// AddMovie validates and inserts a new movie.
// Sets ID, CreatedAt, and UpdatedAt on the struct.
func (s *Store) AddMovie(m *Movie) error { return addMovie(s.db, m) }

// AddMovie validates and inserts a new movie within a transaction.
func (t *Tx) AddMovie(m *Movie) error { return addMovie(t.tx, m) }

const movieColumns = "id, title, description, genre, year, language, quality, rating, status, poster, previews, link_480, link_720, link_1080, created_at, updated_at"

func scanMovie(row interface{ Scan(...any) error }) (*Movie, error) {
	m := &Movie{}
	var previews string
	var p480, p720, p1080 *string
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Genre, &m.Year, &m.Language, &m.Quality, &m.Rating, &m.Status,
		&m.Poster, &previews, &p480, &p720, &p1080, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if m.Previews, err = decodeStrings(previews); err != nil {
		return nil, err
	}
	m.DownloadLinks = DownloadLinks{P480: fromNullable(p480), P720: fromNullable(p720), P1080: fromNullable(p1080)}
	return m, nil
}

func getMovie(q querier, id int64) (*Movie, error) {
	m, err := scanMovie(q.QueryRow("SELECT "+movieColumns+" FROM movies WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, mapSQLiteError(err))
	}
	return m, nil
}

// GetMovie retrieves a movie by ID.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) GetMovie(id int64) (*Movie, error) { return getMovie(s.db, id) }

// GetMovie retrieves a movie by ID within a transaction.
func (t *Tx) GetMovie(id int64) (*Movie, error) { return getMovie(t.tx, id) }

func listMovies(q querier) ([]*Movie, error) {
	rows, err := q.Query("SELECT " + movieColumns + " FROM movies ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return results, nil
}

// ListMovies returns all movies, newest first.
func (s *Store) ListMovies() ([]*Movie, error) { return listMovies(s.db) }

// ListMovies returns all movies within a transaction.
func (t *Tx) ListMovies() ([]*Movie, error) { return listMovies(t.tx) }

func updateMovie(q querier, id int64, p MoviePatch) (*Movie, error) {
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
	if p.DownloadLinks != nil {
		sets = append(sets, "link_480 = ?", "link_720 = ?", "link_1080 = ?")
		args = append(args, nullable(p.DownloadLinks.P480), nullable(p.DownloadLinks.P720), nullable(p.DownloadLinks.P1080))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id)

	result, err := q.Exec("UPDATE movies SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("update movie %d: %w", id, ErrNotFound)
	}
	return getMovie(q, id)
}

// UpdateMovie applies a partial update and returns the updated movie.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) UpdateMovie(id int64, p MoviePatch) (*Movie, error) { return updateMovie(s.db, id, p) }

// UpdateMovie applies a partial update within a transaction.
func (t *Tx) UpdateMovie(id int64, p MoviePatch) (*Movie, error) { return updateMovie(t.tx, id, p) }

func deleteMovie(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete movie %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteMovie removes a movie by ID.
// Returns ErrNotFound if the movie does not exist, so a repeated delete of
// the same id fails without further side effects.
func (s *Store) DeleteMovie(id int64) error { return deleteMovie(s.db, id) }

// DeleteMovie removes a movie by ID within a transaction.
func (t *Tx) DeleteMovie(id int64) error { return deleteMovie(t.tx, id) }
