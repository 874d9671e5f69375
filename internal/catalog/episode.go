package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// EpisodePatch is a partial update for an episode. The series back-reference
// is not patchable; it is fixed at creation time.
type EpisodePatch struct {
	Title         *string
	EpisodeNumber *int
	DownloadLinks *DownloadLinks
}

// Validate rejects patches that would break creation invariants.
func (p EpisodePatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title cannot be empty: %w", ErrValidation)
	}
	if p.EpisodeNumber != nil && *p.EpisodeNumber < 1 {
		return fmt.Errorf("episodeNumber must be >= 1: %w", ErrValidation)
	}
	return nil
}

func addEpisode(q querier, e *Episode) error {
	if err := e.Validate(); err != nil {
		return err
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO episodes (title, episode_number, link_480, link_720, link_1080, series_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.EpisodeNumber, nullable(e.DownloadLinks.P480), nullable(e.DownloadLinks.P720), nullable(e.DownloadLinks.P1080),
		e.SeriesID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

const episodeColumns = "id, title, episode_number, link_480, link_720, link_1080, series_id, created_at, updated_at"

func scanEpisode(row interface{ Scan(...any) error }) (*Episode, error) {
	e := &Episode{}
	var p480, p720, p1080 *string
	err := row.Scan(&e.ID, &e.Title, &e.EpisodeNumber, &p480, &p720, &p1080, &e.SeriesID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.DownloadLinks = DownloadLinks{P480: fromNullable(p480), P720: fromNullable(p720), P1080: fromNullable(p1080)}
	return e, nil
}

func getEpisode(q querier, id int64) (*Episode, error) {
	e, err := scanEpisode(q.QueryRow("SELECT "+episodeColumns+" FROM episodes WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, mapSQLiteError(err))
	}
	return e, nil
}

// GetEpisode retrieves an episode by ID.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) GetEpisode(id int64) (*Episode, error) { return getEpisode(s.db, id) }

// GetEpisode retrieves an episode by ID within a transaction.
func (t *Tx) GetEpisode(id int64) (*Episode, error) { return getEpisode(t.tx, id) }

// getEpisodesByIDs resolves a membership list into episode documents,
// preserving the input order. Ids that don't resolve are skipped.
func getEpisodesByIDs(q querier, ids []int64) ([]*Episode, error) {
	if len(ids) == 0 {
		return []*Episode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := q.Query("SELECT "+episodeColumns+" FROM episodes WHERE id IN ("+strings.Join(placeholders, ",")+")", args...)
	if err != nil {
		return nil, fmt.Errorf("get episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byID := make(map[int64]*Episode, len(ids))
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}

	results := make([]*Episode, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			results = append(results, e)
		}
	}
	return results, nil
}

// sortEpisodesByNumber orders episodes for display. Storage order is the
// membership list; display order is ascending episode number, computed here.
func sortEpisodesByNumber(episodes []*Episode) {
	slices.SortStableFunc(episodes, func(a, b *Episode) int {
		return a.EpisodeNumber - b.EpisodeNumber
	})
}

func updateEpisode(q querier, id int64, p EpisodePatch) (*Episode, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var sets []string
	var args []any

	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.EpisodeNumber != nil {
		sets = append(sets, "episode_number = ?")
		args = append(args, *p.EpisodeNumber)
	}
	if p.DownloadLinks != nil {
		sets = append(sets, "link_480 = ?", "link_720 = ?", "link_1080 = ?")
		args = append(args, nullable(p.DownloadLinks.P480), nullable(p.DownloadLinks.P720), nullable(p.DownloadLinks.P1080))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id)

	result, err := q.Exec("UPDATE episodes SET "+joinSets(sets)+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update episode %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("update episode %d: %w", id, ErrNotFound)
	}
	return getEpisode(q, id)
}

// UpdateEpisode applies a partial update and returns the updated episode.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) UpdateEpisode(id int64, p EpisodePatch) (*Episode, error) {
	return updateEpisode(s.db, id, p)
}

// UpdateEpisode applies a partial update within a transaction.
func (t *Tx) UpdateEpisode(id int64, p EpisodePatch) (*Episode, error) {
	return updateEpisode(t.tx, id, p)
}

func deleteEpisodeRow(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM episodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete episode %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete episode %d: %w", id, ErrNotFound)
	}
	return nil
}

// deleteEpisodes removes a set of episodes by id. Missing ids are ignored;
// the cascade must not fail on a membership entry that was already removed.
func deleteEpisodes(q querier, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	if _, err := q.Exec("DELETE FROM episodes WHERE id IN ("+strings.Join(placeholders, ",")+")", args...); err != nil {
		return fmt.Errorf("delete episodes: %w", mapSQLiteError(err))
	}
	return nil
}

// AddEpisode creates an episode under an existing series: the episode row is
// inserted with its back-reference set, and its id is appended to the series
// membership list. Both steps run in one transaction.
// Returns ErrNotFound if the series does not exist.
func (s *Store) AddEpisode(seriesID int64, e *Episode) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	sr, err := tx.GetSeries(seriesID)
	if err != nil {
		return err
	}

	e.SeriesID = &sr.ID
	if err := addEpisode(tx.tx, e); err != nil {
		return err
	}
	if err := setEpisodeIDs(tx.tx, sr.ID, append(sr.EpisodeIDs, e.ID)); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteEpisode removes an episode and pulls its id from the parent series'
// membership list, located through the episode's stored back-reference. A
// stale or null back-reference makes the pull a no-op, not an error.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) DeleteEpisode(id int64) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	e, err := tx.GetEpisode(id)
	if err != nil {
		return err
	}
	if err := deleteEpisodeRow(tx.tx, id); err != nil {
		return err
	}

	if e.SeriesID != nil {
		sr, err := tx.GetSeries(*e.SeriesID)
		switch {
		case err == nil:
			ids := slices.DeleteFunc(sr.EpisodeIDs, func(eid int64) bool { return eid == id })
			if err := setEpisodeIDs(tx.tx, sr.ID, ids); err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			// stale back-reference; nothing to unlink
		default:
			return err
		}
	}
	return tx.Commit()
}
