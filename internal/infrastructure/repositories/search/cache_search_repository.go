package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS search_queries (
	provider    TEXT NOT NULL,
	pattern     TEXT NOT NULL,
	max_results INTEGER NOT NULL,
	fetched_at  INTEGER NOT NULL,
	PRIMARY KEY (provider, pattern, max_results)
);
CREATE TABLE IF NOT EXISTS search_versions (
	provider    TEXT NOT NULL,
	pattern     TEXT NOT NULL,
	max_results INTEGER NOT NULL,
	position    INTEGER NOT NULL,
	group_id    TEXT NOT NULL,
	artifact_id TEXT NOT NULL,
	version     TEXT NOT NULL,
	PRIMARY KEY (provider, pattern, max_results, position)
);`

const upsertQuery = `
INSERT INTO search_queries (provider, pattern, max_results, fetched_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(provider, pattern, max_results)
DO UPDATE SET fetched_at = excluded.fetched_at;`

// CachedSearchRepository keeps search results in a sqlite database for a
// fixed time so repeated passes do not hit the network. Failed searches
// are never cached.
type CachedSearchRepository struct {
	inner repositories.SearchRepository
	db    *sql.DB
	ttl   time.Duration
	now   func() time.Time
}

// NewCachedSearchRepository opens (or creates) the cache database at path
// and wraps inner with it. A zero ttl never expires entries.
func NewCachedSearchRepository(
	ctx context.Context,
	inner repositories.SearchRepository,
	path string,
	ttl time.Duration,
) (*CachedSearchRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, execErr := db.ExecContext(ctx, cacheSchema); execErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", execErr)
	}

	return &CachedSearchRepository{inner: inner, db: db, ttl: ttl, now: time.Now}, nil
}

func (r *CachedSearchRepository) Name() string { return r.inner.Name() }

// Search serves fresh cached results and falls through to the wrapped
// repository otherwise. Cache read and write errors only cost a lookup.
func (r *CachedSearchRepository) Search(
	ctx context.Context,
	pattern string,
	limit int,
) ([]entities.ArtifactVersion, error) {
	cached, hit, err := r.load(ctx, pattern, limit)
	if err != nil {
		logger.Warnf("[cache] failed to read %q: %v", pattern, err)
	}
	if hit {
		logger.Debugf("[cache] hit for %q", pattern)
		return cached, nil
	}

	results, err := r.inner.Search(ctx, pattern, limit)
	if err != nil {
		return nil, err
	}
	if storeErr := r.store(ctx, pattern, limit, results); storeErr != nil {
		logger.Warnf("[cache] failed to store %q: %v", pattern, storeErr)
	}
	return results, nil
}

// Close releases the database.
func (r *CachedSearchRepository) Close() error {
	return r.db.Close()
}

func (r *CachedSearchRepository) load(
	ctx context.Context,
	pattern string,
	limit int,
) ([]entities.ArtifactVersion, bool, error) {
	var fetchedAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM search_queries WHERE provider=? AND pattern=? AND max_results=?`,
		r.inner.Name(), pattern, limit,
	).Scan(&fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if r.ttl > 0 && r.now().Sub(time.Unix(fetchedAt, 0)) > r.ttl {
		return nil, false, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, artifact_id, version FROM search_versions
		 WHERE provider=? AND pattern=? AND max_results=? ORDER BY position`,
		r.inner.Name(), pattern, limit,
	)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var list []entities.ArtifactVersion
	for rows.Next() {
		var v entities.ArtifactVersion
		if scanErr := rows.Scan(&v.GroupID, &v.ArtifactID, &v.Version); scanErr != nil {
			return nil, false, scanErr
		}
		list = append(list, v)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, false, rowsErr
	}
	return list, true, nil
}

func (r *CachedSearchRepository) store(
	ctx context.Context,
	pattern string,
	limit int,
	results []entities.ArtifactVersion,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	provider := r.inner.Name()
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM search_versions WHERE provider=? AND pattern=? AND max_results=?`,
		provider, pattern, limit,
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO search_versions (provider, pattern, max_results, position, group_id, artifact_id, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, v := range results {
		if _, err = stmt.ExecContext(ctx, provider, pattern, limit, i, v.GroupID, v.ArtifactID, v.Version); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, upsertQuery, provider, pattern, limit, r.now().Unix()); err != nil {
		return err
	}
	return tx.Commit()
}
