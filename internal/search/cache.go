package search

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/runger/hwcli/internal/part"
)

// ErrCacheMiss is returned by Cache.Get when no fresh entry exists.
var ErrCacheMiss = errors.New("cache miss")

const cacheSchema = `
CREATE TABLE IF NOT EXISTS search_cache (
	query      TEXT PRIMARY KEY,
	response   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	expires_at TIMESTAMP NOT NULL,
	hit_count  INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_search_cache_expires ON search_cache(expires_at);
`

// Cache is a SQLite-backed store of search responses keyed by query.
// Distributor stock and pricing drift slowly enough that replaying a
// plan against cached responses is usually fine within a day.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenCache opens (or creates) the cache database at path.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached candidates for query, or ErrCacheMiss when the
// entry is absent or expired. Hits bump the entry's hit count.
func (c *Cache) Get(ctx context.Context, query string) ([]part.Candidate, error) {
	var response string
	err := c.db.QueryRowContext(ctx,
		`SELECT response FROM search_cache WHERE query = ? AND expires_at > ?`,
		query, time.Now().UTC()).Scan(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var candidates []part.Candidate
	if err := json.Unmarshal([]byte(response), &candidates); err != nil {
		return nil, fmt.Errorf("decoding cached response: %w", err)
	}

	_, _ = c.db.ExecContext(ctx,
		`UPDATE search_cache SET hit_count = hit_count + 1 WHERE query = ?`, query)
	return candidates, nil
}

// Put stores the candidates for query, replacing any existing entry.
func (c *Cache) Put(ctx context.Context, query string, candidates []part.Candidate) error {
	response, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	now := time.Now().UTC()
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO search_cache (query, response, created_at, expires_at, hit_count)
		 VALUES (?, ?, ?, ?, 0)
		 ON CONFLICT(query) DO UPDATE SET
		 	response = excluded.response,
		 	created_at = excluded.created_at,
		 	expires_at = excluded.expires_at,
		 	hit_count = 0`,
		query, string(response), now, now.Add(c.ttl))
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM search_cache WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning cache: %w", err)
	}
	return res.RowsAffected()
}

// CachedSearcher wraps a Searcher with the response cache. Cache failures
// degrade to live searches rather than failing the lookup.
type CachedSearcher struct {
	inner Searcher
	cache *Cache
	log   *slog.Logger
}

// NewCachedSearcher wraps inner with cache.
func NewCachedSearcher(inner Searcher, cache *Cache, log *slog.Logger) *CachedSearcher {
	if log == nil {
		log = slog.Default()
	}
	return &CachedSearcher{inner: inner, cache: cache, log: log}
}

// Search consults the cache before the wrapped searcher. Only successful
// non-empty responses are cached, so transient failures retry next run.
func (s *CachedSearcher) Search(ctx context.Context, query string) ([]part.Candidate, error) {
	candidates, err := s.cache.Get(ctx, query)
	if err == nil {
		s.log.Debug("search cache hit", "query", query, "results", len(candidates))
		return candidates, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.log.Warn("search cache read failed", "query", query, "error", err)
	}

	candidates, err = s.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		if err := s.cache.Put(ctx, query, candidates); err != nil {
			s.log.Warn("search cache write failed", "query", query, "error", err)
		}
	}
	return candidates, nil
}
