package search

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/hwcli/internal/part"
)

func testCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "search.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	t.Parallel()

	c := testCache(t, time.Hour)
	ctx := context.Background()
	in := []part.Candidate{
		{ID: "a@DigiKey", MPN: "CL05B104KO5NNNC", Stock: 1000, Price: part.Float(0.01)},
	}
	require.NoError(t, c.Put(ctx, "100nF 0402", in))

	out, err := c.Get(ctx, "100nF 0402")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCache_Miss(t *testing.T) {
	t.Parallel()

	c := testCache(t, time.Hour)
	_, err := c.Get(context.Background(), "never stored")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	c := testCache(t, -time.Second) // already expired on write
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "q", []part.Candidate{{ID: "x"}}))

	_, err := c.Get(ctx, "q")
	assert.ErrorIs(t, err, ErrCacheMiss)

	n, err := c.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCache_PutReplaces(t *testing.T) {
	t.Parallel()

	c := testCache(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "q", []part.Candidate{{ID: "old"}}))
	require.NoError(t, c.Put(ctx, "q", []part.Candidate{{ID: "new"}}))

	out, err := c.Get(ctx, "q")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "new", out[0].ID)
}

// countingSearcher records how often each query hits the live transport.
type countingSearcher struct {
	calls   map[string]int
	results []part.Candidate
	err     error
}

func (s *countingSearcher) Search(_ context.Context, query string) ([]part.Candidate, error) {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[query]++
	return s.results, s.err
}

func TestCachedSearcher_HitSkipsInner(t *testing.T) {
	t.Parallel()

	inner := &countingSearcher{results: []part.Candidate{{ID: "a", Stock: 100}}}
	cs := NewCachedSearcher(inner, testCache(t, time.Hour), nil)
	ctx := context.Background()

	first, err := cs.Search(ctx, "q")
	require.NoError(t, err)
	second, err := cs.Search(ctx, "q")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls["q"], "second lookup must come from cache")
}

func TestCachedSearcher_EmptyResultNotCached(t *testing.T) {
	t.Parallel()

	inner := &countingSearcher{}
	cs := NewCachedSearcher(inner, testCache(t, time.Hour), nil)
	ctx := context.Background()

	_, err := cs.Search(ctx, "q")
	require.NoError(t, err)
	_, err = cs.Search(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls["q"], "empty responses should retry live")
}

func TestCachedSearcher_ErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	inner := &countingSearcher{err: boom}
	cs := NewCachedSearcher(inner, testCache(t, time.Hour), nil)

	_, err := cs.Search(context.Background(), "q")
	assert.ErrorIs(t, err, boom)
}
