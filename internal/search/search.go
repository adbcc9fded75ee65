// Package search provides the distributor part-search transport: the
// Searcher interface the plan workflow depends on, an OEM Secrets API
// client, and an optional SQLite response cache. Everything past this
// boundary works with normalized part.Candidate records only.
package search

import (
	"context"

	"github.com/runger/hwcli/internal/part"
)

// Searcher is the remote part-search contract. Implementations must be
// safe for concurrent use up to the plan workflow's configured
// concurrency; callers treat any error as "no results for this query" and
// apply their own fallback logic.
type Searcher interface {
	Search(ctx context.Context, query string) ([]part.Candidate, error)
}
