package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoResults is returned when the candidate list was empty before any
// filtering took place.
var ErrNoResults = errors.New("no search results found")

// OutOfStockError is returned when every candidate fell below the minimum
// stock floor. MaxStock is the best stock level actually seen, included so
// a human can judge how close the miss was.
type OutOfStockError struct {
	MaxStock int
	MinStock int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("all candidates out of stock (max available: %d, need: %d)",
		e.MaxStock, e.MinStock)
}

// PackageMismatchError is returned when the footprint requires an EIA
// package code and no in-stock candidate matched it. Seen lists up to five
// distinct packages that were available, so a human can pick manually.
type PackageMismatchError struct {
	Code string
	Seen []string
	// NoPackageInfo is true when no candidate carried package data at all.
	NoPackageInfo bool
	Candidates    int
}

func (e *PackageMismatchError) Error() string {
	if e.NoPackageInfo {
		return fmt.Sprintf("no %s package match found (%d in-stock candidates had no package info)",
			e.Code, e.Candidates)
	}
	return fmt.Sprintf("no %s package match found. Available packages: %s",
		e.Code, strings.Join(e.Seen, ", "))
}
