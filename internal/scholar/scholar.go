// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar executes compiled queries against a Google Scholar backend
// and shapes the results. The backend is an injected capability so the
// orchestrator can be tested against a deterministic stub.
package scholar

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

// Backend performs the network work against Google Scholar. Result order is
// the backend's relevance order; there is no guarantee of exactly count
// records per call.
type Backend interface {
	Name() string

	// Search returns up to count publications for query, starting at the
	// given result offset. There is no guarantee of exactly count records
	// per page; only an empty page signals exhaustion.
	Search(ctx context.Context, query string, start, count int) ([]types.Publication, error)

	// SearchAuthors finds author profiles matching a name.
	SearchAuthors(ctx context.Context, name string, limit int) ([]types.Author, error)

	// AuthorByID fetches one author profile by Scholar ID.
	AuthorByID(ctx context.Context, id string) (*types.Author, error)
}

// BackendError wraps any failure from the search backend (timeout,
// rate-limit, malformed response) so callers handle a single error type
// regardless of which backend produced it.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Mode selects between previewing a compiled query and executing it.
type Mode int

const (
	// Preview returns the compiled query and effective parameters without
	// contacting any backend. This is the default: live Scholar queries are
	// rate-limited, so hitting the network requires explicit opt-in.
	Preview Mode = iota

	// Execute runs the query against the backend.
	Execute
)

// Request is one search invocation: the compiled query plus execution
// parameters. Year bounds ride alongside the query because Scholar's grammar
// has no year operator; they are applied as a post-filter.
type Request struct {
	Query     string
	Limit     int
	YearStart int
	YearEnd   int
}

// Outcome is the result of one Run call. In Preview mode only the echo
// fields are set; in Execute mode Results carries up to Limit publications.
type Outcome struct {
	Query     string
	Limit     int
	YearStart int
	YearEnd   int
	Results   []types.Publication

	// Partial is set when the fetch ceiling was reached before Limit
	// year-matching results were collected. It is a success with a warning,
	// not an error.
	Partial bool
}

const (
	// DefaultLimit caps results when the request does not set one.
	DefaultLimit = 10

	// DefaultFetchCeiling bounds the extra pages pulled to satisfy a year
	// filter, so a filter the backend can never satisfy does not loop
	// forever.
	DefaultFetchCeiling = 3
)

// Orchestrator runs search requests against a backend.
type Orchestrator struct {
	Backend Backend

	// FetchCeiling overrides DefaultFetchCeiling when positive.
	FetchCeiling int
}

// Run executes req in the given mode. Preview never touches the backend.
// Execute fetches result pages, applies the year post-filter, and stops at
// req.Limit matches, backend exhaustion, or the fetch ceiling.
func (o *Orchestrator) Run(ctx context.Context, req Request, mode Mode) (Outcome, error) {
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	out := Outcome{
		Query:     req.Query,
		Limit:     req.Limit,
		YearStart: req.YearStart,
		YearEnd:   req.YearEnd,
	}
	if mode == Preview {
		return out, nil
	}

	ceiling := o.FetchCeiling
	if ceiling <= 0 {
		ceiling = DefaultFetchCeiling
	}

	filtered := req.YearStart != 0 || req.YearEnd != 0
	start := 0
	for page := 0; ; page++ {
		batch, err := o.Backend.Search(ctx, req.Query, start, req.Limit)
		if err != nil {
			return out, o.wrap(err)
		}

		for _, pub := range batch {
			if filtered && !yearInRange(pub.Year, req.YearStart, req.YearEnd) {
				continue
			}
			out.Results = append(out.Results, pub)
			if len(out.Results) >= req.Limit {
				return out, nil
			}
		}

		if len(batch) == 0 {
			// Backend exhausted; return what was collected. A short but
			// nonempty page means nothing: backends routinely return fewer
			// records than asked for.
			return out, nil
		}
		if page >= ceiling {
			out.Partial = true
			return out, nil
		}
		start += len(batch)
	}
}

// Authors searches author profiles by name, capped at limit.
func (o *Orchestrator) Authors(ctx context.Context, name string, limit int) ([]types.Author, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	authors, err := o.Backend.SearchAuthors(ctx, name, limit)
	if err != nil {
		return nil, o.wrap(err)
	}
	if len(authors) > limit {
		authors = authors[:limit]
	}
	return authors, nil
}

// AuthorByID fetches a single author profile by Scholar ID.
func (o *Orchestrator) AuthorByID(ctx context.Context, id string) (*types.Author, error) {
	author, err := o.Backend.AuthorByID(ctx, id)
	if err != nil {
		return nil, o.wrap(err)
	}
	return author, nil
}

// wrap converts a backend failure into a BackendError, leaving failures that
// are already wrapped untouched.
func (o *Orchestrator) wrap(err error) error {
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Backend: o.Backend.Name(), Err: err}
}

// yearInRange reports whether year satisfies the bounds. Records with an
// unknown year (zero) cannot be shown to satisfy a bound and are dropped.
func yearInRange(year, start, end int) bool {
	if year == 0 {
		return false
	}
	if start != 0 && year < start {
		return false
	}
	if end != 0 && year > end {
		return false
	}
	return true
}
