package ports

import (
	"context"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// DirectorySnapshot is a point-in-time copy of the directory view, safe to
// render without holding service locks.
type DirectorySnapshot struct {
	Page   domain.DirectoryPage
	Search domain.SearchState
	State  domain.FetchState
	Err    error
}

// DirectoryService orchestrates the paginated, searchable remote user
// directory with infinite-scroll semantics.
type DirectoryService interface {
	// LoadPage fetches the given page; page 1 replaces the list, later pages
	// append. A warning no-op when no token is present.
	LoadPage(ctx context.Context, page int) error
	// LoadMore fetches the next page unless already loading, exhausted, or in
	// by-id search mode.
	LoadMore(ctx context.Context) error
	// SearchByIdentifier registers a keystroke: the lookup fires only after
	// the debounce window passes with no further input.
	SearchByIdentifier(ctx context.Context, raw string)
	Snapshot() DirectorySnapshot
}
