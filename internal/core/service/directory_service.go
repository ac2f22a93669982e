package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
	"github.com/faveomobile/helpdesk-client/internal/metrics"
)

const (
	// PageSize is the fixed directory page size. HasMore is inferred from a
	// fetch returning exactly this many records, so an exactly-full final
	// page reads as "more exists" until the next fetch comes back empty.
	PageSize = 10

	defaultDebounce = 500 * time.Millisecond
)

// DirectoryService orchestrates the paginated/searchable remote directory.
// All state is guarded by mu; at most one fetch owns the Loading state at a
// time, and every fetch carries a sequence number so responses overtaken by a
// newer request are discarded instead of overwriting fresher state.
type DirectoryService struct {
	gateway  ports.Gateway
	tokens   ports.TokenSource
	log      zerolog.Logger
	debounce time.Duration

	mu      sync.Mutex
	page    domain.DirectoryPage
	search  domain.SearchState
	state   domain.FetchState
	lastErr error
	seq     uint64
	timer   *time.Timer
}

// DirectoryOption customises a DirectoryService.
type DirectoryOption func(*DirectoryService)

// WithDebounce overrides the 500ms search debounce window. Used by tests.
func WithDebounce(d time.Duration) DirectoryOption {
	return func(s *DirectoryService) { s.debounce = d }
}

func NewDirectoryService(gateway ports.Gateway, tokens ports.TokenSource, log zerolog.Logger, opts ...DirectoryOption) *DirectoryService {
	s := &DirectoryService{
		gateway:  gateway,
		tokens:   tokens,
		log:      log,
		debounce: defaultDebounce,
		search:   domain.SearchState{Mode: domain.SearchModeList},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadPage fetches the given page of the directory. Page 1 replaces the item
// list, later pages append. Requires a token: without one this is a no-op
// with a warning. A trigger while a fetch is loading is ignored.
func (s *DirectoryService) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	token := s.tokens.Token()
	if token == "" {
		s.log.Warn().Int("page", page).Msg("directory fetch skipped: no session token")
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.state == domain.FetchLoading {
		s.mu.Unlock()
		return nil
	}
	s.state = domain.FetchLoading
	s.seq++
	seq := s.seq
	query := s.search.Query
	if s.search.Mode == domain.SearchModeByID {
		// List fetches never carry the by-id query.
		query = ""
	}
	s.mu.Unlock()

	users, err := s.gateway.ListUsers(ctx, ports.ListUsersInput{
		Token:       token,
		Page:        page,
		SearchQuery: query,
	})

	kind := "first_page"
	if page > 1 {
		kind = "append"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		metrics.StaleResponsesTotal.Inc()
		s.log.Debug().Int("page", page).Msg("stale directory response discarded")
		return domain.ErrStaleResponse
	}
	if err != nil {
		s.state = domain.FetchError
		s.lastErr = err
		metrics.DirectoryFetchesTotal.WithLabelValues(kind, "error").Inc()
		s.log.Error().Err(err).Int("page", page).Msg("directory fetch failed")
		return err
	}

	if page == 1 {
		s.page.Items = users
	} else {
		s.page.Items = append(s.page.Items, users...)
	}
	s.page.PageNumber = page
	s.page.HasMore = len(users) == PageSize
	s.state = domain.FetchSuccess
	s.lastErr = nil

	metrics.DirectoryFetchesTotal.WithLabelValues(kind, "ok").Inc()
	s.log.Debug().Int("page", page).Int("count", len(users)).Bool("has_more", s.page.HasMore).Msg("directory page merged")
	return nil
}

// LoadMore fetches page+1 and appends. No-op while loading, when the last
// page was short, or while searching by identifier.
func (s *DirectoryService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.state == domain.FetchLoading || !s.page.HasMore || s.search.Mode == domain.SearchModeByID {
		s.mu.Unlock()
		return nil
	}
	next := s.page.PageNumber + 1
	s.mu.Unlock()

	return s.LoadPage(ctx, next)
}

// SearchByIdentifier registers one keystroke of search input. The lookup
// fires only after the debounce window elapses with no further input; each
// new keystroke replaces the pending timer, which is the cancellation
// mechanism — only the latest input within the window is ever sent.
func (s *DirectoryService) SearchByIdentifier(ctx context.Context, raw string) {
	query := strings.TrimSpace(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Query = query
	if s.timer != nil {
		if s.timer.Stop() {
			metrics.DebounceCancelledTotal.Inc()
		}
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fireSearch(ctx, query)
	})
}

// fireSearch runs once the debounce window has passed. Empty input resets to
// list mode and reloads page 1; anything else is a single-record lookup.
func (s *DirectoryService) fireSearch(ctx context.Context, query string) {
	if query == "" {
		s.mu.Lock()
		s.search = domain.SearchState{Mode: domain.SearchModeList}
		s.page = domain.DirectoryPage{}
		s.mu.Unlock()
		_ = s.LoadPage(ctx, 1)
		return
	}

	token := s.tokens.Token()
	if token == "" {
		s.log.Warn().Msg("directory search skipped: no session token")
		return
	}

	id, err := strconv.ParseInt(query, 10, 64)
	if err != nil {
		s.mu.Lock()
		s.search.Mode = domain.SearchModeByID
		s.page = domain.DirectoryPage{}
		s.state = domain.FetchError
		s.lastErr = domain.ErrUserNotFound
		s.mu.Unlock()
		s.log.Debug().Str("query", query).Msg("search input is not a numeric identifier")
		return
	}

	s.mu.Lock()
	s.search.Mode = domain.SearchModeByID
	s.state = domain.FetchLoading
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	user, err := s.gateway.GetUser(ctx, token, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		metrics.StaleResponsesTotal.Inc()
		s.log.Debug().Int64("id", id).Msg("stale lookup response discarded")
		return
	}
	if err != nil {
		s.state = domain.FetchError
		s.lastErr = err
		s.page = domain.DirectoryPage{PageNumber: 1}
		metrics.DirectoryFetchesTotal.WithLabelValues("by_id", "error").Inc()
		s.log.Warn().Err(err).Int64("id", id).Msg("user lookup failed")
		return
	}

	items := []domain.UserRecord{}
	if user != nil {
		items = append(items, *user)
	}
	s.page = domain.DirectoryPage{Items: items, PageNumber: 1, HasMore: false}
	s.state = domain.FetchSuccess
	s.lastErr = nil
	metrics.DirectoryFetchesTotal.WithLabelValues("by_id", "ok").Inc()
}

// Snapshot returns a copy of the current directory view.
func (s *DirectoryService) Snapshot() ports.DirectorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.UserRecord, len(s.page.Items))
	copy(items, s.page.Items)
	return ports.DirectorySnapshot{
		Page: domain.DirectoryPage{
			Items:      items,
			PageNumber: s.page.PageNumber,
			HasMore:    s.page.HasMore,
		},
		Search: s.search,
		State:  s.state,
		Err:    s.lastErr,
	}
}
