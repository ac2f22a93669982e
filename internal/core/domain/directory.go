package domain

// FetchState is the lifecycle of a single directory fetch cycle:
// Idle -> Loading -> {Success, Error} -> (next trigger) Loading.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchSuccess
	FetchError
)

func (s FetchState) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchSuccess:
		return "success"
	case FetchError:
		return "error"
	default:
		return "unknown"
	}
}

// SearchMode selects between the paginated role listing and a single-record
// lookup by identifier.
type SearchMode string

const (
	SearchModeList SearchMode = "list"
	SearchModeByID SearchMode = "byId"
)

// SearchState tracks the current query and which mode the directory is in.
// Mode becomes byId once a non-empty query survives the debounce window and
// falls back to list when the query is cleared.
type SearchState struct {
	Query string
	Mode  SearchMode
}

// DirectoryPage is the accumulated, ordered view of the remote directory.
// PageNumber is the highest page merged so far; HasMore is inferred from the
// last fetch returning a full page.
type DirectoryPage struct {
	Items      []UserRecord
	PageNumber int
	HasMore    bool
}
