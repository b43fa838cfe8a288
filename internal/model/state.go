package model

// FacetAll is the wildcard value that disables a categorical filter.
const FacetAll = "All"

// SortKey selects which derived metric a query is ordered by.
type SortKey string

const (
	SortByOpportunity SortKey = "opportunity"
	SortBySubscribers SortKey = "subscribers"
	SortByRecentViews SortKey = "recentViews"
)

// SortDirection orders a query ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// QueryState is the full interactive session state: search text, the two
// facet selections, and the sort order. It is immutable — user actions
// produce a replacement value via Reduce, never an in-place mutation.
type QueryState struct {
	Search  string
	Niche   string
	Country string
	SortKey SortKey
	SortDir SortDirection
}

// DefaultQueryState returns the initial session state: no search, both
// facets wide open, highest opportunity first.
func DefaultQueryState() QueryState {
	return QueryState{
		Search:  "",
		Niche:   FacetAll,
		Country: FacetAll,
		SortKey: SortByOpportunity,
		SortDir: SortDescending,
	}
}

// Action is a user input event applied to a QueryState.
type Action interface {
	apply(QueryState) QueryState
}

// SetSearch replaces the free-text search.
type SetSearch struct{ Text string }

func (a SetSearch) apply(s QueryState) QueryState {
	s.Search = a.Text
	return s
}

// SelectNiche replaces the niche facet selection.
type SelectNiche struct{ Niche string }

func (a SelectNiche) apply(s QueryState) QueryState {
	s.Niche = a.Niche
	return s
}

// SelectCountry replaces the country facet selection.
type SelectCountry struct{ Country string }

func (a SelectCountry) apply(s QueryState) QueryState {
	s.Country = a.Country
	return s
}

// ClickSort is a sort-header click: re-clicking the active key toggles the
// direction, clicking a new key selects it descending.
type ClickSort struct{ Key SortKey }

func (a ClickSort) apply(s QueryState) QueryState {
	if s.SortKey == a.Key {
		if s.SortDir == SortDescending {
			s.SortDir = SortAscending
		} else {
			s.SortDir = SortDescending
		}
		return s
	}
	s.SortKey = a.Key
	s.SortDir = SortDescending
	return s
}

// Reduce applies a user action to the current state and returns the next
// state. The input state is never modified.
func Reduce(state QueryState, action Action) QueryState {
	return action.apply(state)
}
