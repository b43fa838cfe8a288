package service

import (
	"sort"
	"strings"

	"github.com/leadscope/leadscope-go/internal/model"
)

// FilterLeads returns the subset of leads matching the query state: search
// text (case-insensitive, whitespace-trimmed substring of channel name or
// handle) AND niche AND country, where "All" disables a facet. The filter is
// stable — surviving records keep their input order — and never mutates its
// input. Empty search with both facets open is the identity.
func FilterLeads(leads []model.EnrichedLead, state model.QueryState) []model.EnrichedLead {
	search := strings.ToLower(strings.TrimSpace(state.Search))

	out := make([]model.EnrichedLead, 0, len(leads))
	for _, l := range leads {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.ChannelName), search) &&
			!strings.Contains(strings.ToLower(l.Handle), search) {
			continue
		}
		if state.Niche != model.FacetAll && l.Niche != state.Niche {
			continue
		}
		if state.Country != model.FacetAll && l.Country != state.Country {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sortValue extracts the numeric ranking value for a sort key.
func sortValue(l model.EnrichedLead, key model.SortKey) float64 {
	switch key {
	case model.SortByOpportunity:
		return float64(l.Score)
	case model.SortBySubscribers:
		return float64(l.Subscribers)
	case model.SortByRecentViews:
		return l.AverageViews
	}
	// Unreachable: SortKey is a closed enumeration validated at the edge.
	return 0
}

// SortLeads returns a new slice ordered by the given key and direction.
// The sort is stable, so ties keep their filtered-stage order, and the input
// slice is never reordered.
func SortLeads(leads []model.EnrichedLead, key model.SortKey, dir model.SortDirection) []model.EnrichedLead {
	out := make([]model.EnrichedLead, len(leads))
	copy(out, leads)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortValue(out[i], key), sortValue(out[j], key)
		if dir == model.SortDescending {
			return a > b
		}
		return a < b
	})
	return out
}
