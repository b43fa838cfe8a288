package service

import (
	"sort"

	"github.com/leadscope/leadscope-go/internal/model"
)

// ExtractFacets returns the distinct niche and country values present in the
// FULL collection (never the filtered subset — selecting a facet must not
// shrink the available options), each sorted lexicographically with no
// duplicates. The dataset is static, so this runs once per load.
func ExtractFacets(leads []model.EnrichedLead) model.Facets {
	return model.Facets{
		Niches:    distinct(leads, func(l model.EnrichedLead) string { return l.Niche }),
		Countries: distinct(leads, func(l model.EnrichedLead) string { return l.Country }),
	}
}

func distinct(leads []model.EnrichedLead, key func(model.EnrichedLead) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, l := range leads {
		v := key(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
