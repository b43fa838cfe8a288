package service

import (
	"testing"

	"github.com/leadscope/leadscope-go/internal/model"
)

func TestExtractFacets_SortedAndDeduplicated(t *testing.T) {
	leads := []model.EnrichedLead{
		{Lead: model.Lead{Niche: "Tech", Country: "Germany"}},
		{Lead: model.Lead{Niche: "Fitness", Country: "Canada"}},
		{Lead: model.Lead{Niche: "Tech", Country: "Canada"}},
		{Lead: model.Lead{Niche: "Cooking", Country: "Germany"}},
	}

	got := ExtractFacets(leads)

	wantNiches := []string{"Cooking", "Fitness", "Tech"}
	if len(got.Niches) != len(wantNiches) {
		t.Fatalf("niches = %v, want %v", got.Niches, wantNiches)
	}
	for i, n := range wantNiches {
		if got.Niches[i] != n {
			t.Errorf("niches[%d] = %s, want %s", i, got.Niches[i], n)
		}
	}

	wantCountries := []string{"Canada", "Germany"}
	if len(got.Countries) != len(wantCountries) {
		t.Fatalf("countries = %v, want %v", got.Countries, wantCountries)
	}
	for i, c := range wantCountries {
		if got.Countries[i] != c {
			t.Errorf("countries[%d] = %s, want %s", i, got.Countries[i], c)
		}
	}
}

func TestExtractFacets_EmptyCollection(t *testing.T) {
	got := ExtractFacets(nil)
	if got.Niches == nil || got.Countries == nil {
		t.Error("facet slices must be empty, not nil, for JSON encoding")
	}
	if len(got.Niches) != 0 || len(got.Countries) != 0 {
		t.Errorf("facets = %+v, want empty", got)
	}
}

func TestExtractFacets_SkipsBlankValues(t *testing.T) {
	leads := []model.EnrichedLead{
		{Lead: model.Lead{Niche: "Tech", Country: ""}},
		{Lead: model.Lead{Niche: "", Country: "Canada"}},
	}

	got := ExtractFacets(leads)
	if len(got.Niches) != 1 || got.Niches[0] != "Tech" {
		t.Errorf("niches = %v, want [Tech]", got.Niches)
	}
	if len(got.Countries) != 1 || got.Countries[0] != "Canada" {
		t.Errorf("countries = %v, want [Canada]", got.Countries)
	}
}
