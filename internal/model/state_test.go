package model

import "testing"

func TestDefaultQueryState(t *testing.T) {
	s := DefaultQueryState()
	if s.Search != "" || s.Niche != FacetAll || s.Country != FacetAll {
		t.Errorf("default filters = %+v, want empty search and All facets", s)
	}
	if s.SortKey != SortByOpportunity || s.SortDir != SortDescending {
		t.Errorf("default sort = %s/%s, want opportunity/desc", s.SortKey, s.SortDir)
	}
}

func TestReduce_SetSearch(t *testing.T) {
	before := DefaultQueryState()
	after := Reduce(before, SetSearch{Text: "finance"})

	if after.Search != "finance" {
		t.Errorf("search = %q, want %q", after.Search, "finance")
	}
	if before.Search != "" {
		t.Errorf("input state was mutated: %+v", before)
	}
	// Unrelated fields carry over
	if after.SortKey != before.SortKey || after.Niche != before.Niche {
		t.Errorf("unrelated fields changed: %+v", after)
	}
}

func TestReduce_SelectFacets(t *testing.T) {
	s := DefaultQueryState()
	s = Reduce(s, SelectNiche{Niche: "Personal Finance"})
	s = Reduce(s, SelectCountry{Country: "Canada"})

	if s.Niche != "Personal Finance" {
		t.Errorf("niche = %q, want %q", s.Niche, "Personal Finance")
	}
	if s.Country != "Canada" {
		t.Errorf("country = %q, want %q", s.Country, "Canada")
	}
}

func TestReduce_ClickSort_SameKeyTogglesDirection(t *testing.T) {
	s := DefaultQueryState() // opportunity/desc

	s = Reduce(s, ClickSort{Key: SortByOpportunity})
	if s.SortKey != SortByOpportunity || s.SortDir != SortAscending {
		t.Errorf("after first re-click: %s/%s, want opportunity/asc", s.SortKey, s.SortDir)
	}

	s = Reduce(s, ClickSort{Key: SortByOpportunity})
	if s.SortDir != SortDescending {
		t.Errorf("after second re-click: %s, want desc", s.SortDir)
	}
}

func TestReduce_ClickSort_NewKeyDefaultsDescending(t *testing.T) {
	s := DefaultQueryState()
	s = Reduce(s, ClickSort{Key: SortByOpportunity}) // now ascending

	s = Reduce(s, ClickSort{Key: SortBySubscribers})
	if s.SortKey != SortBySubscribers || s.SortDir != SortDescending {
		t.Errorf("new key sort = %s/%s, want subscribers/desc", s.SortKey, s.SortDir)
	}
}
