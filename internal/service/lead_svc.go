package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/leadscope/leadscope-go/internal/dataset"
	"github.com/leadscope/leadscope-go/internal/model"
)

// ErrLeadNotFound is returned when no lead carries the requested handle.
var ErrLeadNotFound = errors.New("lead not found")

// LeadService owns the enriched collection and answers queries over it.
// The collection and its facets are derived once from the static dataset;
// every query recomputes the filtered, sorted, and aggregated view from
// scratch — at a few hundred records that is cheaper than keeping derived
// views consistent incrementally.
type LeadService struct {
	enriched []model.EnrichedLead
	byHandle map[string]int
	facets   model.Facets
	version  string
	cache    *CacheService
}

func NewLeadService(ds *dataset.Dataset, cache *CacheService) *LeadService {
	score := NewScoreService()
	enriched := score.Enrich(ds.Leads)

	byHandle := make(map[string]int, len(enriched))
	for i, l := range enriched {
		byHandle[l.Handle] = i
	}

	return &LeadService{
		enriched: enriched,
		byHandle: byHandle,
		facets:   ExtractFacets(enriched),
		version:  ds.Version,
		cache:    cache,
	}
}

// Query runs the full pipeline for a query state: filter, then aggregate the
// filtered subset, then sort. Responses are served cache-aside when Redis is
// configured, keyed by the canonical state and the dataset version.
func (s *LeadService) Query(ctx context.Context, state model.QueryState) *model.LeadsResponse {
	key := s.queryKey(state)

	if s.cache != nil {
		cached, err := s.cache.GetQuery(ctx, key)
		if err != nil {
			log.Printf("cache: query get error: %v", err)
		} else if cached != nil {
			var resp model.LeadsResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp
			}
		}
	}

	filtered := FilterLeads(s.enriched, state)
	resp := &model.LeadsResponse{
		Leads:          SortLeads(filtered, state.SortKey, state.SortDir),
		Summary:        Summarize(filtered),
		ResultCount:    len(filtered),
		DatasetVersion: s.version,
	}

	if s.cache != nil {
		if err := s.cache.SetQuery(ctx, key, resp); err != nil {
			log.Printf("cache: query set error: %v", err)
		}
	}

	return resp
}

// Summary computes the aggregate triple for a filter state without sorting.
func (s *LeadService) Summary(state model.QueryState) *model.StatsResponse {
	filtered := FilterLeads(s.enriched, state)
	return &model.StatsResponse{
		Summary:        Summarize(filtered),
		ResultCount:    len(filtered),
		DatasetVersion: s.version,
	}
}

// FindByHandle returns a single enriched lead by its identity key.
func (s *LeadService) FindByHandle(handle string) (*model.EnrichedLead, error) {
	i, ok := s.byHandle[handle]
	if !ok {
		return nil, ErrLeadNotFound
	}
	lead := s.enriched[i]
	return &lead, nil
}

// Facets returns the filter options derived from the full collection.
func (s *LeadService) Facets() model.Facets {
	return s.facets
}

// Version returns the dataset fingerprint.
func (s *LeadService) Version() string {
	return s.version
}

// Size returns the number of leads in the collection.
func (s *LeadService) Size() int {
	return len(s.enriched)
}

func (s *LeadService) queryKey(state model.QueryState) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		s.version, state.Search, state.Niche, state.Country, state.SortKey, state.SortDir)
}
