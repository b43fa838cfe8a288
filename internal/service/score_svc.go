package service

import (
	"math"

	"github.com/leadscope/leadscope-go/internal/model"
)

const (
	// Engagement at or above 8% of subscriber count is considered healthy;
	// such channels have no outreach upside and score 0.
	healthyEngagementRate = 0.08

	maxScore = 100
)

// ScoreService derives per-lead metrics from raw records.
type ScoreService struct{}

func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// EngagementRate returns average recent views divided by subscriber count,
// or 0 for channels with no subscribers.
func (s *ScoreService) EngagementRate(avgViews float64, subscribers int64) float64 {
	if subscribers <= 0 {
		return 0
	}
	return avgViews / float64(subscribers)
}

// OpportunityScore maps a lead's engagement shortfall to an integer in
// [0, 100]. The rate is normalized against the healthy-engagement threshold
// and clamped at 1, so channels meeting the threshold score 0 while channels
// with near-zero engagement relative to their size score near 100.
//
//	score = round((1 - min(rate/0.08, 1)) * 100)
//
// Zero subscribers scores 0: an audience-less channel is no opportunity.
func (s *ScoreService) OpportunityScore(avgViews float64, subscribers int64) int {
	if subscribers <= 0 {
		return 0
	}
	normalized := math.Min(s.EngagementRate(avgViews, subscribers)/healthyEngagementRate, 1.0)
	return int(math.Round((1 - normalized) * maxScore))
}

// AverageViews returns the arithmetic mean of a recent-view sequence.
// The sequence is guaranteed non-empty by the dataset contract (enforced at
// load time by dataset.Validate).
func (s *ScoreService) AverageViews(views []int64) float64 {
	var sum int64
	for _, v := range views {
		sum += v
	}
	return float64(sum) / float64(len(views))
}

// Enrich derives one enriched lead per raw record, preserving order and
// count. Runs once per dataset load; independent of any query state.
func (s *ScoreService) Enrich(leads []model.Lead) []model.EnrichedLead {
	enriched := make([]model.EnrichedLead, len(leads))
	for i, l := range leads {
		avg := s.AverageViews(l.RecentViews)
		enriched[i] = model.EnrichedLead{
			Lead:         l,
			AverageViews: avg,
			Score:        s.OpportunityScore(avg, l.Subscribers),
		}
	}
	return enriched
}
