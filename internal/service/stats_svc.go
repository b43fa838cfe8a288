package service

import (
	"math"
	"sort"

	"github.com/leadscope/leadscope-go/internal/model"
)

// Summarize computes aggregate statistics over the filtered (pre-sort)
// subset: total subscribers plus median opportunity score and median average
// views, both rounded to the nearest integer. An empty subset yields all
// zeros — no matches is a valid state, not an error.
func Summarize(leads []model.EnrichedLead) model.Summary {
	if len(leads) == 0 {
		return model.Summary{}
	}

	var total int64
	scores := make([]float64, len(leads))
	views := make([]float64, len(leads))
	for i, l := range leads {
		total += l.Subscribers
		scores[i] = float64(l.Score)
		views[i] = l.AverageViews
	}

	return model.Summary{
		TotalSubscribers: total,
		MedianScore:      int(math.Round(median(scores))),
		MedianViews:      int(math.Round(median(views))),
	}
}

// median sorts a copy of the values ascending and takes the middle element,
// or the mean of the two middle elements for even counts. Panics on empty
// input; callers guard.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
