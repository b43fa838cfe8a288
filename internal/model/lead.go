package model

// Lead is a candidate creator/channel record considered for outreach.
// Records are supplied in full at startup and never mutated.
type Lead struct {
	ChannelName      string  `json:"channelName"`
	Handle           string  `json:"handle"`
	URL              string  `json:"url,omitempty"`
	Email            string  `json:"email,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	OutreachAngle    string  `json:"outreachAngle,omitempty"`
	Niche            string  `json:"niche"`
	Country          string  `json:"country"`
	Subscribers      int64   `json:"subscribers"`
	SubscribersLabel string  `json:"subscribersLabel,omitempty"`
	LastUpload       string  `json:"lastUpload,omitempty"`
	RecentViews      []int64 `json:"recentViews"`
}

// EnrichedLead is a lead extended with derived metrics. Both fields are pure
// functions of the source record; they are computed once per dataset load.
type EnrichedLead struct {
	Lead
	AverageViews float64 `json:"averageViews"`
	Score        int     `json:"score"`
}

// Summary holds aggregate statistics over the currently filtered subset.
type Summary struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	MedianScore      int   `json:"medianScore"`
	MedianViews      int   `json:"medianViews"`
}

// Facets lists the distinct category values available for filter selection,
// derived from the full collection (not the filtered subset).
type Facets struct {
	Niches    []string `json:"niches"`
	Countries []string `json:"countries"`
}

// LeadsResponse is the API response for lead queries.
type LeadsResponse struct {
	Leads          []EnrichedLead `json:"leads"`
	Summary        Summary        `json:"summary"`
	ResultCount    int            `json:"resultCount"`
	DatasetVersion string         `json:"datasetVersion"`
}

// StatsResponse is the API response for summary-only queries.
type StatsResponse struct {
	Summary        Summary `json:"summary"`
	ResultCount    int     `json:"resultCount"`
	DatasetVersion string  `json:"datasetVersion"`
}
