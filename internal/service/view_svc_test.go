package service

import (
	"testing"

	"github.com/leadscope/leadscope-go/internal/model"
)

func testLeads() []model.EnrichedLead {
	return []model.EnrichedLead{
		{Lead: model.Lead{ChannelName: "Penny Wise Paths", Handle: "@pennywisepaths", Niche: "Personal Finance", Country: "United States", Subscribers: 412000}, AverageViews: 10040, Score: 70},
		{Lead: model.Lead{ChannelName: "The Finance Diaries", Handle: "@financediaries", Niche: "Personal Finance", Country: "United Kingdom", Subscribers: 187000}, AverageViews: 21475, Score: 0},
		{Lead: model.Lead{ChannelName: "Lift Lab", Handle: "@liftlab", Niche: "Fitness", Country: "Canada", Subscribers: 96000}, AverageViews: 4333, Score: 44},
		{Lead: model.Lead{ChannelName: "Circuit Breakdown", Handle: "@circuitbreakdown", Niche: "Tech", Country: "United States", Subscribers: 540000}, AverageViews: 8475, Score: 80},
		{Lead: model.Lead{ChannelName: "Quiet Finance", Handle: "@quietfinance", Niche: "Personal Finance", Country: "Canada", Subscribers: 321000}, AverageViews: 5300, Score: 79},
	}
}

func handles(leads []model.EnrichedLead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.Handle
	}
	return out
}

func TestFilterLeads_IdentityWhenUnconstrained(t *testing.T) {
	leads := testLeads()
	state := model.DefaultQueryState()

	got := FilterLeads(leads, state)
	if len(got) != len(leads) {
		t.Fatalf("filtered count = %d, want %d", len(got), len(leads))
	}
	for i := range leads {
		if got[i].Handle != leads[i].Handle {
			t.Errorf("order changed at %d: got %s, want %s", i, got[i].Handle, leads[i].Handle)
		}
	}
}

func TestFilterLeads_SearchMatchesNameAndHandle(t *testing.T) {
	leads := testLeads()
	state := model.DefaultQueryState()
	state.Search = "finance"

	got := FilterLeads(leads, state)

	// "finance" matches on channel name or handle; relative order is
	// preserved from the input.
	want := []string{"@financediaries", "@quietfinance"}
	if len(got) != len(want) {
		t.Fatalf("filtered = %v, want %v", handles(got), want)
	}
	for i, h := range want {
		if got[i].Handle != h {
			t.Errorf("result[%d] = %s, want %s", i, got[i].Handle, h)
		}
	}
}

func TestFilterLeads_SearchCaseInsensitiveAndTrimmed(t *testing.T) {
	leads := testLeads()
	state := model.DefaultQueryState()
	state.Search = "  LIFT  "

	got := FilterLeads(leads, state)
	if len(got) != 1 || got[0].Handle != "@liftlab" {
		t.Errorf("filtered = %v, want [@liftlab]", handles(got))
	}
}

func TestFilterLeads_FacetsAreExactMatch(t *testing.T) {
	leads := testLeads()
	state := model.DefaultQueryState()
	state.Niche = "Personal Finance"
	state.Country = "Canada"

	got := FilterLeads(leads, state)
	if len(got) != 1 || got[0].Handle != "@quietfinance" {
		t.Errorf("filtered = %v, want [@quietfinance]", handles(got))
	}
}

func TestFilterLeads_Idempotent(t *testing.T) {
	leads := testLeads()
	state := model.DefaultQueryState()
	state.Search = "finance"
	state.Country = "Canada"

	once := FilterLeads(leads, state)
	twice := FilterLeads(once, state)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Handle != twice[i].Handle {
			t.Errorf("second pass changed order at %d", i)
		}
	}
}

func TestFilterLeads_NoMatches(t *testing.T) {
	state := model.DefaultQueryState()
	state.Search = "does-not-exist"

	got := FilterLeads(testLeads(), state)
	if len(got) != 0 {
		t.Errorf("filtered = %v, want empty", handles(got))
	}
}

func TestSortLeads_ByOpportunityDescending(t *testing.T) {
	got := SortLeads(testLeads(), model.SortByOpportunity, model.SortDescending)

	want := []string{"@circuitbreakdown", "@quietfinance", "@pennywisepaths", "@liftlab", "@financediaries"}
	for i, h := range want {
		if got[i].Handle != h {
			t.Errorf("result[%d] = %s, want %s", i, got[i].Handle, h)
		}
	}
}

func TestSortLeads_ReverseDirectionReversesOrder(t *testing.T) {
	leads := testLeads()

	desc := SortLeads(leads, model.SortBySubscribers, model.SortDescending)
	asc := SortLeads(leads, model.SortBySubscribers, model.SortAscending)

	for i := range desc {
		if desc[i].Handle != asc[len(asc)-1-i].Handle {
			t.Errorf("desc[%d] = %s, want %s (exact reverse of asc)", i, desc[i].Handle, asc[len(asc)-1-i].Handle)
		}
	}
}

func TestSortLeads_IsPermutation(t *testing.T) {
	leads := testLeads()
	got := SortLeads(leads, model.SortByRecentViews, model.SortAscending)

	if len(got) != len(leads) {
		t.Fatalf("sorted count = %d, want %d", len(got), len(leads))
	}
	seen := make(map[string]bool)
	for _, l := range got {
		seen[l.Handle] = true
	}
	for _, l := range leads {
		if !seen[l.Handle] {
			t.Errorf("handle %s missing after sort", l.Handle)
		}
	}
}

func TestSortLeads_StableOnTies(t *testing.T) {
	leads := []model.EnrichedLead{
		{Lead: model.Lead{Handle: "@first", Subscribers: 100}, Score: 50},
		{Lead: model.Lead{Handle: "@second", Subscribers: 200}, Score: 50},
		{Lead: model.Lead{Handle: "@third", Subscribers: 300}, Score: 50},
	}

	for _, dir := range []model.SortDirection{model.SortAscending, model.SortDescending} {
		got := SortLeads(leads, model.SortByOpportunity, dir)
		want := []string{"@first", "@second", "@third"}
		for i, h := range want {
			if got[i].Handle != h {
				t.Errorf("dir=%s: tied result[%d] = %s, want %s (input order)", dir, i, got[i].Handle, h)
			}
		}
	}
}

func TestSortLeads_DoesNotMutateInput(t *testing.T) {
	leads := testLeads()
	before := handles(leads)

	SortLeads(leads, model.SortBySubscribers, model.SortAscending)

	after := handles(leads)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("input reordered at %d: %s → %s", i, before[i], after[i])
		}
	}
}
