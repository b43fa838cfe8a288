package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/leadscope/leadscope-go/internal/model"
)

// Field length limits for query parameters.
const (
	MaxSearchLen = 100 // free-text search
	MaxFacetLen  = 64  // niche / country values
	MaxHandleLen = 64  // lead handle
)

// handleRe matches creator handles: a leading @ followed by word characters,
// dots, and dashes.
var handleRe = regexp.MustCompile(`^@[A-Za-z0-9._-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateSearch trims and length-caps the free-text search. An empty search
// is valid (identity filter).
func ValidateSearch(s string) (string, string) {
	s = strings.TrimSpace(s)
	if len(s) > MaxSearchLen {
		return "", "search must be at most 100 characters"
	}
	return s, ""
}

// ValidateFacet checks a niche or country selection. Empty selects the "All"
// wildcard.
func ValidateFacet(v string) (string, string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return model.FacetAll, ""
	}
	if len(v) > MaxFacetLen {
		return "", "facet value must be at most 64 characters"
	}
	return v, ""
}

// ValidateSortKey parses a sort key into the closed enumeration. Empty
// selects the default (opportunity).
func ValidateSortKey(k string) (model.SortKey, string) {
	switch strings.TrimSpace(k) {
	case "", string(model.SortByOpportunity):
		return model.SortByOpportunity, ""
	case string(model.SortBySubscribers):
		return model.SortBySubscribers, ""
	case string(model.SortByRecentViews):
		return model.SortByRecentViews, ""
	}
	return "", "sortKey must be one of: opportunity, subscribers, recentViews"
}

// ValidateSortDirection parses a sort direction. Empty selects descending,
// matching a fresh sort-key click.
func ValidateSortDirection(d string) (model.SortDirection, string) {
	switch strings.TrimSpace(d) {
	case "", string(model.SortDescending):
		return model.SortDescending, ""
	case string(model.SortAscending):
		return model.SortAscending, ""
	}
	return "", "sortDir must be asc or desc"
}

// ValidateHandle checks that a lead handle is well-formed.
func ValidateHandle(h string) (string, string) {
	h = strings.TrimSpace(h)
	if h == "" {
		return "", "handle is required"
	}
	if len(h) > MaxHandleLen {
		return "", "handle must be at most 64 characters"
	}
	if !handleRe.MatchString(h) {
		return "", "handle must start with @ and contain only letters, digits, dots, dashes, or underscores"
	}
	return h, ""
}
