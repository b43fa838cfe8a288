package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/leadscope/leadscope-go/internal/middleware"
	"github.com/leadscope/leadscope-go/internal/model"
	"github.com/leadscope/leadscope-go/internal/service"
)

type LeadHandler struct {
	svc *service.LeadService
}

func NewLeadHandler(svc *service.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// queryStateFromRequest builds the query state for a request by applying the
// supplied parameters to the default session state. Absent parameters keep
// their defaults (empty search, open facets, opportunity descending).
func queryStateFromRequest(c fiber.Ctx) (model.QueryState, string) {
	state := model.DefaultQueryState()

	search, errMsg := middleware.ValidateSearch(fiber.Query[string](c, "search"))
	if errMsg != "" {
		return state, errMsg
	}
	state = model.Reduce(state, model.SetSearch{Text: search})

	niche, errMsg := middleware.ValidateFacet(fiber.Query[string](c, "niche"))
	if errMsg != "" {
		return state, errMsg
	}
	state = model.Reduce(state, model.SelectNiche{Niche: niche})

	country, errMsg := middleware.ValidateFacet(fiber.Query[string](c, "country"))
	if errMsg != "" {
		return state, errMsg
	}
	state = model.Reduce(state, model.SelectCountry{Country: country})

	sortKey, errMsg := middleware.ValidateSortKey(fiber.Query[string](c, "sortKey"))
	if errMsg != "" {
		return state, errMsg
	}
	sortDir, errMsg := middleware.ValidateSortDirection(fiber.Query[string](c, "sortDir"))
	if errMsg != "" {
		return state, errMsg
	}
	state.SortKey = sortKey
	state.SortDir = sortDir

	return state, ""
}

// List handles GET /api/leads — the full filter/sort/aggregate pipeline.
func (h *LeadHandler) List(c fiber.Ctx) error {
	state, errMsg := queryStateFromRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp := h.svc.Query(c.Context(), state)

	Metrics.QueriesTotal.WithLabelValues(string(state.SortKey)).Inc()

	return c.JSON(resp)
}

// GetByHandle handles GET /api/leads/:handle
func (h *LeadHandler) GetByHandle(c fiber.Ctx) error {
	handle, errMsg := middleware.ValidateHandle(c.Params("handle"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	lead, err := h.svc.FindByHandle(handle)
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Lead not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup lead")
	}

	return c.JSON(lead)
}
