package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/leadscope/leadscope-go/internal/middleware"
	"github.com/leadscope/leadscope-go/internal/service"
)

type StatsHandler struct {
	svc *service.LeadService
}

func NewStatsHandler(svc *service.LeadService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats — the aggregate triple for a filter state
// without the row payload.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	state, errMsg := queryStateFromRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	return c.JSON(h.svc.Summary(state))
}
