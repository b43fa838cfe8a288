package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/leadscope/leadscope-go/internal/service"
)

type FacetHandler struct {
	svc *service.LeadService
}

func NewFacetHandler(svc *service.LeadService) *FacetHandler {
	return &FacetHandler{svc: svc}
}

// Get handles GET /api/facets — the distinct niche and country values for
// populating filter controls, always derived from the full collection.
func (h *FacetHandler) Get(c fiber.Ctx) error {
	return c.JSON(h.svc.Facets())
}
