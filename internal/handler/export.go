package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/leadscope/leadscope-go/internal/middleware"
	"github.com/leadscope/leadscope-go/internal/service"
)

type ExportHandler struct {
	svc *service.LeadService
}

func NewExportHandler(svc *service.LeadService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/leads/export
// Serves the current filtered+sorted view as a CSV download; accepts the
// same query parameters as the list endpoint.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	state, errMsg := queryStateFromRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp := h.svc.Query(c.Context(), state)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"channelName", "handle", "niche", "country",
		"subscribers", "averageViews", "score",
		"email", "url", "lastUpload", "outreachAngle", "notes",
	}
	if err := w.Write(header); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	for _, l := range resp.Leads {
		row := []string{
			l.ChannelName, l.Handle, l.Niche, l.Country,
			strconv.FormatInt(l.Subscribers, 10),
			strconv.FormatFloat(l.AverageViews, 'f', 2, 64),
			strconv.Itoa(l.Score),
			l.Email, l.URL, l.LastUpload, l.OutreachAngle, l.Notes,
		}
		if err := w.Write(row); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	Metrics.ExportsTotal.Inc()

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename=leads-"+resp.DatasetVersion+".csv")
	return c.Send(buf.Bytes())
}
