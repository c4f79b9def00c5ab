package handler

import (
	"go-shop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report summary"})
	}
	return c.JSON(summary)
}

// Export streams the full sales history as a dated xlsx download.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	filename, content, err := h.service.Export()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export sales"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}
