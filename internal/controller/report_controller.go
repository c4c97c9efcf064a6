package controller

import (
	"fmt"

	"valuation-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Preview(ctx *fiber.Ctx) error
	DownloadPDF(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/valuations")
	h.Get(":id/preview", c.Preview)
	h.Get(":id/pdf", c.DownloadPDF)
}

func (c *reportController) Preview(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	html, err := c.service.Preview(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.SendString(html)
}

func (c *reportController) DownloadPDF(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	pdfBytes, err := c.service.ExportPDF(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="valuation-%d.pdf"`, id))
	return ctx.Send(pdfBytes)
}
