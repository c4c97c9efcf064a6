package serverutils

import (
	"errors"

	"valuation-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by handlers into HTTP
// responses. Not-found lookups become empty 404s, validation failures a 400
// field map, render failures a structured 500, and everything else a generic
// 500 whose full detail is only logged server-side.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			// Empty body, not the default status text.
			return ctx.Status(fiber.StatusNotFound).SendString("")
		}

		var validation *ValidationError
		if errors.As(err, &validation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(validation.Fields)
		}

		var render *RenderError
		if errors.As(err, &render) {
			log.Error("report", "PDF generation failed", map[string]interface{}{
				"id":    render.Id,
				"path":  ctx.Path(),
				"error": render.Err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "PDF generation failed",
				"message": render.Err.Error(),
				"id":      render.Id,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		log.Error("http", "Unexpected error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An unexpected error occurred",
			"error":   err.Error(),
		})
	}
}
