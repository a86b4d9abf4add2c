package serverutils

import (
	"errors"

	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the single place failures become HTTP responses.
// Controllers return errors; this maps them to a status and an {error: msg}
// body. There are no partial-success responses and nothing is retried.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ae *apperr.Error
		if errors.As(err, &ae) {
			status := apperr.StatusOf(ae)
			if status >= fiber.StatusInternalServerError && log != nil {
				log.Error("HTTP", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": err.Error(),
				})
			}
			return ctx.Status(status).JSON(fiber.Map{"error": ae.Message})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		if log != nil {
			log.Error("HTTP", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
