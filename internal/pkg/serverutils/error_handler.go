package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guruvela-be/pkg/content"
	"guruvela-be/pkg/prediction"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		code, body := mapError(err)
		return ctx.Status(code).JSON(body)
	}
}

func mapError(err error) (int, interface{}) {
	var validationErr *ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, ErrorResponseWithData(fiber.StatusBadRequest, "Validation failed", validationErr.Fields)
	case errors.Is(err, prediction.ErrInvalidRank):
		return fiber.StatusBadRequest, ErrorResponse(fiber.StatusBadRequest, "invalid rank")
	case errors.Is(err, content.ErrNotFound):
		return fiber.StatusNotFound, ErrorResponseWithData(fiber.StatusNotFound, "Content not found", fiber.Map{
			"help_slug": content.HelpSlug,
			"help_link": content.RelatedLink(content.HelpSlug),
		})
	case errors.As(err, &fiberErr):
		return fiberErr.Code, ErrorResponse(fiberErr.Code, fiberErr.Message)
	default:
		return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, "Internal server error")
	}
}
