package presenters

import (
	"HomeLedger-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	// ErrorBody is the generic failure response. Detail is attached
	// only outside production mode.
	ErrorBody struct {
		Message string `json:"message"`
		Detail  string `json:"error,omitempty"`
	}

	// ValidationErrorBody enumerates every violation found.
	ValidationErrorBody struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := ErrorBody{Message: message}
	if err != nil && !domain.IsProduction() {
		body.Detail = err.Error()
	}
	return c.Status(status).JSON(body)
}

func ValidationErrorResponse(c *fiber.Ctx, violations []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorBody{
		Message: domain.MessageValidationFailed,
		Errors:  violations,
	})
}
