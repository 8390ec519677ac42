package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorMessages maps HTTP status codes to the canned messages shown on the
// error page. Codes outside the table render with an empty message.
var errorMessages = map[int]string{
	fiber.StatusBadRequest:          "The requested resource does not exist.",
	fiber.StatusUnauthorized:        "Access denied due to invalid or missing credentials.",
	fiber.StatusForbidden:           "You do not have permission to access this resource.",
	fiber.StatusNotFound:            "Resource not found.",
	fiber.StatusInternalServerError: "An unexpected error occurred.",
}

// ErrorHandler is the application-wide fiber error handler. It renders the
// error page keyed by status code and never exposes internals to the user.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	message := errorMessages[code]

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"code":    code,
		"message": message,
	}); renderErr != nil {
		// no view engine configured (tests) or broken template
		return c.Status(code).SendString(message)
	}

	return nil
}
