package middleware

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/internal/pkg/usercontext"
)

// RequireAuth rejects requests without a logged-in session with 401.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return fiber.ErrUnauthorized
	}
	return c.Next()
}

// RequireAdmin rejects anonymous requests with 401 and logged-in
// non-admins with 403.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return fiber.ErrUnauthorized
	}
	if !usercontext.IsAdmin(c) {
		return fiber.ErrForbidden
	}
	return c.Next()
}
