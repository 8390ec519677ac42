package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/pkg/usercontext"
)

func newAuthTestApp(ctx *usercontext.UserContext, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if ctx != nil {
			usercontext.SetUserContext(c, *ctx)
		}
		return c.Next()
	})
	app.Get("/protected", guard, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireAuthAnonymous(t *testing.T) {
	app := newAuthTestApp(nil, RequireAuth)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthLoggedIn(t *testing.T) {
	ctx := &usercontext.UserContext{UserID: "u1", Username: "Jane", Role: "USER", IsLoggedIn: true}
	app := newAuthTestApp(ctx, RequireAuth)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminAnonymous(t *testing.T) {
	app := newAuthTestApp(nil, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRegularUser(t *testing.T) {
	ctx := &usercontext.UserContext{UserID: "u1", Username: "Jane", Role: "USER", IsLoggedIn: true}
	app := newAuthTestApp(ctx, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAdmin(t *testing.T) {
	ctx := &usercontext.UserContext{UserID: "a1", Username: "Admin", Role: "ADMIN", IsLoggedIn: true, IsAdmin: true}
	app := newAuthTestApp(ctx, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
