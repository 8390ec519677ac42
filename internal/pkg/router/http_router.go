package router

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/controllers"
	"newsportal/internal/pkg/middleware"
	"newsportal/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// resolve the session user before anything else
	app.Use(middleware.UserContextMiddleware)

	controllers.InitializePortalController()
	controllers.InitializeAuthorController()
	controllers.InitializeNewsController()
	controllers.InitializeImageController()
	controllers.InitializeAdminController()

	h.registerPublicRoutes(app)
	h.registerProtectedRoutes(app)
	h.registerAdminRoutes(app)
}
