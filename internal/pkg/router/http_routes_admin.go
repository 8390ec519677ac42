package router

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/controllers"
	"newsportal/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/dashboard", controllers.HandleAdminDashboard)
}
