package router

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/controllers"
	"newsportal/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleIndex)

	// Registration
	app.Get("/register", controllers.HandleRegister)
	app.Post("/registry", controllers.HandleRegistry)

	// Login / logout
	app.Get("/login", controllers.HandleLogin)
	app.Post("/logincheck", controllers.HandleLoginCheck)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)

	// Profile image blobs
	app.Get("/image/profile/:id", controllers.HandleProfileImage)
}
