package router

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/controllers"
	"newsportal/internal/pkg/middleware"
)

func (h HttpRouter) registerProtectedRoutes(app *fiber.App) {
	app.Get("/home", middleware.RequireAuth, controllers.HandleHome)

	// Author management
	authorGroup := app.Group("/author", middleware.RequireAuth)
	authorGroup.Get("/", controllers.HandleAuthorMenu)
	authorGroup.Get("/create", controllers.HandleAuthorCreate)
	authorGroup.Post("/create", controllers.HandleAuthorCreate)
	authorGroup.Get("/list", controllers.HandleAuthorList)
	authorGroup.Get("/set/:id", controllers.HandleAuthorUpdate)
	authorGroup.Post("/set/:id", controllers.HandleAuthorUpdate)
	authorGroup.Get("/search", controllers.HandleAuthorSearch)

	// News management
	newsGroup := app.Group("/news", middleware.RequireAuth)
	newsGroup.Get("/", controllers.HandleNewsMenu)
	newsGroup.Get("/create", controllers.HandleNewsCreate)
	newsGroup.Post("/create", controllers.HandleNewsCreate)
	newsGroup.Get("/list", controllers.HandleNewsList)
	newsGroup.Get("/set/:id", controllers.HandleNewsUpdate)
	newsGroup.Post("/set/:id", controllers.HandleNewsUpdate)
	newsGroup.Post("/delete/:id", controllers.HandleNewsDelete)
	newsGroup.Get("/search", controllers.HandleNewsSearch)
}
