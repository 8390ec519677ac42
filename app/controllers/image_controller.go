package controllers

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/repository"
	"newsportal/app/services"
)

// ImageController serves profile image blobs.
type ImageController struct {
	users *services.UserService
}

// NewImageController creates a new image controller.
func NewImageController(users *services.UserService) *ImageController {
	return &ImageController{users: users}
}

// HandleProfileImage returns the raw bytes of the user's profile image.
// The response is always declared image/jpeg.
func (ic *ImageController) HandleProfileImage(c *fiber.Ctx) error {
	user, err := ic.users.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	if user.Image == nil {
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(user.Image.Content)
}

// Global image controller instance
var imageController *ImageController

// InitializeImageController initializes the global image controller
func InitializeImageController() {
	repos := repository.GetGlobalRepositories()
	images := services.NewImageService(repos)
	imageController = NewImageController(services.NewUserService(repos, images))
}

// GetImageController returns the global image controller instance
func GetImageController() *ImageController {
	if imageController == nil {
		InitializeImageController()
	}
	return imageController
}

func HandleProfileImage(c *fiber.Ctx) error { return GetImageController().HandleProfileImage(c) }
