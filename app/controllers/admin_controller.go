package controllers

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/internal/pkg/usercontext"
)

// AdminController serves the admin-only dashboard.
type AdminController struct{}

// NewAdminController creates a new admin controller.
func NewAdminController() *AdminController {
	return &AdminController{}
}

// HandleDashboard renders the admin dashboard.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Render("dashboard", withFlash(c, fiber.Map{
		"username": userCtx.Username,
	}))
}

// Global admin controller instance
var adminController *AdminController

// InitializeAdminController initializes the global admin controller
func InitializeAdminController() {
	adminController = NewAdminController()
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}

func HandleAdminDashboard(c *fiber.Ctx) error { return GetAdminController().HandleDashboard(c) }
