package controllers

import (
	"newsportal/app/models"
	"newsportal/app/repository"
	"newsportal/app/services"
	"newsportal/internal/pkg/session"
	"newsportal/internal/pkg/usercontext"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

// PortalController serves the public pages: index, registration, login and
// the authenticated landing page.
type PortalController struct {
	users *services.UserService
}

// NewPortalController creates a new portal controller.
func NewPortalController(users *services.UserService) *PortalController {
	return &PortalController{users: users}
}

// HandleIndex renders the landing page.
func (pc *PortalController) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", withFlash(c, fiber.Map{
		"loggedIn": usercontext.IsLoggedIn(c),
	}))
}

// HandleRegister renders the registration form.
func (pc *PortalController) HandleRegister(c *fiber.Ctx) error {
	return c.Render("registry", withFlash(c, fiber.Map{}))
}

// HandleRegistry processes a registration. On a validation failure the
// form is re-rendered with the message and the already-entered name and
// email kept in place.
func (pc *PortalController) HandleRegistry(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	password2 := c.FormValue("password2")

	file, _ := c.FormFile("file")

	_, err := pc.users.Register(file, name, email, password, password2)
	if err != nil {
		if msg, ok := userError(err); ok {
			return c.Render("registry", fiber.Map{
				"error": msg,
				"name":  name,
				"email": email,
			})
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("User", "added")).Redirect("/")
}

// HandleLogin renders the login form. A redirect with the error flag shows
// the generic invalid-credentials message; whether the email or the
// password was wrong is never disclosed.
func (pc *PortalController) HandleLogin(c *fiber.Ctx) error {
	bind := withFlash(c, fiber.Map{})
	if c.Query("error") != "" {
		bind["error"] = "Invalid user or password"
	}
	return c.Render("login", bind)
}

// HandleLoginCheck verifies the credentials and, on success, binds the
// resolved user to the session. The lookup itself has no side effects.
func (pc *PortalController) HandleLoginCheck(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := pc.users.GetByEmail(email)
	if err != nil {
		return c.Redirect("/login?error=true", fiber.StatusSeeOther)
	}

	if !user.CheckPassword(password) {
		return c.Redirect("/login?error=true", fiber.StatusSeeOther)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, user.ID)
	sess.Set(USER_NAME, user.Name)
	sess.Set(USER_ROLE, string(user.Role))

	if err := sess.Save(); err != nil {
		return err
	}

	// the timestamp is best effort, login already succeeded
	_ = pc.users.RecordLogin(user.ID)

	return c.Redirect("/home", fiber.StatusSeeOther)
}

// HandleLogout destroys the session and returns to the landing page.
func (pc *PortalController) HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleHome is the authenticated landing page. Admins are sent straight
// to the dashboard.
func (pc *PortalController) HandleHome(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if models.Role(userCtx.Role).IsAdmin() {
		return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
	}

	return c.Render("home", withFlash(c, fiber.Map{
		"username": userCtx.Username,
		"userID":   userCtx.UserID,
	}))
}

// Global portal controller instance
var portalController *PortalController

// InitializePortalController initializes the global portal controller
func InitializePortalController() {
	repos := repository.GetGlobalRepositories()
	images := services.NewImageService(repos)
	portalController = NewPortalController(services.NewUserService(repos, images))
}

// GetPortalController returns the global portal controller instance
func GetPortalController() *PortalController {
	if portalController == nil {
		InitializePortalController()
	}
	return portalController
}

func HandleIndex(c *fiber.Ctx) error      { return GetPortalController().HandleIndex(c) }
func HandleRegister(c *fiber.Ctx) error   { return GetPortalController().HandleRegister(c) }
func HandleRegistry(c *fiber.Ctx) error   { return GetPortalController().HandleRegistry(c) }
func HandleLogin(c *fiber.Ctx) error      { return GetPortalController().HandleLogin(c) }
func HandleLoginCheck(c *fiber.Ctx) error { return GetPortalController().HandleLoginCheck(c) }
func HandleLogout(c *fiber.Ctx) error     { return GetPortalController().HandleLogout(c) }
func HandleHome(c *fiber.Ctx) error       { return GetPortalController().HandleHome(c) }
