package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"newsportal/app/repository"
	"newsportal/app/services"
)

// AuthorController handles author management pages.
type AuthorController struct {
	authors *services.AuthorService
}

// NewAuthorController creates a new author controller.
func NewAuthorController(authors *services.AuthorService) *AuthorController {
	return &AuthorController{authors: authors}
}

// HandleMenu renders the author section menu.
func (ac *AuthorController) HandleMenu(c *fiber.Ctx) error {
	return c.Render("author/menu", withFlash(c, fiber.Map{}))
}

// HandleCreate shows the creation form on GET and creates the author on
// POST. The form asks for first and last name; they are stored joined
// with a space.
func (ac *AuthorController) HandleCreate(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Render("author/create", withFlash(c, fiber.Map{}))
	}

	firstName := c.FormValue("firstName")
	lastName := c.FormValue("lastName")
	name := strings.TrimSpace(firstName + " " + lastName)

	if _, err := ac.authors.Create(name); err != nil {
		if msg, ok := userError(err); ok {
			return c.Render("author/create", fiber.Map{
				"error":     msg,
				"firstName": firstName,
				"lastName":  lastName,
			})
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("Author", "added")).Redirect("/")
}

// HandleList renders all authors.
func (ac *AuthorController) HandleList(c *fiber.Ctx) error {
	authors, err := ac.authors.List()
	if err != nil {
		return err
	}

	return c.Render("author/list", withFlash(c, fiber.Map{
		"authors": authors,
	}))
}

// HandleUpdate shows the rename form on GET and applies the rename on
// POST. Failures are rendered on the form; nothing is swallowed.
func (ac *AuthorController) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	if c.Method() != fiber.MethodPost {
		author, err := ac.authors.Get(id)
		if err != nil {
			return toHTTPError(err)
		}

		return c.Render("author/update", withFlash(c, fiber.Map{
			"author": author,
		}))
	}

	name := c.FormValue("name")

	if _, err := ac.authors.Update(id, name); err != nil {
		if msg, ok := userError(err); ok {
			author, getErr := ac.authors.Get(id)
			if getErr != nil {
				return toHTTPError(getErr)
			}
			return c.Render("author/update", fiber.Map{
				"error":  msg,
				"author": author,
			})
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("Author", "updated")).Redirect("/author/list")
}

// HandleSearch renders the search form; when the name parameter is
// present the matching authors are shown, a blank query listing all.
func (ac *AuthorController) HandleSearch(c *fiber.Ctx) error {
	bind := withFlash(c, fiber.Map{})

	if c.Context().QueryArgs().Has("name") {
		name := c.Query("name")
		authors, err := ac.authors.Search(name)
		if err != nil {
			return err
		}
		bind["authors"] = authors
		bind["name"] = name
		bind["searched"] = true
	}

	return c.Render("author/search", bind)
}

// Global author controller instance
var authorController *AuthorController

// InitializeAuthorController initializes the global author controller
func InitializeAuthorController() {
	repos := repository.GetGlobalRepositories()
	authorController = NewAuthorController(services.NewAuthorService(repos))
}

// GetAuthorController returns the global author controller instance
func GetAuthorController() *AuthorController {
	if authorController == nil {
		InitializeAuthorController()
	}
	return authorController
}

func HandleAuthorMenu(c *fiber.Ctx) error   { return GetAuthorController().HandleMenu(c) }
func HandleAuthorCreate(c *fiber.Ctx) error { return GetAuthorController().HandleCreate(c) }
func HandleAuthorList(c *fiber.Ctx) error   { return GetAuthorController().HandleList(c) }
func HandleAuthorUpdate(c *fiber.Ctx) error { return GetAuthorController().HandleUpdate(c) }
func HandleAuthorSearch(c *fiber.Ctx) error { return GetAuthorController().HandleSearch(c) }
