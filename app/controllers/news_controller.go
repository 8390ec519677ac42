package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"newsportal/app/repository"
	"newsportal/app/services"
)

// NewsController handles news management pages. It needs the author
// service for the attribution dropdowns.
type NewsController struct {
	news    *services.NewsService
	authors *services.AuthorService
}

// NewNewsController creates a new news controller.
func NewNewsController(news *services.NewsService, authors *services.AuthorService) *NewsController {
	return &NewsController{news: news, authors: authors}
}

// HandleMenu renders the news section menu.
func (nc *NewsController) HandleMenu(c *fiber.Ctx) error {
	return c.Render("news/menu", withFlash(c, fiber.Map{}))
}

// HandleCreate shows the creation form on GET and creates the article on
// POST.
func (nc *NewsController) HandleCreate(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		bind, err := nc.withAuthors(withFlash(c, fiber.Map{}))
		if err != nil {
			return err
		}
		return c.Render("news/create", bind)
	}

	title := c.FormValue("title")
	body := c.FormValue("body")
	idAuthor := c.FormValue("idAuthor")

	if _, err := nc.news.Create(title, body, idAuthor); err != nil {
		if msg, ok := userError(err); ok {
			bind, listErr := nc.withAuthors(fiber.Map{
				"error": msg,
				"title": title,
				"body":  body,
			})
			if listErr != nil {
				return listErr
			}
			return c.Render("news/create", bind)
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("News", "added")).Redirect("/")
}

// HandleList renders all articles that have not been soft-deleted.
func (nc *NewsController) HandleList(c *fiber.Ctx) error {
	news, err := nc.news.List()
	if err != nil {
		return err
	}

	return c.Render("news/list", withFlash(c, fiber.Map{
		"news": news,
	}))
}

// HandleUpdate shows the edit form on GET and applies the edit on POST.
func (nc *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	if c.Method() != fiber.MethodPost {
		news, err := nc.news.Get(id)
		if err != nil {
			return toHTTPError(err)
		}

		bind, err := nc.withAuthors(withFlash(c, fiber.Map{"news": news}))
		if err != nil {
			return err
		}
		return c.Render("news/update", bind)
	}

	title := c.FormValue("title")
	body := c.FormValue("body")
	idAuthor := c.FormValue("idAuthor")

	if _, err := nc.news.Update(id, title, body, idAuthor); err != nil {
		if msg, ok := userError(err); ok {
			news, getErr := nc.news.Get(id)
			if getErr != nil {
				return toHTTPError(getErr)
			}
			bind, listErr := nc.withAuthors(fiber.Map{
				"error": msg,
				"news":  news,
			})
			if listErr != nil {
				return listErr
			}
			return c.Render("news/update", bind)
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("News", "updated")).Redirect("/news/list")
}

// HandleDelete soft-deletes the article and returns to the list. A
// failure travels along as a flash error.
func (nc *NewsController) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := nc.news.Delete(id); err != nil {
		if msg, ok := userError(err); ok {
			fm := fiber.Map{"type": "error", "message": msg}
			return flash.WithError(c, fm).Redirect("/news/list")
		}
		return err
	}

	return flash.WithSuccess(c, successFlash("News", "deleted")).Redirect("/news/list")
}

// HandleSearch renders the search form; when title or idAuthor parameters
// are present the matching visible articles are shown.
func (nc *NewsController) HandleSearch(c *fiber.Ctx) error {
	bind, err := nc.withAuthors(withFlash(c, fiber.Map{}))
	if err != nil {
		return err
	}

	args := c.Context().QueryArgs()
	if args.Has("title") || args.Has("idAuthor") {
		title := c.Query("title")
		idAuthor := c.Query("idAuthor")

		news, err := nc.news.Search(title, idAuthor)
		if err != nil {
			return err
		}

		bind["news"] = news
		bind["title"] = title
		bind["idAuthor"] = idAuthor
		bind["searched"] = true
	}

	return c.Render("news/search", bind)
}

// withAuthors adds the author list for the attribution dropdown.
func (nc *NewsController) withAuthors(bind fiber.Map) (fiber.Map, error) {
	authors, err := nc.authors.List()
	if err != nil {
		return nil, err
	}
	bind["authors"] = authors
	return bind, nil
}

// Global news controller instance
var newsController *NewsController

// InitializeNewsController initializes the global news controller
func InitializeNewsController() {
	repos := repository.GetGlobalRepositories()
	newsController = NewNewsController(
		services.NewNewsService(repos),
		services.NewAuthorService(repos),
	)
}

// GetNewsController returns the global news controller instance
func GetNewsController() *NewsController {
	if newsController == nil {
		InitializeNewsController()
	}
	return newsController
}

func HandleNewsMenu(c *fiber.Ctx) error   { return GetNewsController().HandleMenu(c) }
func HandleNewsCreate(c *fiber.Ctx) error { return GetNewsController().HandleCreate(c) }
func HandleNewsList(c *fiber.Ctx) error   { return GetNewsController().HandleList(c) }
func HandleNewsUpdate(c *fiber.Ctx) error { return GetNewsController().HandleUpdate(c) }
func HandleNewsDelete(c *fiber.Ctx) error { return GetNewsController().HandleDelete(c) }
func HandleNewsSearch(c *fiber.Ctx) error { return GetNewsController().HandleSearch(c) }
