package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"newsportal/app/services"
)

const (
	AUTH_KEY  string = "authenticated"
	USER_ID   string = "user_id"
	USER_NAME string = "username"
	USER_ROLE string = "role"
)

// withFlash folds a pending flash message into the render bindings under
// the "success" or "error" key.
func withFlash(c *fiber.Ctx, bind fiber.Map) fiber.Map {
	if bind == nil {
		bind = fiber.Map{}
	}

	fm := flash.Get(c)
	msg, ok := fm["message"]
	if !ok {
		return bind
	}

	if fm["type"] == "error" {
		bind["error"] = msg
	} else {
		bind["success"] = msg
	}

	return bind
}

// successFlash builds the flash payload for a completed mutation, e.g.
// "The News has been added successfully!".
func successFlash(entity, action string) fiber.Map {
	return fiber.Map{
		"type":    "success",
		"message": "The " + entity + " has been " + action + " successfully!",
	}
}

// toHTTPError maps the service error taxonomy onto HTTP statuses for
// requests that have no form to re-render.
func toHTTPError(err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if services.IsInputError(err) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}

// userError extracts the message of a user-correctable failure. The second
// return is false for unexpected errors, which belong on the error page
// instead of the form.
func userError(err error) (string, bool) {
	if services.IsInputError(err) || errors.Is(err, services.ErrNotFound) {
		return err.Error(), true
	}
	return "", false
}
