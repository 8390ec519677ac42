package middleware

import (
	"github.com/gofiber/fiber/v2"

	"newsportal/app/controllers"
	"newsportal/app/models"
	"newsportal/internal/pkg/session"
	"newsportal/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext for every
// request, so handlers and guards never touch the session store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	auth, _ := sess.Get(controllers.AUTH_KEY).(bool)
	if !auth {
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	userID, _ := sess.Get(controllers.USER_ID).(string)
	username, _ := sess.Get(controllers.USER_NAME).(string)
	role, _ := sess.Get(controllers.USER_ROLE).(string)

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		Role:       role,
		IsLoggedIn: true,
		IsAdmin:    models.Role(role).IsAdmin(),
	})

	return c.Next()
}
