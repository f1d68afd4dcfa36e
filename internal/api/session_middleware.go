package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtrail/internal/session"
)

const sessionLocalsKey = "session_token"

// SessionMiddleware guarantees every request downstream carries a session
// token: an existing cookie is taken as-is, otherwise a token is minted and
// set with the fixed TTL. This is the only place implicit session creation
// happens.
func (handler *Handler) SessionMiddleware(c *fiber.Ctx) error {
	token, minted := session.EnsureToken(c.Cookies(handler.cookie.Name))
	if minted {
		c.Cookie(&fiber.Cookie{
			Name:     handler.cookie.Name,
			Value:    token,
			Path:     "/",
			MaxAge:   int(handler.cookie.TTL / time.Second),
			HTTPOnly: true,
			Secure:   handler.cookie.Secure,
			SameSite: "Lax",
		})
		handler.logger.WithField("path", c.Path()).Debug("minted session token")
	}
	c.Locals(sessionLocalsKey, token)
	return c.Next()
}

func sessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(sessionLocalsKey).(string)
	return token
}
