package middleware

import (
	"time"

	"instacash-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// NewSessionStore creates the server-side session store. Sessions are
// keyed by an opaque cookie identifier; all state lives server side.
func NewSessionStore(cfg *config.Config) *session.Store {
	return session.New(session.Config{
		Expiration:     time.Duration(cfg.Session.ExpiryHours) * time.Hour,
		KeyLookup:      "cookie:session_id",
		CookieDomain:   cfg.Session.Domain,
		CookieSecure:   cfg.Session.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: cfg.Session.SameSite,
	})
}

// RequireSession guards routes that need an authenticated session. On
// success the user id, username and role are placed in request locals.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		userID, ok := sess.Get("user_id").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		c.Locals("userID", userID)
		if username, ok := sess.Get("username").(string); ok {
			c.Locals("username", username)
		}
		if role, ok := sess.Get("role").(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}
