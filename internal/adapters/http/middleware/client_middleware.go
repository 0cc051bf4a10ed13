package middleware

import (
	"time"

	"ems-portal/internal/config"
	"ems-portal/internal/pkg/jwt"
	"ems-portal/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientCookie is the cookie that identifies a browser across requests
const ClientCookie = "ems_client"

// Context locals set by the middlewares
const (
	LocalClientID = "clientID"
	LocalIdentity = "identity"
)

// ClientMiddleware makes sure every request carries a signed client id.
// A missing or invalid cookie gets a fresh client, which starts logged out.
func ClientMiddleware(cfg *config.Config) fiber.Handler {
	maxAge := cfg.Session.RetentionDays * 24 * 60 * 60

	return func(c *fiber.Ctx) error {
		if token := c.Cookies(ClientCookie); token != "" {
			claims, err := jwt.ValidateClientToken(token, cfg.JWT.Secret)
			if err == nil {
				c.Locals(LocalClientID, claims.ClientID)
				return c.Next()
			}
			logger.Log.WithError(err).Debug("Replacing invalid client cookie")
		}

		clientID := uuid.NewString()
		token, err := jwt.GenerateClientToken(clientID, cfg.JWT.Secret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to start client session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     ClientCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   maxAge,
			Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
			Secure:   cfg.Cookie.Secure,
			HTTPOnly: true,
			SameSite: cfg.Cookie.SameSite,
			Domain:   cfg.Cookie.Domain,
		})
		c.Locals(LocalClientID, clientID)
		return c.Next()
	}
}

// ClientID returns the client id set by ClientMiddleware
func ClientID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalClientID).(string)
	return id
}
