package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ems-portal/internal/pkg/jwt"
	"ems-portal/internal/testhelpers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCacheControl(t *testing.T) {
	assert.Equal(t, "public, max-age=3600", formatCacheControl("public", time.Hour))
	assert.Equal(t, "private, max-age=30", formatCacheControl("private", 30*time.Second))
}

func TestCacheHeadersOnlyOnSuccessfulGet(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", CacheControl(time.Minute), func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", CacheControl(time.Minute), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=60", resp.Header.Get(fiber.HeaderCacheControl))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderCacheControl))
}

func TestClientMiddleware(t *testing.T) {
	cfg := testhelpers.TestConfig()
	app := fiber.New()
	app.Get("/", ClientMiddleware(cfg), func(c *fiber.Ctx) error { return c.SendString(ClientID(c)) })

	t.Run("valid cookie keeps the client", func(t *testing.T) {
		token, err := jwt.GenerateClientToken("client-7", cfg.JWT.Secret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: ClientCookie, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Empty(t, resp.Cookies())
		body := make([]byte, 16)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, "client-7", string(body[:n]))
	})

	t.Run("forged cookie gets a new client", func(t *testing.T) {
		token, err := jwt.GenerateClientToken("client-7", "someone-else")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: ClientCookie, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)

		require.Len(t, resp.Cookies(), 1)
		cookie := resp.Cookies()[0]
		assert.Equal(t, ClientCookie, cookie.Name)
		assert.True(t, cookie.HttpOnly)

		claims, err := jwt.ValidateClientToken(cookie.Value, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.NotEqual(t, "client-7", claims.ClientID)
	})
}

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "title is required") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db password is hunter2") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := make([]byte, 256)
	n, _ := resp.Body.Read(body)
	assert.NotContains(t, string(body[:n]), "hunter2")
}
