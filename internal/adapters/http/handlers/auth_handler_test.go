package handlers

import (
	"net/http"
	"testing"

	"instacash-backend/internal/adapters/http/middleware"
	"instacash-backend/internal/config"
	"instacash-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() (*fiber.App, *memUserRepo, *memResetRepo) {
	userRepo := newMemUserRepo()
	resetRepo := &memResetRepo{users: userRepo}
	cfg := &config.Config{Reset: config.ResetConfig{TokenTTLMins: 60}}

	store := session.New()
	handler := NewAuthHandler(services.NewAuthService(userRepo, resetRepo, cfg), store)

	app := fiber.New()
	app.Post("/api/register", handler.Register)
	app.Post("/api/login", handler.Login)
	app.Post("/api/logout", handler.Logout)
	app.Post("/api/forgot-password", handler.ForgotPassword)
	app.Post("/api/reset-password", handler.ResetPassword)
	app.Get("/api/me", middleware.RequireSession(store), handler.Me)

	return app, userRepo, resetRepo
}

func registerPayload() fiber.Map {
	return fiber.Map{
		"username":  "jdoe",
		"email":     "jdoe@example.com",
		"password":  "Abc12345!",
		"firstName": "Jane",
		"lastName":  "Doe",
	}
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, cookie := range res.Cookies() {
		if cookie.Name == "session_id" {
			return cookie
		}
	}
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", registerPayload()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, float64(1), body["user_id"])
}

func TestRegisterEndpointRejections(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", registerPayload()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	tests := []struct {
		name      string
		mutate    func(fiber.Map)
		wantError string
	}{
		{
			"missing username",
			func(m fiber.Map) { delete(m, "username") },
			"Missing username",
		},
		{
			"invalid email",
			func(m fiber.Map) { m["email"] = "not-an-email"; m["username"] = "other" },
			"Invalid email format",
		},
		{
			"weak password",
			func(m fiber.Map) {
				m["password"] = "abc12345"
				m["username"] = "other"
				m["email"] = "other@example.com"
			},
			weakPasswordMessage,
		},
		{
			"duplicate username",
			func(m fiber.Map) { m["email"] = "other@example.com" },
			"Username or email already exists",
		},
		{
			"duplicate email",
			func(m fiber.Map) { m["username"] = "other" },
			"Username or email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := registerPayload()
			tt.mutate(payload)

			res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", payload))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)

			body := decodeBody(t, res)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestLoginSessionLifecycle(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", registerPayload()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// login establishes a session cookie
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"username": "jdoe",
		"password": "Abc12345!",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cookie := sessionCookie(res)
	require.NotNil(t, cookie)

	body := decodeBody(t, res)
	assert.Equal(t, "Login successful", body["message"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jdoe", user["username"])
	assert.Equal(t, "customer", user["role"])

	// the session grants access to /me
	req := jsonRequest(t, http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// logout destroys the session
	req = jsonRequest(t, http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	req = jsonRequest(t, http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMeEndpointRequiresSession(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodGet, "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Authentication required", body["error"])
}

func TestLoginEndpointRejections(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", registerPayload()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"username": "jdoe",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "Missing username or password", body["error"])

	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"username": "jdoe",
		"password": "WrongPass1!",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	body = decodeBody(t, res)
	assert.Equal(t, "Invalid username or password", body["error"])

	assert.Nil(t, sessionCookie(res))
}

func TestPasswordResetEndpoints(t *testing.T) {
	app, _, _ := newAuthTestApp()

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/register", registerPayload()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// unknown email
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/forgot-password", fiber.Map{
		"email": "ghost@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// known email yields a token
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/forgot-password", fiber.Map{
		"email": "jdoe@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	token, ok := body["reset_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// reset with the token
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/reset-password", fiber.Map{
		"reset_token":  token,
		"new_password": "NewPass99?",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// token is single use
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/reset-password", fiber.Map{
		"reset_token":  token,
		"new_password": "OtherPass1!",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body = decodeBody(t, res)
	assert.Equal(t, "Invalid or expired reset token", body["error"])

	// new password now logs in
	res, err = app.Test(jsonRequest(t, http.MethodPost, "/api/login", fiber.Map{
		"username": "jdoe",
		"password": "NewPass99?",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
