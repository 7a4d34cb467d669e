package middleware_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop/internal/apperrors"
	"shop/internal/middleware"
	"shop/internal/models"
	"shop/internal/response"
	"shop/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware_test_secret"

func init() {
	log.SetOutput(io.Discard)
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, response.Envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestErrorHandler_MapsErrorKinds(t *testing.T) {
	app := newApp()
	app.Get("/not-found", func(c *fiber.Ctx) error { return apperrors.NotFound("Product", "id", 7) })
	app.Get("/bad", func(c *fiber.Ctx) error { return apperrors.BadRequest("Cannot cancel order with status: %s", "Shipping") })
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apperrors.Validation(map[string]string{"brandName": "Brand name is required", "brandDescription": "too long"})
	})
	app.Get("/unauthorized", func(c *fiber.Ctx) error { return apperrors.Unauthorized("invalid credentials") })
	app.Get("/forbidden", func(c *fiber.Ctx) error { return apperrors.Forbidden("no") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fmt.Errorf("failed to get product: %w", io.ErrUnexpectedEOF) })
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return fmt.Errorf("loading: %w", apperrors.NotFound("Brand", "code", "TH1"))
	})

	tests := []struct {
		path    string
		status  int
		message string
		detail  string
	}{
		{"/not-found", 404, "Product not found with id: 7", "Product not found with id: 7"},
		{"/bad", 400, "Cannot cancel order with status: Shipping", "Cannot cancel order with status: Shipping"},
		{"/invalid", 400, "Validation failed", "{brandDescription=too long, brandName=Brand name is required}"},
		{"/unauthorized", 401, "Authentication failed", "invalid credentials"},
		{"/forbidden", 403, "Access denied", "no"},
		{"/boom", 500, "An unexpected error occurred", "failed to get product: unexpected EOF"},
		{"/wrapped", 404, "Brand not found with code: TH1", "Brand not found with code: TH1"},
		{"/no-such-route", 404, "Cannot GET /no-such-route", "Cannot GET /no-such-route"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, env := do(t, app, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, env.Status)
			assert.Equal(t, tt.message, env.Message)
			assert.Equal(t, tt.detail, env.Error)
			assert.Nil(t, env.Data)
		})
	}
}

func TestErrorHandler_RecoveredPanic(t *testing.T) {
	app := newApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		var product *models.Product
		return c.SendString(product.ProductName)
	})

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "An unexpected error occurred", env.Message)
	assert.Equal(t, "runtime error: invalid memory address or nil pointer dereference", env.Error)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	app := newApp()
	app.Get("/ping", func(c *fiber.Ctx) error { return response.OK(c, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, env := do(t, app, req)
	assert.Equal(t, "req-123", resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "pong", env.Data)
}

func signToken(t *testing.T, userID uint, role string, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"account": "someone",
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	authService := services.NewAuthService(nil, secret, time.Hour)
	guards := middleware.NewGuards(authService)

	app := newApp()
	whoami := func(c *fiber.Ctx) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return err
		}
		return response.OK(c, fmt.Sprintf("%d:%s", claims.UserID, claims.Role))
	}
	app.Get("/any", guards.User, whoami)
	app.Get("/staff", guards.Staff, whoami)
	app.Get("/admin", guards.Admin, whoami)

	request := func(path, authorization string) (*http.Response, response.Envelope) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if authorization != "" {
			req.Header.Set(fiber.HeaderAuthorization, authorization)
		}
		return do(t, app, req)
	}

	customer := "Bearer " + signToken(t, 3, "Customer", time.Hour)
	staff := "Bearer " + signToken(t, 2, "Staff", time.Hour)
	admin := "Bearer " + signToken(t, 1, "Admin", time.Hour)

	resp, env := request("/any", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authorization header is required", env.Error)

	resp, env = request("/any", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authorization header format must be 'Bearer <token>'", env.Error)

	resp, _ = request("/any", "Bearer "+signToken(t, 3, "Customer", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env = request("/any", customer)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3:Customer", env.Data)

	resp, env = request("/staff", customer)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", env.Message)

	resp, _ = request("/staff", staff)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = request("/admin", staff)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, env = request("/admin", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1:Admin", env.Data)
}

func TestRequireSelfOrStaff(t *testing.T) {
	authService := services.NewAuthService(nil, secret, time.Hour)
	app := newApp()
	app.Get("/orders/of/:owner", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		owner, _ := c.ParamsInt("owner")
		if err := middleware.RequireSelfOrStaff(c, uint(owner)); err != nil {
			return err
		}
		return response.OK(c, nil)
	})

	request := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := do(t, app, req)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, request("/orders/of/3", signToken(t, 3, "Customer", time.Hour)))
	assert.Equal(t, http.StatusForbidden, request("/orders/of/4", signToken(t, 3, "Customer", time.Hour)))
	assert.Equal(t, http.StatusOK, request("/orders/of/4", signToken(t, 2, "Staff", time.Hour)))
}
