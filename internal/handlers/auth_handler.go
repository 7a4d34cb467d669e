package handlers

import (
	"log"

	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validation.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", guards.User, h.HandleMe)
}

// HandleRegister handles new customer registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	user, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		log.Printf("Error registering account %s: %v", req.UserAccount, err)
		return err
	}
	return response.Created(c, "User registered successfully", dto.NewUserResponse(user))
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	token, user, err := h.authService.Login(c.UserContext(), req.Account, req.Password)
	if err != nil {
		log.Printf("Error during login for account %s: %v", req.Account, err)
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Login successful", dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.authService.TokenTTL().Seconds()),
		User:      dto.NewUserResponse(user),
	}))
}

// HandleMe returns the account the token belongs to.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return err
	}
	user, err := h.authService.CurrentUser(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Current user retrieved successfully", dto.NewUserResponse(user)))
}
