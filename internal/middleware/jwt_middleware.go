package middleware

import (
	"log"
	"slices"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/models"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID  = "user_id"
	LocalAccount = "account"
	LocalRole    = "role"
	localClaims  = "claims"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token. When
// roles are given the token's role must be one of them.
func AuthRequired(authService *services.AuthService, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperrors.Unauthorized("Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return apperrors.Unauthorized("Authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return err
		}
		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			return apperrors.Forbidden("Role " + claims.Role.DisplayName() + " may not perform this action")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalAccount, claims.Account)
		c.Locals(LocalRole, claims.Role)
		c.Locals(localClaims, claims)

		return c.Next()
	}
}

// Guards bundles the three access levels used by the route tables.
type Guards struct {
	User  fiber.Handler
	Staff fiber.Handler
	Admin fiber.Handler
}

func NewGuards(authService *services.AuthService) Guards {
	return Guards{
		User:  AuthRequired(authService),
		Staff: AuthRequired(authService, models.RoleAdmin, models.RoleStaff),
		Admin: AuthRequired(authService, models.RoleAdmin),
	}
}

// CurrentClaims returns the claims stored by AuthRequired.
func CurrentClaims(c *fiber.Ctx) (*services.Claims, error) {
	claims, ok := c.Locals(localClaims).(*services.Claims)
	if !ok || claims == nil {
		return nil, apperrors.Unauthorized("Authentication is required")
	}
	return claims, nil
}

// IsStaff reports whether the claims belong to an admin or staff account.
func IsStaff(claims *services.Claims) bool {
	return claims.Role == models.RoleAdmin || claims.Role == models.RoleStaff
}

// RequireSelfOrStaff lets staff through and limits everyone else to resources
// owned by their own account.
func RequireSelfOrStaff(c *fiber.Ctx, ownerID uint) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}
	if IsStaff(claims) || claims.UserID == ownerID {
		return nil
	}
	return apperrors.Forbidden("You may only access your own orders")
}
