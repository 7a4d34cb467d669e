package handlers

import (
	"slices"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/models"
	"shop/internal/response"

	"github.com/gofiber/fiber/v2"
)

// RoleHandler exposes the fixed role set. Roles drive authorization and user
// code prefixes, so they are read-only.
type RoleHandler struct{}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{}
}

func (h *RoleHandler) RegisterRoutes(router fiber.Router, _ middleware.Guards) {
	roleRoutes := router.Group("/roles")
	roleRoutes.Get("/", h.HandleGetRoles)
	roleRoutes.Get("/code/:code", h.HandleGetRoleByCode)
	roleRoutes.Get("/:id", h.HandleGetRoleByID)
}

func (h *RoleHandler) HandleGetRoles(c *fiber.Ctx) error {
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Roles retrieved successfully", dto.NewRoleResponses(models.Roles())))
}

func (h *RoleHandler) HandleGetRoleByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	role, ok := models.RoleByID(id)
	if !ok {
		return apperrors.NotFound("Role", "id", id)
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Role retrieved successfully", dto.NewRoleResponse(id, role)))
}

func (h *RoleHandler) HandleGetRoleByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	role, ok := models.RoleByCode(code)
	if !ok {
		return apperrors.NotFound("Role", "code", code)
	}
	id := uint(slices.Index(models.Roles(), role) + 1)
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Role retrieved successfully", dto.NewRoleResponse(id, role)))
}
