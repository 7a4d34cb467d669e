package handlers

import (
	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var errOwnAccountOnly = apperrors.Forbidden("You may only access your own account")

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the user routes. The availability checks stay
// public so sign-up forms can use them.
func (h *UserHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/check-account/:account", h.HandleCheckAccount)
	userRoutes.Get("/check-phone/:phone", h.HandleCheckPhone)
	userRoutes.Get("/", guards.Staff, h.HandleGetUsers)
	userRoutes.Get("/account/:account", guards.Staff, h.HandleGetUserByAccount)
	userRoutes.Get("/:id", guards.User, h.HandleGetUserByID)
	userRoutes.Post("/", guards.Staff, h.HandleCreateUser)
	userRoutes.Put("/:id", guards.Staff, h.HandleUpdateUser)
	userRoutes.Delete("/:id", guards.Admin, h.HandleDeleteUser)
}

func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Users retrieved successfully", dto.NewUserResponses(users)))
}

// HandleGetUserByID lets customers read only their own account.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return err
	}
	if !middleware.IsStaff(claims) && claims.UserID != id {
		return errOwnAccountOnly
	}
	user, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("User retrieved successfully", dto.NewUserResponse(user)))
}

func (h *UserHandler) HandleGetUserByAccount(c *fiber.Ctx) error {
	user, err := h.service.GetByAccount(c.UserContext(), c.Params("account"))
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("User retrieved successfully", dto.NewUserResponse(user)))
}

func (h *UserHandler) HandleCheckAccount(c *fiber.Ctx) error {
	exists, err := h.service.ExistsByAccount(c.UserContext(), c.Params("account"))
	if err != nil {
		return err
	}
	return response.OK(c, dto.ExistsResponse{Exists: exists})
}

func (h *UserHandler) HandleCheckPhone(c *fiber.Ctx) error {
	exists, err := h.service.ExistsByPhone(c.UserContext(), c.Params("phone"))
	if err != nil {
		return err
	}
	return response.OK(c, dto.ExistsResponse{Exists: exists})
}

func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return err
	}
	var req dto.CreateUserRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	user, err := h.service.CreateAs(c.UserContext(), claims.Role, req)
	if err != nil {
		return err
	}
	return response.Created(c, "User created successfully", dto.NewUserResponse(user))
}

func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	user, err := h.service.Update(c.UserContext(), claims.Role, id, req)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("User updated successfully", dto.NewUserResponse(user)))
}

func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("User deleted successfully", nil))
}
