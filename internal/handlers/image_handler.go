package handlers

import (
	"fmt"

	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler handles HTTP requests for product images.
type ImageHandler struct {
	service  *services.ImageService
	validate *validation.Validator
}

func NewImageHandler(service *services.ImageService) *ImageHandler {
	return &ImageHandler{
		service:  service,
		validate: validation.New(),
	}
}

func (h *ImageHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	imageRoutes := router.Group("/images")
	imageRoutes.Get("/", h.HandleGetImages)
	imageRoutes.Get("/product/:productId", h.HandleGetProductImages)
	imageRoutes.Get("/:id", h.HandleGetImageByID)
	imageRoutes.Post("/", guards.Staff, h.HandleCreateImage)
	imageRoutes.Put("/:id", guards.Staff, h.HandleUpdateImage)
	imageRoutes.Delete("/product/:productId", guards.Staff, h.HandleDeleteProductImages)
	imageRoutes.Delete("/:id", guards.Staff, h.HandleDeleteImage)
}

func (h *ImageHandler) HandleGetImages(c *fiber.Ctx) error {
	images, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Images retrieved successfully", dto.NewImageResponses(images)))
}

func (h *ImageHandler) HandleGetImageByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	image, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Image retrieved successfully", dto.NewImageResponse(image)))
}

func (h *ImageHandler) HandleGetProductImages(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	images, err := h.service.GetByProduct(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Product images retrieved successfully", dto.NewImageResponses(images)))
}

func (h *ImageHandler) HandleCreateImage(c *fiber.Ctx) error {
	var req dto.ImageRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	image, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Created(c, "Image created successfully", dto.NewImageResponse(image))
}

func (h *ImageHandler) HandleUpdateImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ImageRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	image, err := h.service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Image updated successfully", dto.NewImageResponse(image)))
}

func (h *ImageHandler) HandleDeleteImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Image deleted successfully", nil))
}

func (h *ImageHandler) HandleDeleteProductImages(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	deleted, err := h.service.DeleteByProduct(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK,
		response.SuccessMessage(fmt.Sprintf("Product images deleted successfully (%d removed)", deleted), nil))
}
