package handlers

import (
	"shop/internal/dto"
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	brands   *services.BrandService
	products *services.ProductService
	validate *validation.Validator
}

func NewBrandHandler(brands *services.BrandService, products *services.ProductService) *BrandHandler {
	return &BrandHandler{
		brands:   brands,
		products: products,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the brand routes. Reads are public, writes need a
// staff token.
func (h *BrandHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Get("/code/:code", h.HandleGetBrandByCode)
	brandRoutes.Get("/:id/products", h.HandleGetBrandProducts)
	brandRoutes.Get("/:id", h.HandleGetBrandByID)
	brandRoutes.Post("/", guards.Staff, h.HandleCreateBrand)
	brandRoutes.Put("/:id", guards.Staff, h.HandleUpdateBrand)
	brandRoutes.Delete("/:id", guards.Staff, h.HandleDeleteBrand)
}

func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.brands.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brands retrieved successfully", dto.NewBrandResponses(brands)))
}

func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	brand, err := h.brands.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brand retrieved successfully", dto.NewBrandResponse(brand)))
}

func (h *BrandHandler) HandleGetBrandByCode(c *fiber.Ctx) error {
	brand, err := h.brands.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brand retrieved successfully", dto.NewBrandResponse(brand)))
}

func (h *BrandHandler) HandleGetBrandProducts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	products, err := h.products.GetByBrand(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brand products retrieved successfully", dto.NewProductResponses(products)))
}

func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var req dto.BrandRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	brand, err := h.brands.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return response.Created(c, "Brand created successfully", dto.NewBrandResponse(brand))
}

func (h *BrandHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.BrandRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}
	brand, err := h.brands.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brand updated successfully", dto.NewBrandResponse(brand)))
}

func (h *BrandHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.brands.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Brand deleted successfully", nil))
}
