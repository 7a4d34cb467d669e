package handlers

import (
	"shop/internal/middleware"
	"shop/internal/response"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router, guards middleware.Guards) {
	router.Get("/dashboard/stats", guards.Staff, h.HandleGetStats)
}

func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return response.Send(c, fiber.StatusOK, response.SuccessMessage("Dashboard statistics retrieved", stats))
}
